// Package queue reserves per-(department, day) queue numbers atomically.
//
// The naive count-then-assign sequence lets two concurrent callers read the
// same count and mint duplicate numbers. A Redis INCR per partition closes
// that gap: the first reservation of a day seeds the counter from the store,
// so the returned value is still count+1, and every later reservation is a
// plain atomic increment.
package queue

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/smartque/smartque-api/internal/domain/appointment"
)

// Counters outlive their day by a margin so late bookings near midnight still
// see them, then expire on their own.
const sequenceTTL = 48 * time.Hour

// SeedFunc supplies the starting value for a fresh partition, normally the
// store's current upcoming count for that department and day.
type SeedFunc func(ctx context.Context) (int64, error)

type Sequencer struct {
	rdb *redis.Client
}

func NewSequencer(rdb *redis.Client) *Sequencer {
	return &Sequencer{rdb: rdb}
}

// Reserve returns the next queue number for the partition. The number is
// consumed whether or not the caller completes a booking; sequences are
// monotonic, not gapless.
func (s *Sequencer) Reserve(
	ctx context.Context,
	departmentName string,
	day time.Time,
	seed SeedFunc,
) (int64, error) {

	key := sequenceKey(departmentName, day)

	exists, err := s.rdb.Exists(ctx, key).Result()
	if err != nil {
		return 0, err
	}

	if exists == 0 && seed != nil {
		base, err := seed(ctx)
		if err != nil {
			return 0, err
		}
		// SetNX keeps the first writer's seed if two callers race here.
		if err := s.rdb.SetNX(ctx, key, base, sequenceTTL).Err(); err != nil {
			return 0, err
		}
	}

	n, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	s.rdb.Expire(ctx, key, sequenceTTL)

	return n, nil
}

func sequenceKey(departmentName string, day time.Time) string {
	return fmt.Sprintf(
		"queue:seq:%s:%s",
		strings.ToLower(strings.TrimSpace(departmentName)),
		domain.DayKey(day),
	)
}
