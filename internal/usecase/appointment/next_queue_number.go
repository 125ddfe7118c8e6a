package appointment

import (
	"context"
	"strconv"
	"time"

	domain "github.com/smartque/smartque-api/internal/domain/appointment"
	"github.com/smartque/smartque-api/internal/httperr"
	"github.com/smartque/smartque-api/internal/queue"
)

// Sequencer reserves the next number for a (department, day) partition.
type Sequencer interface {
	Reserve(
		ctx context.Context,
		departmentName string,
		day time.Time,
		seed queue.SeedFunc,
	) (int64, error)
}

type NextQueueNumber struct {
	repo domain.Repository
	seq  Sequencer
}

func NewNextQueueNumber(
	repo domain.Repository,
	seq Sequencer,
) *NextQueueNumber {
	return &NextQueueNumber{
		repo: repo,
		seq:  seq,
	}
}

// Execute reserves and returns the next queue number for the department-day
// as a string. The first reservation of a day seeds the sequence from the
// store's upcoming count, so the value is the familiar count+1; later
// reservations are atomic increments, so two concurrent callers can no
// longer receive the same number.
func (uc *NextQueueNumber) Execute(
	ctx context.Context,
	departmentName string,
	day time.Time,
) (string, error) {

	if departmentName == "" {
		return "", httperr.ErrValidation("Department is required")
	}

	dayStart, dayEnd := domain.DayWindow(day)

	n, err := uc.seq.Reserve(ctx, departmentName, day, func(ctx context.Context) (int64, error) {
		return uc.repo.CountUpcomingForDay(ctx, departmentName, dayStart, dayEnd)
	})
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(n, 10), nil
}
