package otp

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/smartque/smartque-api/internal/httperr"
)

const resetTokenLifetime = time.Hour

// NewResetToken mints a password-reset token bound to the user for one hour.
func (s *Store) NewResetToken(ctx context.Context, userID uint) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)

	if err := s.rdb.Set(
		ctx,
		resetKey(token),
		strconv.FormatUint(uint64(userID), 10),
		resetTokenLifetime,
	).Err(); err != nil {
		return "", err
	}

	return token, nil
}

// ConsumeResetToken resolves and invalidates a reset token in one shot.
func (s *Store) ConsumeResetToken(ctx context.Context, token string) (uint, error) {
	val, err := s.rdb.GetDel(ctx, resetKey(token)).Result()
	if err == redis.Nil {
		return 0, httperr.ErrValidation("Invalid or expired reset token")
	}
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, httperr.ErrValidation("Invalid or expired reset token")
	}
	return uint(id), nil
}

func resetKey(token string) string { return "pwreset:" + token }
