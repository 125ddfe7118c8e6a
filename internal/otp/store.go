// Package otp keeps email verification codes and password reset tokens in
// Redis, where TTLs give expiry for free.
package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/smartque/smartque-api/internal/httperr"
)

const (
	// codeLifetime is mirrored in the email copy ("expires in 10 minutes").
	codeLifetime     = 10 * time.Minute
	verifiedLifetime = 30 * time.Minute
	maxAttempts      = 3
)

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Generate mints a fresh 6-digit code for the email, replacing any previous
// one and resetting the attempt counter.
func (s *Store) Generate(ctx context.Context, email string) (string, error) {
	email = normalize(email)
	code, err := randomCode()
	if err != nil {
		return "", err
	}

	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, codeKey(email), code, codeLifetime)
	pipe.Del(ctx, attemptsKey(email), verifiedKey(email))
	if _, err := pipe.Exec(ctx); err != nil {
		return "", err
	}

	return code, nil
}

// Verify checks the submitted code. On mismatch it returns the remaining
// attempt count alongside a validation error; after the third miss the code
// is discarded.
func (s *Store) Verify(ctx context.Context, email, code string) (int, error) {
	email = normalize(email)

	stored, err := s.rdb.Get(ctx, codeKey(email)).Result()
	if err == redis.Nil {
		return 0, httperr.ErrValidation("No verification request found for this email")
	}
	if err != nil {
		return 0, err
	}

	if stored != code {
		attempts, err := s.rdb.Incr(ctx, attemptsKey(email)).Result()
		if err != nil {
			return 0, err
		}
		s.rdb.Expire(ctx, attemptsKey(email), codeLifetime)

		remaining := maxAttempts - int(attempts)
		if remaining <= 0 {
			s.rdb.Del(ctx, codeKey(email), attemptsKey(email))
			return 0, httperr.ErrValidation("Too many attempts. Please request a new code.")
		}
		return remaining, httperr.ErrValidation("Invalid verification code")
	}

	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, verifiedKey(email), "1", verifiedLifetime)
	pipe.Del(ctx, codeKey(email), attemptsKey(email))
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}

	return maxAttempts, nil
}

// IsVerified reports whether the email passed verification recently.
func (s *Store) IsVerified(ctx context.Context, email string) (bool, error) {
	n, err := s.rdb.Exists(ctx, verifiedKey(normalize(email))).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Clear drops all OTP state for the email, called once registration lands.
func (s *Store) Clear(ctx context.Context, email string) error {
	email = normalize(email)
	return s.rdb.Del(ctx,
		codeKey(email),
		attemptsKey(email),
		verifiedKey(email),
	).Err()
}

func randomCode() (string, error) {
	// 100000..999999
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func codeKey(email string) string     { return "otp:code:" + email }
func attemptsKey(email string) string { return "otp:attempts:" + email }
func verifiedKey(email string) string { return "otp:verified:" + email }
