package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartque/smartque-api/internal/httperr"
)

func TestParseDateTimeLayouts(t *testing.T) {
	for _, in := range []string{
		"2026-09-01T10:30:00+03:00",
		"2026-09-01T10:30:00",
		"2026-09-01 10:30:00",
		"2026-09-01 10:30",
	} {
		got, err := parseDateTime(in)
		require.NoError(t, err, in)
		assert.Equal(t, 2026, got.Year())
		assert.Equal(t, 10, got.Hour())
		assert.Equal(t, 30, got.Minute())
	}
}

func TestParseDateTimeInvalid(t *testing.T) {
	for _, in := range []string{"", "tomorrow", "01/09/2026 10:30"} {
		_, err := parseDateTime(in)
		require.Error(t, err, in)
		assert.True(t, httperr.IsValidation(err))
	}
}

func TestDomainDayDefaultsToToday(t *testing.T) {
	got, err := domainDay("")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), got, time.Minute)

	got, err = domainDay("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Day())

	_, err = domainDay("not-a-date")
	require.Error(t, err)
}
