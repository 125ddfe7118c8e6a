package handlers

import (
	"time"

	"github.com/smartque/smartque-api/internal/domain/appointment"
	"github.com/smartque/smartque-api/internal/httperr"
)

// Clients send slots either as RFC 3339 or as a bare local datetime.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

func parseDateTime(s string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, httperr.ErrValidation("Invalid date/time")
}

// domainDay interprets an optional YYYY-MM-DD query value, defaulting to
// today.
func domainDay(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	return appointment.ParseDay(s)
}
