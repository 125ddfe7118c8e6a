package appointment

import (
	"time"

	"github.com/smartque/smartque-api/internal/httperr"
)

const dayFormat = "2006-01-02"

// DayWindow is the interval [00:00:00.000, 23:59:59.999] local to t's
// location. Both ends are inclusive; the store queries use BETWEEN. The end
// is built from wall-clock fields, not start+24h, so DST-transition days
// still close at 23:59:59.999.
func DayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := time.Date(
		t.Year(), t.Month(), t.Day(),
		23, 59, 59, int(999*time.Millisecond),
		t.Location(),
	)
	return start, end
}

func ParseDay(s string) (time.Time, error) {
	day, err := time.ParseInLocation(dayFormat, s, time.Local)
	if err != nil {
		return time.Time{}, httperr.ErrValidation("Invalid date")
	}
	return day, nil
}

func DayKey(t time.Time) string {
	return t.Format(dayFormat)
}
