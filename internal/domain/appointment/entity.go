package appointment

import (
	"time"

	"github.com/smartque/smartque-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel is unconditional and idempotent: cancelling an already-cancelled
// (or even completed) appointment succeeds silently.
func Cancel(ap *models.Appointment) {
	ap.Status = string(StatusCancelled)
}

// Reschedule replaces the slot only. Status and queue number are deliberately
// left as they were: the number was minted for the old department-day window
// and is not recomputed.
func Reschedule(ap *models.Appointment, newDateTime time.Time) {
	ap.DateTime = newDateTime
}

// ApplyStatus moves an appointment to any of the seven statuses. There is no
// transition graph; backward moves such as completed -> pending are allowed.
func ApplyStatus(ap *models.Appointment, s Status) {
	ap.Status = string(s)
}
