package appointment

import (
	"context"
	"time"

	"github.com/smartque/smartque-api/internal/audit"
	domain "github.com/smartque/smartque-api/internal/domain/appointment"
	"github.com/smartque/smartque-api/internal/httperr"
	"github.com/smartque/smartque-api/internal/models"
)

type RescheduleAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRescheduleAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute replaces the slot only. The queue number stays as minted for the
// old department-day window; status is untouched.
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	newDateTime time.Time,
	actorID uint,
) (*models.Appointment, error) {

	if newDateTime.IsZero() {
		return nil, httperr.ErrValidation("New date/time is required")
	}

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	domain.Reschedule(ap, newDateTime)

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
