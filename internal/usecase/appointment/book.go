package appointment

import (
	"context"
	"time"

	"github.com/smartque/smartque-api/internal/audit"
	domain "github.com/smartque/smartque-api/internal/domain/appointment"
	"github.com/smartque/smartque-api/internal/httperr"
	"github.com/smartque/smartque-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	UserID         uint
	DoctorName     string
	DepartmentName string
	DateTime       time.Time

	// QueueNumber comes from a prior NextQueueNumber reservation. It is
	// stored as given; duplicates from stale numbers are not rejected.
	QueueNumber string

	ConsultationFee float64
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	if in.UserID == 0 ||
		in.DoctorName == "" ||
		in.DepartmentName == "" ||
		in.DateTime.IsZero() ||
		in.QueueNumber == "" {
		return nil, httperr.ErrValidation("Missing required fields")
	}

	ap := &models.Appointment{
		UserID:          in.UserID,
		DoctorName:      in.DoctorName,
		DepartmentName:  in.DepartmentName,
		DateTime:        in.DateTime,
		QueueNumber:     in.QueueNumber,
		Status:          string(domain.InitialStatus()),
		ConsultationFee: in.ConsultationFee,
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
