package appointment

import (
	"context"

	"github.com/smartque/smartque-api/internal/audit"
	domain "github.com/smartque/smartque-api/internal/domain/appointment"
	"github.com/smartque/smartque-api/internal/models"
)

// ReceiptSender delivers a completion receipt. Best-effort: implementations
// must never fail the status change.
type ReceiptSender interface {
	Send(ctx context.Context, ap models.Appointment)
}

type SetAppointmentStatus struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	receipts ReceiptSender // may be nil
}

func NewSetAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	receipts ReceiptSender,
) *SetAppointmentStatus {
	return &SetAppointmentStatus{
		repo:     repo,
		audit:    audit,
		receipts: receipts,
	}
}

// Execute moves an appointment to any of the seven statuses. There is no
// transition graph: backward moves like completed -> pending succeed.
func (uc *SetAppointmentStatus) Execute(
	ctx context.Context,
	appointmentID uint,
	rawStatus string,
	actorID uint,
) (*models.Appointment, error) {

	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	previous := ap.Status
	domain.ApplyStatus(ap, status)

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{
			"from": previous,
			"to":   string(status),
		},
	})

	if status == domain.StatusCompleted && ap.ConsultationFee > 0 && uc.receipts != nil {
		uc.receipts.Send(ctx, *ap)
	}

	return ap, nil
}
