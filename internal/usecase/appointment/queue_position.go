package appointment

import (
	"context"

	domain "github.com/smartque/smartque-api/internal/domain/appointment"
	"github.com/smartque/smartque-api/internal/models"
)

type QueuePosition struct {
	repo domain.Repository
}

func NewQueuePosition(repo domain.Repository) *QueuePosition {
	return &QueuePosition{repo: repo}
}

// Execute counts the same-department upcoming appointments ordered at or
// before the target. The target's own row is counted only while its status
// is upcoming; a pending or completed target can therefore see a position
// that excludes itself.
func (uc *QueuePosition) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, int64, error) {

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, 0, err
	}

	position, err := uc.repo.CountQueueAhead(ctx, ap)
	if err != nil {
		return nil, 0, err
	}

	return ap, position, nil
}
