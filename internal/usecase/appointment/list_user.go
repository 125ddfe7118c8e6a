package appointment

import (
	"context"

	domain "github.com/smartque/smartque-api/internal/domain/appointment"
	"github.com/smartque/smartque-api/internal/models"
)

type ListUserAppointments struct {
	repo domain.Repository
}

func NewListUserAppointments(repo domain.Repository) *ListUserAppointments {
	return &ListUserAppointments{repo: repo}
}

func (uc *ListUserAppointments) Execute(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {
	return uc.repo.ListForUser(ctx, userID)
}
