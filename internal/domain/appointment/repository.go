package appointment

import (
	"context"
	"time"

	"github.com/smartque/smartque-api/internal/models"
)

// DepartmentCount is one row of the per-department daily breakdown.
type DepartmentCount struct {
	DepartmentName string `json:"departmentName"`
	Count          int64  `json:"count"`
}

type Repository interface {
	// -------- Lifecycle --------
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	Update(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)

	// -------- Queue computation --------
	CountUpcomingForDay(
		ctx context.Context,
		departmentName string,
		dayStart time.Time,
		dayEnd time.Time,
	) (int64, error)

	// CountQueueAhead counts same-department upcoming rows with
	// date_time <= target's and id <= target's, both predicates ANDed
	// independently. See DESIGN.md before changing.
	CountQueueAhead(
		ctx context.Context,
		target *models.Appointment,
	) (int64, error)

	// -------- Reporting --------
	CountForDay(
		ctx context.Context,
		status *Status,
		dayStart time.Time,
		dayEnd time.Time,
	) (int64, error)

	CountByDepartmentForDay(
		ctx context.Context,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]DepartmentCount, error)

	CountAll(
		ctx context.Context,
		status *Status,
	) (int64, error)

	CountUsers(
		ctx context.Context,
	) (int64, error)
}
