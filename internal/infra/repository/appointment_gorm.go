package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/smartque/smartque-api/internal/domain/appointment"
	"github.com/smartque/smartque-api/internal/httperr"
	"github.com/smartque/smartque-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Lifecycle
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("Appointment not found")
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) ListForUser(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date_time DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Queue computation
// --------------------------------------------------

func (r *AppointmentGormRepository) CountUpcomingForDay(
	ctx context.Context,
	departmentName string,
	dayStart time.Time,
	dayEnd time.Time,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"department_name = ? AND status = ? AND date_time BETWEEN ? AND ?",
			departmentName, string(domain.StatusUpcoming), dayStart, dayEnd,
		).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountQueueAhead applies the date_time and id inequalities independently,
// not as a tuple compare. Clients depend on the resulting numbers; see
// DESIGN.md before changing.
func (r *AppointmentGormRepository) CountQueueAhead(
	ctx context.Context,
	target *models.Appointment,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"department_name = ? AND status = ? AND date_time <= ? AND id <= ?",
			target.DepartmentName,
			string(domain.StatusUpcoming),
			target.DateTime,
			target.ID,
		).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --------------------------------------------------
// Reporting
// --------------------------------------------------

func (r *AppointmentGormRepository) CountForDay(
	ctx context.Context,
	status *domain.Status,
	dayStart time.Time,
	dayEnd time.Time,
) (int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("date_time BETWEEN ? AND ?", dayStart, dayEnd)

	if status != nil {
		q = q.Where("status = ?", string(*status))
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AppointmentGormRepository) CountByDepartmentForDay(
	ctx context.Context,
	dayStart time.Time,
	dayEnd time.Time,
) ([]domain.DepartmentCount, error) {

	var rows []domain.DepartmentCount
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("department_name, COUNT(*) as count").
		Where("date_time BETWEEN ? AND ?", dayStart, dayEnd).
		Group("department_name").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AppointmentGormRepository) CountAll(
	ctx context.Context,
	status *domain.Status,
) (int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})
	if status != nil {
		q = q.Where("status = ?", string(*status))
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AppointmentGormRepository) CountUsers(
	ctx context.Context,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
