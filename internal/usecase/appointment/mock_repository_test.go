package appointment

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"github.com/smartque/smartque-api/internal/audit"
	domain "github.com/smartque/smartque-api/internal/domain/appointment"
	"github.com/smartque/smartque-api/internal/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	if ap, ok := args.Get(0).(*models.Appointment); ok {
		return ap, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *MockRepository) ListForUser(ctx context.Context, userID uint) ([]models.Appointment, error) {
	args := m.Called(ctx, userID)
	if aps, ok := args.Get(0).([]models.Appointment); ok {
		return aps, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) CountUpcomingForDay(
	ctx context.Context, departmentName string, dayStart, dayEnd time.Time,
) (int64, error) {
	args := m.Called(ctx, departmentName, dayStart, dayEnd)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) CountQueueAhead(ctx context.Context, target *models.Appointment) (int64, error) {
	args := m.Called(ctx, target)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) CountForDay(
	ctx context.Context, status *domain.Status, dayStart, dayEnd time.Time,
) (int64, error) {
	args := m.Called(ctx, status, dayStart, dayEnd)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) CountByDepartmentForDay(
	ctx context.Context, dayStart, dayEnd time.Time,
) ([]domain.DepartmentCount, error) {
	args := m.Called(ctx, dayStart, dayEnd)
	if rows, ok := args.Get(0).([]domain.DepartmentCount); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) CountAll(ctx context.Context, status *domain.Status) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var _ domain.Repository = (*MockRepository)(nil)

func testDispatcher() *audit.Dispatcher {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return audit.NewDispatcher(audit.New(nil), log)
}
