package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	domain "github.com/smartque/smartque-api/internal/domain/appointment"
	"github.com/smartque/smartque-api/internal/httperr"
	"github.com/smartque/smartque-api/internal/models"
)

func newMockRepo(t *testing.T) (*AppointmentGormRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return NewAppointmentGormRepository(db), mock
}

func countRows(n int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "appointments"`)).
		WithArgs(uint(99), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, httperr.IsNotFound(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountUpcomingForDayUsesDayWindow(t *testing.T) {
	repo, mock := newMockRepo(t)

	day := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	dayStart, dayEnd := domain.DayWindow(day)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT count(*) FROM "appointments" WHERE department_name = $1 AND status = $2 AND date_time BETWEEN $3 AND $4`,
	)).
		WithArgs("Dermatology", "upcoming", dayStart, dayEnd).
		WillReturnRows(countRows(3))

	got, err := repo.CountUpcomingForDay(context.Background(), "Dermatology", dayStart, dayEnd)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Both inequalities are independent; no tuple compare.
func TestCountQueueAheadPredicates(t *testing.T) {
	repo, mock := newMockRepo(t)

	target := &models.Appointment{
		ID:             9,
		DepartmentName: "Dermatology",
		DateTime:       time.Date(2026, 9, 1, 10, 30, 0, 0, time.Local),
	}

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT count(*) FROM "appointments" WHERE department_name = $1 AND status = $2 AND date_time <= $3 AND id <= $4`,
	)).
		WithArgs("Dermatology", "upcoming", target.DateTime, target.ID).
		WillReturnRows(countRows(2))

	got, err := repo.CountQueueAhead(context.Background(), target)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountForDayWithAndWithoutStatus(t *testing.T) {
	repo, mock := newMockRepo(t)

	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	dayStart, dayEnd := domain.DayWindow(day)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT count(*) FROM "appointments" WHERE date_time BETWEEN $1 AND $2`,
	)).
		WithArgs(dayStart, dayEnd).
		WillReturnRows(countRows(7))

	total, err := repo.CountForDay(context.Background(), nil, dayStart, dayEnd)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)

	status := domain.StatusCompleted
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT count(*) FROM "appointments" WHERE date_time BETWEEN $1 AND $2 AND status = $3`,
	)).
		WithArgs(dayStart, dayEnd, "completed").
		WillReturnRows(countRows(2))

	completed, err := repo.CountForDay(context.Background(), &status, dayStart, dayEnd)
	require.NoError(t, err)
	assert.Equal(t, int64(2), completed)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByDepartmentForDay(t *testing.T) {
	repo, mock := newMockRepo(t)

	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	dayStart, dayEnd := domain.DayWindow(day)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT department_name, COUNT(*) as count FROM "appointments" WHERE date_time BETWEEN $1 AND $2 GROUP BY "department_name"`,
	)).
		WithArgs(dayStart, dayEnd).
		WillReturnRows(sqlmock.NewRows([]string{"department_name", "count"}).
			AddRow("Dermatology", 3).
			AddRow("Orthopedics", 1))

	rows, err := repo.CountByDepartmentForDay(context.Background(), dayStart, dayEnd)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "Dermatology", rows[0].DepartmentName)
	assert.Equal(t, int64(3), rows[0].Count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListForUserOrdersByDateDesc(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "appointments" WHERE user_id = $1 ORDER BY date_time DESC`,
	)).
		WithArgs(uint(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).
			AddRow(2, 7).
			AddRow(1, 7))

	aps, err := repo.ListForUser(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, aps, 2)
	assert.Equal(t, uint(2), aps[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
