package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/smartque/smartque-api/internal/httperr"
)

func TestRescheduleAppointment(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByID", mock.Anything, uint(9)).Return(storedAppointment("upcoming"), nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	uc := NewRescheduleAppointment(repo, testDispatcher())

	newSlot := time.Date(2026, 9, 3, 14, 0, 0, 0, time.Local)
	ap, err := uc.Execute(context.Background(), 9, newSlot, 7)
	require.NoError(t, err)

	assert.True(t, ap.DateTime.Equal(newSlot))
	// The number stays as minted for the original day.
	assert.Equal(t, "4", ap.QueueNumber)
	assert.Equal(t, "upcoming", ap.Status)
}

func TestRescheduleAppointmentRequiresDateTime(t *testing.T) {
	repo := new(MockRepository)
	uc := NewRescheduleAppointment(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), 9, time.Time{}, 7)
	require.Error(t, err)
	assert.True(t, httperr.IsValidation(err))
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
