package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartque/smartque-api/internal/httperr"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{
		"pending", "approved", "rejected", "upcoming",
		"in_progress", "completed", "cancelled",
	} {
		st, err := ParseStatus(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, string(st))
	}
}

func TestParseStatusRejectsUnknown(t *testing.T) {
	for _, s := range []string{"", "Pending", "done", "CANCELLED", "in-progress"} {
		_, err := ParseStatus(s)
		require.Error(t, err, s)
		assert.True(t, httperr.IsValidation(err))
	}
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())

	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusApproved.IsTerminal())
	assert.False(t, StatusUpcoming.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())
}
