package appointment

import "github.com/smartque/smartque-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending    Status = "pending"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
	StatusUpcoming   Status = "upcoming"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

var allStatuses = []Status{
	StatusPending,
	StatusApproved,
	StatusRejected,
	StatusUpcoming,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

// ParseStatus rejects anything outside the seven-value enum.
func ParseStatus(s string) (Status, error) {
	for _, st := range allStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", httperr.ErrValidation("Invalid status")
}

func InitialStatus() Status {
	return StatusPending
}

// IsTerminal reports whether a status ends the lifecycle. Terminal is
// informational only: admin transitions are unrestricted, so a terminal
// appointment can still be moved back.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusRejected:
		return true
	}
	return false
}
