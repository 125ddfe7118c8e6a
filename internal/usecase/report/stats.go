package report

import (
	"context"

	domain "github.com/smartque/smartque-api/internal/domain/appointment"
)

type GlobalStats struct {
	UsersCount        int64 `json:"usersCount"`
	TotalAppointments int64 `json:"totalAppointments"`
	Upcoming          int64 `json:"upcoming"`
	Completed         int64 `json:"completed"`
	Cancelled         int64 `json:"cancelled"`
}

type Stats struct {
	repo domain.Repository
}

func NewStats(repo domain.Repository) *Stats {
	return &Stats{repo: repo}
}

// Execute computes date-unscoped totals across the full store.
func (uc *Stats) Execute(ctx context.Context) (*GlobalStats, error) {
	users, err := uc.repo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	total, err := uc.repo.CountAll(ctx, nil)
	if err != nil {
		return nil, err
	}

	out := GlobalStats{
		UsersCount:        users,
		TotalAppointments: total,
	}

	for status, dst := range map[domain.Status]*int64{
		domain.StatusUpcoming:  &out.Upcoming,
		domain.StatusCompleted: &out.Completed,
		domain.StatusCancelled: &out.Cancelled,
	} {
		st := status
		n, err := uc.repo.CountAll(ctx, &st)
		if err != nil {
			return nil, err
		}
		*dst = n
	}

	return &out, nil
}
