package report

import (
	"context"
	"time"

	domain "github.com/smartque/smartque-api/internal/domain/appointment"
)

type DailyReport struct {
	Total        int64                    `json:"total"`
	Upcoming     int64                    `json:"upcoming"`
	Completed    int64                    `json:"completed"`
	Cancelled    int64                    `json:"cancelled"`
	ByDepartment []domain.DepartmentCount `json:"byDepartment"`
}

type Daily struct {
	repo domain.Repository
}

func NewDaily(repo domain.Repository) *Daily {
	return &Daily{repo: repo}
}

// Execute aggregates one day of appointments. The per-department breakdown
// is status-unscoped, so its rows sum to Total.
func (uc *Daily) Execute(ctx context.Context, day time.Time) (*DailyReport, error) {
	dayStart, dayEnd := domain.DayWindow(day)

	total, err := uc.repo.CountForDay(ctx, nil, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	var out DailyReport
	out.Total = total

	for status, dst := range map[domain.Status]*int64{
		domain.StatusUpcoming:  &out.Upcoming,
		domain.StatusCompleted: &out.Completed,
		domain.StatusCancelled: &out.Cancelled,
	} {
		st := status
		n, err := uc.repo.CountForDay(ctx, &st, dayStart, dayEnd)
		if err != nil {
			return nil, err
		}
		*dst = n
	}

	byDept, err := uc.repo.CountByDepartmentForDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	out.ByDepartment = byDept

	return &out, nil
}
