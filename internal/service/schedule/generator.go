package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/cineworks/roster-backend-go/internal/domain/roster"
	"github.com/cineworks/roster-backend-go/internal/domain/schedule"
	"github.com/cineworks/roster-backend-go/internal/pkg/dates"
)

// Generate implements schedule.Service. It recomputes every non-manual
// assignment for the target cinema's staff within scope (the whole month, or
// one week when req.Week is set) and swaps the updated table in atomically.
// Days outside the scope are read for context but never mutated. Manual
// records pass through untouched.
func (s *scheduleServiceImpl) Generate(ctx context.Context, req schedule.GenerateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	cinemaID := roster.CinemaID(req.Cinema)

	all, err := s.staffRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}
	target, others := splitByCinema(all, cinemaID)
	if len(target) < 2 {
		return schedule.ErrInsufficientStaff
	}

	days := dates.MonthRange(req.MonthTime())
	base := s.store.Load()
	w := schedule.NewTableWriter(base)
	sheet := s.seedBalance(days, base, target, req.Week)

	// Weeks run in chronological order: a day's close-then-open avoidance
	// depends on the previous day's already-decided assignment.
	for wi, week := range dates.Weeks(days) {
		if req.Week != nil && *req.Week != wi {
			continue
		}
		s.generateWeek(w, week, target, others, cinemaID, sheet)
	}

	s.store.Replace(w.Table())
	return nil
}

func (s *scheduleServiceImpl) generateWeek(
	w *schedule.TableWriter,
	week []time.Time,
	target, others []roster.Staff,
	cinemaID roster.CinemaID,
	sheet balanceSheet,
) {
	minReqs := make([]int, len(week))
	for i, day := range week {
		minReqs[i] = s.dailyMinimum(w, day, target, others, cinemaID)
	}

	offs := s.planDayOffs(w, week, target, minReqs)

	for li, day := range week {
		s.assignDay(w, day, li, target, others, cinemaID, offs, sheet)
	}
}
