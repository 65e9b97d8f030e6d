package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/cineworks/roster-backend-go/internal/domain/roster"
	"github.com/cineworks/roster-backend-go/internal/domain/schedule"
	"github.com/cineworks/roster-backend-go/internal/pkg/dates"
)

// ClearAutomatic implements schedule.Service. It removes every
// engine-generated assignment in the month, for both cinemas, and keeps all
// manual pins.
func (s *scheduleServiceImpl) ClearAutomatic(_ context.Context, req schedule.ClearMonthRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	s.clearMonth(req.MonthTime(), false)
	return nil
}

// ClearManual implements schedule.Service. It removes every manual pin in
// the month, for both cinemas, and keeps engine-generated assignments.
func (s *scheduleServiceImpl) ClearManual(_ context.Context, req schedule.ClearMonthRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	s.clearMonth(req.MonthTime(), true)
	return nil
}

// ClearWeekAutomatic implements schedule.Service.
func (s *scheduleServiceImpl) ClearWeekAutomatic(ctx context.Context, req schedule.ClearWeekRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.clearWeek(ctx, req, false)
}

// ClearWeekManual implements schedule.Service.
func (s *scheduleServiceImpl) ClearWeekManual(ctx context.Context, req schedule.ClearWeekRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.clearWeek(ctx, req, true)
}

func (s *scheduleServiceImpl) clearMonth(month time.Time, manual bool) {
	base := s.store.Load()
	w := schedule.NewTableWriter(base)

	for _, day := range dates.MonthRange(month) {
		key := dates.Key(day)
		for staffID, a := range base[key] {
			if a.Manual == manual {
				w.Delete(key, staffID)
			}
		}
	}

	s.store.Replace(w.Table())
}

// clearWeek removes one week's assignments matching the manual filter, but
// only for staff whose home cinema is the target: the other cinema's data in
// the same week stays untouched. Entries for unknown staff ids are kept.
func (s *scheduleServiceImpl) clearWeek(ctx context.Context, req schedule.ClearWeekRequest, manual bool) error {
	all, err := s.staffRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}
	homes := make(map[string]roster.CinemaID, len(all))
	for _, st := range all {
		homes[st.ID] = st.Cinema
	}

	days := dates.MonthRange(req.MonthTime())
	start := req.Week * 7
	end := start + 7
	if end > len(days) {
		end = len(days)
	}

	base := s.store.Load()
	w := schedule.NewTableWriter(base)
	cinemaID := roster.CinemaID(req.Cinema)

	for _, day := range days[start:end] {
		key := dates.Key(day)
		for staffID, a := range base[key] {
			if a.Manual == manual && homes[staffID] == cinemaID {
				w.Delete(key, staffID)
			}
		}
	}

	s.store.Replace(w.Table())
	return nil
}
