package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/cineworks/roster-backend-go/internal/domain/roster"
	"github.com/cineworks/roster-backend-go/internal/domain/schedule"
	"github.com/cineworks/roster-backend-go/internal/pkg/dates"
)

// Stats implements schedule.Service. It reduces the month into per-staff
// tallies. Dual-duty shifts worked by the other cinema's staff land in a
// synthetic record attributed to the supported cinema, emitted only when at
// least one such shift exists; dual shifts by the supported cinema's own
// staff count at home.
func (s *scheduleServiceImpl) Stats(ctx context.Context, month time.Time) ([]schedule.StaffStats, error) {
	all, err := s.staffRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	table := s.store.Load()
	days := dates.MonthRange(month)

	var out []schedule.StaffStats
	for _, st := range all {
		var home, dual schedule.ShiftCounts
		hasDual := false

		for _, day := range days {
			a, ok := table.Get(dates.Key(day), st.ID)
			if !ok {
				continue
			}
			weekend := s.holidays.IsWeekendOrHoliday(day)
			kind := a.Kind

			switch {
			case kind.IsCustom():
				// Custom kinds are display-only and not tallied.
			case kind.Dual:
				counts := &home
				if st.Cinema != s.supported {
					counts = &dual
					hasDual = true
				}
				addRole(counts, kind.Role, weekend)
			case kind.IsWork():
				addRole(&home, kind.Role, weekend)
			case kind.IsRest():
				home.Off++
			case kind.IsLeave():
				home.Leave++
			}
		}

		out = append(out, schedule.StaffStats{
			StaffID:  st.ID,
			Name:     st.Name,
			Position: st.Position,
			Cinema:   st.Cinema,
			Counts:   home,
		})

		if hasDual {
			out = append(out, schedule.StaffStats{
				StaffID:  st.ID,
				Name:     st.Name,
				Position: st.Position,
				Cinema:   st.Cinema.Other(),
				Dual:     true,
				Counts:   dual,
			})
		}
	}

	return out, nil
}

func addRole(counts *schedule.ShiftCounts, role schedule.Role, weekend bool) {
	switch role {
	case schedule.RoleOpen:
		counts.Open++
	case schedule.RoleMiddle:
		counts.Middle++
	case schedule.RoleClose:
		counts.Close++
	}
	if weekend {
		counts.WeekendWork++
	}
}

// Shortages implements schedule.Service. It re-scans the table for days
// whose active-worker count fell below the minimum staffing requirement,
// which is how unfilled open/close needs surface after generation. Days with
// no assignments at all for a cinema's staff are skipped.
func (s *scheduleServiceImpl) Shortages(ctx context.Context, month time.Time) ([]schedule.ShortageAlert, error) {
	all, err := s.staffRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	table := s.store.Load()
	days := dates.MonthRange(month)

	var alerts []schedule.ShortageAlert
	for _, cinemaID := range roster.CinemaIDValues {
		target, others := splitByCinema(all, cinemaID)

		for _, day := range days {
			key := dates.Key(day)

			scheduled := false
			active := 0
			for _, st := range target {
				a, ok := table.Get(key, st.ID)
				if !ok {
					continue
				}
				scheduled = true
				if a.Kind.IsWork() && !a.Kind.Dual {
					active++
				}
			}
			if !scheduled {
				continue
			}

			if cinemaID == s.supported {
				for _, st := range others {
					if a, ok := table.Get(key, st.ID); ok && a.Kind.IsWork() && a.Kind.Dual {
						active++
					}
				}
			}

			required := s.dailyMinimum(table, day, target, others, cinemaID)
			if active < required {
				alerts = append(alerts, schedule.ShortageAlert{
					Date:     key,
					Cinema:   cinemaID,
					Active:   active,
					Required: required,
				})
			}
		}
	}

	return alerts, nil
}
