package schedule

import (
	"sort"
	"time"

	"github.com/cineworks/roster-backend-go/internal/domain/roster"
	"github.com/cineworks/roster-backend-go/internal/domain/schedule"
	"github.com/cineworks/roster-backend-go/internal/pkg/dates"
)

// assignDay fills one day after the week's rest days are fixed: planned rest
// is written, open and close needs are satisfied from the available pool by
// lowest running count, and whoever remains works a middle shift. An open or
// close need with an empty pool stays unfilled; that is accepted
// understaffing, not an error.
func (s *scheduleServiceImpl) assignDay(
	w *schedule.TableWriter,
	day time.Time,
	localIdx int,
	target, others []roster.Staff,
	cinemaID roster.CinemaID,
	offs map[string]map[int]bool,
	sheet balanceSheet,
) {
	key := dates.Key(day)

	var manualOpen, manualClose bool
	var pool []roster.Staff
	for _, st := range target {
		a, ok := w.Get(key, st.ID)
		if ok && a.Manual {
			if a.Kind == schedule.Open {
				manualOpen = true
			}
			if a.Kind == schedule.Close {
				manualClose = true
			}
			continue
		}
		if offs[st.ID][localIdx] {
			w.Put(key, st.ID, schedule.Assignment{Kind: schedule.Off})
		} else {
			pool = append(pool, st)
		}
	}

	// Dual-duty pins by the other cinema's staff cover the role without
	// consuming anyone from the pool.
	if cinemaID == s.supported {
		for _, st := range others {
			a, ok := w.Get(key, st.ID)
			if !ok || !a.Manual {
				continue
			}
			if a.Kind == schedule.DualOpen {
				manualOpen = true
			}
			if a.Kind == schedule.DualClose {
				manualClose = true
			}
		}
	}

	if !manualOpen && len(pool) > 0 {
		var preferred []roster.Staff
		for _, st := range pool {
			if !s.closedPreviousDay(w, day, st.ID) {
				preferred = append(preferred, st)
			}
		}
		if len(preferred) == 0 {
			preferred = pool
		}
		sort.SliceStable(preferred, func(i, j int) bool {
			return sheet[preferred[i].ID].open < sheet[preferred[j].ID].open
		})

		picked := preferred[0]
		w.Put(key, picked.ID, schedule.Assignment{Kind: schedule.Open})
		sheet[picked.ID].open++
		pool = removeStaff(pool, picked.ID)
	}

	if !manualClose && len(pool) > 0 {
		closedPrev := make(map[string]bool, len(pool))
		for _, st := range pool {
			closedPrev[st.ID] = s.closedPreviousDay(w, day, st.ID)
		}
		// Whoever closed yesterday keeps the closing streak; counts break ties.
		sort.SliceStable(pool, func(i, j int) bool {
			ci, cj := closedPrev[pool[i].ID], closedPrev[pool[j].ID]
			if ci != cj {
				return ci
			}
			return sheet[pool[i].ID].close < sheet[pool[j].ID].close
		})

		picked := pool[0]
		w.Put(key, picked.ID, schedule.Assignment{Kind: schedule.Close})
		sheet[picked.ID].close++
		pool = removeStaff(pool, picked.ID)
	}

	for _, st := range pool {
		w.Put(key, st.ID, schedule.Assignment{Kind: schedule.Middle})
		sheet[st.ID].middle++
	}

	if s.holidays.IsWeekendOrHoliday(day) {
		for _, st := range target {
			a, ok := w.Get(key, st.ID)
			if ok && a.Kind.IsWork() && !a.Kind.Dual {
				sheet[st.ID].weekend++
			}
		}
	}
}

func removeStaff(pool []roster.Staff, id string) []roster.Staff {
	out := pool[:0]
	for _, st := range pool {
		if st.ID != id {
			out = append(out, st)
		}
	}
	return out
}
