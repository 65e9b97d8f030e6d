package schedule

import (
	"sort"
	"time"

	"github.com/cineworks/roster-backend-go/internal/domain/roster"
	"github.com/cineworks/roster-backend-go/internal/domain/schedule"
	"github.com/cineworks/roster-backend-go/internal/pkg/dates"
)

// dailyMinimum computes the least number of active workers a day must keep:
// every manually pinned non-rest worker, plus one for each of the open and
// close roles not already covered by a manual pin. For the supported cinema a
// dual open/close pinned on the other cinema's staff covers the role as well.
func (s *scheduleServiceImpl) dailyMinimum(
	r schedule.Reader,
	day time.Time,
	target, others []roster.Staff,
	cinemaID roster.CinemaID,
) int {
	key := dates.Key(day)

	var manualOpen, manualClose bool
	workers := 0
	for _, st := range target {
		a, ok := r.Get(key, st.ID)
		if !ok || !a.Manual {
			continue
		}
		if a.Kind == schedule.Open {
			manualOpen = true
		}
		if a.Kind == schedule.Close {
			manualClose = true
		}
		if !a.Kind.IsRest() {
			workers++
		}
	}

	if cinemaID == s.supported {
		for _, st := range others {
			a, ok := r.Get(key, st.ID)
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

	required := workers
	if !manualOpen {
		required++
	}
	if !manualClose {
		required++
	}
	return required
}

// planDayOffs decides, per staff member, which week-local day indices become
// automatic rest days. Manual rest counts toward the quota; manually busy
// days are excluded; a day right after the member closed is preferred; and a
// day is only taken while its active-worker count stays above the minimum
// staffing requirement. An unmet quota is accepted, never forced.
func (s *scheduleServiceImpl) planDayOffs(
	w *schedule.TableWriter,
	week []time.Time,
	target []roster.Staff,
	minReqs []int,
) map[string]map[int]bool {
	active := make([]int, len(week))
	for i := range active {
		active[i] = len(target)
	}

	offs := make(map[string]map[int]bool, len(target))
	for _, st := range target {
		offs[st.ID] = make(map[int]bool)
	}

	// Manual rest days come first and shrink the day's active pool.
	for li, day := range week {
		key := dates.Key(day)
		for _, st := range target {
			if a, ok := w.Get(key, st.ID); ok && a.Manual && a.Kind.IsRest() {
				offs[st.ID][li] = true
				active[li]--
			}
		}
	}

	for _, st := range target {
		needed := s.restQuota - len(offs[st.ID])
		if needed <= 0 {
			continue
		}

		busy := make(map[int]bool)
		for li, day := range week {
			if a, ok := w.Get(dates.Key(day), st.ID); ok && a.Manual && !a.Kind.IsRest() {
				busy[li] = true
			}
		}

		var candidates []int
		for li := range week {
			if !offs[st.ID][li] && !busy[li] {
				candidates = append(candidates, li)
			}
		}

		s.tiebreak.Shuffle(candidates)
		sort.SliceStable(candidates, func(i, j int) bool {
			// A rest day right after a close avoids a close-then-open turnaround.
			ci := s.closedPreviousDay(w, week[candidates[i]], st.ID)
			cj := s.closedPreviousDay(w, week[candidates[j]], st.ID)
			return ci && !cj
		})

		for _, li := range candidates {
			if needed <= 0 {
				break
			}
			if active[li] > minReqs[li] {
				offs[st.ID][li] = true
				active[li]--
				needed--
			}
		}
	}

	return offs
}

// closedPreviousDay reports whether the staff member holds a plain close
// shift on the calendar day before day. Reads go through the writer, so
// within one run the previous week's fresh assignments are visible.
func (s *scheduleServiceImpl) closedPreviousDay(r schedule.Reader, day time.Time, staffID string) bool {
	a, ok := r.Get(dates.Key(day.AddDate(0, 0, -1)), staffID)
	return ok && a.Kind == schedule.Close
}
