package schedule

import (
	"time"

	"github.com/cineworks/roster-backend-go/internal/domain/roster"
	"github.com/cineworks/roster-backend-go/internal/domain/schedule"
	"github.com/cineworks/roster-backend-go/internal/pkg/dates"
)

// balance holds the per-staff running counters that feed the greedy
// assignment decisions.
type balance struct {
	open    int
	middle  int
	close   int
	weekend int
}

type balanceSheet map[string]*balance

// seedBalance recomputes the counters from already-committed assignments
// across the whole month. When generation is scoped to one week, automatic
// entries inside that week are skipped: they are about to be discarded and
// must not bias the new run.
func (s *scheduleServiceImpl) seedBalance(
	days []time.Time,
	table schedule.Table,
	target []roster.Staff,
	weekIdx *int,
) balanceSheet {
	sheet := make(balanceSheet, len(target))
	for _, st := range target {
		sheet[st.ID] = &balance{}
	}

	for idx, day := range days {
		key := dates.Key(day)
		inTargetWeek := weekIdx != nil && idx/7 == *weekIdx

		for _, st := range target {
			a, ok := table.Get(key, st.ID)
			if !ok || (inTargetWeek && !a.Manual) {
				continue
			}

			b := sheet[st.ID]
			switch a.Kind.Role {
			case schedule.RoleOpen:
				b.open++
			case schedule.RoleMiddle:
				b.middle++
			case schedule.RoleClose:
				b.close++
			}
			if a.Kind.IsWork() && s.holidays.IsWeekendOrHoliday(day) {
				b.weekend++
			}
		}
	}
	return sheet
}
