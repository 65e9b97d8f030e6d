package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/cineworks/roster-backend-go/internal/domain/roster"
	"github.com/cineworks/roster-backend-go/internal/domain/schedule"
	"github.com/cineworks/roster-backend-go/internal/pkg/dates"
)

// Config tunes the assignment engine. Zero values fall back to the product
// defaults: dual-duty inflow credited to OUTLET, two rest days per week, and
// deterministic tie-breaking.
type Config struct {
	SupportedCinema roster.CinemaID
	RestQuota       int
	TieBreaker      TieBreaker
}

type scheduleServiceImpl struct {
	store     schedule.TableStore
	staffRepo roster.StaffRepository
	catalog   *schedule.Catalog
	holidays  dates.HolidayCalendar
	supported roster.CinemaID
	restQuota int
	tiebreak  TieBreaker
}

func NewScheduleService(
	store schedule.TableStore,
	staffRepo roster.StaffRepository,
	catalog *schedule.Catalog,
	holidays dates.HolidayCalendar,
	cfg Config,
) schedule.Service {
	if cfg.SupportedCinema == "" {
		cfg.SupportedCinema = roster.CinemaOutlet
	}
	if cfg.RestQuota <= 0 {
		cfg.RestQuota = 2
	}
	if cfg.TieBreaker == nil {
		cfg.TieBreaker = StableOrder()
	}

	return &scheduleServiceImpl{
		store:     store,
		staffRepo: staffRepo,
		catalog:   catalog,
		holidays:  holidays,
		supported: cfg.SupportedCinema,
		restQuota: cfg.RestQuota,
		tiebreak:  cfg.TieBreaker,
	}
}

// MonthTable implements schedule.Service.
func (s *scheduleServiceImpl) MonthTable(_ context.Context, month time.Time) schedule.Table {
	table := s.store.Load()

	view := schedule.Table{}
	for _, day := range dates.MonthRange(month) {
		key := dates.Key(day)
		if entries, ok := table[key]; ok {
			view[key] = entries
		}
	}
	return view
}

// SaveManual implements schedule.Service. It overwrites any existing record
// for the (date, staff) pair with a manual pin.
func (s *scheduleServiceImpl) SaveManual(ctx context.Context, req schedule.ManualAssignRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	kind := schedule.ParseShiftKind(req.Kind)
	if kind.IsCustom() {
		if _, ok := s.catalog.Get(kind.CustomID); !ok {
			return schedule.ErrUnknownShiftKind
		}
	}

	if _, err := s.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		return fmt.Errorf("failed to resolve staff member: %w", err)
	}

	w := schedule.NewTableWriter(s.store.Load())
	w.Put(req.Date, req.StaffID, schedule.Assignment{Kind: kind, Manual: true})
	s.store.Replace(w.Table())
	return nil
}

// DeleteManual implements schedule.Service. Deleting a missing record is a
// no-op, not an error.
func (s *scheduleServiceImpl) DeleteManual(_ context.Context, req schedule.ManualDeleteRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	base := s.store.Load()
	if _, ok := base.Get(req.Date, req.StaffID); !ok {
		return nil
	}

	w := schedule.NewTableWriter(base)
	w.Delete(req.Date, req.StaffID)
	s.store.Replace(w.Table())
	return nil
}

// ShiftKinds implements schedule.Service.
func (s *scheduleServiceImpl) ShiftKinds(_ context.Context) []schedule.ShiftInfo {
	return s.catalog.List()
}

// AddShiftKind implements schedule.Service.
func (s *scheduleServiceImpl) AddShiftKind(_ context.Context, req schedule.AddShiftKindRequest) (schedule.ShiftInfo, error) {
	if err := req.Validate(); err != nil {
		return schedule.ShiftInfo{}, err
	}
	return s.catalog.AddCustom(req.Label), nil
}

// splitByCinema partitions the roster into the target cinema's staff and
// everyone else.
func splitByCinema(all []roster.Staff, cinemaID roster.CinemaID) (target, others []roster.Staff) {
	for _, st := range all {
		if st.Cinema == cinemaID {
			target = append(target, st)
		} else {
			others = append(others, st)
		}
	}
	return target, others
}
