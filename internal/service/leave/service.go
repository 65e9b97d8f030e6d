package leave

import (
	"context"
	"fmt"

	"github.com/cineworks/roster-backend-go/internal/domain/leave"
	"github.com/cineworks/roster-backend-go/internal/domain/roster"
	"github.com/cineworks/roster-backend-go/internal/domain/schedule"
	"github.com/cineworks/roster-backend-go/internal/pkg/dates"
)

type LeaveServiceImpl struct {
	leave.LeaveRecordRepository
	leave.AllowanceRepository
	staffRepo roster.StaffRepository
	store     schedule.TableStore
}

func NewLeaveService(
	recordRepository leave.LeaveRecordRepository,
	allowanceRepository leave.AllowanceRepository,
	staffRepository roster.StaffRepository,
	store schedule.TableStore,
) leave.Service {
	return &LeaveServiceImpl{
		LeaveRecordRepository: recordRepository,
		AllowanceRepository:   allowanceRepository,
		staffRepo:             staffRepository,
		store:                 store,
	}
}

// Create implements leave.Service. Besides persisting the record, every day of
// the range gets a manual leave-of-absence pin in the schedule table, so the
// generator routes around the absence.
func (l *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveRecord, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRecord{}, err
	}

	if _, err := l.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		return leave.LeaveRecord{}, err
	}

	start, end := req.Range()
	record, err := l.LeaveRecordRepository.Create(ctx, leave.LeaveRecord{
		StaffID:   req.StaffID,
		Type:      leave.LeaveType(req.Type),
		StartDate: start,
		EndDate:   end,
		Memo:      req.Memo,
	})
	if err != nil {
		return leave.LeaveRecord{}, err
	}

	w := schedule.NewTableWriter(l.store.Load())
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		w.Put(dates.Key(day), record.StaffID, schedule.Assignment{Kind: schedule.Leave, Manual: true})
	}
	l.store.Replace(w.Table())

	return record, nil
}

// ListByYear implements leave.Service.
func (l *LeaveServiceImpl) ListByYear(ctx context.Context, year int) ([]leave.LeaveRecord, error) {
	return l.LeaveRecordRepository.ListByYear(ctx, year)
}

// Delete implements leave.Service. Only cells that still carry the manual
// leave pin are removed; days the planner has since been asked to overwrite
// by hand keep their current assignment.
func (l *LeaveServiceImpl) Delete(ctx context.Context, id string) error {
	record, err := l.LeaveRecordRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := l.LeaveRecordRepository.Delete(ctx, id); err != nil {
		return err
	}

	base := l.store.Load()
	w := schedule.NewTableWriter(base)
	for day := record.StartDate; !day.After(record.EndDate); day = day.AddDate(0, 0, 1) {
		key := dates.Key(day)
		if a, ok := base.Get(key, record.StaffID); ok && a.Manual && a.Kind.IsLeave() {
			w.Delete(key, record.StaffID)
		}
	}
	l.store.Replace(w.Table())

	return nil
}

// Balance implements leave.Service.
func (l *LeaveServiceImpl) Balance(ctx context.Context, staffID string, year int) (leave.BalanceResponse, error) {
	if _, err := l.staffRepo.GetByID(ctx, staffID); err != nil {
		return leave.BalanceResponse{}, err
	}

	allowance, err := l.AllowanceRepository.Get(ctx, staffID, year)
	if err != nil {
		return leave.BalanceResponse{}, fmt.Errorf("failed to get allowance: %w", err)
	}

	records, err := l.LeaveRecordRepository.ListByStaff(ctx, staffID, year)
	if err != nil {
		return leave.BalanceResponse{}, fmt.Errorf("failed to list leave records: %w", err)
	}

	var used float64
	for _, rec := range records {
		used += rec.Consumed()
	}

	return leave.BalanceResponse{
		StaffID:   staffID,
		Year:      year,
		Allotted:  allowance.Days,
		Used:      used,
		Remaining: allowance.Days - used,
	}, nil
}

// SetAllowance implements leave.Service.
func (l *LeaveServiceImpl) SetAllowance(ctx context.Context, req leave.SetAllowanceRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := l.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		return err
	}

	return l.AllowanceRepository.Upsert(ctx, leave.AnnualAllowance{
		StaffID: req.StaffID,
		Year:    req.Year,
		Days:    req.Days,
	})
}
