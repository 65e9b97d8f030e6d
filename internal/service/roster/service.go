package roster

import (
	"context"
	"fmt"

	"github.com/cineworks/roster-backend-go/internal/domain/leave"
	"github.com/cineworks/roster-backend-go/internal/domain/roster"
	"github.com/cineworks/roster-backend-go/internal/domain/schedule"
	"github.com/cineworks/roster-backend-go/internal/pkg/database"
	"github.com/cineworks/roster-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type RosterServiceImpl struct {
	db *database.DB
	roster.StaffRepository
	roster.CinemaRepository
	leaveRecords  leave.LeaveRecordRepository
	allowances    leave.AllowanceRepository
	scheduleStore schedule.TableStore
}

func NewRosterService(
	db *database.DB,
	staffRepository roster.StaffRepository,
	cinemaRepository roster.CinemaRepository,
	leaveRecordRepository leave.LeaveRecordRepository,
	allowanceRepository leave.AllowanceRepository,
	scheduleStore schedule.TableStore,
) roster.Service {
	return &RosterServiceImpl{
		db:               db,
		StaffRepository:  staffRepository,
		CinemaRepository: cinemaRepository,
		leaveRecords:     leaveRecordRepository,
		allowances:       allowanceRepository,
		scheduleStore:    scheduleStore,
	}
}

// CreateStaff implements roster.Service.
func (r *RosterServiceImpl) CreateStaff(ctx context.Context, req roster.CreateStaffRequest) (roster.Staff, error) {
	if err := req.Validate(); err != nil {
		return roster.Staff{}, err
	}

	created, err := r.StaffRepository.Create(ctx, roster.Staff{
		Name:     req.Name,
		Cinema:   roster.CinemaID(req.Cinema),
		Position: req.Position,
	})
	if err != nil {
		return roster.Staff{}, err
	}

	return created, nil
}

// GetStaff implements roster.Service.
func (r *RosterServiceImpl) GetStaff(ctx context.Context, id string) (roster.Staff, error) {
	return r.StaffRepository.GetByID(ctx, id)
}

// ListStaff implements roster.Service.
func (r *RosterServiceImpl) ListStaff(ctx context.Context) ([]roster.Staff, error) {
	return r.StaffRepository.List(ctx)
}

// UpdateStaff implements roster.Service.
func (r *RosterServiceImpl) UpdateStaff(ctx context.Context, req roster.UpdateStaffRequest) (roster.Staff, error) {
	if err := req.Validate(); err != nil {
		return roster.Staff{}, err
	}
	return r.StaffRepository.Update(ctx, req)
}

// DeleteStaff implements roster.Service. The staff row and the member's leave
// data go in one transaction; the member's schedule cells are scrubbed from
// the session table afterwards so stale assignments never resurface.
func (r *RosterServiceImpl) DeleteStaff(ctx context.Context, id string) error {
	if _, err := r.StaffRepository.GetByID(ctx, id); err != nil {
		return err
	}

	err := postgresql.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := r.leaveRecords.DeleteByStaff(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete leave records: %w", err)
		}
		if err := r.allowances.DeleteByStaff(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete leave allowances: %w", err)
		}
		if err := r.StaffRepository.Delete(txCtx, id); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.scrubAssignments(id)
	return nil
}

func (r *RosterServiceImpl) scrubAssignments(staffID string) {
	base := r.scheduleStore.Load()

	w := schedule.NewTableWriter(base)
	for dateKey, entries := range base {
		if _, ok := entries[staffID]; ok {
			w.Delete(dateKey, staffID)
		}
	}
	r.scheduleStore.Replace(w.Table())
}

// SeedDefaults implements roster.Service. Cinema rows are upserted on every
// boot; the default roster is inserted only when the staff table is empty, so
// a trimmed-down roster never comes back on restart.
func (r *RosterServiceImpl) SeedDefaults(ctx context.Context, cinemas []roster.Cinema, staff []roster.Staff) error {
	if err := r.CinemaRepository.EnsureDefaults(ctx, cinemas); err != nil {
		return fmt.Errorf("failed to seed cinemas: %w", err)
	}

	existing, err := r.StaffRepository.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list staff: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, st := range staff {
		if _, err := r.StaffRepository.Create(ctx, st); err != nil {
			return fmt.Errorf("failed to seed staff: %w", err)
		}
	}
	return nil
}

// ListCinemas implements roster.Service.
func (r *RosterServiceImpl) ListCinemas(ctx context.Context) ([]roster.Cinema, error) {
	return r.CinemaRepository.List(ctx)
}

// RenameCinema implements roster.Service.
func (r *RosterServiceImpl) RenameCinema(ctx context.Context, req roster.UpdateCinemaNameRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return r.CinemaRepository.UpdateName(ctx, roster.CinemaID(req.ID), req.Name)
}
