package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cineworks/roster-backend-go/internal/domain/leave"
	"github.com/cineworks/roster-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRecordRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRecordRepository(db *database.DB) leave.LeaveRecordRepository {
	return &leaveRecordRepositoryImpl{db: db}
}

// Create implements leave.LeaveRecordRepository.
func (r *leaveRecordRepositoryImpl) Create(ctx context.Context, record leave.LeaveRecord) (leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_records (id, staff_id, leave_type, start_date, end_date, memo, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW())
		RETURNING id, staff_id, leave_type, start_date, end_date, memo, created_at
	`

	var result leave.LeaveRecord
	err := q.QueryRow(ctx, query,
		record.StaffID,
		string(record.Type),
		record.StartDate,
		record.EndDate,
		record.Memo,
	).Scan(
		&result.ID,
		&result.StaffID,
		&result.Type,
		&result.StartDate,
		&result.EndDate,
		&result.Memo,
		&result.CreatedAt,
	)

	if err != nil {
		return leave.LeaveRecord{}, fmt.Errorf("failed to create leave record: %w", err)
	}

	return result, nil
}

// GetByID implements leave.LeaveRecordRepository.
func (r *leaveRecordRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, leave_type, start_date, end_date, memo, created_at
		FROM leave_records
		WHERE id = $1
	`

	var result leave.LeaveRecord
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.StaffID,
		&result.Type,
		&result.StartDate,
		&result.EndDate,
		&result.Memo,
		&result.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRecord{}, leave.ErrLeaveRecordNotFound
		}
		return leave.LeaveRecord{}, fmt.Errorf("failed to get leave record: %w", err)
	}

	return result, nil
}

// ListByYear implements leave.LeaveRecordRepository.
func (r *leaveRecordRepositoryImpl) ListByYear(ctx context.Context, year int) ([]leave.LeaveRecord, error) {
	return r.list(ctx, `
		SELECT id, staff_id, leave_type, start_date, end_date, memo, created_at
		FROM leave_records
		WHERE EXTRACT(YEAR FROM start_date) = $1
		ORDER BY start_date ASC, created_at ASC
	`, year)
}

// ListByStaff implements leave.LeaveRecordRepository.
func (r *leaveRecordRepositoryImpl) ListByStaff(ctx context.Context, staffID string, year int) ([]leave.LeaveRecord, error) {
	return r.list(ctx, `
		SELECT id, staff_id, leave_type, start_date, end_date, memo, created_at
		FROM leave_records
		WHERE staff_id = $1 AND EXTRACT(YEAR FROM start_date) = $2
		ORDER BY start_date ASC, created_at ASC
	`, staffID, year)
}

func (r *leaveRecordRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave records: %w", err)
	}
	defer rows.Close()

	var records []leave.LeaveRecord
	for rows.Next() {
		var rec leave.LeaveRecord
		err := rows.Scan(
			&rec.ID,
			&rec.StaffID,
			&rec.Type,
			&rec.StartDate,
			&rec.EndDate,
			&rec.Memo,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave record: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}

// Delete implements leave.LeaveRecordRepository.
func (r *leaveRecordRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM leave_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave record: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return leave.ErrLeaveRecordNotFound
	}

	return nil
}

// DeleteByStaff implements leave.LeaveRecordRepository.
func (r *leaveRecordRepositoryImpl) DeleteByStaff(ctx context.Context, staffID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM leave_records WHERE staff_id = $1`, staffID); err != nil {
		return fmt.Errorf("failed to delete leave records for staff: %w", err)
	}

	return nil
}

type allowanceRepositoryImpl struct {
	db *database.DB
}

func NewAllowanceRepository(db *database.DB) leave.AllowanceRepository {
	return &allowanceRepositoryImpl{db: db}
}

// Upsert implements leave.AllowanceRepository.
func (r *allowanceRepositoryImpl) Upsert(ctx context.Context, allowance leave.AnnualAllowance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_allowances (staff_id, year, days)
		VALUES ($1, $2, $3)
		ON CONFLICT (staff_id, year) DO UPDATE SET days = EXCLUDED.days
	`

	if _, err := q.Exec(ctx, query, allowance.StaffID, allowance.Year, allowance.Days); err != nil {
		return fmt.Errorf("failed to upsert leave allowance: %w", err)
	}

	return nil
}

// Get implements leave.AllowanceRepository.
func (r *allowanceRepositoryImpl) Get(ctx context.Context, staffID string, year int) (leave.AnnualAllowance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT staff_id, year, days
		FROM leave_allowances
		WHERE staff_id = $1 AND year = $2
	`

	var result leave.AnnualAllowance
	err := q.QueryRow(ctx, query, staffID, year).Scan(&result.StaffID, &result.Year, &result.Days)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// No configured allowance means zero budget, not an error.
			return leave.AnnualAllowance{StaffID: staffID, Year: year, Days: 0}, nil
		}
		return leave.AnnualAllowance{}, fmt.Errorf("failed to get leave allowance: %w", err)
	}

	return result, nil
}

// DeleteByStaff implements leave.AllowanceRepository.
func (r *allowanceRepositoryImpl) DeleteByStaff(ctx context.Context, staffID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM leave_allowances WHERE staff_id = $1`, staffID); err != nil {
		return fmt.Errorf("failed to delete leave allowances for staff: %w", err)
	}

	return nil
}
