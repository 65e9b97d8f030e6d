package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cineworks/roster-backend-go/internal/domain/roster"
	"github.com/cineworks/roster-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type staffRepositoryImpl struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) roster.StaffRepository {
	return &staffRepositoryImpl{db: db}
}

// Create implements roster.StaffRepository.
func (r *staffRepositoryImpl) Create(ctx context.Context, staff roster.Staff) (roster.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO staff (id, cinema_id, name, position, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, NOW(), NOW())
		RETURNING id, cinema_id, name, position, created_at, updated_at
	`

	var result roster.Staff
	err := q.QueryRow(ctx, query, string(staff.Cinema), staff.Name, staff.Position).Scan(
		&result.ID,
		&result.Cinema,
		&result.Name,
		&result.Position,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		return roster.Staff{}, fmt.Errorf("failed to create staff member: %w", err)
	}

	return result, nil
}

// GetByID implements roster.StaffRepository.
func (r *staffRepositoryImpl) GetByID(ctx context.Context, id string) (roster.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, cinema_id, name, position, created_at, updated_at
		FROM staff
		WHERE id = $1
	`

	var result roster.Staff
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Cinema,
		&result.Name,
		&result.Position,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return roster.Staff{}, roster.ErrStaffNotFound
		}
		return roster.Staff{}, fmt.Errorf("failed to get staff member: %w", err)
	}

	return result, nil
}

// List implements roster.StaffRepository.
func (r *staffRepositoryImpl) List(ctx context.Context) ([]roster.Staff, error) {
	return r.list(ctx, `
		SELECT id, cinema_id, name, position, created_at, updated_at
		FROM staff
		ORDER BY created_at ASC
	`)
}

// ListByCinema implements roster.StaffRepository.
func (r *staffRepositoryImpl) ListByCinema(ctx context.Context, cinemaID roster.CinemaID) ([]roster.Staff, error) {
	return r.list(ctx, `
		SELECT id, cinema_id, name, position, created_at, updated_at
		FROM staff
		WHERE cinema_id = $1
		ORDER BY created_at ASC
	`, string(cinemaID))
}

func (r *staffRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]roster.Staff, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	var members []roster.Staff
	for rows.Next() {
		var st roster.Staff
		err := rows.Scan(
			&st.ID,
			&st.Cinema,
			&st.Name,
			&st.Position,
			&st.CreatedAt,
			&st.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff member: %w", err)
		}
		members = append(members, st)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

// Update implements roster.StaffRepository.
func (r *staffRepositoryImpl) Update(ctx context.Context, req roster.UpdateStaffRequest) (roster.Staff, error) {
	q := GetQuerier(ctx, r.db)

	// Build dynamic update query
	query := `UPDATE staff SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	if req.Name != nil {
		query += fmt.Sprintf(", name = $%d", argIdx)
		args = append(args, *req.Name)
		argIdx++
	}

	if req.Cinema != nil {
		query += fmt.Sprintf(", cinema_id = $%d", argIdx)
		args = append(args, *req.Cinema)
		argIdx++
	}

	if req.Position != nil {
		query += fmt.Sprintf(", position = $%d", argIdx)
		args = append(args, *req.Position)
		argIdx++
	}

	query += fmt.Sprintf(" WHERE id = $%d RETURNING id, cinema_id, name, position, created_at, updated_at", argIdx)
	args = append(args, req.ID)

	var result roster.Staff
	err := q.QueryRow(ctx, query, args...).Scan(
		&result.ID,
		&result.Cinema,
		&result.Name,
		&result.Position,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return roster.Staff{}, roster.ErrStaffNotFound
		}
		return roster.Staff{}, fmt.Errorf("failed to update staff member: %w", err)
	}

	return result, nil
}

// Delete implements roster.StaffRepository.
func (r *staffRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM staff WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete staff member: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return roster.ErrStaffNotFound
	}

	return nil
}
