package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cineworks/roster-backend-go/internal/domain/roster"
	"github.com/cineworks/roster-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type cinemaRepositoryImpl struct {
	db *database.DB
}

func NewCinemaRepository(db *database.DB) roster.CinemaRepository {
	return &cinemaRepositoryImpl{db: db}
}

// List implements roster.CinemaRepository.
func (r *cinemaRepositoryImpl) List(ctx context.Context) ([]roster.Cinema, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, color_tag
		FROM cinemas
		ORDER BY id ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cinemas: %w", err)
	}
	defer rows.Close()

	var cinemas []roster.Cinema
	for rows.Next() {
		var c roster.Cinema
		if err := rows.Scan(&c.ID, &c.Name, &c.ColorTag); err != nil {
			return nil, fmt.Errorf("failed to scan cinema: %w", err)
		}
		cinemas = append(cinemas, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return cinemas, nil
}

// GetByID implements roster.CinemaRepository.
func (r *cinemaRepositoryImpl) GetByID(ctx context.Context, id roster.CinemaID) (roster.Cinema, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, color_tag
		FROM cinemas
		WHERE id = $1
	`

	var result roster.Cinema
	err := q.QueryRow(ctx, query, string(id)).Scan(&result.ID, &result.Name, &result.ColorTag)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return roster.Cinema{}, roster.ErrCinemaNotFound
		}
		return roster.Cinema{}, fmt.Errorf("failed to get cinema: %w", err)
	}

	return result, nil
}

// UpdateName implements roster.CinemaRepository.
func (r *cinemaRepositoryImpl) UpdateName(ctx context.Context, id roster.CinemaID, name string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE cinemas SET name = $1 WHERE id = $2`

	commandTag, err := q.Exec(ctx, query, name, string(id))
	if err != nil {
		return fmt.Errorf("failed to update cinema name: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return roster.ErrCinemaNotFound
	}

	return nil
}

// EnsureDefaults implements roster.CinemaRepository.
func (r *cinemaRepositoryImpl) EnsureDefaults(ctx context.Context, defaults []roster.Cinema) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO cinemas (id, name, color_tag)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO NOTHING
	`

	for _, c := range defaults {
		if _, err := q.Exec(ctx, query, string(c.ID), c.Name, c.ColorTag); err != nil {
			return fmt.Errorf("failed to seed cinema %s: %w", c.ID, err)
		}
	}

	return nil
}
