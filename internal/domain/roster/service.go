package roster

import "context"

type Service interface {
	// Staff
	CreateStaff(ctx context.Context, req CreateStaffRequest) (Staff, error)
	GetStaff(ctx context.Context, id string) (Staff, error)
	ListStaff(ctx context.Context) ([]Staff, error)
	UpdateStaff(ctx context.Context, req UpdateStaffRequest) (Staff, error)
	DeleteStaff(ctx context.Context, id string) error

	// Cinemas
	ListCinemas(ctx context.Context) ([]Cinema, error)
	RenameCinema(ctx context.Context, req UpdateCinemaNameRequest) error

	// Seeding
	SeedDefaults(ctx context.Context, cinemas []Cinema, staff []Staff) error
}
