package roster

import "context"

type StaffRepository interface {
	Create(ctx context.Context, staff Staff) (Staff, error)
	GetByID(ctx context.Context, id string) (Staff, error)
	List(ctx context.Context) ([]Staff, error)
	ListByCinema(ctx context.Context, cinemaID CinemaID) ([]Staff, error)
	Update(ctx context.Context, req UpdateStaffRequest) (Staff, error)
	Delete(ctx context.Context, id string) error
}

type CinemaRepository interface {
	List(ctx context.Context) ([]Cinema, error)
	GetByID(ctx context.Context, id CinemaID) (Cinema, error)
	UpdateName(ctx context.Context, id CinemaID, name string) error
	// EnsureDefaults inserts the fixed cinema rows when missing.
	EnsureDefaults(ctx context.Context, defaults []Cinema) error
}
