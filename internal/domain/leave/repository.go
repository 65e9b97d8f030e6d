package leave

import "context"

type LeaveRecordRepository interface {
	Create(ctx context.Context, record LeaveRecord) (LeaveRecord, error)
	GetByID(ctx context.Context, id string) (LeaveRecord, error)
	ListByYear(ctx context.Context, year int) ([]LeaveRecord, error)
	ListByStaff(ctx context.Context, staffID string, year int) ([]LeaveRecord, error)
	Delete(ctx context.Context, id string) error
	DeleteByStaff(ctx context.Context, staffID string) error
}

type AllowanceRepository interface {
	Upsert(ctx context.Context, allowance AnnualAllowance) error
	Get(ctx context.Context, staffID string, year int) (AnnualAllowance, error)
	DeleteByStaff(ctx context.Context, staffID string) error
}
