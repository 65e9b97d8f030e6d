package leave

import "context"

type Service interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveRecord, error)
	ListByYear(ctx context.Context, year int) ([]LeaveRecord, error)
	Delete(ctx context.Context, id string) error
	Balance(ctx context.Context, staffID string, year int) (BalanceResponse, error)
	SetAllowance(ctx context.Context, req SetAllowanceRequest) error
}
