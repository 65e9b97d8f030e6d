package schedule

import (
	"context"
	"time"
)

type Service interface {
	// Generation
	Generate(ctx context.Context, req GenerateRequest) error

	// Clearing
	ClearAutomatic(ctx context.Context, req ClearMonthRequest) error
	ClearManual(ctx context.Context, req ClearMonthRequest) error
	ClearWeekAutomatic(ctx context.Context, req ClearWeekRequest) error
	ClearWeekManual(ctx context.Context, req ClearWeekRequest) error

	// Manual assignments
	SaveManual(ctx context.Context, req ManualAssignRequest) error
	DeleteManual(ctx context.Context, req ManualDeleteRequest) error

	// Read side
	MonthTable(ctx context.Context, month time.Time) Table
	Stats(ctx context.Context, month time.Time) ([]StaffStats, error)
	Shortages(ctx context.Context, month time.Time) ([]ShortageAlert, error)

	// Shift catalog
	ShiftKinds(ctx context.Context) []ShiftInfo
	AddShiftKind(ctx context.Context, req AddShiftKindRequest) (ShiftInfo, error)
}
