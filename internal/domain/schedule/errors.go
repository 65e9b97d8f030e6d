package schedule

import "errors"

var (
	ErrInsufficientStaff = errors.New("at least two staff members are required to generate a schedule")
	ErrUnknownShiftKind  = errors.New("unknown shift kind")
)
