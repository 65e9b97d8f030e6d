package leave

import "errors"

var (
	ErrLeaveRecordNotFound = errors.New("leave record not found")
	ErrInvalidLeaveRange   = errors.New("end date must not be before start date")
	ErrInvalidLeaveType    = errors.New("invalid leave type")
)
