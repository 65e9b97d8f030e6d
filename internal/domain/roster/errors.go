package roster

import "errors"

var (
	ErrStaffNotFound  = errors.New("staff member not found")
	ErrCinemaNotFound = errors.New("cinema not found")
	ErrInvalidCinema  = errors.New("cinema must be 'BUWON' or 'OUTLET'")
)
