package response

import (
	"errors"
	"net/http"

	"github.com/cineworks/roster-backend-go/internal/domain/auth"
	"github.com/cineworks/roster-backend-go/internal/domain/leave"
	"github.com/cineworks/roster-backend-go/internal/domain/roster"
	"github.com/cineworks/roster-backend-go/internal/domain/schedule"
	"github.com/cineworks/roster-backend-go/internal/domain/user"
	"github.com/cineworks/roster-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Roster domain errors
	case errors.Is(err, roster.ErrStaffNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, roster.ErrCinemaNotFound):
		NotFound(w, "Cinema not found")
	case errors.Is(err, roster.ErrInvalidCinema):
		BadRequest(w, err.Error(), nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrInsufficientStaff):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, schedule.ErrUnknownShiftKind):
		BadRequest(w, err.Error(), nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRecordNotFound):
		NotFound(w, "Leave record not found")
	case errors.Is(err, leave.ErrInvalidLeaveRange):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrInvalidLeaveType):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
