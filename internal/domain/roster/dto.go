package roster

import (
	"github.com/cineworks/roster-backend-go/internal/pkg/validator"
)

type CreateStaffRequest struct {
	Name     string `json:"name"`
	Cinema   string `json:"cinema"`
	Position string `json:"position"`
}

func (r *CreateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !CinemaID(r.Cinema).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "cinema",
			Message: "cinema must be 'BUWON' or 'OUTLET'",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStaffRequest struct {
	ID       string  `json:"-"`
	Name     *string `json:"name"`
	Cinema   *string `json:"cinema"`
	Position *string `json:"position"`
}

func (r *UpdateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "staff id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Cinema != nil && !CinemaID(*r.Cinema).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "cinema",
			Message: "cinema must be 'BUWON' or 'OUTLET'",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCinemaNameRequest struct {
	ID   string `json:"-"`
	Name string `json:"name"`
}

func (r *UpdateCinemaNameRequest) Validate() error {
	var errs validator.ValidationErrors

	if !CinemaID(r.ID).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "cinema must be 'BUWON' or 'OUTLET'",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StaffResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Cinema   string `json:"cinema"`
	Position string `json:"position"`
}

func ToStaffResponse(s Staff) StaffResponse {
	return StaffResponse{
		ID:       s.ID,
		Name:     s.Name,
		Cinema:   string(s.Cinema),
		Position: s.Position,
	}
}

type CinemaResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ColorTag string `json:"color_tag"`
}

func ToCinemaResponse(c Cinema) CinemaResponse {
	return CinemaResponse{
		ID:       string(c.ID),
		Name:     c.Name,
		ColorTag: c.ColorTag,
	}
}
