package leave

import (
	"time"

	"github.com/cineworks/roster-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	StaffID   string `json:"staff_id"`
	Type      string `json:"type"`
	StartDate string `json:"start_date"` // "2025-07-14"
	EndDate   string `json:"end_date"`
	Memo      string `json:"memo"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}

	if !validator.IsInSlice(r.Type, LeaveTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of ANNUAL, HALF_DAY, SICK",
		})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must use the YYYY-MM-DD format",
		})
	}

	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must use the YYYY-MM-DD format",
		})
	}

	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateLeaveRequest) Range() (time.Time, time.Time) {
	start, _ := validator.IsValidDate(r.StartDate)
	end, _ := validator.IsValidDate(r.EndDate)
	return start, end
}

type SetAllowanceRequest struct {
	StaffID string  `json:"staff_id"`
	Year    int     `json:"year"`
	Days    float64 `json:"days"`
}

func (r *SetAllowanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if r.Days < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "days must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRecordResponse struct {
	ID        string `json:"id"`
	StaffID   string `json:"staff_id"`
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Memo      string `json:"memo,omitempty"`
}

func ToLeaveRecordResponse(r LeaveRecord) LeaveRecordResponse {
	return LeaveRecordResponse{
		ID:        r.ID,
		StaffID:   r.StaffID,
		Type:      string(r.Type),
		StartDate: r.StartDate.Format("2006-01-02"),
		EndDate:   r.EndDate.Format("2006-01-02"),
		Memo:      r.Memo,
	}
}

type BalanceResponse struct {
	StaffID   string  `json:"staff_id"`
	Year      int     `json:"year"`
	Allotted  float64 `json:"allotted"`
	Used      float64 `json:"used"`
	Remaining float64 `json:"remaining"`
}
