package schedule

import (
	"time"

	"github.com/cineworks/roster-backend-go/internal/domain/roster"
	"github.com/cineworks/roster-backend-go/internal/pkg/dates"
	"github.com/cineworks/roster-backend-go/internal/pkg/validator"
)

// ========================================
// SCHEDULE DTOs
// ========================================

type GenerateRequest struct {
	Month  string `json:"month"` // "2025-07"
	Cinema string `json:"cinema"`
	Week   *int   `json:"week"` // nil = every week of the month
}

func (r *GenerateRequest) Validate() error {
	errs := validateMonth(r.Month)
	errs = append(errs, validateCinema(r.Cinema)...)

	if r.Week != nil {
		errs = append(errs, validateWeek(r.Month, *r.Week)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *GenerateRequest) MonthTime() time.Time {
	t, _ := time.Parse(dates.MonthLayout, r.Month)
	return t
}

type ClearMonthRequest struct {
	Month string `json:"month"`
}

func (r *ClearMonthRequest) Validate() error {
	if errs := validateMonth(r.Month); len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *ClearMonthRequest) MonthTime() time.Time {
	t, _ := time.Parse(dates.MonthLayout, r.Month)
	return t
}

type ClearWeekRequest struct {
	Month  string `json:"month"`
	Cinema string `json:"cinema"`
	Week   int    `json:"week"`
}

func (r *ClearWeekRequest) Validate() error {
	errs := validateMonth(r.Month)
	errs = append(errs, validateCinema(r.Cinema)...)
	errs = append(errs, validateWeek(r.Month, r.Week)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *ClearWeekRequest) MonthTime() time.Time {
	t, _ := time.Parse(dates.MonthLayout, r.Month)
	return t
}

type ManualAssignRequest struct {
	Date    string `json:"date"` // "2025-07-14"
	StaffID string `json:"staff_id"`
	Kind    string `json:"kind"`
}

func (r *ManualAssignRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must use the YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}

	if validator.IsEmpty(r.Kind) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ManualDeleteRequest struct {
	Date    string `json:"date"`
	StaffID string `json:"staff_id"`
}

func (r *ManualDeleteRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must use the YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AddShiftKindRequest struct {
	Label string `json:"label"`
}

func (r *AddShiftKindRequest) Validate() error {
	if validator.IsEmpty(r.Label) {
		return validator.ValidationErrors{{
			Field:   "label",
			Message: "label is required",
		}}
	}
	return nil
}

// ========================================
// READ-SIDE DTOs
// ========================================

type ShiftCounts struct {
	Open        int `json:"open"`
	Middle      int `json:"middle"`
	Close       int `json:"close"`
	Off         int `json:"off"`
	Leave       int `json:"leave"`
	WeekendWork int `json:"weekend_work"`
}

// StaffStats is the per-staff monthly tally. A staff member who performed at
// least one dual-duty shift gets an extra record with Dual set, attributed to
// the counterpart cinema.
type StaffStats struct {
	StaffID  string          `json:"staff_id"`
	Name     string          `json:"name"`
	Position string          `json:"position"`
	Cinema   roster.CinemaID `json:"cinema"`
	Dual     bool            `json:"dual,omitempty"`
	Counts   ShiftCounts     `json:"counts"`
}

// ShortageAlert flags a day whose active-worker count fell below the minimum
// staffing requirement, the accepted-understaffing outcome of generation.
type ShortageAlert struct {
	Date     string          `json:"date"`
	Cinema   roster.CinemaID `json:"cinema"`
	Active   int             `json:"active"`
	Required int             `json:"required"`
}

// ========================================
// helpers
// ========================================

func validateMonth(month string) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if _, err := time.Parse(dates.MonthLayout, month); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must use the YYYY-MM format",
		})
	}
	return errs
}

func validateCinema(cinema string) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if !roster.CinemaID(cinema).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "cinema",
			Message: "cinema must be 'BUWON' or 'OUTLET'",
		})
	}
	return errs
}

func validateWeek(month string, week int) validator.ValidationErrors {
	var errs validator.ValidationErrors
	ref, err := time.Parse(dates.MonthLayout, month)
	if err != nil {
		return errs // month error already reported
	}
	if week < 0 || week >= dates.WeekCount(ref) {
		errs = append(errs, validator.ValidationError{
			Field:   "week",
			Message: "week index is out of range for the month",
		})
	}
	return errs
}
