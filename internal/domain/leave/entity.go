package leave

import "time"

type LeaveType string

const (
	LeaveTypeAnnual  LeaveType = "ANNUAL"
	LeaveTypeHalfDay LeaveType = "HALF_DAY"
	LeaveTypeSick    LeaveType = "SICK"
)

var LeaveTypeValues = []string{
	string(LeaveTypeAnnual),
	string(LeaveTypeHalfDay),
	string(LeaveTypeSick),
}

// DaysPerDay is how much of the annual allowance one calendar day of this
// leave type consumes.
func (t LeaveType) DaysPerDay() float64 {
	if t == LeaveTypeHalfDay {
		return 0.5
	}
	return 1
}

// LeaveRecord is an approved absence. Saving one pins a manual
// leave-of-absence assignment on every day of the range, so generation
// treats the absence as an immovable constraint.
type LeaveRecord struct {
	ID        string
	StaffID   string
	Type      LeaveType
	StartDate time.Time
	EndDate   time.Time
	Memo      string
	CreatedAt time.Time
}

// Days returns the calendar length of the record, inclusive of both ends.
func (r LeaveRecord) Days() int {
	return int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}

// Consumed returns how much annual allowance the record uses.
func (r LeaveRecord) Consumed() float64 {
	return float64(r.Days()) * r.Type.DaysPerDay()
}

// AnnualAllowance is the configured leave budget for one staff member and year.
type AnnualAllowance struct {
	StaffID string
	Year    int
	Days    float64
}
