package dates

import "time"

// KeyLayout is the canonical date key format used across the schedule table.
const KeyLayout = "2006-01-02"

// MonthLayout parses month selectors like "2025-07".
const MonthLayout = "2006-01"

// Key returns the schedule-table key for a calendar day.
func Key(t time.Time) string {
	return t.Format(KeyLayout)
}

// ParseKey parses a schedule-table date key.
func ParseKey(key string) (time.Time, error) {
	return time.Parse(KeyLayout, key)
}

// MonthRange returns every calendar day of the month containing ref,
// in chronological order, gap-free.
func MonthRange(ref time.Time) []time.Time {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	days := make([]time.Time, 0, 31)
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Weeks chunks a month range into runs of seven days. Week 0 starts at the
// first day of the range; the final week may hold fewer than seven days.
func Weeks(days []time.Time) [][]time.Time {
	var weeks [][]time.Time
	for i := 0; i < len(days); i += 7 {
		end := i + 7
		if end > len(days) {
			end = len(days)
		}
		weeks = append(weeks, days[i:end])
	}
	return weeks
}

// WeekCount returns the number of week chunks in the month containing ref.
func WeekCount(ref time.Time) int {
	return (len(MonthRange(ref)) + 6) / 7
}

// HolidayCalendar maps date keys to holiday labels. Any day with a non-empty
// label, or falling on Saturday or Sunday, counts as weekend-or-holiday.
type HolidayCalendar map[string]string

// IsWeekendOrHoliday reports whether the day counts toward weekend work.
func (c HolidayCalendar) IsWeekendOrHoliday(t time.Time) bool {
	if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return true
	}
	return c[Key(t)] != ""
}

// Label returns the holiday label for a day, if any.
func (c HolidayCalendar) Label(t time.Time) string {
	return c[Key(t)]
}
