package fixtures

import (
	"github.com/cineworks/roster-backend-go/internal/pkg/dates"
)

// GetDefaultHolidays returns the Korean public holiday calendar bundled with
// the application. Days listed here count as weekend work for the balance
// counters even when they fall on a weekday.
func GetDefaultHolidays() dates.HolidayCalendar {
	return dates.HolidayCalendar{
		// 2025
		"2025-01-01": "New Year's Day",
		"2025-01-28": "Seollal Holiday",
		"2025-01-29": "Seollal",
		"2025-01-30": "Seollal Holiday",
		"2025-03-01": "Independence Movement Day",
		"2025-05-05": "Children's Day",
		"2025-05-06": "Buddha's Birthday (observed)",
		"2025-06-06": "Memorial Day",
		"2025-08-15": "Liberation Day",
		"2025-10-03": "National Foundation Day",
		"2025-10-05": "Chuseok Holiday",
		"2025-10-06": "Chuseok",
		"2025-10-07": "Chuseok Holiday",
		"2025-10-08": "Chuseok Substitute",
		"2025-10-09": "Hangeul Day",
		"2025-12-25": "Christmas Day",

		// 2026
		"2026-01-01": "New Year's Day",
		"2026-02-16": "Seollal Holiday",
		"2026-02-17": "Seollal",
		"2026-02-18": "Seollal Holiday",
		"2026-03-01": "Independence Movement Day",
		"2026-03-02": "Independence Movement Day (observed)",
		"2026-05-05": "Children's Day",
		"2026-05-24": "Buddha's Birthday",
		"2026-05-25": "Buddha's Birthday (observed)",
		"2026-06-06": "Memorial Day",
		"2026-08-15": "Liberation Day",
		"2026-08-17": "Liberation Day (observed)",
		"2026-09-24": "Chuseok Holiday",
		"2026-09-25": "Chuseok",
		"2026-09-26": "Chuseok Holiday",
		"2026-10-03": "National Foundation Day",
		"2026-10-05": "National Foundation Day (observed)",
		"2026-10-09": "Hangeul Day",
		"2026-12-25": "Christmas Day",
	}
}
