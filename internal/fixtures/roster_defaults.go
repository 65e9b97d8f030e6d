package fixtures

import (
	"github.com/cineworks/roster-backend-go/internal/domain/roster"
)

// ==========================================
// DEFAULT CINEMAS
// ==========================================

// GetDefaultCinemas returns the two fixed branches seeded on first boot.
func GetDefaultCinemas() []roster.Cinema {
	return []roster.Cinema{
		{
			ID:       roster.CinemaBuwon,
			Name:     "Buwon Cinema",
			ColorTag: "#3B82F6", // Blue
		},
		{
			ID:       roster.CinemaOutlet,
			Name:     "Outlet Cinema",
			ColorTag: "#F97316", // Orange
		},
	}
}

// ==========================================
// DEFAULT STAFF
// ==========================================

// GetDefaultStaff returns the starting roster for a fresh database.
func GetDefaultStaff() []roster.Staff {
	return []roster.Staff{
		{Name: "Kim Miso", Cinema: roster.CinemaBuwon, Position: "Store Manager"},
		{Name: "Lee Yeoljeong", Cinema: roster.CinemaBuwon, Position: "Manager"},
		{Name: "Park Chinjeol", Cinema: roster.CinemaBuwon, Position: "Operations Manager"},
		{Name: "Choi Seongsil", Cinema: roster.CinemaBuwon, Position: "Operations Manager"},
		{Name: "Jung Jeonghwak", Cinema: roster.CinemaOutlet, Position: "Operations Manager"},
		{Name: "Kang Cheryeok", Cinema: roster.CinemaOutlet, Position: "Operations Manager"},
		{Name: "Han Seongsil", Cinema: roster.CinemaOutlet, Position: "Operations Manager"},
	}
}
