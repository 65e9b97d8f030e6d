package roster

import "time"

// CinemaID identifies one of the two branches sharing a roster.
type CinemaID string

const (
	CinemaBuwon  CinemaID = "BUWON"
	CinemaOutlet CinemaID = "OUTLET"
)

var CinemaIDValues = []CinemaID{CinemaBuwon, CinemaOutlet}

// Valid reports whether the id names a known cinema.
func (c CinemaID) Valid() bool {
	for _, v := range CinemaIDValues {
		if c == v {
			return true
		}
	}
	return false
}

// Other returns the counterpart cinema.
func (c CinemaID) Other() CinemaID {
	if c == CinemaBuwon {
		return CinemaOutlet
	}
	return CinemaBuwon
}

type Cinema struct {
	ID       CinemaID
	Name     string
	ColorTag string
}

type Staff struct {
	ID        string
	Name      string
	Cinema    CinemaID // home location
	Position  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
