package university

import (
	"fmt"

	"github.com/napolitain/unisim/internal/models"
)

var (
	hallNames    = []string{"Glen Eyre", "Mayflower", "Highfield", "Wessex Lane"}
	theatreNames = []string{"Nuffield", "Turner Sims", "John Hansard"}
	labNames     = []string{"Zepler", "Mountbatten", "Eustice"}
)

// Recreational facilities are unique per kind, so their names are fixed
const (
	CafeteriaName = "Exquisiette"
	GymName       = "Jubilee"
)

// NamePool returns the candidate names for a kind
func NamePool(kind models.FacilityKind) []string {
	switch kind {
	case models.Hall:
		return hallNames
	case models.Theatre:
		return theatreNames
	case models.Lab:
		return labNames
	case models.Cafeteria:
		return []string{CafeteriaName}
	case models.Gym:
		return []string{GymName}
	}
	return nil
}

// randomName picks a name from the kind's pool
func (u *University) randomName(kind models.FacilityKind) string {
	pool := NamePool(kind)
	switch len(pool) {
	case 0:
		return string(kind)
	case 1:
		return pool[0]
	}
	return pool[u.rng.Intn(len(pool))]
}

// nextBuildingName draws a pool name and appends the unique "(Bn)" suffix
func (u *University) nextBuildingName(kind models.FacilityKind) string {
	name := fmt.Sprintf("%s (B%d)", u.randomName(kind), u.counter)
	u.counter++
	return name
}
