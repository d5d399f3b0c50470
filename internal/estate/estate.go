// Package estate owns the constructed facilities of a university and answers
// aggregate capacity, cost and bottleneck queries over them.
package estate

import (
	"sort"

	"github.com/napolitain/unisim/internal/models"
)

// MaintenanceRate is the share of a building's capacity paid in upkeep each year
const MaintenanceRate = 0.10

// Estate holds facilities in construction order. Facilities are never removed.
type Estate struct {
	facilities []models.Facility
	events     models.EventSink
	year       func() int
}

// Option configures an Estate
type Option func(*Estate)

// WithEventSink routes profit collection events to sink
func WithEventSink(sink models.EventSink) Option {
	return func(e *Estate) {
		if sink != nil {
			e.events = sink
		}
	}
}

// WithYear stamps emitted events with the year reported by fn
func WithYear(fn func() int) Option {
	return func(e *Estate) {
		if fn != nil {
			e.year = fn
		}
	}
}

// New creates an empty estate
func New(opts ...Option) *Estate {
	e := &Estate{
		events: models.Discard,
		year:   func() int { return 0 },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AddFacility constructs and stores a new facility of the requested kind
func (e *Estate) AddFacility(kind models.FacilityKind, name string) (models.Facility, error) {
	f, err := models.NewFacility(kind, name)
	if err != nil {
		return nil, err
	}
	e.facilities = append(e.facilities, f)
	return f, nil
}

// Facilities returns every facility in construction order
func (e *Estate) Facilities() []models.Facility {
	result := make([]models.Facility, len(e.facilities))
	copy(result, e.facilities)
	return result
}

// Len returns the number of facilities
func (e *Estate) Len() int {
	return len(e.facilities)
}

// Find locates a stored facility by identity, falling back to kind and name
func (e *Estate) Find(target models.Facility) (models.Facility, bool) {
	if target == nil {
		return nil, false
	}
	for _, f := range e.facilities {
		if f == target {
			return f, true
		}
	}
	for _, f := range e.facilities {
		if f.Kind() == target.Kind() && f.Name() == target.Name() {
			return f, true
		}
	}
	return nil, false
}

// Buildings returns every capacity building in construction order
func (e *Estate) Buildings() []*models.Building {
	var result []*models.Building
	for _, f := range e.facilities {
		if b, ok := f.(*models.Building); ok {
			result = append(result, b)
		}
	}
	return result
}

// Recreationals returns every recreational facility in construction order
func (e *Estate) Recreationals() []*models.Recreational {
	var result []*models.Recreational
	for _, f := range e.facilities {
		if r, ok := f.(*models.Recreational); ok {
			result = append(result, r)
		}
	}
	return result
}

// UpgradableBuildings returns buildings below their max level
func (e *Estate) UpgradableBuildings() []*models.Building {
	var result []*models.Building
	for _, b := range e.Buildings() {
		if b.IsUpgradable() {
			result = append(result, b)
		}
	}
	return result
}

// UpgradableRecreational returns recreational facilities below their max level
func (e *Estate) UpgradableRecreational() []*models.Recreational {
	var result []*models.Recreational
	for _, r := range e.Recreationals() {
		if r.IsUpgradable() {
			result = append(result, r)
		}
	}
	return result
}

// MaintenanceCost returns the yearly upkeep: 10% of every building's capacity
func (e *Estate) MaintenanceCost() float64 {
	var total float64
	for _, b := range e.Buildings() {
		total += float64(b.Capacity()) * MaintenanceRate
	}
	return total
}

// CategoryTotals holds the summed capacity of each building category
type CategoryTotals struct {
	Hall    int
	Theatre int
	Lab     int
}

// Get returns the total for a building kind
func (c CategoryTotals) Get(kind models.FacilityKind) int {
	switch kind {
	case models.Hall:
		return c.Hall
	case models.Theatre:
		return c.Theatre
	case models.Lab:
		return c.Lab
	}
	return 0
}

// Min returns the smallest category total
func (c CategoryTotals) Min() int {
	return min(c.Hall, c.Theatre, c.Lab)
}

// CategoryTotals sums building capacity per category
func (e *Estate) CategoryTotals() CategoryTotals {
	var totals CategoryTotals
	for _, b := range e.Buildings() {
		switch b.Kind() {
		case models.Hall:
			totals.Hall += b.Capacity()
		case models.Theatre:
			totals.Theatre += b.Capacity()
		case models.Lab:
			totals.Lab += b.Capacity()
		}
	}
	return totals
}

// NumberOfStudents returns the effective population, capped by the smallest category
func (e *Estate) NumberOfStudents() int {
	return e.CategoryTotals().Min()
}

// BottleneckRanking orders the building categories by total capacity, largest
// first. The last entry is the bottleneck. Equal totals keep the priority
// Hall, Theatre, Lab.
func (e *Estate) BottleneckRanking() []models.FacilityKind {
	totals := e.CategoryTotals()
	ranking := models.AllBuildingKinds()
	sort.SliceStable(ranking, func(i, j int) bool {
		return totals.Get(ranking[i]) > totals.Get(ranking[j])
	})
	return ranking
}

// RankOf returns the 0-based position of kind in ranking, or -1 if absent
func RankOf(ranking []models.FacilityKind, kind models.FacilityKind) int {
	for i, k := range ranking {
		if k == kind {
			return i
		}
	}
	return -1
}

// UnbuiltRecreationalKinds returns the recreational kinds with no facility yet
func (e *Estate) UnbuiltRecreationalKinds() []models.FacilityKind {
	built := make(map[models.FacilityKind]bool)
	for _, f := range e.facilities {
		built[f.Kind()] = true
	}
	var result []models.FacilityKind
	for _, k := range models.AllRecreationalKinds() {
		if !built[k] {
			result = append(result, k)
		}
	}
	return result
}

// CollectProfits returns the yearly profit of every recreational facility,
// each scaled by the current student population, emitting one event per facility
func (e *Estate) CollectProfits() int {
	students := e.NumberOfStudents()
	total := 0
	for _, r := range e.Recreationals() {
		amount := r.Profit() * students
		total += amount
		e.events.Emit(models.Event{
			Year:     e.year(),
			Kind:     models.EventCollectedProfit,
			Subject:  r.Name(),
			Facility: r.Kind(),
			Amount:   float64(amount),
		})
	}
	return total
}
