package models

import (
	"errors"
	"fmt"
	"math"
)

// NoUpgradeCost is reported by UpgradeCost once a facility reaches its maximum level
const NoUpgradeCost = -1

// ErrUnknownFacilityKind is returned when a facility kind is not one of the supported kinds
var ErrUnknownFacilityKind = errors.New("unknown facility kind")

// Facility is the capability shared by every constructible asset
type Facility interface {
	Name() string
	Kind() FacilityKind
	Level() int
	MaxLevel() int
	BuildCost() int
	UpgradeCost() int
	IsUpgradable() bool
	IncreaseLevel()
}

// NewFacility constructs a level 1 facility of the requested kind
func NewFacility(kind FacilityKind, name string) (Facility, error) {
	if spec, ok := BuildingSpecFor(kind); ok {
		return newBuilding(spec, name), nil
	}
	if spec, ok := RecreationalSpecFor(kind); ok {
		return newRecreational(spec, name), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFacilityKind, kind)
}

// Capacity returns round(base * 2^(level-1))
func (s BuildingSpec) Capacity(level int) int {
	return int(math.Round(float64(s.BaseCapacity) * math.Pow(2, float64(level-1))))
}

// UpgradeCost returns the cost of going from level to level+1, or NoUpgradeCost at max level
func (s BuildingSpec) UpgradeCost(level int) int {
	if level >= s.MaxLevel {
		return NoUpgradeCost
	}
	return s.BaseBuildCost * (level + 1)
}

// FirstUpgradeCost returns the cost of the level 1 -> 2 upgrade
func (s RecreationalSpec) FirstUpgradeCost() int {
	if s.MaxLevel <= 1 {
		return NoUpgradeCost
	}
	return roundHalfUp(float64(s.BuildCost) * 1.5)
}

// Building contributes to student capacity
type Building struct {
	name  string
	spec  BuildingSpec
	level int
}

// NewBuilding constructs a level 1 capacity building
func NewBuilding(kind FacilityKind, name string) (*Building, error) {
	spec, ok := BuildingSpecFor(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a building", ErrUnknownFacilityKind, kind)
	}
	return newBuilding(spec, name), nil
}

func newBuilding(spec BuildingSpec, name string) *Building {
	return &Building{name: name, spec: spec, level: 1}
}

func (b *Building) Name() string       { return b.name }
func (b *Building) Kind() FacilityKind { return b.spec.Kind }
func (b *Building) Level() int         { return b.level }
func (b *Building) MaxLevel() int      { return b.spec.MaxLevel }
func (b *Building) BuildCost() int     { return b.spec.BaseBuildCost }

// Spec returns the formula table of the building's kind
func (b *Building) Spec() BuildingSpec { return b.spec }

// Capacity returns the number of students the building holds at its current level
func (b *Building) Capacity() int {
	return b.spec.Capacity(b.level)
}

// UpgradeCost returns the cost of the next level, or NoUpgradeCost at max level
func (b *Building) UpgradeCost() int {
	return b.spec.UpgradeCost(b.level)
}

// IsUpgradable reports whether the building is below its max level
func (b *Building) IsUpgradable() bool {
	return b.level < b.spec.MaxLevel
}

// IncreaseLevel raises the level by one; no-op at max level
func (b *Building) IncreaseLevel() {
	if b.level < b.spec.MaxLevel {
		b.level++
	}
}

// Recreational contributes to yearly profit, scaled by the student population
type Recreational struct {
	name        string
	spec        RecreationalSpec
	level       int
	profit      int
	upgradeCost int
}

// NewRecreational constructs a level 1 recreational facility
func NewRecreational(kind FacilityKind, name string) (*Recreational, error) {
	spec, ok := RecreationalSpecFor(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not recreational", ErrUnknownFacilityKind, kind)
	}
	return newRecreational(spec, name), nil
}

func newRecreational(spec RecreationalSpec, name string) *Recreational {
	return &Recreational{
		name:        name,
		spec:        spec,
		level:       1,
		profit:      spec.BaseProfit,
		upgradeCost: spec.FirstUpgradeCost(),
	}
}

func (r *Recreational) Name() string       { return r.name }
func (r *Recreational) Kind() FacilityKind { return r.spec.Kind }
func (r *Recreational) Level() int         { return r.level }
func (r *Recreational) MaxLevel() int      { return r.spec.MaxLevel }
func (r *Recreational) BuildCost() int     { return r.spec.BuildCost }
func (r *Recreational) Profit() int        { return r.profit }
func (r *Recreational) UpgradeCost() int   { return r.upgradeCost }

// IsUpgradable reports whether the facility is below its max level
func (r *Recreational) IsUpgradable() bool {
	return r.level < r.spec.MaxLevel
}

// IncreaseLevel raises the level by one, adds 2 profit and advances the
// geometric upgrade cost chain. No-op at max level.
func (r *Recreational) IncreaseLevel() {
	if r.level >= r.spec.MaxLevel {
		return
	}
	r.level++
	r.profit += 2
	if r.level >= r.spec.MaxLevel {
		r.upgradeCost = NoUpgradeCost
		return
	}
	r.upgradeCost = roundHalfUp(float64(r.upgradeCost) * 1.5)
}

// roundHalfUp matches the rounding used for every cost formula (x.5 rounds up)
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
