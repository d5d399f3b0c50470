package models

import "strings"

// FacilityKind represents the different facility types a university can construct
type FacilityKind string

const (
	Hall      FacilityKind = "Hall"
	Lab       FacilityKind = "Lab"
	Theatre   FacilityKind = "Theatre"
	Cafeteria FacilityKind = "Cafeteria"
	Gym       FacilityKind = "Gym"
)

// AllBuildingKinds returns the capacity building kinds in deterministic evaluation order
func AllBuildingKinds() []FacilityKind {
	return []FacilityKind{Hall, Theatre, Lab}
}

// AllRecreationalKinds returns the profit-generating kinds in deterministic order
func AllRecreationalKinds() []FacilityKind {
	return []FacilityKind{Cafeteria, Gym}
}

// AllFacilityKinds returns every supported kind
func AllFacilityKinds() []FacilityKind {
	return append(AllBuildingKinds(), AllRecreationalKinds()...)
}

// IsBuilding reports whether the kind contributes to student capacity
func (k FacilityKind) IsBuilding() bool {
	switch k {
	case Hall, Theatre, Lab:
		return true
	}
	return false
}

// IsRecreational reports whether the kind contributes to yearly profit
func (k FacilityKind) IsRecreational() bool {
	switch k {
	case Cafeteria, Gym:
		return true
	}
	return false
}

// Valid reports whether the kind is one of the five supported kinds
func (k FacilityKind) Valid() bool {
	return k.IsBuilding() || k.IsRecreational()
}

// ParseFacilityKind matches a kind name case-insensitively
func ParseFacilityKind(s string) (FacilityKind, bool) {
	s = strings.TrimSpace(s)
	for _, k := range AllFacilityKinds() {
		if strings.EqualFold(string(k), s) {
			return k, true
		}
	}
	return "", false
}

// BuildingSpec holds the per-kind constants of a capacity building
type BuildingSpec struct {
	Kind          FacilityKind
	MaxLevel      int
	BaseCapacity  int
	BaseBuildCost int
}

// RecreationalSpec holds the per-kind constants of a recreational facility
type RecreationalSpec struct {
	Kind       FacilityKind
	MaxLevel   int
	BuildCost  int
	BaseProfit int
}

// BuildingSpecFor returns the formula table for a building kind
func BuildingSpecFor(kind FacilityKind) (BuildingSpec, bool) {
	switch kind {
	case Hall:
		return BuildingSpec{Kind: Hall, MaxLevel: 4, BaseCapacity: 6, BaseBuildCost: 100}, true
	case Lab:
		return BuildingSpec{Kind: Lab, MaxLevel: 5, BaseCapacity: 5, BaseBuildCost: 300}, true
	case Theatre:
		return BuildingSpec{Kind: Theatre, MaxLevel: 6, BaseCapacity: 10, BaseBuildCost: 200}, true
	}
	return BuildingSpec{}, false
}

// RecreationalSpecFor returns the formula table for a recreational kind
func RecreationalSpecFor(kind FacilityKind) (RecreationalSpec, bool) {
	switch kind {
	case Cafeteria:
		return RecreationalSpec{Kind: Cafeteria, MaxLevel: 2, BuildCost: 500, BaseProfit: 1}, true
	case Gym:
		return RecreationalSpec{Kind: Gym, MaxLevel: 2, BuildCost: 650, BaseProfit: 4}, true
	}
	return RecreationalSpec{}, false
}

// BuildCostOf returns the constant construction cost of any supported kind
func BuildCostOf(kind FacilityKind) (int, bool) {
	if spec, ok := BuildingSpecFor(kind); ok {
		return spec.BaseBuildCost, true
	}
	if spec, ok := RecreationalSpecFor(kind); ok {
		return spec.BuildCost, true
	}
	return 0, false
}
