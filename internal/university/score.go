package university

import (
	"math"
	"sort"

	"github.com/napolitain/unisim/internal/estate"
	"github.com/napolitain/unisim/internal/models"
)

// Building score constants
const (
	ReputationModifier = 0.325
	CapacityModifier   = 15.0
	PriceModifier      = 0.1875
	RankingModifier    = 3.25

	UpgradeReputation = 50
	BuildReputation   = 100
)

// ScoreMetric holds the components of a building score
type ScoreMetric struct {
	ReputationGain int
	Capacity       int
	Rank           int // 0-based position in the bottleneck ranking
	UpgradeCost    int
}

// Calculate returns
// (reputation*0.325 + capacity*15) * (rank+1)^3.25 / (upgradeCost*0.1875)
func (m ScoreMetric) Calculate() float64 {
	if m.UpgradeCost <= 0 {
		return 0
	}
	gain := float64(m.ReputationGain)*ReputationModifier + float64(m.Capacity)*CapacityModifier
	weight := math.Pow(float64(m.Rank+1), RankingModifier)
	return gain * weight / (float64(m.UpgradeCost) * PriceModifier)
}

// Candidate is a capital allocation option: upgrading an existing building or
// constructing a new one of Kind
type Candidate struct {
	Kind     models.FacilityKind
	Building *models.Building // nil for a new building
	Score    float64
}

// IsUpgrade reports whether the candidate upgrades an existing building
func (c Candidate) IsUpgrade() bool {
	return c.Building != nil
}

// upgradeMetric scores upgrading an existing building
func upgradeMetric(b *models.Building, ranking []models.FacilityKind) ScoreMetric {
	return ScoreMetric{
		ReputationGain: UpgradeReputation,
		Capacity:       b.Capacity(),
		Rank:           estate.RankOf(ranking, b.Kind()),
		UpgradeCost:    b.UpgradeCost(),
	}
}

// buildMetric scores constructing a new building, read from the kind's
// level 1 formulas
func buildMetric(spec models.BuildingSpec, ranking []models.FacilityKind) ScoreMetric {
	return ScoreMetric{
		ReputationGain: BuildReputation,
		Capacity:       spec.Capacity(1),
		Rank:           estate.RankOf(ranking, spec.Kind),
		UpgradeCost:    spec.UpgradeCost(1),
	}
}

// newBuildOrder is the order new-building candidates are appended in
var newBuildOrder = []models.FacilityKind{models.Hall, models.Lab, models.Theatre}

// ScoreCandidates returns every upgradable building followed by one new
// building of each kind, sorted by score (descending). Ties keep that order.
func ScoreCandidates(upgradable []*models.Building, ranking []models.FacilityKind) []Candidate {
	candidates := make([]Candidate, 0, len(upgradable)+len(newBuildOrder))
	for _, b := range upgradable {
		candidates = append(candidates, Candidate{
			Kind:     b.Kind(),
			Building: b,
			Score:    upgradeMetric(b, ranking).Calculate(),
		})
	}
	for _, kind := range newBuildOrder {
		spec, _ := models.BuildingSpecFor(kind)
		candidates = append(candidates, Candidate{
			Kind:  kind,
			Score: buildMetric(spec, ranking).Calculate(),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates
}
