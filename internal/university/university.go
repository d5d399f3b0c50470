// Package university orchestrates one simulated year: capital allocation,
// revenue, hiring, instruction, costs and attrition.
package university

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/napolitain/unisim/internal/estate"
	"github.com/napolitain/unisim/internal/hr"
	"github.com/napolitain/unisim/internal/models"
	"github.com/napolitain/unisim/internal/rng"
)

var (
	// ErrFacilityNotFound is returned when an upgrade targets a facility outside the estate
	ErrFacilityNotFound = errors.New("facility not found in university")
	// ErrAlreadyMaxLevel is returned when an upgrade targets a facility at its max level
	ErrAlreadyMaxLevel = errors.New("facility is already at maximum level")
)

// Capital allocation constants
const (
	// TuitionPerStudent is collected from every student each year
	TuitionPerStudent = 10

	// RecreationalCostsModifier is the margin over total costs recreational spending must keep
	RecreationalCostsModifier = 1.15

	// BuildingCostsModifier scales total costs into the building budget limit
	BuildingCostsModifier = 2.0

	// BudgetLimitReserve is added to the scaled costs to form the building budget limit
	BudgetLimitReserve = 450

	// NewBuildingAllowance loosens the budget limit for new construction
	NewBuildingAllowance = 300
)

// University is the top-level aggregate: budget, reputation, estate and staff
type University struct {
	budget     float64
	reputation int
	year       int
	counter    int // building name suffix

	estate *estate.Estate
	hr     *hr.HumanResource

	rng    rng.Source
	events models.EventSink
	logger *slog.Logger
}

// Option configures a University
type Option func(*University)

// WithRand sets the random source shared by salaries, attrition and names
func WithRand(src rng.Source) Option {
	return func(u *University) {
		if src != nil {
			u.rng = src
		}
	}
}

// WithEventSink routes every state-change event to sink
func WithEventSink(sink models.EventSink) Option {
	return func(u *University) {
		if sink != nil {
			u.events = sink
		}
	}
}

// WithLogger sets the diagnostics logger
func WithLogger(logger *slog.Logger) Option {
	return func(u *University) {
		if logger != nil {
			u.logger = logger
		}
	}
}

// New creates a university with the given starting funding
func New(funding float64, opts ...Option) *University {
	u := &University{
		budget:  funding,
		counter: 1,
		events:  models.Discard,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.rng == nil {
		u.rng = rng.New(0)
	}

	yearFn := func() int { return u.year }
	u.estate = estate.New(estate.WithEventSink(u.events), estate.WithYear(yearFn))
	u.hr = hr.New(u.rng, hr.WithEventSink(u.events), hr.WithYear(yearFn), hr.WithLogger(u.logger))
	return u
}

// Budget returns the current budget; it may be negative
func (u *University) Budget() float64 { return u.budget }

// Reputation returns the current reputation, never negative
func (u *University) Reputation() int { return u.reputation }

// Year returns the number of years simulated so far
func (u *University) Year() int { return u.year }

// Estate exposes the facility aggregate
func (u *University) Estate() *estate.Estate { return u.estate }

// HumanResource exposes the staff roster
func (u *University) HumanResource() *hr.HumanResource { return u.hr }

// NumberOfStudents returns the bottlenecked student population
func (u *University) NumberOfStudents() int {
	return u.estate.NumberOfStudents()
}

// TotalCosts returns maintenance plus salaries
func (u *University) TotalCosts() float64 {
	return u.estate.MaintenanceCost() + u.hr.SalaryTotal()
}

// Summary returns the state reported to the driver
func (u *University) Summary() models.YearSummary {
	return models.YearSummary{
		Year:       u.year,
		Budget:     u.budget,
		Reputation: u.reputation,
		Students:   u.NumberOfStudents(),
		Staff:      u.hr.Len(),
	}
}

func (u *University) emit(kind models.EventKind, subject string, facility models.FacilityKind, amount float64) {
	u.events.Emit(models.Event{
		Year:     u.year,
		Kind:     kind,
		Subject:  subject,
		Facility: facility,
		Amount:   amount,
	})
}

// Build constructs a facility, paying its build cost for +100 reputation.
// An unknown kind fails without side effects.
func (u *University) Build(kind models.FacilityKind, name string) (models.Facility, error) {
	f, err := u.estate.AddFacility(kind, name)
	if err != nil {
		return nil, err
	}
	u.budget -= float64(f.BuildCost())
	u.reputation += BuildReputation
	u.emit(models.EventBuilt, f.Name(), f.Kind(), float64(f.BuildCost()))
	return f, nil
}

// Upgrade raises a facility of the estate by one level, paying its upgrade
// cost for +50 reputation
func (u *University) Upgrade(target models.Facility) error {
	f, ok := u.estate.Find(target)
	if !ok {
		name := "<nil>"
		if target != nil {
			name = target.Name()
		}
		return fmt.Errorf("upgrade %s: %w", name, ErrFacilityNotFound)
	}
	if !f.IsUpgradable() {
		return fmt.Errorf("upgrade %s %s: %w", f.Kind(), f.Name(), ErrAlreadyMaxLevel)
	}
	cost := f.UpgradeCost()
	u.budget -= float64(cost)
	f.IncreaseLevel()
	u.reputation += UpgradeReputation
	u.emit(models.EventUpgraded, f.Name(), f.Kind(), float64(cost))
	return nil
}

// skip records a failed candidate decision and carries on
func (u *University) skip(err error, subject string, kind models.FacilityKind) {
	u.logger.Warn("skipping candidate", "year", u.year, "facility", subject, "kind", kind, "error", err)
	u.emit(models.EventSkipped, subject, kind, 0)
}

// BuildAndUpgrade runs the yearly capital allocation: bootstrap on an empty
// campus, recreational spending first, then scored building upgrades and
// construction admitted against the budget limit.
func (u *University) BuildAndUpgrade() {
	if u.NumberOfStudents() == 0 {
		u.bootstrap()
		return
	}

	u.spendOnRecreational()

	candidates := ScoreCandidates(u.estate.UpgradableBuildings(), u.estate.BottleneckRanking())

	budgetLimit := u.TotalCosts()*BuildingCostsModifier + BudgetLimitReserve
	if u.budget <= budgetLimit {
		u.logger.Debug("budget within limit, no building this year", "budget", u.budget, "limit", budgetLimit)
		return
	}

	for _, c := range candidates {
		if c.IsUpgrade() {
			if u.budget-float64(c.Building.UpgradeCost()) < budgetLimit {
				continue
			}
			if err := u.Upgrade(c.Building); err != nil {
				u.skip(err, c.Building.Name(), c.Kind)
			}
			continue
		}

		cost, _ := models.BuildCostOf(c.Kind)
		if u.budget-float64(cost) < budgetLimit-NewBuildingAllowance {
			continue
		}
		if _, err := u.Build(c.Kind, u.nextBuildingName(c.Kind)); err != nil {
			u.skip(err, string(c.Kind), c.Kind)
		}
	}
}

// bootstrap builds one Hall, Lab and Theatre
func (u *University) bootstrap() {
	for _, kind := range []models.FacilityKind{models.Hall, models.Lab, models.Theatre} {
		if _, err := u.Build(kind, u.nextBuildingName(kind)); err != nil {
			u.skip(err, string(kind), kind)
		}
	}
}

// spendOnRecreational builds missing recreational facilities, then upgrades
// the existing ones, while the budget keeps a RecreationalCostsModifier margin
func (u *University) spendOnRecreational() {
	for _, kind := range u.estate.UnbuiltRecreationalKinds() {
		cost, _ := models.BuildCostOf(kind)
		if u.budget < u.TotalCosts()+float64(cost)*RecreationalCostsModifier {
			continue
		}
		if _, err := u.Build(kind, u.randomName(kind)); err != nil {
			u.skip(err, string(kind), kind)
		}
	}

	for _, r := range u.estate.UpgradableRecreational() {
		if u.budget-float64(r.UpgradeCost()) < u.TotalCosts()*RecreationalCostsModifier {
			continue
		}
		if err := u.Upgrade(r); err != nil {
			u.skip(err, r.Name(), r.Kind())
		}
	}
}
