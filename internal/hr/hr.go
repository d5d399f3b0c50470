// Package hr manages the hired staff roster: greedy hiring against a coverage
// target, instruction distribution, salaries and yearly attrition.
package hr

import (
	"log/slog"
	"sort"

	"github.com/napolitain/unisim/internal/models"
	"github.com/napolitain/unisim/internal/rng"
)

const (
	// CoverageTarget is the share of the population the roster should be able to instruct
	CoverageTarget = 0.90

	// CostsModifier is the margin over total costs a hire must leave in the budget
	CostsModifier = 1.10

	salaryBase = 9.5
)

// HumanResource owns the hired staff and their salaries, fixed at hire time.
// Iteration follows hiring order.
type HumanResource struct {
	roster []*member
	rng    rng.Source
	events models.EventSink
	year   func() int
	logger *slog.Logger
}

type member struct {
	staff  *models.Staff
	salary float64
}

// Option configures a HumanResource
type Option func(*HumanResource)

// WithEventSink routes hire, instruction and attrition events to sink
func WithEventSink(sink models.EventSink) Option {
	return func(h *HumanResource) {
		if sink != nil {
			h.events = sink
		}
	}
}

// WithYear stamps emitted events with the year reported by fn
func WithYear(fn func() int) Option {
	return func(h *HumanResource) {
		if fn != nil {
			h.year = fn
		}
	}
}

// WithLogger sets the diagnostics logger
func WithLogger(logger *slog.Logger) Option {
	return func(h *HumanResource) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// New creates an empty roster drawing salaries and attrition from src
func New(src rng.Source, opts ...Option) *HumanResource {
	h := &HumanResource{
		rng:    src,
		events: models.Discard,
		year:   func() int { return 0 },
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// AddStaff hires a candidate at skill * (9.5 + U(0,1)) / 100
func (h *HumanResource) AddStaff(staff *models.Staff) float64 {
	salary := float64(staff.Skill) * (salaryBase + h.rng.Float64()) / 100
	h.roster = append(h.roster, &member{staff: staff, salary: salary})
	return salary
}

// Staff returns the active roster in hiring order
func (h *HumanResource) Staff() []*models.Staff {
	result := make([]*models.Staff, len(h.roster))
	for i, m := range h.roster {
		result[i] = m.staff
	}
	return result
}

// Len returns the number of active staff
func (h *HumanResource) Len() int {
	return len(h.roster)
}

// Salary returns the fixed salary of an active staff member
func (h *HumanResource) Salary(staff *models.Staff) (float64, bool) {
	for _, m := range h.roster {
		if m.staff == staff {
			return m.salary, true
		}
	}
	return 0, false
}

// SalaryTotal returns the sum of all active salaries
func (h *HumanResource) SalaryTotal() float64 {
	var total float64
	for _, m := range h.roster {
		total += m.salary
	}
	return total
}

// HypotheticalInstructedStudents returns how many students the roster could
// instruct before every member reaches the minimum stamina
func (h *HumanResource) HypotheticalInstructedStudents() int {
	total := 0
	for _, m := range h.roster {
		total += m.staff.InstructionCapacity()
	}
	return total
}

// HireStaff hires greedily until the roster covers CoverageTarget of
// targetPopulation. Each pass sorts the pool by skill (stable) and hires the
// first candidate whose maximum salary leaves more than totalCosts*CostsModifier
// in the budget. The loop stops for good once a pass finds nobody affordable.
// Returns the remaining pool.
func (h *HumanResource) HireStaff(candidates []*models.Staff, budget, totalCosts float64, targetPopulation int) []*models.Staff {
	pool := make([]*models.Staff, len(candidates))
	copy(pool, candidates)

	threshold := totalCosts * CostsModifier
	for float64(h.HypotheticalInstructedStudents()) < CoverageTarget*float64(targetPopulation) {
		sort.SliceStable(pool, func(i, j int) bool {
			return pool[i].Skill > pool[j].Skill
		})

		hired := -1
		for i, c := range pool {
			if budget-c.StartingSalaryMax() > threshold {
				hired = i
				break
			}
		}
		if hired < 0 {
			h.logger.Debug("no affordable candidate", "pool", len(pool), "budget", budget, "threshold", threshold)
			break
		}

		c := pool[hired]
		pool = append(pool[:hired], pool[hired+1:]...)
		salary := h.AddStaff(c)
		h.events.Emit(models.Event{
			Year:    h.year(),
			Kind:    models.EventHired,
			Subject: c.Name,
			Amount:  salary,
		})
	}
	return pool
}

// Instruction is the outcome of one instruction pass
type Instruction struct {
	Uninstructed int
	Reputation   int
}

// InstructStudents distributes population across the roster in hiring order.
// Each member takes min(remaining, capacity) and gains a skill point even when
// that is zero; only members with students earn reputation.
func (h *HumanResource) InstructStudents(population int) Instruction {
	remaining := max(population, 0)
	reputation := 0
	for _, m := range h.roster {
		n := min(remaining, m.staff.InstructionCapacity())
		yield := m.staff.Instruct(n)
		if n <= 0 {
			continue
		}
		remaining -= n
		reputation += yield
		h.events.Emit(models.Event{
			Year:    h.year(),
			Kind:    models.EventInstructed,
			Subject: m.staff.Name,
			Amount:  float64(n),
		})
	}
	return Instruction{Uninstructed: remaining, Reputation: reputation}
}

// IncreaseExperience adds a year of tenure to every active member
func (h *HumanResource) IncreaseExperience() {
	for _, m := range h.roster {
		m.staff.IncreaseYearsOfTeaching()
	}
}

// ReplenishStamina restores the yearly stamina allowance of every active member
func (h *HumanResource) ReplenishStamina() {
	for _, m := range h.roster {
		m.staff.ReplenishStamina()
	}
}

// LeaveProbability is the chance a non-retiring member leaves: (100 - stamina) / 100
func LeaveProbability(staff *models.Staff) float64 {
	return float64(models.MaxStamina-staff.Stamina) / 100
}

// UpdateStaffRoster retires every member past the tenure limit and lets the
// rest leave with LeaveProbability. Removed members are gone for good.
func (h *HumanResource) UpdateStaffRoster() (retired, left int) {
	kept := h.roster[:0]
	for _, m := range h.roster {
		switch {
		case m.staff.ShouldRetire():
			retired++
			h.events.Emit(models.Event{
				Year:    h.year(),
				Kind:    models.EventRetired,
				Subject: m.staff.Name,
				Amount:  float64(m.staff.YearsOfTeaching),
			})
		case h.rng.Float64() < LeaveProbability(m.staff):
			left++
			h.events.Emit(models.Event{
				Year:    h.year(),
				Kind:    models.EventLeft,
				Subject: m.staff.Name,
				Amount:  float64(m.staff.Stamina),
			})
		default:
			kept = append(kept, m)
		}
	}
	for i := len(kept); i < len(h.roster); i++ {
		h.roster[i] = nil
	}
	h.roster = kept
	return retired, left
}
