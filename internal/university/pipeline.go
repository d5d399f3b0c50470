package university

import (
	"github.com/napolitain/unisim/internal/models"
)

// CollectStudentMoney adds TuitionPerStudent for every student
func (u *University) CollectStudentMoney() float64 {
	students := u.NumberOfStudents()
	amount := float64(students * TuitionPerStudent)
	u.budget += amount
	u.emit(models.EventCollectedTuition, "", "", amount)
	return amount
}

// CollectRecreationalProfits adds every recreational facility's profit
func (u *University) CollectRecreationalProfits() float64 {
	amount := float64(u.estate.CollectProfits())
	u.budget += amount
	return amount
}

// HireStaff hires from pool against the current budget, costs and population
// and returns what is left of the pool
func (u *University) HireStaff(pool []*models.Staff) []*models.Staff {
	return u.hr.HireStaff(pool, u.budget, u.TotalCosts(), u.NumberOfStudents())
}

// InstructStudents instructs the current population, adds the instructional
// reputation and returns the number of uninstructed students
func (u *University) InstructStudents() int {
	result := u.hr.InstructStudents(u.NumberOfStudents())
	if result.Reputation > 0 {
		u.reputation += result.Reputation
		u.emit(models.EventReputationGained, "", "", float64(result.Reputation))
	}
	return result.Uninstructed
}

// PayMaintenanceCosts deducts the estate upkeep
func (u *University) PayMaintenanceCosts() float64 {
	total := u.estate.MaintenanceCost()
	u.budget -= total
	u.emit(models.EventPaidMaintenance, "", "", total)
	return total
}

// PayStaffSalaries deducts every active salary
func (u *University) PayStaffSalaries() float64 {
	total := u.hr.SalaryTotal()
	u.budget -= total
	u.emit(models.EventPaidSalaries, "", "", total)
	return total
}

// IncreaseStaffExperience adds a year of tenure to every member
func (u *University) IncreaseStaffExperience() {
	u.hr.IncreaseExperience()
}

// DecreaseReputation lowers reputation by amount, clamping at zero.
// Returns the reputation actually lost.
func (u *University) DecreaseReputation(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := u.reputation
	u.reputation = max(u.reputation-amount, 0)
	return before - u.reputation
}

// DecreaseReputationByUninstructedStudents costs one reputation per
// uninstructed student
func (u *University) DecreaseReputationByUninstructedStudents(uninstructed int) int {
	lost := u.DecreaseReputation(uninstructed)
	if lost > 0 {
		u.emit(models.EventReputationLost, "", "", float64(lost))
	}
	return lost
}

// UpdateStaffRoster applies retirement and attrition
func (u *University) UpdateStaffRoster() (retired, left int) {
	return u.hr.UpdateStaffRoster()
}

// ReplenishAllStamina restores staff stamina for the next year
func (u *University) ReplenishAllStamina() {
	u.hr.ReplenishStamina()
}

// SimulateYear runs one year in fixed order and returns the remaining
// candidate pool with the end-of-year summary
func (u *University) SimulateYear(pool []*models.Staff) ([]*models.Staff, models.YearSummary) {
	u.year++
	log := u.logger.With("year", u.year)

	u.BuildAndUpgrade()
	log.Debug("capital allocation done", "budget", u.budget, "facilities", u.estate.Len())

	u.CollectStudentMoney()
	u.CollectRecreationalProfits()

	pool = u.HireStaff(pool)
	log.Debug("hiring done", "staff", u.hr.Len(), "candidates", len(pool))

	uninstructed := u.InstructStudents()

	u.PayMaintenanceCosts()
	u.PayStaffSalaries()
	u.IncreaseStaffExperience()
	u.DecreaseReputationByUninstructedStudents(uninstructed)
	retired, left := u.UpdateStaffRoster()
	u.ReplenishAllStamina()
	log.Debug("year closed", "uninstructed", uninstructed, "retired", retired, "left", left)

	summary := u.Summary()
	summary.Candidates = len(pool)
	return pool, summary
}
