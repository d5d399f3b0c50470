package models

// Staff constants
const (
	MaxSkill   = 100
	MaxStamina = 100

	// MinimumStamina is the floor a staff member is not planned to instruct below
	MinimumStamina = 40

	// StaminaPerBlock is the stamina spent per block of (20+skill) students
	StaminaPerBlock = 20

	// StaminaReplenish is restored once per year
	StaminaReplenish = 20

	// RetirementYears is the tenure after which a staff member always retires
	RetirementYears = 30

	// StartingSalaryMaxFactor is the largest salary multiplier a hire can draw (9.5 + 1.0)
	StartingSalaryMaxFactor = 10.5
)

// Staff represents a teaching candidate or hired staff member
type Staff struct {
	Name            string
	Skill           int
	Stamina         int
	YearsOfTeaching int
}

// NewStaff creates an unhired candidate with full stamina and no tenure
func NewStaff(name string, skill int) *Staff {
	return &Staff{
		Name:    name,
		Skill:   clamp(skill, 0, MaxSkill),
		Stamina: MaxStamina,
	}
}

// StudentsPerBlock returns how many students one stamina block covers
func (s *Staff) StudentsPerBlock() int {
	return 20 + s.Skill
}

// InstructionCapacity returns how many students the member can instruct before
// stamina would fall below MinimumStamina
func (s *Staff) InstructionCapacity() int {
	if s.Stamina <= MinimumStamina {
		return 0
	}
	blocks := (s.Stamina - MinimumStamina) / StaminaPerBlock
	return blocks * s.StudentsPerBlock()
}

// Instruct teaches n students and returns the reputation earned.
// Stamina cost and yield use the skill held before instructing; skill then rises by 1.
func (s *Staff) Instruct(n int) int {
	if n < 0 {
		n = 0
	}
	perBlock := s.StudentsPerBlock()
	reputation := (100 * s.Skill) / (100 + n)
	blocks := (n + perBlock - 1) / perBlock
	s.DecreaseStamina(blocks * StaminaPerBlock)
	s.IncreaseSkill(1)
	return reputation
}

// IncreaseSkill raises skill, capped at MaxSkill
func (s *Staff) IncreaseSkill(amount int) {
	s.Skill = clamp(s.Skill+amount, 0, MaxSkill)
}

// DecreaseStamina lowers stamina, floored at 0
func (s *Staff) DecreaseStamina(amount int) {
	s.Stamina = clamp(s.Stamina-amount, 0, MaxStamina)
}

// ReplenishStamina restores the yearly stamina allowance, capped at MaxStamina
func (s *Staff) ReplenishStamina() {
	s.Stamina = clamp(s.Stamina+StaminaReplenish, 0, MaxStamina)
}

// IncreaseYearsOfTeaching adds one year of tenure
func (s *Staff) IncreaseYearsOfTeaching() {
	s.YearsOfTeaching++
}

// ShouldRetire reports whether tenure has passed RetirementYears
func (s *Staff) ShouldRetire() bool {
	return s.YearsOfTeaching > RetirementYears
}

// StartingSalaryMax returns the highest salary this candidate could be hired at
func (s *Staff) StartingSalaryMax() float64 {
	return float64(s.Skill) * StartingSalaryMaxFactor / 100
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
