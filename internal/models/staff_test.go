package models

import "testing"

func TestNewStaffDefaults(t *testing.T) {
	s := NewStaff("Ada", 140)
	if s.Skill != MaxSkill {
		t.Errorf("Expected skill clamped to %d, got %d", MaxSkill, s.Skill)
	}
	if s.Stamina != MaxStamina || s.YearsOfTeaching != 0 {
		t.Errorf("Unexpected starting state %+v", s)
	}
}

func TestInstructionCapacity(t *testing.T) {
	tests := []struct {
		skill, stamina int
		want           int
	}{
		{50, 100, 210},
		{0, 100, 60},
		{100, 100, 360},
		{50, 59, 0},
		{50, 60, 70},
		{50, 40, 0},
		{50, 10, 0},
	}
	for _, tt := range tests {
		s := &Staff{Skill: tt.skill, Stamina: tt.stamina}
		if got := s.InstructionCapacity(); got != tt.want {
			t.Errorf("skill=%d stamina=%d: capacity %d, want %d", tt.skill, tt.stamina, got, tt.want)
		}
	}
}

func TestInstructFullCapacity(t *testing.T) {
	s := NewStaff("Brian", 50)

	n := min(1000, s.InstructionCapacity())
	rep := s.Instruct(n)

	if n != 210 {
		t.Fatalf("Expected 210 students, got %d", n)
	}
	if s.Stamina != 40 {
		t.Errorf("Expected stamina 40, got %d", s.Stamina)
	}
	if s.Skill != 51 {
		t.Errorf("Expected skill 51, got %d", s.Skill)
	}
	// 100*50 / 310
	if rep != 16 {
		t.Errorf("Expected reputation 16, got %d", rep)
	}
}

func TestInstructPartialBlockCostsFullBlock(t *testing.T) {
	s := NewStaff("Chen", 30)
	s.Instruct(51)
	if s.Stamina != 60 {
		t.Errorf("Expected two blocks (40 stamina) spent, got stamina %d", s.Stamina)
	}
}

func TestSkillCappedAtMax(t *testing.T) {
	s := NewStaff("Dana", 100)
	s.Instruct(10)
	if s.Skill != MaxSkill {
		t.Errorf("Expected skill to stay %d, got %d", MaxSkill, s.Skill)
	}
}

func TestReplenishStaminaCapped(t *testing.T) {
	s := NewStaff("Eve", 40)
	s.DecreaseStamina(10)
	s.ReplenishStamina()
	if s.Stamina != MaxStamina {
		t.Errorf("Expected stamina capped at %d, got %d", MaxStamina, s.Stamina)
	}
	s.DecreaseStamina(500)
	if s.Stamina != 0 {
		t.Errorf("Expected stamina floored at 0, got %d", s.Stamina)
	}
}

func TestShouldRetire(t *testing.T) {
	s := NewStaff("Finn", 60)
	s.YearsOfTeaching = RetirementYears
	if s.ShouldRetire() {
		t.Error("Tenure equal to the limit must not retire")
	}
	s.IncreaseYearsOfTeaching()
	if !s.ShouldRetire() {
		t.Error("Tenure past the limit must retire")
	}
}

func TestStartingSalaryMax(t *testing.T) {
	s := NewStaff("Gail", 80)
	if got := s.StartingSalaryMax(); got != 8.4 {
		t.Errorf("Expected 8.4, got %f", got)
	}
}
