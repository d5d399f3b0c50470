package hr

import (
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/napolitain/unisim/internal/models"
	"github.com/napolitain/unisim/internal/rng"
)

func names(staff []*models.Staff) []string {
	result := make([]string, len(staff))
	for i, s := range staff {
		result[i] = s.Name
	}
	return result
}

var _ = Describe("HumanResource", func() {
	var (
		src *rng.Fixed
		log *models.EventLog
		h   *HumanResource
	)

	newHR := func(floats ...float64) {
		src = &rng.Fixed{Floats: floats}
		log = &models.EventLog{}
		h = New(src,
			WithEventSink(log),
			WithYear(func() int { return 3 }),
			WithLogger(slog.New(slog.NewTextHandler(GinkgoWriter, nil))),
		)
	}

	BeforeEach(func() {
		newHR(0.5)
	})

	Describe("AddStaff", func() {
		It("should fix the salary at hire time", func() {
			newHR(0.25)
			salary := h.AddStaff(models.NewStaff("Brian", 80))
			Expect(salary).To(BeNumerically("~", 7.8, 1e-9))
			Expect(h.SalaryTotal()).To(BeNumerically("~", 7.8, 1e-9))
		})

		It("should keep hiring order", func() {
			h.AddStaff(models.NewStaff("Chen", 10))
			h.AddStaff(models.NewStaff("Ada", 90))
			h.AddStaff(models.NewStaff("Brian", 50))
			Expect(names(h.Staff())).To(Equal([]string{"Chen", "Ada", "Brian"}))
		})

		It("should report salaries only for active staff", func() {
			s := models.NewStaff("Ada", 40)
			_, ok := h.Salary(s)
			Expect(ok).To(BeFalse())

			h.AddStaff(s)
			salary, ok := h.Salary(s)
			Expect(ok).To(BeTrue())
			Expect(salary).To(BeNumerically("~", 4.0, 1e-9))
		})
	})

	Describe("HireStaff", func() {
		It("should hire nobody when coverage is already met", func() {
			h.AddStaff(models.NewStaff("Veteran", 50))
			pool := []*models.Staff{
				models.NewStaff("Ada", 10),
				models.NewStaff("Brian", 90),
			}

			remaining := h.HireStaff(pool, 1000, 0, 100)

			Expect(remaining).To(Equal(pool))
			Expect(h.Len()).To(Equal(1))
			Expect(log.OfKind(models.EventHired)).To(BeEmpty())
		})

		It("should terminate when nobody is affordable", func() {
			pool := []*models.Staff{
				models.NewStaff("Ada", 10),
				models.NewStaff("Brian", 90),
				models.NewStaff("Chen", 50),
			}

			remaining := h.HireStaff(pool, 0, 0, 10000)

			Expect(remaining).To(HaveLen(3))
			Expect(h.Len()).To(BeZero())
		})

		It("should stop once the pool is exhausted", func() {
			pool := []*models.Staff{
				models.NewStaff("Ada", 10),
				models.NewStaff("Brian", 90),
			}

			remaining := h.HireStaff(pool, 1e6, 0, 1e6)

			Expect(remaining).To(BeEmpty())
			Expect(names(h.Staff())).To(Equal([]string{"Brian", "Ada"}))
			Expect(log.OfKind(models.EventHired)).To(HaveLen(2))
		})

		It("should skip candidates whose maximum salary breaks the margin", func() {
			pool := []*models.Staff{
				models.NewStaff("Ada", 90),   // 9.45 leaves 90.55
				models.NewStaff("Brian", 50), // 5.25 leaves 94.75
				models.NewStaff("Chen", 60),  // 6.30 leaves 93.70
			}

			// threshold: 85 * 1.1 = 93.5
			remaining := h.HireStaff(pool, 100, 85, 10000)

			Expect(names(h.Staff())).To(Equal([]string{"Chen", "Brian"}))
			Expect(names(remaining)).To(Equal([]string{"Ada"}))
		})

		It("should stop as soon as the coverage target is reached", func() {
			pool := []*models.Staff{
				models.NewStaff("Ada", 50),
				models.NewStaff("Brian", 40),
			}

			// Ada covers 210 >= 0.9 * 200
			remaining := h.HireStaff(pool, 1000, 0, 200)

			Expect(names(h.Staff())).To(Equal([]string{"Ada"}))
			Expect(names(remaining)).To(Equal([]string{"Brian"}))
		})

		It("should not modify the caller's pool", func() {
			pool := []*models.Staff{
				models.NewStaff("Ada", 10),
				models.NewStaff("Brian", 90),
			}
			h.HireStaff(pool, 1e6, 0, 1e6)
			Expect(names(pool)).To(Equal([]string{"Ada", "Brian"}))
		})
	})

	Describe("InstructStudents", func() {
		var ada, brian *models.Staff

		BeforeEach(func() {
			ada = models.NewStaff("Ada", 50)
			brian = models.NewStaff("Brian", 0)
			h.AddStaff(ada)
			h.AddStaff(brian)
		})

		It("should report students beyond the roster's capacity", func() {
			result := h.InstructStudents(1000)

			// 210 + 60 instructed
			Expect(result.Uninstructed).To(Equal(730))
			// 5000/310 + 0/160
			Expect(result.Reputation).To(Equal(16))
			Expect(ada.Stamina).To(Equal(40))
			Expect(ada.Skill).To(Equal(51))
			Expect(brian.Stamina).To(Equal(40))
			Expect(brian.Skill).To(Equal(1))
		})

		It("should train members left without students at no stamina cost", func() {
			result := h.InstructStudents(100)

			Expect(result.Uninstructed).To(BeZero())
			// 5000/200, nothing from Brian
			Expect(result.Reputation).To(Equal(25))
			Expect(brian.Skill).To(Equal(1))
			Expect(brian.Stamina).To(Equal(models.MaxStamina))

			events := log.OfKind(models.EventInstructed)
			Expect(events).To(HaveLen(1))
			Expect(events[0].Subject).To(Equal("Ada"))
			Expect(events[0].Amount).To(BeNumerically("==", 100))
			Expect(events[0].Year).To(Equal(3))
		})

		It("should instruct nobody with an empty population", func() {
			Expect(h.InstructStudents(0)).To(Equal(Instruction{}))
			Expect(log.OfKind(models.EventInstructed)).To(BeEmpty())
			Expect(ada.Skill).To(Equal(51))
			Expect(ada.Stamina).To(Equal(models.MaxStamina))
		})

		It("should give an idle second member of equal skill the same skill point", func() {
			second := models.NewStaff("Chen", 50)
			h.AddStaff(second)

			result := h.InstructStudents(10)

			Expect(result.Uninstructed).To(BeZero())
			Expect(ada.Skill).To(Equal(51))
			Expect(ada.Stamina).To(Equal(80))
			Expect(second.Skill).To(Equal(51))
			Expect(second.Stamina).To(Equal(models.MaxStamina))
			Expect(log.OfKind(models.EventInstructed)).To(HaveLen(1))
		})
	})

	Describe("UpdateStaffRoster", func() {
		It("should always retire staff past the tenure limit", func() {
			newHR(0.99)
			veteran := models.NewStaff("Veteran", 70)
			veteran.YearsOfTeaching = models.RetirementYears + 1
			h.AddStaff(veteran)

			retired, left := h.UpdateStaffRoster()

			Expect(retired).To(Equal(1))
			Expect(left).To(BeZero())
			Expect(h.Len()).To(BeZero())
			Expect(log.OfKind(models.EventRetired)).To(HaveLen(1))
		})

		It("should draw only for members who do not retire", func() {
			// two hire draws, then the attrition draw for Tired
			newHR(0.5, 0.5, 0.0, 0.99)
			veteran := models.NewStaff("Veteran", 70)
			veteran.YearsOfTeaching = 40
			tired := models.NewStaff("Tired", 70)
			tired.Stamina = 50
			h.AddStaff(veteran)
			h.AddStaff(tired)

			retired, left := h.UpdateStaffRoster()

			Expect(retired).To(Equal(1))
			Expect(left).To(Equal(1))
			Expect(h.Staff()).To(BeEmpty())
		})

		It("should keep the order of the remaining staff", func() {
			newHR(0.5, 0.5, 0.5, 0.5, 0.5, 0.0)
			for _, name := range []string{"Ada", "Brian", "Chen"} {
				h.AddStaff(models.NewStaff(name, 30))
			}
			h.Staff()[1].Stamina = 60

			h.UpdateStaffRoster()

			// draws: Ada 0.5 vs 0.0, Brian 0.5 vs 0.4, Chen 0.0 vs 0.0
			Expect(names(h.Staff())).To(Equal([]string{"Ada", "Brian", "Chen"}))
		})
	})

	DescribeTable("attrition draws",
		func(stamina int, draw float64, leaves bool) {
			newHR(0.5, draw)
			s := models.NewStaff("Ada", 50)
			s.Stamina = stamina
			h.AddStaff(s)

			_, left := h.UpdateStaffRoster()

			Expect(left == 1).To(Equal(leaves))
			Expect(log.OfKind(models.EventLeft)).To(HaveLen(left))
		},
		Entry("full stamina never leaves", 100, 0.0, false),
		Entry("draw below the probability leaves", 30, 0.69, true),
		Entry("draw at the probability stays", 30, 0.7, false),
		Entry("exhausted staff nearly always leave", 0, 0.99, true),
	)

	DescribeTable("LeaveProbability",
		func(stamina int, want float64) {
			Expect(LeaveProbability(&models.Staff{Stamina: stamina})).To(BeNumerically("~", want, 1e-9))
		},
		Entry("full", 100, 0.0),
		Entry("half", 50, 0.5),
		Entry("empty", 0, 1.0),
	)

	Describe("yearly upkeep", func() {
		It("should age and rest every member", func() {
			s := models.NewStaff("Ada", 50)
			h.AddStaff(s)
			h.InstructStudents(210)

			h.IncreaseExperience()
			h.ReplenishStamina()

			Expect(s.YearsOfTeaching).To(Equal(1))
			Expect(s.Stamina).To(Equal(60))
			Expect(h.HypotheticalInstructedStudents()).To(Equal(51 + 20))
		})
	})
})
