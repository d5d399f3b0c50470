// Package report exports a finished run as YAML.
package report

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/napolitain/unisim/internal/models"
)

// Report is the run metadata plus every year summary
type Report struct {
	RunID   string               `yaml:"run_id,omitempty"`
	Seed    int64                `yaml:"seed"`
	Funding float64              `yaml:"funding"`
	Final   models.YearSummary   `yaml:"final"`
	Years   []models.YearSummary `yaml:"years"`
}

// New builds a report whose Final entry is the last summary
func New(runID string, seed int64, funding float64, years []models.YearSummary) Report {
	r := Report{RunID: runID, Seed: seed, Funding: funding, Years: years}
	if len(years) > 0 {
		r.Final = years[len(years)-1]
	}
	return r
}

// Write marshals r to path
func Write(path string, r Report) error {
	raw, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Read loads a report written by Write
func Read(path string) (Report, error) {
	var r Report
	raw, err := os.ReadFile(path)
	if err != nil {
		return r, err
	}
	if err := yaml.Unmarshal(raw, &r); err != nil {
		return r, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}
