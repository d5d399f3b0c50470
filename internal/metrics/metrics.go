// Package metrics exposes the state of a run as Prometheus metrics written in
// the node_exporter textfile format.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/napolitain/unisim/internal/models"
)

const namespace = "unisim"

// Recorder is an EventSink counting events by kind, and a year observer
// tracking the latest summary as gauges
type Recorder struct {
	registry *prometheus.Registry

	year       prometheus.Gauge
	budget     prometheus.Gauge
	reputation prometheus.Gauge
	students   prometheus.Gauge
	staff      prometheus.Gauge
	candidates prometheus.Gauge

	events *prometheus.CounterVec
	spent  *prometheus.CounterVec
}

func gauge(name, help string) prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	})
}

// NewRecorder registers every metric on a private registry
func NewRecorder() *Recorder {
	r := &Recorder{
		registry:   prometheus.NewRegistry(),
		year:       gauge("year", "Last simulated year."),
		budget:     gauge("budget_coins", "Budget at the end of the last simulated year."),
		reputation: gauge("reputation", "Reputation at the end of the last simulated year."),
		students:   gauge("students", "Student population at the end of the last simulated year."),
		staff:      gauge("staff", "Active staff at the end of the last simulated year."),
		candidates: gauge("candidates", "Candidates left in the pool."),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "State changes by kind.",
		}, []string{"kind"}),
		spent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "capital_spent_coins_total",
			Help:      "Coins spent on construction and upgrades by facility kind.",
		}, []string{"facility"}),
	}
	r.registry.MustRegister(r.year, r.budget, r.reputation, r.students, r.staff, r.candidates, r.events, r.spent)
	return r
}

// Emit counts an event
func (r *Recorder) Emit(e models.Event) {
	r.events.WithLabelValues(e.Kind.String()).Inc()
	switch e.Kind {
	case models.EventBuilt, models.EventUpgraded:
		r.spent.WithLabelValues(string(e.Facility)).Add(e.Amount)
	}
}

// ObserveYear records the summary gauges
func (r *Recorder) ObserveYear(_ context.Context, s models.YearSummary) error {
	r.year.Set(float64(s.Year))
	r.budget.Set(s.Budget)
	r.reputation.Set(float64(s.Reputation))
	r.students.Set(float64(s.Students))
	r.staff.Set(float64(s.Staff))
	r.candidates.Set(float64(s.Candidates))
	return nil
}

// Gatherer returns the registry backing the recorder
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes every metric to path
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
