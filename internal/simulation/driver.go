// Package simulation drives a university through consecutive years.
package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/napolitain/unisim/internal/models"
	"github.com/napolitain/unisim/internal/university"
)

// DefaultDelay is the pause between two simulated years
const DefaultDelay = 500 * time.Millisecond

// Continuer decides how many more years to run once the requested years are
// done. Returning 0 stops the run.
type Continuer interface {
	ContinueFor(ctx context.Context, yearsSoFar int) (int, error)
}

// ContinueFunc adapts a function to Continuer
type ContinueFunc func(ctx context.Context, yearsSoFar int) (int, error)

func (f ContinueFunc) ContinueFor(ctx context.Context, yearsSoFar int) (int, error) {
	return f(ctx, yearsSoFar)
}

// Observer receives every year summary; an error aborts the run
type Observer func(ctx context.Context, summary models.YearSummary) error

// Driver feeds the candidate pool to a university one year at a time
type Driver struct {
	uni       *university.University
	pool      []*models.Staff
	delay     time.Duration
	observers []Observer
	continuer Continuer
	summaries []models.YearSummary
	logger    *slog.Logger
}

// Option configures a Driver
type Option func(*Driver)

// WithDelay sets the pause between years; zero disables it
func WithDelay(d time.Duration) Option {
	return func(dr *Driver) {
		dr.delay = max(d, 0)
	}
}

// WithObserver registers a summary observer, called in registration order
func WithObserver(o Observer) Option {
	return func(dr *Driver) {
		if o != nil {
			dr.observers = append(dr.observers, o)
		}
	}
}

// WithContinuer sets the hook asked for more years after the last one
func WithContinuer(c Continuer) Option {
	return func(dr *Driver) {
		dr.continuer = c
	}
}

// WithLogger sets the diagnostics logger
func WithLogger(logger *slog.Logger) Option {
	return func(dr *Driver) {
		if logger != nil {
			dr.logger = logger
		}
	}
}

// New creates a driver for uni with the initial candidate pool
func New(uni *university.University, pool []*models.Staff, opts ...Option) *Driver {
	dr := &Driver{
		uni:    uni,
		pool:   pool,
		delay:  DefaultDelay,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(dr)
	}
	return dr
}

// Step simulates one year and returns its summary
func (dr *Driver) Step() models.YearSummary {
	var summary models.YearSummary
	dr.pool, summary = dr.uni.SimulateYear(dr.pool)
	dr.summaries = append(dr.summaries, summary)
	return summary
}

// Run simulates years, then keeps going for as long as the Continuer asks.
// It returns early when ctx is cancelled or an observer fails.
func (dr *Driver) Run(ctx context.Context, years int) error {
	target := years
	for done := 0; done < target; {
		if done > 0 {
			if err := dr.wait(ctx); err != nil {
				return err
			}
		}

		summary := dr.Step()
		done++
		for _, o := range dr.observers {
			if err := o(ctx, summary); err != nil {
				return fmt.Errorf("year %d: %w", summary.Year, err)
			}
		}

		if done < target || dr.continuer == nil {
			continue
		}
		more, err := dr.continuer.ContinueFor(ctx, done)
		if err != nil {
			return fmt.Errorf("continue prompt: %w", err)
		}
		if more > 0 {
			dr.logger.Debug("continuing simulation", "years", more)
			target += more
		}
	}
	return nil
}

func (dr *Driver) wait(ctx context.Context) error {
	if dr.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(dr.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Summaries returns every year summary so far
func (dr *Driver) Summaries() []models.YearSummary {
	result := make([]models.YearSummary, len(dr.summaries))
	copy(result, dr.summaries)
	return result
}

// Pool returns the candidates not hired yet
func (dr *Driver) Pool() []*models.Staff {
	return dr.pool
}

// University returns the simulated university
func (dr *Driver) University() *university.University {
	return dr.uni
}
