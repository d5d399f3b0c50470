// Package journal records simulation runs in SQLite: one row per run, per
// event and per year summary. It is write-only from the simulation's point of
// view; nothing is ever resumed from it.
package journal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/napolitain/unisim/internal/models"
)

// ErrNoRun is returned when recording before BeginRun
var ErrNoRun = errors.New("journal: no run started")

// RunMeta describes the settings of a run
type RunMeta struct {
	Seed      int64
	Funding   float64
	Years     int
	StaffFile string
}

// EventRow is a stored event
type EventRow struct {
	Year     int     `db:"year"`
	Kind     string  `db:"kind"`
	Subject  string  `db:"subject"`
	Facility string  `db:"facility"`
	Amount   float64 `db:"amount"`
}

type yearRow struct {
	Year       int     `db:"year"`
	Budget     float64 `db:"budget"`
	Reputation int     `db:"reputation"`
	Students   int     `db:"students"`
	Staff      int     `db:"staff"`
	Candidates int     `db:"candidates"`
}

// Journal wraps a SQLite connection. It is an EventSink buffering events
// until the year they belong to is recorded.
type Journal struct {
	conn    *sqlx.DB
	runID   string
	pending []models.Event
}

// Open opens or creates a journal database at the given path
func Open(path string) (*Journal, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	j := &Journal{conn: conn}
	if err := j.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate journal: %w", err)
	}
	return j, nil
}

// Close closes the database connection
func (j *Journal) Close() error {
	return j.conn.Close()
}

func (j *Journal) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at TEXT NOT NULL,
		seed INTEGER NOT NULL,
		funding REAL NOT NULL,
		years INTEGER NOT NULL,
		staff_file TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL REFERENCES runs(id),
		year INTEGER NOT NULL,
		kind TEXT NOT NULL,
		subject TEXT NOT NULL,
		facility TEXT NOT NULL,
		amount REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS years (
		run_id TEXT NOT NULL REFERENCES runs(id),
		year INTEGER NOT NULL,
		budget REAL NOT NULL,
		reputation INTEGER NOT NULL,
		students INTEGER NOT NULL,
		staff INTEGER NOT NULL,
		candidates INTEGER NOT NULL,
		PRIMARY KEY (run_id, year)
	);

	CREATE INDEX IF NOT EXISTS idx_events_run_year ON events(run_id, year);
	`
	_, err := j.conn.Exec(schema)
	return err
}

// BeginRun registers a new run and returns its id
func (j *Journal) BeginRun(ctx context.Context, meta RunMeta) (string, error) {
	id := uuid.NewString()
	_, err := j.conn.ExecContext(ctx,
		"INSERT INTO runs (id, started_at, seed, funding, years, staff_file) VALUES (?, ?, ?, ?, ?, ?)",
		id, time.Now().UTC().Format(time.RFC3339), meta.Seed, meta.Funding, meta.Years, meta.StaffFile,
	)
	if err != nil {
		return "", fmt.Errorf("begin run: %w", err)
	}
	j.runID = id
	j.pending = j.pending[:0]
	slog.Debug("journal run started", "run", id)
	return id, nil
}

// RunID returns the id of the current run, empty before BeginRun
func (j *Journal) RunID() string {
	return j.runID
}

// Emit buffers an event until RecordYear
func (j *Journal) Emit(e models.Event) {
	j.pending = append(j.pending, e)
}

// RecordYear writes the buffered events and the year summary in one transaction
func (j *Journal) RecordYear(ctx context.Context, summary models.YearSummary) error {
	if j.runID == "" {
		return ErrNoRun
	}

	tx, err := j.conn.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PreparexContext(ctx, `INSERT INTO events
		(run_id, year, kind, subject, facility, amount)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range j.pending {
		if _, err := stmt.ExecContext(ctx, j.runID, e.Year, e.Kind.String(), e.Subject, string(e.Facility), e.Amount); err != nil {
			return fmt.Errorf("insert event: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO years
		(run_id, year, budget, reputation, students, staff, candidates)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		j.runID, summary.Year, summary.Budget, summary.Reputation,
		summary.Students, summary.Staff, summary.Candidates,
	); err != nil {
		return fmt.Errorf("insert year: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	j.pending = j.pending[:0]
	return nil
}

// Years returns the recorded summaries of the current run in year order
func (j *Journal) Years(ctx context.Context) ([]models.YearSummary, error) {
	var rows []yearRow
	err := j.conn.SelectContext(ctx, &rows,
		"SELECT year, budget, reputation, students, staff, candidates FROM years WHERE run_id = ? ORDER BY year",
		j.runID,
	)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.YearSummary, len(rows))
	for i, r := range rows {
		summaries[i] = models.YearSummary{
			Year:       r.Year,
			Budget:     r.Budget,
			Reputation: r.Reputation,
			Students:   r.Students,
			Staff:      r.Staff,
			Candidates: r.Candidates,
		}
	}
	return summaries, nil
}

// Events returns the recorded events of one year of the current run
func (j *Journal) Events(ctx context.Context, year int) ([]EventRow, error) {
	var events []EventRow
	err := j.conn.SelectContext(ctx, &events,
		"SELECT year, kind, subject, facility, amount FROM events WHERE run_id = ? AND year = ? ORDER BY id",
		j.runID, year,
	)
	return events, err
}
