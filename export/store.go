package export

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"   // postgres driver
	_ "modernc.org/sqlite" // sqlite driver

	"github.com/katalvlaran/landmetrics/batch"
	"github.com/katalvlaran/landmetrics/landscape"
)

// Drivers accepted by OpenStore.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS metric_runs (
		run_id      TEXT PRIMARY KEY,
		started_at  TIMESTAMP NOT NULL,
		finished_at TIMESTAMP NOT NULL,
		failed      INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS metric_results (
		run_id     TEXT NOT NULL,
		tile_id    TEXT NOT NULL,
		class_code INTEGER NOT NULL,
		seq        INTEGER NOT NULL,
		metric     TEXT NOT NULL,
		value      DOUBLE PRECISION,
		status     TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_metric_results_run ON metric_results (run_id, tile_id)`,
}

// Record is one stored metric value.
type Record struct {
	RunID  string          `db:"run_id"`
	TileID string          `db:"tile_id"`
	Class  int             `db:"class_code"`
	Seq    int             `db:"seq"`
	Metric string          `db:"metric"`
	Value  sql.NullFloat64 `db:"value"`
	Status string          `db:"status"`
}

// Store persists batch reports.
type Store struct {
	db *sqlx.DB
}

// OpenStore connects with driver ("sqlite" or "postgres") and creates the
// tables when missing.
func OpenStore(ctx context.Context, driver, dsn string) (*Store, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("export: unsupported driver %q", driver)
	}
	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("export: connect %s: %w", driver, err)
	}
	s, err := NewStore(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewStore wraps an open connection and creates the tables when missing.
func NewStore(ctx context.Context, db *sqlx.DB) (*Store, error) {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return nil, fmt.Errorf("export: create schema: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// Close closes the connection.
func (s *Store) Close() error { return s.db.Close() }

// Save writes the run and all of its rows in one transaction.
func (s *Store) Save(ctx context.Context, rep *batch.Report) (err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	run := rep.RunID.String()
	if _, err = tx.ExecContext(ctx, tx.Rebind(
		`INSERT INTO metric_runs (run_id, started_at, finished_at, failed) VALUES (?, ?, ?, ?)`),
		run, rep.Started.UTC(), rep.Finished.UTC(), rep.Failed); err != nil {
		return fmt.Errorf("export: insert run: %w", err)
	}

	stmt, err := tx.PreparexContext(ctx, tx.Rebind(
		`INSERT INTO metric_results (run_id, tile_id, class_code, seq, metric, value, status) VALUES (?, ?, ?, ?, ?, ?, ?)`))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range rep.Rows {
		for i, r := range row.Results {
			if _, err = stmt.ExecContext(ctx, run, row.TileID, row.Class, i, r.Name, nullable(r.Value), r.Status.String()); err != nil {
				return fmt.Errorf("export: insert %s/%s: %w", row.TileID, r.Name, err)
			}
		}
	}
	return tx.Commit()
}

// Results returns the stored records of a run by tile, class and metric position.
func (s *Store) Results(ctx context.Context, runID uuid.UUID) ([]Record, error) {
	var out []Record
	err := s.db.SelectContext(ctx, &out, s.db.Rebind(
		`SELECT run_id, tile_id, class_code, seq, metric, value, status
		   FROM metric_results WHERE run_id = ?
		  ORDER BY tile_id, class_code, seq`), runID.String())
	return out, err
}

// Runs returns the ids of stored runs, newest first.
func (s *Store) Runs(ctx context.Context) ([]uuid.UUID, error) {
	var runs []string
	if err := s.db.SelectContext(ctx, &runs,
		`SELECT run_id FROM metric_runs ORDER BY started_at DESC`); err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(runs))
	for _, r := range runs {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, fmt.Errorf("export: run id %q: %w", r, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// nullable stores undefined and NaN values as NULL.
func nullable(v landscape.Value) sql.NullFloat64 {
	if !v.Defined() || math.IsNaN(v.Float) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v.Float, Valid: true}
}
