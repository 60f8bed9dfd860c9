package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"runcalc/internal/analysis"
)

// PredictionRun is one saved prediction request and its results
type PredictionRun struct {
	ID         int64
	Model      string
	RefMeters  float64
	RefSeconds float64
	VDOT       float64 // 0 for Riegel
	Unit       analysis.Unit
	CreatedAt  time.Time
	Results    []analysis.PredictionResult
}

// RecordPredictions saves a prediction set and returns the new run ID
func (s *Store) RecordPredictions(set analysis.PredictionSet, refMeters, refSeconds float64, unit analysis.Unit) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	var vdot sql.NullFloat64
	if set.VDOT > 0 {
		vdot = sql.NullFloat64{Float64: set.VDOT, Valid: true}
	}

	res, err := tx.Exec(`
		INSERT INTO prediction_runs (model, ref_meters, ref_seconds, vdot, unit, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, set.Model.String(), refMeters, refSeconds, vdot, string(unit), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("inserting prediction run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	for _, p := range set.Predictions {
		_, err := tx.Exec(`
			INSERT INTO prediction_results (
				run_id, distance_id, label, meters, time_seconds, pace_seconds,
				is_reference, confidence, confidence_score
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			runID, p.DistanceID, p.Label, p.Meters, p.TimeSeconds, p.PaceSeconds,
			boolToInt64(p.IsReference), p.Confidence, p.ConfidenceScore,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting prediction %s: %w", p.DistanceID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing predictions: %w", err)
	}

	s.logger.Printf("Store: RecordPredictions run=%d model=%s results=%d", runID, set.Model, len(set.Predictions))
	return runID, nil
}

// ListPredictionRuns returns the most recent runs first, with results ordered by distance
func (s *Store) ListPredictionRuns(limit int) ([]PredictionRun, error) {
	rows, err := s.db.Query(`
		SELECT id, model, ref_meters, ref_seconds, vdot, unit, created_at
		FROM prediction_runs
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}

	runs, err := scanPredictionRuns(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}

	for i := range runs {
		results, err := s.predictionResults(runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Results = results
	}
	return runs, nil
}

// GetPredictionRun retrieves a single run by ID
func (s *Store) GetPredictionRun(id int64) (*PredictionRun, error) {
	row := s.db.QueryRow(`
		SELECT id, model, ref_meters, ref_seconds, vdot, unit, created_at
		FROM prediction_runs
		WHERE id = ?
	`, id)

	run, err := scanPredictionRun(row)
	if err != nil {
		return nil, err
	}
	run.Results, err = s.predictionResults(id)
	if err != nil {
		return nil, err
	}
	return run, nil
}

// DeletePredictionRuns removes all saved runs
func (s *Store) DeletePredictionRuns() error {
	_, err := s.db.Exec(`DELETE FROM prediction_runs`)
	if err == nil {
		s.logger.Printf("Store: DeletePredictionRuns")
	}
	return err
}

func (s *Store) predictionResults(runID int64) ([]analysis.PredictionResult, error) {
	rows, err := s.db.Query(`
		SELECT distance_id, label, meters, time_seconds, pace_seconds,
			is_reference, confidence, confidence_score
		FROM prediction_results
		WHERE run_id = ?
		ORDER BY meters
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []analysis.PredictionResult
	for rows.Next() {
		var p analysis.PredictionResult
		var isReference int64
		err := rows.Scan(
			&p.DistanceID, &p.Label, &p.Meters, &p.TimeSeconds, &p.PaceSeconds,
			&isReference, &p.Confidence, &p.ConfidenceScore,
		)
		if err != nil {
			return nil, err
		}
		p.IsReference = isReference != 0
		results = append(results, p)
	}
	return results, rows.Err()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPredictionRunFields(row rowScanner) (*PredictionRun, error) {
	var run PredictionRun
	var vdot sql.NullFloat64
	var unit, createdAt string

	if err := row.Scan(&run.ID, &run.Model, &run.RefMeters, &run.RefSeconds, &vdot, &unit, &createdAt); err != nil {
		return nil, err
	}
	run.VDOT = vdot.Float64
	run.Unit = analysis.Unit(unit)

	var parseErr error
	run.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at %q: %w", createdAt, parseErr)
	}
	return &run, nil
}

// scanPredictionRun scans a single run from a row
func scanPredictionRun(row *sql.Row) (*PredictionRun, error) {
	run, err := scanPredictionRunFields(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return run, err
}

// scanPredictionRuns scans multiple runs from rows
func scanPredictionRuns(rows *sql.Rows) ([]PredictionRun, error) {
	var runs []PredictionRun
	for rows.Next() {
		run, err := scanPredictionRunFields(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

func boolToInt64(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
