package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// Key-value blobs (settings)
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		// One row per prediction request
		`CREATE TABLE IF NOT EXISTS prediction_runs (
			id INTEGER PRIMARY KEY,
			model TEXT NOT NULL,
			ref_meters REAL NOT NULL,
			ref_seconds REAL NOT NULL,
			vdot REAL,
			unit TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_prediction_runs_created ON prediction_runs(created_at)`,

		// Predicted times per target distance
		`CREATE TABLE IF NOT EXISTS prediction_results (
			run_id INTEGER NOT NULL,
			distance_id TEXT NOT NULL,
			label TEXT NOT NULL,
			meters REAL NOT NULL,
			time_seconds REAL NOT NULL,
			pace_seconds REAL NOT NULL,
			is_reference INTEGER NOT NULL,
			confidence TEXT NOT NULL,
			confidence_score REAL NOT NULL,
			PRIMARY KEY (run_id, distance_id),
			FOREIGN KEY (run_id) REFERENCES prediction_runs(id) ON DELETE CASCADE
		)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
