// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines exercises, workout_sets_raw, and workout_sets tables.
package storage

// initSchema creates the database schema. Every statement is
// IF NOT EXISTS, so re-running against an existing database is a no-op.
//
// The exercise_id foreign keys are declarative documentation only:
// enforcement is off because the reference table is replaced wholesale
// each run and old set rows may point at retired exercise ids.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS exercises (
		exercise_id INTEGER PRIMARY KEY,
		exercise_name TEXT UNIQUE NOT NULL,
		muscle_group TEXT,
		category TEXT
	);

	CREATE TABLE IF NOT EXISTS workout_sets_raw (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		workout_date TEXT NOT NULL,
		location TEXT,
		exercise_id INTEGER,
		exercise_name TEXT,
		muscle_group TEXT,
		category TEXT,
		set_number INTEGER,
		reps REAL,
		weight REAL,
		time REAL,
		distance REAL,
		rpe INTEGER,
		volume REAL,
		batch_id TEXT,
		created_at TEXT,
		FOREIGN KEY (exercise_id) REFERENCES exercises(exercise_id)
	);

	CREATE TABLE IF NOT EXISTS workout_sets (
		workout_date TEXT NOT NULL,
		exercise_id INTEGER,
		set_number INTEGER,
		reps REAL,
		weight REAL,
		time REAL,
		distance REAL,
		rpe INTEGER,
		volume REAL,
		PRIMARY KEY (workout_date, exercise_id, set_number),
		FOREIGN KEY (exercise_id) REFERENCES exercises(exercise_id)
	);

	CREATE INDEX IF NOT EXISTS idx_raw_workout_date ON workout_sets_raw(workout_date);
	CREATE INDEX IF NOT EXISTS idx_raw_muscle_group ON workout_sets_raw(muscle_group);
	CREATE INDEX IF NOT EXISTS idx_raw_batch ON workout_sets_raw(batch_id);
	`

	_, err := d.db.Exec(schema)
	return err
}
