// ABOUTME: Workout set write operations for the raw and clean tables.
// ABOUTME: Raw is append-only; clean is replaced per workout_date in one transaction.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/harperreed/gymsheet/internal/models"
)

// AppendRawSets appends every set to the audit log unconditionally.
// Re-running a batch for the same date appends again; duplicates across
// runs are expected and kept.
func (d *DB) AppendRawSets(sets []models.WorkoutSet) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("append raw sets: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
		INSERT INTO workout_sets_raw
			(workout_date, location, exercise_id, exercise_name, muscle_group,
			 category, set_number, reps, weight, time, distance, rpe, volume,
			 batch_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("append raw sets: %w", err)
	}
	defer stmt.Close()

	for _, s := range sets {
		_, err := stmt.Exec(
			nullString(s.WorkoutDate),
			s.Location,
			s.ExerciseID,
			s.ExerciseName,
			s.MuscleGroup,
			s.Category,
			s.SetNumber,
			s.Reps,
			s.Weight,
			s.Time,
			s.Distance,
			s.RPE,
			s.Volume,
			s.BatchID.String(),
			s.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("append raw set %q #%d: %w", s.ExerciseName, s.SetNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("append raw sets: %w", err)
	}
	return nil
}

// ReplaceCleanDay deletes every clean row for the date and inserts the
// batch, both inside a single transaction so a concurrent reader never
// observes a half-replaced day and a failed insert rolls the delete back.
func (d *DB) ReplaceCleanDay(workoutDate string, sets []models.WorkoutSet) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("replace clean day: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM workout_sets WHERE workout_date = ?", workoutDate); err != nil {
		return fmt.Errorf("replace clean day: delete %s: %w", workoutDate, err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO workout_sets
			(workout_date, exercise_id, set_number, reps, weight, time,
			 distance, rpe, volume)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("replace clean day: %w", err)
	}
	defer stmt.Close()

	for _, s := range sets {
		_, err := stmt.Exec(
			nullString(s.WorkoutDate),
			s.ExerciseID,
			s.SetNumber,
			s.Reps,
			s.Weight,
			s.Time,
			s.Distance,
			s.RPE,
			s.Volume,
		)
		if err != nil {
			return fmt.Errorf("replace clean day: insert %q #%d: %w", s.ExerciseName, s.SetNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace clean day: %w", err)
	}
	return nil
}

// CleanSetsForDate returns the clean rows for one workout date, ordered
// by exercise and set number.
func (d *DB) CleanSetsForDate(workoutDate string) ([]models.WorkoutSet, error) {
	rows, err := d.db.Query(`
		SELECT workout_date, exercise_id, set_number, reps, weight, time,
		       distance, rpe, volume
		FROM workout_sets
		WHERE workout_date = ?
		ORDER BY exercise_id, set_number
	`, workoutDate)
	if err != nil {
		return nil, fmt.Errorf("clean sets for date: %w", err)
	}
	defer rows.Close()

	var sets []models.WorkoutSet
	for rows.Next() {
		var s models.WorkoutSet
		var exerciseID sql.NullInt64
		var reps, weight, tm, distance, volume sql.NullFloat64
		var rpe sql.NullInt64

		err := rows.Scan(&s.WorkoutDate, &exerciseID, &s.SetNumber,
			&reps, &weight, &tm, &distance, &rpe, &volume)
		if err != nil {
			return nil, fmt.Errorf("scan clean set: %w", err)
		}

		if exerciseID.Valid {
			s.ExerciseID = &exerciseID.Int64
		}
		if reps.Valid {
			s.Reps = &reps.Float64
		}
		if weight.Valid {
			s.Weight = &weight.Float64
		}
		if tm.Valid {
			s.Time = &tm.Float64
		}
		if distance.Valid {
			s.Distance = &distance.Float64
		}
		if rpe.Valid {
			r := int(rpe.Int64)
			s.RPE = &r
		}
		if volume.Valid {
			s.Volume = &volume.Float64
		}

		sets = append(sets, s)
	}
	return sets, rows.Err()
}

// nullString maps an empty cell to NULL so NOT NULL constraints catch
// a batch that never got a workout_date.
func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
