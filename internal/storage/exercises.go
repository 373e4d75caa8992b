// ABOUTME: Exercise reference table operations.
// ABOUTME: The reference list is fully replaced from the spreadsheet each run.
package storage

import (
	"fmt"

	"github.com/harperreed/gymsheet/internal/models"
)

// ReplaceExercises swaps the whole reference table for the given list
// in one transaction. Not additive: an exercise removed from the
// spreadsheet disappears here even if old set rows still reference it.
func (d *DB) ReplaceExercises(exercises []models.Exercise) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("replace exercises: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM exercises"); err != nil {
		return fmt.Errorf("replace exercises: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO exercises (exercise_id, exercise_name, muscle_group, category)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("replace exercises: %w", err)
	}
	defer stmt.Close()

	for _, ex := range exercises {
		if _, err := stmt.Exec(ex.ID, ex.Name, ex.MuscleGroup, ex.Category); err != nil {
			return fmt.Errorf("replace exercises: insert %q: %w", ex.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace exercises: %w", err)
	}
	return nil
}

// ListExercises returns the current reference list, ordered by id.
func (d *DB) ListExercises() ([]models.Exercise, error) {
	rows, err := d.db.Query(`
		SELECT exercise_id, exercise_name, muscle_group, category
		FROM exercises
		ORDER BY exercise_id
	`)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	var exercises []models.Exercise
	for rows.Next() {
		var ex models.Exercise
		if err := rows.Scan(&ex.ID, &ex.Name, &ex.MuscleGroup, &ex.Category); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, ex)
	}
	return exercises, rows.Err()
}
