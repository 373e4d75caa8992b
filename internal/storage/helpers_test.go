// ABOUTME: Shared test helpers for storage tests.
// ABOUTME: Provides setupTestDB and workout set builders.
package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/gymsheet/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	d, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func fptr(v float64) *float64 { return &v }
func iptr(v int64) *int64     { return &v }

// strengthSet builds a joined strength set with derived volume.
func strengthSet(date string, exerciseID int64, setNumber int, reps, weight float64) models.WorkoutSet {
	s := models.WorkoutSet{
		WorkoutDate:  date,
		Location:     "Home Gym",
		ExerciseID:   iptr(exerciseID),
		ExerciseName: "Bench Press",
		SetNumber:    setNumber,
		Reps:         fptr(reps),
		Weight:       fptr(weight),
		BatchID:      uuid.New(),
		CreatedAt:    time.Now(),
	}
	mg := "Chest"
	cat := "Strength"
	s.MuscleGroup = &mg
	s.Category = &cat
	s.ComputeVolume()
	return s
}
