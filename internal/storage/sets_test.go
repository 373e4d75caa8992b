// ABOUTME: Tests for raw append and clean-day replacement semantics.
// ABOUTME: Covers rerun idempotency, null columns, and the date NOT NULL guard.
package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/gymsheet/internal/models"
)

func TestAppendRawIsNeverDeduped(t *testing.T) {
	d := setupTestDB(t)

	batch := []models.WorkoutSet{
		strengthSet("2026-01-05", 3, 1, 10, 60),
		strengthSet("2026-01-05", 3, 2, 8, 62.5),
	}

	// Same batch twice: the audit log grows both times.
	if err := d.AppendRawSets(batch); err != nil {
		t.Fatalf("first AppendRawSets failed: %v", err)
	}
	if err := d.AppendRawSets(batch); err != nil {
		t.Fatalf("second AppendRawSets failed: %v", err)
	}

	total, err := d.TotalSets()
	if err != nil {
		t.Fatalf("TotalSets failed: %v", err)
	}
	if total != 4 {
		t.Errorf("raw rows = %d, want 4", total)
	}
}

func TestReplaceCleanDayIsIdempotent(t *testing.T) {
	d := setupTestDB(t)

	batch := []models.WorkoutSet{
		strengthSet("2026-01-05", 3, 1, 10, 60),
		strengthSet("2026-01-05", 3, 2, 8, 62.5),
	}

	for i := 0; i < 2; i++ {
		if err := d.ReplaceCleanDay("2026-01-05", batch); err != nil {
			t.Fatalf("ReplaceCleanDay run %d failed: %v", i+1, err)
		}
	}

	clean, err := d.CleanSetsForDate("2026-01-05")
	if err != nil {
		t.Fatalf("CleanSetsForDate failed: %v", err)
	}
	if len(clean) != 2 {
		t.Errorf("clean rows = %d, want 2", len(clean))
	}
}

func TestReplaceCleanDayReplacesNotMerges(t *testing.T) {
	d := setupTestDB(t)

	three := []models.WorkoutSet{
		strengthSet("2026-01-05", 3, 1, 10, 60),
		strengthSet("2026-01-05", 3, 2, 8, 62.5),
		strengthSet("2026-01-05", 3, 3, 6, 65),
	}
	if err := d.ReplaceCleanDay("2026-01-05", three); err != nil {
		t.Fatalf("ReplaceCleanDay(3 sets) failed: %v", err)
	}

	two := []models.WorkoutSet{
		strengthSet("2026-01-05", 3, 1, 10, 60),
		strengthSet("2026-01-05", 3, 2, 8, 62.5),
	}
	if err := d.ReplaceCleanDay("2026-01-05", two); err != nil {
		t.Fatalf("ReplaceCleanDay(2 sets) failed: %v", err)
	}

	clean, err := d.CleanSetsForDate("2026-01-05")
	if err != nil {
		t.Fatalf("CleanSetsForDate failed: %v", err)
	}
	if len(clean) != 2 {
		t.Errorf("clean rows = %d, want exactly 2 after shrinking rerun", len(clean))
	}
}

func TestReplaceCleanDayLeavesOtherDatesAlone(t *testing.T) {
	d := setupTestDB(t)

	if err := d.ReplaceCleanDay("2026-01-05", []models.WorkoutSet{
		strengthSet("2026-01-05", 3, 1, 10, 60),
	}); err != nil {
		t.Fatalf("ReplaceCleanDay failed: %v", err)
	}
	if err := d.ReplaceCleanDay("2026-01-07", []models.WorkoutSet{
		strengthSet("2026-01-07", 3, 1, 12, 55),
	}); err != nil {
		t.Fatalf("ReplaceCleanDay failed: %v", err)
	}

	clean, err := d.CleanSetsForDate("2026-01-05")
	if err != nil {
		t.Fatalf("CleanSetsForDate failed: %v", err)
	}
	if len(clean) != 1 {
		t.Errorf("2026-01-05 rows = %d, want 1", len(clean))
	}
}

func TestBenchPressScenario(t *testing.T) {
	d := setupTestDB(t)

	set := strengthSet("2026-01-05", 3, 1, 10, 60)
	if err := d.ReplaceCleanDay("2026-01-05", []models.WorkoutSet{set}); err != nil {
		t.Fatalf("ReplaceCleanDay failed: %v", err)
	}

	clean, err := d.CleanSetsForDate("2026-01-05")
	if err != nil {
		t.Fatalf("CleanSetsForDate failed: %v", err)
	}
	if len(clean) != 1 {
		t.Fatalf("clean rows = %d, want 1", len(clean))
	}

	got := clean[0]
	if got.ExerciseID == nil || *got.ExerciseID != 3 {
		t.Errorf("ExerciseID = %v, want 3", got.ExerciseID)
	}
	if got.SetNumber != 1 {
		t.Errorf("SetNumber = %d, want 1", got.SetNumber)
	}
	if got.Reps == nil || *got.Reps != 10 {
		t.Errorf("Reps = %v, want 10", got.Reps)
	}
	if got.Weight == nil || *got.Weight != 60 {
		t.Errorf("Weight = %v, want 60", got.Weight)
	}
	if got.Time != nil || got.Distance != nil {
		t.Errorf("Time/Distance should be null, got %v/%v", got.Time, got.Distance)
	}
	if got.Volume == nil || *got.Volume != 600 {
		t.Errorf("Volume = %v, want 600", got.Volume)
	}
}

func TestCardioSetPersistsWithNullVolume(t *testing.T) {
	d := setupTestDB(t)

	cardio := models.WorkoutSet{
		WorkoutDate:  "2026-01-05",
		ExerciseName: "Rowing Machine",
		ExerciseID:   iptr(7),
		SetNumber:    1,
		Time:         fptr(15),
		Distance:     fptr(3.0),
		BatchID:      uuid.New(),
		CreatedAt:    time.Now(),
	}
	cardio.ComputeVolume()

	if err := d.AppendRawSets([]models.WorkoutSet{cardio}); err != nil {
		t.Fatalf("AppendRawSets failed: %v", err)
	}
	if err := d.ReplaceCleanDay("2026-01-05", []models.WorkoutSet{cardio}); err != nil {
		t.Fatalf("ReplaceCleanDay failed: %v", err)
	}

	clean, err := d.CleanSetsForDate("2026-01-05")
	if err != nil {
		t.Fatalf("CleanSetsForDate failed: %v", err)
	}
	if len(clean) != 1 {
		t.Fatalf("clean rows = %d, want 1", len(clean))
	}
	if clean[0].Volume != nil {
		t.Errorf("Volume = %v, want null for cardio set", *clean[0].Volume)
	}
	if clean[0].Time == nil || *clean[0].Time != 15 {
		t.Errorf("Time = %v, want 15", clean[0].Time)
	}
}

func TestUnmatchedExercisePersistsWithNullID(t *testing.T) {
	d := setupTestDB(t)

	set := models.WorkoutSet{
		WorkoutDate:  "2026-01-05",
		ExerciseName: "Zercher Squat",
		SetNumber:    1,
		Reps:         fptr(5),
		Weight:       fptr(80),
		BatchID:      uuid.New(),
		CreatedAt:    time.Now(),
	}
	set.ComputeVolume()

	if err := d.AppendRawSets([]models.WorkoutSet{set}); err != nil {
		t.Fatalf("AppendRawSets failed: %v", err)
	}

	total, err := d.TotalSets()
	if err != nil {
		t.Fatalf("TotalSets failed: %v", err)
	}
	if total != 1 {
		t.Errorf("raw rows = %d, want 1", total)
	}
}

func TestAppendRawRejectsMissingWorkoutDate(t *testing.T) {
	d := setupTestDB(t)

	set := strengthSet("", 3, 1, 10, 60)
	if err := d.AppendRawSets([]models.WorkoutSet{set}); err == nil {
		t.Fatal("expected NOT NULL violation for missing workout_date")
	}

	// The transaction must have rolled back entirely.
	total, err := d.TotalSets()
	if err != nil {
		t.Fatalf("TotalSets failed: %v", err)
	}
	if total != 0 {
		t.Errorf("raw rows = %d, want 0 after rollback", total)
	}
}
