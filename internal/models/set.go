// ABOUTME: WorkoutSet model for one logged set of an exercise.
// ABOUTME: Pointer fields represent nullable columns; Volume is derived.
package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutSet is one logged set after transformation. Raw rows are
// append-only; the clean table holds one row per
// (workout_date, exercise_id, set_number).
type WorkoutSet struct {
	WorkoutDate  string
	Location     string
	ExerciseID   *int64
	ExerciseName string
	MuscleGroup  *string
	Category     *string
	SetNumber    int
	Reps         *float64
	Weight       *float64
	Time         *float64
	Distance     *float64
	RPE          *int
	Volume       *float64
	BatchID      uuid.UUID
	CreatedAt    time.Time
}

// ComputeVolume derives volume as weight * reps. If either operand is
// missing the volume stays nil, never zero; time/distance-only cardio
// sets therefore carry no volume.
func (s *WorkoutSet) ComputeVolume() {
	if s.Weight == nil || s.Reps == nil {
		s.Volume = nil
		return
	}
	v := *s.Weight * *s.Reps
	s.Volume = &v
}

// LinkExercise fills the reference columns from a matched Exercise.
func (s *WorkoutSet) LinkExercise(ex Exercise) {
	id := ex.ID
	mg := ex.MuscleGroup
	cat := ex.Category
	s.ExerciseID = &id
	s.MuscleGroup = &mg
	s.Category = &cat
}
