// ABOUTME: Transformer for raw worksheet data into normalized workout sets.
// ABOUTME: Joins sets to the exercise reference, coerces numerics, derives volume.
package transform

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/gymsheet/internal/gsheets"
	"github.com/harperreed/gymsheet/internal/models"
)

// Batch is one transformed run worth of data, ready for loading.
type Batch struct {
	BatchID   uuid.UUID
	Session   models.Session
	Exercises []models.Exercise
	Sets      []models.WorkoutSet

	// Warnings are data-quality issues that do not drop rows:
	// unmatched exercise names, unparseable reference rows.
	Warnings []string
}

// Transform normalizes one extract. Steps run in a fixed order:
// session lookup, broadcast of date/location, reference join, numeric
// coercion, volume derivation, timestamp stamping, blank-row filter.
// Data-quality problems become warnings, never errors; rows survive
// with null fields instead of being dropped.
func Transform(ext *gsheets.Extract, batchID uuid.UUID, at time.Time) (*Batch, error) {
	if ext == nil || ext.Session == nil || ext.Exercises == nil || ext.Input == nil {
		return nil, fmt.Errorf("incomplete extract: all three worksheets are required")
	}

	b := &Batch{BatchID: batchID}
	b.Session = parseSession(ext.Session)
	b.Exercises = parseExercises(ext.Exercises, b)

	byName := make(map[string]models.Exercise, len(b.Exercises))
	for _, ex := range b.Exercises {
		byName[ex.Name] = ex
	}

	for _, rec := range ext.Input.Records() {
		name := strings.TrimSpace(rec["exercise_name"])
		if name == "" {
			// Blank spreadsheet row, not real data.
			continue
		}

		set := models.WorkoutSet{
			WorkoutDate:  b.Session.WorkoutDate,
			Location:     b.Session.Location,
			ExerciseName: name,
			BatchID:      batchID,
			CreatedAt:    at,
			Reps:         parseFloat(rec["reps"]),
			Weight:       parseFloat(rec["weight"]),
			Time:         parseFloat(rec["time"]),
			Distance:     parseFloat(rec["distance"]),
			RPE:          parseInt(rec["rpe"]),
		}
		if n := parseInt(rec["set"]); n != nil {
			set.SetNumber = *n
		}

		// Case-sensitive exact match; unmatched names keep null
		// reference columns and are surfaced, not dropped.
		if ex, ok := byName[name]; ok {
			set.LinkExercise(ex)
		} else {
			b.Warnings = append(b.Warnings, fmt.Sprintf("exercise %q not in reference list; stored without exercise_id", name))
		}

		set.ComputeVolume()
		b.Sets = append(b.Sets, set)
	}

	return b, nil
}

// parseSession collapses the Session_Info field/value pairs. A missing
// workout_date stays empty here; the store rejects it later.
func parseSession(t *gsheets.Table) models.Session {
	fields := make(map[string]string)
	for _, rec := range t.Records() {
		fields[strings.TrimSpace(rec["field"])] = strings.TrimSpace(rec["value"])
	}
	return models.Session{
		WorkoutDate:   fields["workout_date"],
		Location:      fields["location"],
		WorkoutLength: fields["workout_length"],
		Comments:      fields["comments"],
	}
}

// parseExercises reads the reference list. Rows without a usable
// exercise_id cannot be joined or stored, so they are skipped with a
// warning.
func parseExercises(t *gsheets.Table, b *Batch) []models.Exercise {
	var exercises []models.Exercise
	for _, rec := range t.Records() {
		name := strings.TrimSpace(rec["exercise_name"])
		if name == "" {
			continue
		}
		id, err := strconv.ParseInt(strings.TrimSpace(rec["exercise_id"]), 10, 64)
		if err != nil {
			b.Warnings = append(b.Warnings, fmt.Sprintf("exercise %q has no numeric exercise_id; skipped from reference", name))
			continue
		}
		exercises = append(exercises, models.Exercise{
			ID:          id,
			Name:        name,
			MuscleGroup: strings.TrimSpace(rec["muscle_group"]),
			Category:    strings.TrimSpace(rec["category"]),
		})
	}
	return exercises
}

// parseFloat coerces a cell to a number. Empty or non-numeric cells
// become nil rather than an error.
func parseFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseInt coerces a cell to an integer, tolerating float formatting
// like "8.0" that spreadsheets produce.
func parseInt(s string) *int {
	f := parseFloat(s)
	if f == nil {
		return nil
	}
	v := int(*f)
	return &v
}
