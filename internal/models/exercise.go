// ABOUTME: Exercise reference entity loaded from the Exercises worksheet.
// ABOUTME: Logged sets join against it by exact exercise_name match.
package models

// Exercise is one row of the reference list. The list is fully replaced
// from the spreadsheet on every run; the spreadsheet is the source of truth.
type Exercise struct {
	ID          int64
	Name        string
	MuscleGroup string
	Category    string
}
