// ABOUTME: Read-only aggregate queries over the raw audit log.
// ABOUTME: Powers the stats command and the post-run summary; no side effects.
package storage

import (
	"database/sql"
	"fmt"
)

// Grouping dimensions accepted by TopByVolume. Interpolated into SQL,
// so anything outside this whitelist is rejected.
const (
	DimensionMuscleGroup = "muscle_group"
	DimensionExercise    = "exercise_name"
)

// VolumeRow is one entry of a top-N volume ranking.
type VolumeRow struct {
	Label       string
	TotalVolume float64
}

// TotalSets counts every row ever appended to the raw log.
func (d *DB) TotalSets() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM workout_sets_raw").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("total sets: %w", err)
	}
	return n, nil
}

// DistinctDates counts unique workout dates in the raw log.
func (d *DB) DistinctDates() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(DISTINCT workout_date) FROM workout_sets_raw").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("distinct dates: %w", err)
	}
	return n, nil
}

// TopByVolume ranks a grouping dimension by summed volume, descending.
// Rows with NULL volume (cardio sets, incomplete entries) are excluded
// from the sum entirely.
func (d *DB) TopByVolume(dimension string, limit int) ([]VolumeRow, error) {
	if dimension != DimensionMuscleGroup && dimension != DimensionExercise {
		return nil, fmt.Errorf("invalid dimension %q: use %s or %s",
			dimension, DimensionMuscleGroup, DimensionExercise)
	}
	if limit <= 0 {
		limit = 5
	}

	query := fmt.Sprintf(`
		SELECT %s, SUM(volume) AS total_volume
		FROM workout_sets_raw
		WHERE volume IS NOT NULL
		GROUP BY %s
		ORDER BY total_volume DESC
		LIMIT ?
	`, dimension, dimension)

	rows, err := d.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("top by %s: %w", dimension, err)
	}
	defer rows.Close()

	var ranking []VolumeRow
	for rows.Next() {
		var r VolumeRow
		var label sql.NullString
		if err := rows.Scan(&label, &r.TotalVolume); err != nil {
			return nil, fmt.Errorf("scan volume row: %w", err)
		}
		if label.Valid {
			r.Label = label.String
		} else {
			r.Label = "(unknown)"
		}
		ranking = append(ranking, r)
	}
	return ranking, rows.Err()
}
