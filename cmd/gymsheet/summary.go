// ABOUTME: Shared database summary rendering for run and stats commands.
// ABOUTME: Uses go-pretty for the volume ranking table.
package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/harperreed/gymsheet/internal/storage"
)

// printSummary writes the aggregate report: totals plus a top-N volume
// ranking for the given dimension.
func printSummary(w io.Writer, store *storage.DB, dimension string, top int) error {
	total, err := store.TotalSets()
	if err != nil {
		return err
	}
	dates, err := store.DistinctDates()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Database summary:")
	fmt.Fprintf(w, "  Total sets logged: %d\n", total)
	fmt.Fprintf(w, "  Unique workout dates: %d\n", dates)

	ranking, err := store.TopByVolume(dimension, top)
	if err != nil {
		return err
	}
	if len(ranking) == 0 {
		fmt.Fprintln(w, "  No volume data yet.")
		return nil
	}

	fmt.Fprintf(w, "  Top %s by volume:\n", dimensionLabel(dimension))

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", dimensionLabel(dimension), "total volume"})
	for i, r := range ranking {
		t.AppendRow(table.Row{i + 1, r.Label, fmt.Sprintf("%.0f", r.TotalVolume)})
	}
	t.Render()

	return nil
}

func dimensionLabel(dimension string) string {
	if dimension == storage.DimensionExercise {
		return "exercises"
	}
	return "muscle groups"
}
