// ABOUTME: CLI command showing read-only database aggregates.
// ABOUTME: Renders totals and a top-N volume ranking; no network access.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperreed/gymsheet/internal/storage"
)

const defaultTopN = 5

var (
	statsTop int
	statsBy  string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show database summary",
	Long: `Show aggregates over the raw workout log: total sets, unique
workout dates, and the top grouping dimension by summed volume.
Sets without a volume (cardio, incomplete rows) are left out of the
ranking.

Examples:
  gymsheet stats
  gymsheet stats --top 10 --by exercise`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dimension, err := dimensionFromFlag(statsBy)
		if err != nil {
			return err
		}
		return printSummary(cmd.OutOrStdout(), store, dimension, statsTop)
	},
}

// dimensionFromFlag maps the user-facing --by value onto a report
// dimension.
func dimensionFromFlag(by string) (string, error) {
	switch by {
	case "muscle", "muscle_group":
		return storage.DimensionMuscleGroup, nil
	case "exercise", "exercise_name":
		return storage.DimensionExercise, nil
	default:
		return "", fmt.Errorf("unknown --by value %q: use muscle or exercise", by)
	}
}

func init() {
	statsCmd.Flags().IntVar(&statsTop, "top", defaultTopN, "number of ranking rows to show")
	statsCmd.Flags().StringVar(&statsBy, "by", "muscle", "ranking dimension: muscle or exercise")
	rootCmd.AddCommand(statsCmd)
}
