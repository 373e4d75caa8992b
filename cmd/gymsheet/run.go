// ABOUTME: CLI command running the full ETL pipeline once.
// ABOUTME: Validates config before any I/O, then extract/transform/load/reset.
package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/gymsheet/internal/gsheets"
	"github.com/harperreed/gymsheet/internal/pipeline"
	"github.com/harperreed/gymsheet/internal/storage"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the workout ETL pipeline",
	Long: `Run one ETL pass: read the three input worksheets, normalize the
logged sets, load them into the local database, then clear the input
worksheets for the next session.

The run is sequential and aborts at the first failure. A failure
during the database load leaves the spreadsheet untouched, so the
same session can be re-run after fixing the problem. Re-running a
successful load for the same date is safe: the clean table is rebuilt
per date, and the raw log keeps every run on purpose.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Configuration errors abort before any I/O.
		if err := cfg.ValidateSource(); err != nil {
			return err
		}

		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		client, err := gsheets.NewClient(ctx, cfg)
		if err != nil {
			return err
		}

		if err := pipeline.New(client, store, out).Run(ctx); err != nil {
			return err
		}

		if err := printSummary(out, store, storage.DimensionMuscleGroup, defaultTopN); err != nil {
			return err
		}

		color.New(color.FgGreen).Fprintln(out, "✓ ETL pipeline completed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
