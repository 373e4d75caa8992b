// ABOUTME: Root Cobra command for gymsheet CLI.
// ABOUTME: Handles config loading and database lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperreed/gymsheet/internal/config"
	"github.com/harperreed/gymsheet/internal/storage"
)

var (
	cfg   *config.Config
	store *storage.DB

	dbPathFlag string
)

var rootCmd = &cobra.Command{
	Use:   "gymsheet",
	Short: "Workout spreadsheet ETL",
	Long: `Gymsheet moves logged gym sessions from a Google spreadsheet into a
local SQLite database.

HOW IT WORKS:

  Log sets on your phone in the Workout_Input worksheet during a
  session, fill the Session_Info fields (date, location, length),
  then run the pipeline:

  $ gymsheet run       # extract, transform, load, clear the sheet
  $ gymsheet stats     # totals and top muscle groups by volume

THE DATA:

  exercises          reference list, replaced from the sheet each run
  workout_sets_raw   append-only audit log of every ingested set
  workout_sets       one row per (date, exercise, set), rebuilt per date

  Volume is weight x reps per strength set. Cardio sets (time or
  distance only) are stored with no volume.

CONFIGURATION (environment, .env supported):

  SHEET_ID                  spreadsheet identifier
  GOOGLE_CREDENTIALS_FILE   service-account key file path
  GOOGLE_CREDENTIALS_JSON   inline key, raw or base64 (wins over file)
  GYMSHEET_DB_PATH          database path (default: XDG data dir)`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip setup for commands that don't touch the database
		if cmd.Name() == "help" || cmd.Name() == "version" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}
		if dbPathFlag != "" {
			cfg.DBPath = dbPathFlag
		}

		dbPath := cfg.GetDBPath()
		if dbPath == "" {
			dbPath = storage.DefaultDBPath()
		}
		store, err = storage.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "db", "",
		"path to the SQLite database (overrides GYMSHEET_DB_PATH)")
}
