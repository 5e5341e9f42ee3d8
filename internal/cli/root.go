// Package cli implements the timeline CLI commands.
package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Josh-Abbott/timeline-schedule-go/internal/config"
	"github.com/Josh-Abbott/timeline-schedule-go/internal/database"
)

var (
	cfg      *config.Config
	dbFlag   string
	dataFlag string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Location-history weekly schedule tool",
	Long: "Ingests Semantic Location History exports into SQLite and derives a weekly\n" +
		"behavioral schedule: the most likely place for every day-of-week and hour.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		if dbFlag != "" {
			cfg.DBPath = dbFlag
		}
		if dataFlag != "" {
			cfg.DataDir = dataFlag
		}
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbFlag, "db", "d", "", "Database path (default: $DB_PATH or ./location_data.db)")
	RootCmd.PersistentFlags().StringVar(&dataFlag, "data-dir", "", "Export data directory (default: $DATA_DIR or ./data)")
}

func openDB() (*sql.DB, error) {
	return database.Open(cfg.DBPath)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
