package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/Josh-Abbott/timeline-schedule-go/internal/api"
)

var portFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Run: func(cmd *cobra.Command, args []string) {
		if portFlag != "" {
			cfg.Port = portFlag
		}

		db, err := openDB()
		if err != nil {
			exitErr("failed to open database", err)
		}
		defer db.Close()

		router := api.SetupRouter(cfg, db)
		log.Printf("Server starting on %s", cfg.Port)
		if err := router.Run(cfg.Port); err != nil {
			exitErr("server failed", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVarP(&portFlag, "port", "p", "", "Listen address (default: $PORT or :8080)")
	RootCmd.AddCommand(serveCmd)
}
