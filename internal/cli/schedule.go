package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Josh-Abbott/timeline-schedule-go/internal/render"
	"github.com/Josh-Abbott/timeline-schedule-go/internal/repository"
	"github.com/Josh-Abbott/timeline-schedule-go/internal/schedule"
	"github.com/Josh-Abbott/timeline-schedule-go/internal/service"
)

var (
	startPeriod string
	endPeriod   string
	maxNameLen  int
	noColor     bool
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Render the weekly schedule for a reporting window",
	Run: func(cmd *cobra.Command, args []string) {
		if startPeriod == "" {
			startPeriod = cfg.StartPeriod
		}
		if endPeriod == "" {
			endPeriod = cfg.EndPeriod
		}
		if startPeriod == "" || endPeriod == "" {
			fmt.Fprintln(os.Stderr, "error: --start and --end are required (YYYY-MM-DD)")
			os.Exit(1)
		}
		if !cmd.Flags().Changed("max-name-length") {
			maxNameLen = cfg.MaxNameLength
		}

		db, err := openDB()
		if err != nil {
			exitErr("failed to open database", err)
		}
		defer db.Close()

		svc := service.NewScheduleService(repository.NewVisitRepository(db))
		resp, err := svc.WeeklySchedule(startPeriod, endPeriod, maxNameLen)
		if err != nil {
			if errors.Is(err, schedule.ErrNoVisits) {
				fmt.Println("No place visits in the specified time range.")
				return
			}
			exitErr("failed to build schedule", err)
		}

		render.Weekly(os.Stdout, resp, noColor)
	},
}

func init() {
	scheduleCmd.Flags().StringVar(&startPeriod, "start", "", "Start of the reporting window, inclusive (YYYY-MM-DD)")
	scheduleCmd.Flags().StringVar(&endPeriod, "end", "", "End of the reporting window, inclusive (YYYY-MM-DD)")
	scheduleCmd.Flags().IntVar(&maxNameLen, "max-name-length", schedule.DefaultMaxNameLength, "Display truncation for place names")
	scheduleCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	RootCmd.AddCommand(scheduleCmd)
}
