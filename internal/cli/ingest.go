package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Josh-Abbott/timeline-schedule-go/internal/repository"
	"github.com/Josh-Abbott/timeline-schedule-go/internal/service"
)

var (
	visitConfidence float64
	dropLow         bool
	keepExtracted   bool
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest export bundles from the data directory into the store",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := openDB()
		if err != nil {
			exitErr("failed to open database", err)
		}
		defer db.Close()

		if !cmd.Flags().Changed("visit-confidence") {
			visitConfidence = cfg.VisitConfidence
		}
		if !cmd.Flags().Changed("drop-low-confidence") {
			dropLow = cfg.DropLowConfidence
		}
		if !cmd.Flags().Changed("keep-extracted") {
			keepExtracted = cfg.KeepExtractedBundles
		}

		svc := service.NewIngestService(db,
			repository.NewSegmentRepository(db),
			repository.NewVisitRepository(db))

		report, err := svc.Run(service.IngestOptions{
			DataDir:           cfg.DataDir,
			VisitConfidence:   visitConfidence,
			DropLowConfidence: dropLow,
			KeepExtracted:     keepExtracted,
		})
		if err != nil {
			exitErr("ingest failed", err)
		}

		fmt.Printf("run %s\n", report.RunID)
		fmt.Printf("bundles:   %d\n", report.Bundles)
		fmt.Printf("documents: %d (%d skipped)\n", report.Documents, report.SkippedDocuments)
		fmt.Printf("segments:  %d kept, %d dropped\n", report.SegmentsKept, report.SegmentsDropped)
		fmt.Printf("visits:    %d stored, %d below threshold\n", report.VisitsStored, report.VisitsBelowThreshold)
	},
}

func init() {
	ingestCmd.Flags().Float64Var(&visitConfidence, "visit-confidence", 50, "Confidence threshold (0-100) reported against place visits; curated reads hide visits below it")
	ingestCmd.Flags().BoolVar(&dropLow, "drop-low-confidence", true, "Drop activity segments with LOW confidence")
	ingestCmd.Flags().BoolVar(&keepExtracted, "keep-extracted", false, "Keep extracted bundle contents after ingest")
	RootCmd.AddCommand(ingestCmd)
}
