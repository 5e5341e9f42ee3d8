package service

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/Josh-Abbott/timeline-schedule-go/internal/archive"
	"github.com/Josh-Abbott/timeline-schedule-go/internal/database"
	"github.com/Josh-Abbott/timeline-schedule-go/internal/models"
	"github.com/Josh-Abbott/timeline-schedule-go/internal/repository"
	"github.com/Josh-Abbott/timeline-schedule-go/internal/timeline"
)

// IngestOptions controls one ingest run.
type IngestOptions struct {
	DataDir           string
	VisitConfidence   float64 // 0-100 threshold reported against place visits
	DropLowConfidence bool    // drop LOW-confidence activity segments
	KeepExtracted     bool    // keep the extraction scratch dir after a bundle
}

// IngestReport summarizes one ingest run.
type IngestReport struct {
	RunID                string `json:"runId"`
	Bundles              int    `json:"bundles"`
	Documents            int    `json:"documents"`
	SkippedDocuments     int    `json:"skippedDocuments"` // unreadable, undecodable, or missing timelineObjects
	SegmentsKept         int    `json:"segmentsKept"`
	SegmentsDropped      int    `json:"segmentsDropped"` // rejected by the confidence filter
	VisitsStored         int    `json:"visitsStored"`
	VisitsBelowThreshold int    `json:"visitsBelowThreshold"` // stored, but hidden from curated reads
}

// IngestService runs the export-to-store pipeline: unpack bundles, parse each
// timeline document, and append the records. LOW-confidence segments are
// filtered out before persistence; place visits are stored in full so the
// schedule aggregator keeps the whole sample, with the confidence threshold
// applied on curated reads instead.
type IngestService struct {
	db       *sql.DB
	segments *repository.SegmentRepository
	visits   *repository.VisitRepository
}

// NewIngestService creates a new ingest service.
func NewIngestService(db *sql.DB, segments *repository.SegmentRepository, visits *repository.VisitRepository) *IngestService {
	return &IngestService{db: db, segments: segments, visits: visits}
}

// Run ingests every *.zip bundle in the data dir, then every loose *.json
// document sitting there. Malformed documents are counted and skipped, never
// retried; no per-document failure aborts the run.
func (s *IngestService) Run(opts IngestOptions) (*IngestReport, error) {
	report := &IngestReport{RunID: uuid.NewString()}

	zips, err := archive.Zips(opts.DataDir)
	if err != nil {
		return nil, err
	}
	for _, zipPath := range zips {
		if err := s.ingestBundle(zipPath, opts, report); err != nil {
			return nil, err
		}
		report.Bundles++
	}

	loose, err := archive.LooseDocuments(opts.DataDir)
	if err != nil {
		return nil, err
	}
	if err := s.ingestDocuments(loose, opts, report); err != nil {
		return nil, err
	}

	log.Printf("ingest %s: %d bundles, %d documents (%d skipped), %d segments kept (%d dropped), %d visits stored (%d below threshold)",
		report.RunID, report.Bundles, report.Documents, report.SkippedDocuments,
		report.SegmentsKept, report.SegmentsDropped, report.VisitsStored, report.VisitsBelowThreshold)
	return report, nil
}

func (s *IngestService) ingestBundle(zipPath string, opts IngestOptions, report *IngestReport) error {
	scratch := filepath.Join(opts.DataDir, "extracted", filepath.Base(zipPath))
	if err := archive.ExtractZip(zipPath, scratch); err != nil {
		return err
	}
	if !opts.KeepExtracted {
		defer func() {
			if err := archive.Cleanup(scratch); err != nil {
				log.Printf("failed to clean up %s: %v", scratch, err)
			}
		}()
	}

	files, err := archive.SemanticFiles(scratch)
	if err != nil {
		return err
	}
	return s.ingestDocuments(files, opts, report)
}

// ingestDocuments parses documents concurrently (each document is independent)
// and persists the concatenated results in file order within one transaction.
func (s *IngestService) ingestDocuments(paths []string, opts IngestOptions, report *IngestReport) error {
	if len(paths) == 0 {
		return nil
	}

	results := make([][]timeline.Record, len(paths))
	skipped := make([]bool, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			records, err := parseDocumentFile(path)
			if err != nil {
				skipped[i] = true
				if errors.Is(err, timeline.ErrNoTimeline) {
					log.Printf("'timelineObjects' not found in %s, skipping", path)
				} else {
					log.Printf("skipping %s: %v", path, err)
				}
				return
			}
			results[i] = records
		}(i, path)
	}
	wg.Wait()

	var keptSegments []*models.ActivitySegment
	var allVisits []*models.PlaceVisit
	for i := range paths {
		report.Documents++
		if skipped[i] {
			report.SkippedDocuments++
			continue
		}
		for _, rec := range results[i] {
			switch rec.Kind {
			case timeline.KindSegment:
				if timeline.AcceptSegment(rec.Segment, opts.DropLowConfidence) {
					keptSegments = append(keptSegments, rec.Segment)
				} else {
					report.SegmentsDropped++
				}
			case timeline.KindVisit:
				// Visits are persisted regardless of confidence: the weekly
				// aggregator needs the full sample for slot coverage. The
				// threshold only marks what curated reads will hide.
				allVisits = append(allVisits, rec.Visit)
				if !timeline.AcceptVisit(rec.Visit, opts.VisitConfidence) {
					report.VisitsBelowThreshold++
				}
			}
		}
	}

	err := database.Transaction(s.db, func(tx *sql.Tx) error {
		if err := s.segments.AppendBatch(tx, keptSegments); err != nil {
			return err
		}
		return s.visits.AppendBatch(tx, allVisits)
	})
	if err != nil {
		return fmt.Errorf("failed to persist records: %w", err)
	}

	report.SegmentsKept += len(keptSegments)
	report.VisitsStored += len(allVisits)
	return nil
}

func parseDocumentFile(path string) ([]timeline.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return timeline.ParseDocument(data)
}
