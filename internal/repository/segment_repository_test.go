package repository

import (
	"database/sql"
	"testing"

	"github.com/Josh-Abbott/timeline-schedule-go/internal/database"
	"github.com/Josh-Abbott/timeline-schedule-go/internal/models"
)

func TestSegmentRepository_AppendAndList(t *testing.T) {
	db := testDB(t)
	repo := NewSegmentRepository(db)

	lat := 37.422
	seed := []*models.ActivitySegment{
		{Confidence: "HIGH", StartLatitude: &lat, TravelMode: strPtr("DRIVE"),
			StartTimestamp: strPtr("2019-01-07T08:30:00Z"), DistanceMeters: f64Ptr(1200)},
		{Confidence: "MEDIUM", TravelMode: strPtr("WALK")},
		{Confidence: "HIGH"},
	}
	err := database.Transaction(db, func(tx *sql.Tx) error {
		return repo.AppendBatch(tx, seed)
	})
	if err != nil {
		t.Fatalf("batch append failed: %v", err)
	}

	segments, total, err := repo.List(models.SegmentFilter{Confidence: "high"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 {
		t.Errorf("expected 2 HIGH segments, got %d", total)
	}
	if len(segments) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(segments))
	}

	first := segments[0]
	if first.StartLatitude == nil || *first.StartLatitude != 37.422 {
		t.Errorf("unexpected start latitude: %v", first.StartLatitude)
	}
	if first.StartTimestamp == nil || *first.StartTimestamp != "2019-01-07T08:30:00Z" {
		t.Errorf("timestamp not stored verbatim: %v", first.StartTimestamp)
	}
	// Absent coordinates stay NULL.
	if first.EndLatitude != nil || first.EndLongitude != nil {
		t.Error("absent end coordinates should round-trip as nil")
	}

	_, total, err = repo.List(models.SegmentFilter{TravelMode: "WALK"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 {
		t.Errorf("expected 1 WALK segment, got %d", total)
	}
}

func TestSegmentRepository_Pagination(t *testing.T) {
	db := testDB(t)
	repo := NewSegmentRepository(db)

	var seed []*models.ActivitySegment
	for i := 0; i < 25; i++ {
		seed = append(seed, &models.ActivitySegment{Confidence: "HIGH"})
	}
	err := database.Transaction(db, func(tx *sql.Tx) error {
		return repo.AppendBatch(tx, seed)
	})
	if err != nil {
		t.Fatalf("batch append failed: %v", err)
	}

	segments, total, err := repo.List(models.SegmentFilter{Page: 2, PageSize: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 25 {
		t.Errorf("expected total 25, got %d", total)
	}
	if len(segments) != 10 {
		t.Errorf("expected page of 10, got %d", len(segments))
	}
	if segments[0].ID != 11 {
		t.Errorf("expected page 2 to start at id 11, got %d", segments[0].ID)
	}
}
