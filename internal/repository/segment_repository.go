package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Josh-Abbott/timeline-schedule-go/internal/models"
)

// SegmentRepository handles database operations for activity segments.
type SegmentRepository struct {
	db *sql.DB
}

// NewSegmentRepository creates a new segment repository.
func NewSegmentRepository(db *sql.DB) *SegmentRepository {
	return &SegmentRepository{db: db}
}

const segmentColumns = `start_timestamp, end_timestamp, start_latitude, start_longitude,
	end_latitude, end_longitude, distance_meters, confidence, travel_mode`

// Append inserts one activity segment. The store owns the id.
func (r *SegmentRepository) Append(seg *models.ActivitySegment) error {
	_, err := r.db.Exec(`INSERT INTO activity_segments (`+segmentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seg.StartTimestamp, seg.EndTimestamp,
		seg.StartLatitude, seg.StartLongitude,
		seg.EndLatitude, seg.EndLongitude,
		seg.DistanceMeters, seg.Confidence, seg.TravelMode)
	if err != nil {
		return fmt.Errorf("failed to insert activity segment: %w", err)
	}
	return nil
}

// AppendBatch inserts segments within a single transaction.
func (r *SegmentRepository) AppendBatch(tx *sql.Tx, segments []*models.ActivitySegment) error {
	stmt, err := tx.Prepare(`INSERT INTO activity_segments (` + segmentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare segment insert: %w", err)
	}
	defer stmt.Close()

	for _, seg := range segments {
		if _, err := stmt.Exec(
			seg.StartTimestamp, seg.EndTimestamp,
			seg.StartLatitude, seg.StartLongitude,
			seg.EndLatitude, seg.EndLongitude,
			seg.DistanceMeters, seg.Confidence, seg.TravelMode); err != nil {
			return fmt.Errorf("failed to insert activity segment: %w", err)
		}
	}
	return nil
}

// List retrieves activity segments with filtering and pagination.
func (r *SegmentRepository) List(filter models.SegmentFilter) ([]models.ActivitySegment, int64, error) {
	query := `SELECT id, ` + segmentColumns + ` FROM activity_segments`

	var conditions []string
	var args []interface{}

	if filter.Confidence != "" {
		conditions = append(conditions, "confidence = ?")
		args = append(args, strings.ToUpper(filter.Confidence))
	}
	if filter.TravelMode != "" {
		conditions = append(conditions, "travel_mode = ?")
		args = append(args, filter.TravelMode)
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM activity_segments"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count activity segments: %w", err)
	}

	page, pageSize := normalizePage(filter.Page, filter.PageSize)
	query += where + " ORDER BY id LIMIT ? OFFSET ?"
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query activity segments: %w", err)
	}
	defer rows.Close()

	var segments []models.ActivitySegment
	for rows.Next() {
		var seg models.ActivitySegment
		if err := rows.Scan(&seg.ID, &seg.StartTimestamp, &seg.EndTimestamp,
			&seg.StartLatitude, &seg.StartLongitude,
			&seg.EndLatitude, &seg.EndLongitude,
			&seg.DistanceMeters, &seg.Confidence, &seg.TravelMode); err != nil {
			return nil, 0, fmt.Errorf("failed to scan activity segment: %w", err)
		}
		segments = append(segments, seg)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read activity segments: %w", err)
	}
	return segments, total, nil
}

// Count returns the number of stored activity segments.
func (r *SegmentRepository) Count() (int64, error) {
	var n int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM activity_segments").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count activity segments: %w", err)
	}
	return n, nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 1000 {
		pageSize = 100
	}
	return page, pageSize
}
