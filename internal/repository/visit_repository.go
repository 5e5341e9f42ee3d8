package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Josh-Abbott/timeline-schedule-go/internal/models"
)

// VisitRepository handles database operations for place visits.
type VisitRepository struct {
	db *sql.DB
}

// NewVisitRepository creates a new visit repository.
func NewVisitRepository(db *sql.DB) *VisitRepository {
	return &VisitRepository{db: db}
}

const visitColumns = `place_name, place_id, latitude, longitude, address,
	start_timestamp, end_timestamp, visit_confidence`

// Append inserts one place visit. An absent visit_confidence is stored as
// NULL, never as 0.
func (r *VisitRepository) Append(visit *models.PlaceVisit) error {
	_, err := r.db.Exec(`INSERT INTO place_visits (`+visitColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		visit.PlaceName, visit.PlaceID,
		visit.Latitude, visit.Longitude, visit.Address,
		visit.StartTimestamp, visit.EndTimestamp, visit.VisitConfidence)
	if err != nil {
		return fmt.Errorf("failed to insert place visit: %w", err)
	}
	return nil
}

// AppendBatch inserts visits within a single transaction.
func (r *VisitRepository) AppendBatch(tx *sql.Tx, visits []*models.PlaceVisit) error {
	stmt, err := tx.Prepare(`INSERT INTO place_visits (` + visitColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare visit insert: %w", err)
	}
	defer stmt.Close()

	for _, visit := range visits {
		if _, err := stmt.Exec(
			visit.PlaceName, visit.PlaceID,
			visit.Latitude, visit.Longitude, visit.Address,
			visit.StartTimestamp, visit.EndTimestamp, visit.VisitConfidence); err != nil {
			return fmt.Errorf("failed to insert place visit: %w", err)
		}
	}
	return nil
}

// List retrieves place visits with filtering and pagination.
func (r *VisitRepository) List(filter models.VisitFilter) ([]models.PlaceVisit, int64, error) {
	query := `SELECT id, ` + visitColumns + ` FROM place_visits`

	var conditions []string
	var args []interface{}

	if filter.PlaceName != "" {
		conditions = append(conditions, "place_name LIKE ?")
		args = append(args, "%"+filter.PlaceName+"%")
	}
	if filter.PlaceID != "" {
		conditions = append(conditions, "place_id = ?")
		args = append(args, filter.PlaceID)
	}
	if filter.MinConfidence > 0 {
		conditions = append(conditions, "visit_confidence >= ?")
		args = append(args, filter.MinConfidence)
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM place_visits"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count place visits: %w", err)
	}

	page, pageSize := normalizePage(filter.Page, filter.PageSize)
	query += where + " ORDER BY id LIMIT ? OFFSET ?"
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query place visits: %w", err)
	}
	defer rows.Close()

	var visits []models.PlaceVisit
	for rows.Next() {
		var v models.PlaceVisit
		if err := rows.Scan(&v.ID, &v.PlaceName, &v.PlaceID,
			&v.Latitude, &v.Longitude, &v.Address,
			&v.StartTimestamp, &v.EndTimestamp, &v.VisitConfidence); err != nil {
			return nil, 0, fmt.Errorf("failed to scan place visit: %w", err)
		}
		visits = append(visits, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read place visits: %w", err)
	}
	return visits, total, nil
}

// ListForSchedule loads only the fields the weekly aggregator needs, in
// insertion order so downstream tie-breaks stay deterministic.
func (r *VisitRepository) ListForSchedule() ([]models.PlaceVisit, error) {
	rows, err := r.db.Query("SELECT place_name, start_timestamp FROM place_visits ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query visits for schedule: %w", err)
	}
	defer rows.Close()

	var visits []models.PlaceVisit
	for rows.Next() {
		var v models.PlaceVisit
		if err := rows.Scan(&v.PlaceName, &v.StartTimestamp); err != nil {
			return nil, fmt.Errorf("failed to scan visit for schedule: %w", err)
		}
		visits = append(visits, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read visits for schedule: %w", err)
	}
	return visits, nil
}

// DistinctPlaces returns the distinct non-null place names in id order.
func (r *VisitRepository) DistinctPlaces() ([]string, error) {
	rows, err := r.db.Query(`SELECT place_name FROM place_visits
		WHERE place_name IS NOT NULL GROUP BY place_name ORDER BY MIN(id)`)
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct places: %w", err)
	}
	defer rows.Close()

	var places []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan place name: %w", err)
		}
		places = append(places, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read place names: %w", err)
	}
	return places, nil
}

// Count returns the number of stored place visits.
func (r *VisitRepository) Count() (int64, error) {
	var n int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM place_visits").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count place visits: %w", err)
	}
	return n, nil
}
