package database

import (
	"database/sql"
	"fmt"
)

// Migration is one versioned schema change.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations holds the full schema in version order. The two record tables are
// fixed shapes; ids are store-owned AUTOINCREMENT keys.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_activity_segments",
		SQL: `CREATE TABLE IF NOT EXISTS activity_segments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			start_timestamp TEXT,
			end_timestamp TEXT,
			start_latitude REAL,
			start_longitude REAL,
			end_latitude REAL,
			end_longitude REAL,
			distance_meters REAL,
			confidence TEXT,
			travel_mode TEXT
		)`,
	},
	{
		Version: 2,
		Name:    "create_place_visits",
		SQL: `CREATE TABLE IF NOT EXISTS place_visits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			place_name TEXT,
			place_id TEXT,
			latitude REAL,
			longitude REAL,
			address TEXT,
			start_timestamp TEXT,
			end_timestamp TEXT,
			visit_confidence REAL
		)`,
	},
	{
		Version: 3,
		Name:    "index_place_visits_start",
		SQL:     `CREATE INDEX IF NOT EXISTS idx_place_visits_start ON place_visits(start_timestamp)`,
	},
}

// Migrate applies any schema versions not yet recorded in the migrations table.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS migrations (
		version INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied := make(map[int]bool)
	rows, err := db.Query("SELECT version FROM migrations")
	if err != nil {
		return fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if _, err := db.Exec(m.SQL); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		if _, err := db.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
	}
	return nil
}
