// Package store persists summarized notices in a local SQLite database.
// The log is append-only: records are inserted and listed, never updated.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/anveshm/notice-digest/models"
)

const DefaultDBName = "notice-digest.db"

type DB struct {
	*sql.DB
	path string
}

// Open opens or creates the SQLite database at the given path.
func Open(dbPath string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{
		DB:   sqlDB,
		path: dbPath,
	}

	if err := db.ensureSchemaExists(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// ensureSchemaExists checks if the schema exists and initializes it if not.
func (db *DB) ensureSchemaExists() error {
	var tableName string
	err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='notices'").Scan(&tableName)

	if err == sql.ErrNoRows {
		return db.InitSchema()
	}
	if err != nil {
		return fmt.Errorf("failed to check schema: %w", err)
	}
	return nil
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// Append inserts a notice record and returns its ID.
func (db *DB) Append(rec models.NoticeRecord) (int64, error) {
	bullets, err := json.Marshal(rec.Bullets)
	if err != nil {
		return 0, fmt.Errorf("failed to encode bullets: %w", err)
	}
	links, err := json.Marshal(rec.Links)
	if err != nil {
		return 0, fmt.Errorf("failed to encode links: %w", err)
	}

	result, err := db.Exec(`
		INSERT INTO notices (source, subject, bullets, links, event_date, event_time, venue, language)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.Source, rec.Subject, string(bullets), string(links), rec.EventDate, rec.EventTime, rec.Venue, rec.Language)
	if err != nil {
		return 0, fmt.Errorf("failed to insert notice: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get notice ID: %w", err)
	}
	return id, nil
}

// History returns the most recent notices, newest first. A limit of zero
// or less returns everything.
func (db *DB) History(limit int) ([]models.NoticeRecord, error) {
	query := `
		SELECT notice_id, source, subject, bullets, links, event_date, event_time, venue, language, created_at
		FROM notices
		ORDER BY notice_id DESC
	`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = db.Query(query+" LIMIT ?", limit)
	} else {
		rows, err = db.Query(query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}
	defer rows.Close()

	var records []models.NoticeRecord
	for rows.Next() {
		var rec models.NoticeRecord
		var bullets, links string
		var created time.Time
		if err := rows.Scan(&rec.ID, &rec.Source, &rec.Subject, &bullets, &links,
			&rec.EventDate, &rec.EventTime, &rec.Venue, &rec.Language, &created); err != nil {
			return nil, fmt.Errorf("failed to scan notice: %w", err)
		}
		if err := json.Unmarshal([]byte(bullets), &rec.Bullets); err != nil {
			return nil, fmt.Errorf("failed to decode bullets for notice %d: %w", rec.ID, err)
		}
		if err := json.Unmarshal([]byte(links), &rec.Links); err != nil {
			return nil, fmt.Errorf("failed to decode links for notice %d: %w", rec.ID, err)
		}
		rec.CreatedAt = created
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notices: %w", err)
	}
	return records, nil
}

// Clear deletes all stored notices and returns the number removed.
func (db *DB) Clear() (int64, error) {
	result, err := db.Exec("DELETE FROM notices")
	if err != nil {
		return 0, fmt.Errorf("failed to clear notices: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count cleared notices: %w", err)
	}
	return n, nil
}
