package store

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA temp_store = MEMORY;

-- Notices table: append-only log of summarized notices
CREATE TABLE IF NOT EXISTS notices (
    notice_id INTEGER PRIMARY KEY AUTOINCREMENT,
    source TEXT NOT NULL,
    subject TEXT,
    bullets TEXT NOT NULL,        -- JSON array of summary lines
    links TEXT NOT NULL,          -- JSON array of URLs
    event_date TEXT,              -- YYYY-MM-DD, empty when none detected
    event_time TEXT,              -- hh:mm AM/PM, empty when none detected
    venue TEXT,
    language TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_notices_event_date ON notices(event_date);
CREATE INDEX IF NOT EXISTS idx_notices_source ON notices(source);
`

// InitSchema creates all tables and indexes.
func (db *DB) InitSchema() error {
	_, err := db.Exec(schema)
	return err
}
