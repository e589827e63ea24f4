package store

import (
	"path/filepath"
	"testing"

	"github.com/anveshm/notice-digest/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	return db
}

func sampleRecord(subject string) models.NoticeRecord {
	return models.NoticeRecord{
		Source:    "stdin",
		Subject:   subject,
		Bullets:   []string{"Topic: exam, fee.", "WHEN: 15 Mar 2025 (Sat)."},
		Links:     []string{"https://forms.gle/abc"},
		EventDate: "2025-03-15",
		Venue:     "Auditorium",
		Language:  "en",
	}
}

func TestAppendAndHistory(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	id1, err := db.Append(sampleRecord("first"))
	if err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	id2, err := db.Append(sampleRecord("second"))
	if err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	if id2 <= id1 {
		t.Errorf("Append() IDs not increasing: %d then %d", id1, id2)
	}

	records, err := db.History(0)
	if err != nil {
		t.Fatalf("History() failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("History() returned %d records, want 2", len(records))
	}

	// Newest first.
	if records[0].Subject != "second" || records[1].Subject != "first" {
		t.Errorf("History() order = [%q, %q], want newest first", records[0].Subject, records[1].Subject)
	}

	got := records[1]
	if got.EventDate != "2025-03-15" {
		t.Errorf("EventDate = %q, want 2025-03-15", got.EventDate)
	}
	if len(got.Bullets) != 2 || got.Bullets[0] != "Topic: exam, fee." {
		t.Errorf("Bullets round-trip = %v", got.Bullets)
	}
	if len(got.Links) != 1 || got.Links[0] != "https://forms.gle/abc" {
		t.Errorf("Links round-trip = %v", got.Links)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt is zero, want server-side timestamp")
	}
}

func TestHistory_Limit(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for _, subject := range []string{"a", "b", "c"} {
		if _, err := db.Append(sampleRecord(subject)); err != nil {
			t.Fatalf("Append() failed: %v", err)
		}
	}

	records, err := db.History(2)
	if err != nil {
		t.Fatalf("History() failed: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("History(2) returned %d records, want 2", len(records))
	}
	if records[0].Subject != "c" {
		t.Errorf("History(2)[0].Subject = %q, want c", records[0].Subject)
	}
}

func TestClear(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for range [3]struct{}{} {
		if _, err := db.Append(sampleRecord("x")); err != nil {
			t.Fatalf("Append() failed: %v", err)
		}
	}

	n, err := db.Clear()
	if err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if n != 3 {
		t.Errorf("Clear() removed %d records, want 3", n)
	}

	records, err := db.History(0)
	if err != nil {
		t.Fatalf("History() after Clear() failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("History() after Clear() = %d records, want 0", len(records))
	}
}

func TestSchemaIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := db.Append(sampleRecord("kept")); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	db.Close()

	// Reopening an existing database keeps its rows.
	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer db.Close()

	records, err := db.History(0)
	if err != nil {
		t.Fatalf("History() failed: %v", err)
	}
	if len(records) != 1 || records[0].Subject != "kept" {
		t.Errorf("records after reopen = %v, want the one saved before", records)
	}
}
