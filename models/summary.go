package models

import "time"

// SummaryResult is the structured output of one summarize call. It is
// constructed once and never mutated afterwards.
type SummaryResult struct {
	Bullets    []string `json:"summary"`
	Links      []string `json:"links"`
	Date       string   `json:"date,omitempty"` // YYYY-MM-DD
	Time       string   `json:"time,omitempty"` // HH:MM AM/PM
	Highlights []string `json:"highlights,omitempty"`
}

// EventDetails carries the fields needed to create a calendar entry from a
// notice: an all-day event when Time is empty.
type EventDetails struct {
	Date  string `json:"date,omitempty"` // YYYY-MM-DD
	Time  string `json:"time,omitempty"` // HH:MM AM/PM
	Venue string `json:"venue,omitempty"`
}

// NoticeRecord is one saved summary in the append-only record log.
type NoticeRecord struct {
	ID        int64     `json:"id"`
	Source    string    `json:"source"`  // file path, "stdin", "gmail", ...
	Subject   string    `json:"subject"` // filename or mail subject
	Bullets   []string  `json:"summary_lines"`
	Links     []string  `json:"links"`
	EventDate string    `json:"event_date,omitempty"`
	EventTime string    `json:"event_time,omitempty"`
	Venue     string    `json:"venue,omitempty"`
	Language  string    `json:"language,omitempty"` // ISO-639-1 guess for the source text
	CreatedAt time.Time `json:"created_at"`
}
