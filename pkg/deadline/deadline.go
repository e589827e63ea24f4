// Package deadline finds the one deadline-like date in a notice. A
// phrase-anchored search runs first so that dates in deadline context beat
// unrelated mentions; a whole-text scan is the fallback. Venue extraction
// lives here too since it feeds the same calendar-event payload.
package deadline

import (
	"regexp"

	"github.com/anveshm/notice-digest/models"
	"github.com/anveshm/notice-digest/pkg/dates"
	"github.com/anveshm/notice-digest/pkg/textnorm"
)

// phraseWindow is how far past a deadline phrase the date search extends.
const phraseWindow = 120

// phrasePatterns anchor the date search to deadline semantics. Priority
// order: the first phrase whose window parses wins.
var phrasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bdeadline\b`),
	regexp.MustCompile(`(?i)\blast date\b`),
	regexp.MustCompile(`(?i)\bregister by\b`),
	regexp.MustCompile(`(?i)\bsubmit by\b`),
	regexp.MustCompile(`(?i)\bbefore\b`),
	regexp.MustCompile(`(?i)\bby\b`),
	regexp.MustCompile(`(?i)\bextended\s+(?:till|until|to)\b`),
}

var (
	venuePattern         = regexp.MustCompile(`(?i)\b(?:venue|place|at)[:\- ]+([^\n,.]{3,80})`)
	venueFallbackPattern = regexp.MustCompile(`(?i)\b(?:in|at)\s+(?:Auditorium|Seminar Hall|Main Hall|Block [A-Z]|Room [0-9A-Z-]+)\b`)
)

// Info is a detected deadline. Time is empty for all-day deadlines.
type Info struct {
	Date string // YYYY-MM-DD
	Time string // HH:MM AM/PM, optional
}

// Extractor runs the two-phase search with a fixed parser configuration.
type Extractor struct {
	parser *dates.Parser
}

// New builds an Extractor from engine settings.
func New(s models.Settings) *Extractor {
	return &Extractor{parser: dates.New(s)}
}

// NewWithParser injects a pre-configured date parser (tests fix its clock).
func NewWithParser(p *dates.Parser) *Extractor {
	return &Extractor{parser: p}
}

// Extract runs phase 1 (phrase-anchored windows) then phase 2 (whole
// text). A miss at both phases returns found=false, never an error.
func (e *Extractor) Extract(text string) (Info, bool) {
	for _, pat := range phrasePatterns {
		loc := pat.FindStringIndex(text)
		if loc == nil {
			continue
		}
		end := loc[1] + phraseWindow
		if end > len(text) {
			end = len(text)
		}
		if res, ok := e.parser.ParseFirst(text[loc[0]:end]); ok {
			return Info{Date: res.DateString(), Time: res.TimeString()}, true
		}
		// Window had no parseable date; a later phrase may still anchor one.
	}

	if res, ok := e.parser.ParseFirst(text); ok {
		return Info{Date: res.DateString(), Time: res.TimeString()}, true
	}
	return Info{}, false
}

// Venue returns a free-text venue hint, first match wins, empty when none.
func (e *Extractor) Venue(text string) string {
	if m := venuePattern.FindStringSubmatch(text); m != nil {
		return textnorm.CompressSentence(m[1])
	}
	if m := venueFallbackPattern.FindString(text); m != "" {
		return textnorm.CompressSentence(m)
	}
	return ""
}

// EventDetails bundles date, time, and venue for calendar-creation
// consumers. All fields are optional.
func (e *Extractor) EventDetails(text string) models.EventDetails {
	details := models.EventDetails{Venue: e.Venue(text)}
	if info, ok := e.Extract(text); ok {
		details.Date = info.Date
		details.Time = info.Time
	}
	return details
}
