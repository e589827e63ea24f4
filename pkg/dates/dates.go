// Package dates finds and parses date/time mentions in free-form notice
// text. A small regex cascade locates candidate tokens in priority order;
// token-level parsing is delegated to dateparse, with day-month ordering
// and prefer-future resolution applied on top.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/anveshm/notice-digest/models"
)

// Result is one resolved date mention. HasTime distinguishes an all-day
// date from a dated time.
type Result struct {
	Time    time.Time
	HasTime bool
}

// DateString formats the result date as YYYY-MM-DD.
func (r Result) DateString() string {
	return r.Time.Format("2006-01-02")
}

// TimeString formats the time component in 12-hour form, empty for
// all-day results.
func (r Result) TimeString() string {
	if !r.HasTime {
		return ""
	}
	return r.Time.Format("03:04 PM")
}

// Parser resolves candidate tokens against a fixed reference zone and
// date-order convention. Zero-state besides configuration; safe for
// concurrent use.
type Parser struct {
	loc          *time.Location
	order        models.DateOrder
	preferFuture bool
	now          func() time.Time
}

// New builds a Parser from engine settings.
func New(s models.Settings) *Parser {
	return &Parser{
		loc:          s.Location(),
		order:        s.DateOrder,
		preferFuture: s.PreferFuture,
		now:          time.Now,
	}
}

// WithNow fixes the reference clock. Tests use it; production code keeps
// the wall clock.
func (p *Parser) WithNow(now func() time.Time) *Parser {
	p.now = now
	return p
}

const monthNames = `jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?`

type candidateKind int

const (
	kindNumeric candidateKind = iota // 15/03/2025, 15-03-25
	kindISO                          // 2025-03-15
	kindDayMonth                     // 15th March 2025, 2 Jan
	kindMonthDay                     // March 15, 2025 / Jan 2
	kindRelative                     // today, tomorrow
)

type candidatePattern struct {
	kind candidateKind
	re   *regexp.Regexp
}

// candidatePatterns run in priority order; the first pattern with a
// parseable match wins.
var candidatePatterns = []candidatePattern{
	{kindNumeric, regexp.MustCompile(`\b(\d{1,2})[-/.](\d{1,2})[-/.](\d{2,4})\b`)},
	{kindISO, regexp.MustCompile(`\b(\d{4})[-/](\d{1,2})[-/](\d{1,2})\b`)},
	{kindDayMonth, regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(` + monthNames + `)\b\.?,?\s*(?:(\d{4})\b)?`)},
	{kindMonthDay, regexp.MustCompile(`(?i)\b(` + monthNames + `)\b\.?\s+(\d{1,2})(?:st|nd|rd|th)?\b\s*,?\s*(?:(\d{4})\b)?`)},
	{kindRelative, regexp.MustCompile(`(?i)\b(today|tomorrow)\b`)},
}

var timePattern = regexp.MustCompile(`(?i)\b(\d{1,2})(?:[:.](\d{2}))?\s*([ap])\.?m\.?\b|\b([01]?\d|2[0-3]):([0-5]\d)\b(?:\s*hrs)?`)

var monthIndex = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// ParseFirst scans the text for the highest-priority parseable date
// mention and attaches a time component when one is present anywhere in
// the same text. Returns false when nothing parseable is found.
func (p *Parser) ParseFirst(text string) (Result, bool) {
	for _, cp := range candidatePatterns {
		matches := cp.re.FindAllStringSubmatch(text, -1)
		for _, m := range matches {
			day, ok := p.resolve(cp.kind, m)
			if !ok {
				continue
			}
			res := Result{Time: day}
			if hh, mm, ok := findTime(text); ok {
				res.HasTime = true
				res.Time = time.Date(day.Year(), day.Month(), day.Day(), hh, mm, 0, 0, p.loc)
			}
			return res, true
		}
	}
	return Result{}, false
}

// resolve turns one regex match into a date, or reports it unparseable.
func (p *Parser) resolve(kind candidateKind, m []string) (time.Time, bool) {
	switch kind {
	case kindNumeric:
		return p.resolveNumeric(m[1], m[2], m[3])
	case kindISO:
		t, err := dateparse.ParseIn(m[0], p.loc)
		if err != nil {
			return time.Time{}, false
		}
		return p.midnight(t), true
	case kindDayMonth:
		return p.resolveNamed(m[2], m[1], m[3])
	case kindMonthDay:
		return p.resolveNamed(m[1], m[2], m[3])
	case kindRelative:
		now := p.now().In(p.loc)
		if strings.EqualFold(m[1], "tomorrow") {
			now = now.AddDate(0, 0, 1)
		}
		return p.midnight(now), true
	}
	return time.Time{}, false
}

// resolveNumeric applies the configured date order to a separated numeric
// date. Two-digit years are read as 20xx.
func (p *Parser) resolveNumeric(a, b, c string) (time.Time, bool) {
	na, _ := strconv.Atoi(a)
	nb, _ := strconv.Atoi(b)
	nc, _ := strconv.Atoi(c)

	var day, month, year int
	switch p.order {
	case models.DateOrderMDY:
		month, day, year = na, nb, nc
	default: // dmy and ymd both read separated d/m/y fields day-first here
		day, month, year = na, nb, nc
	}
	// Swap when the chosen order is impossible but the other reading works.
	if month > 12 && day <= 12 {
		day, month = month, day
	}
	if year < 100 {
		year += 2000
	}
	return makeDate(year, month, day, p.loc)
}

// resolveNamed handles month-name forms. Candidates carrying a year go
// through dateparse; yearless ones are resolved against the reference
// clock, rolling forward when prefer-future is set.
func (p *Parser) resolveNamed(monthTok, dayTok, yearTok string) (time.Time, bool) {
	day, err := strconv.Atoi(dayTok)
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}
	month, ok := monthIndex[strings.ToLower(monthTok)[:3]]
	if !ok {
		return time.Time{}, false
	}

	if yearTok != "" {
		normalized := strconv.Itoa(day) + " " + monthTok + " " + yearTok
		t, err := dateparse.ParseIn(normalized, p.loc,
			dateparse.PreferMonthFirst(p.order == models.DateOrderMDY))
		if err != nil {
			return time.Time{}, false
		}
		return p.midnight(t), true
	}

	now := p.now().In(p.loc)
	t, valid := makeDate(now.Year(), int(month), day, p.loc)
	if !valid {
		return time.Time{}, false
	}
	if p.preferFuture && t.Before(p.midnight(now)) {
		t, valid = makeDate(now.Year()+1, int(month), day, p.loc)
	}
	return t, valid
}

// makeDate builds a midnight date and rejects overflow (e.g. 31 Feb).
func makeDate(year, month, day int, loc *time.Location) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1970 || year > 2200 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, false
	}
	return t, true
}

func (p *Parser) midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.loc)
}

// findTime locates the first clock mention: "5 pm", "10.30 AM", "17:45".
func findTime(text string) (hour, minute int, ok bool) {
	m := timePattern.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}

	if m[3] != "" { // 12-hour form with am/pm marker
		hour, _ = strconv.Atoi(m[1])
		if hour < 1 || hour > 12 {
			return 0, 0, false
		}
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if strings.EqualFold(m[3], "p") && hour != 12 {
			hour += 12
		}
		if strings.EqualFold(m[3], "a") && hour == 12 {
			hour = 0
		}
		return hour, minute, true
	}

	// 24-hour form
	hour, _ = strconv.Atoi(m[4])
	minute, _ = strconv.Atoi(m[5])
	return hour, minute, true
}
