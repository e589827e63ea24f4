package dates

import (
	"testing"
	"time"

	"github.com/anveshm/notice-digest/models"
)

// reference clock: Monday 2025-06-02, fixed for every test.
func testParser(t *testing.T, order models.DateOrder) *Parser {
	t.Helper()
	s := models.DefaultSettings()
	s.DateOrder = order
	p := New(s)
	ref := time.Date(2025, time.June, 2, 9, 0, 0, 0, p.loc)
	return p.WithNow(func() time.Time { return ref })
}

func TestParseFirst_Formats(t *testing.T) {
	p := testParser(t, models.DateOrderDMY)

	tests := []struct {
		name     string
		text     string
		wantDate string
		wantTime string
	}{
		{"ordinal day month year", "submit by 15th March 2026", "2026-03-15", ""},
		{"numeric dmy slashes", "last date 15/03/2026 positively", "2026-03-15", ""},
		{"numeric dmy two digit year", "due on 5-7-26", "2026-07-05", ""},
		{"iso", "closes 2026-03-15", "2026-03-15", ""},
		{"month day comma year", "on March 15, 2026", "2026-03-15", ""},
		{"with twelve hour time", "webinar on 10 July 2026 at 5:30 pm", "2026-07-10", "05:30 PM"},
		{"with twenty four hour time", "reporting 10 July 2026, 17:45", "2026-07-10", "05:45 PM"},
		{"noon is not doubled", "meet 10 July 2026 at 12 pm", "2026-07-10", "12:00 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, ok := p.ParseFirst(tt.text)
			if !ok {
				t.Fatalf("ParseFirst(%q) found nothing", tt.text)
			}
			if got := res.DateString(); got != tt.wantDate {
				t.Errorf("DateString() = %q, want %q", got, tt.wantDate)
			}
			if got := res.TimeString(); got != tt.wantTime {
				t.Errorf("TimeString() = %q, want %q", got, tt.wantTime)
			}
		})
	}
}

func TestParseFirst_YearlessPrefersFuture(t *testing.T) {
	p := testParser(t, models.DateOrderDMY)

	// January is behind the June reference clock, so it rolls to next year.
	res, ok := p.ParseFirst("camp on 10 January")
	if !ok {
		t.Fatal("ParseFirst() found nothing")
	}
	if got := res.DateString(); got != "2026-01-10" {
		t.Errorf("DateString() = %q, want 2026-01-10", got)
	}

	// September is still ahead; the current year stands.
	res, ok = p.ParseFirst("camp on 10 September")
	if !ok {
		t.Fatal("ParseFirst() found nothing")
	}
	if got := res.DateString(); got != "2025-09-10" {
		t.Errorf("DateString() = %q, want 2025-09-10", got)
	}
}

func TestParseFirst_MDYOrder(t *testing.T) {
	p := testParser(t, models.DateOrderMDY)

	res, ok := p.ParseFirst("due 03/15/2026")
	if !ok {
		t.Fatal("ParseFirst() found nothing")
	}
	if got := res.DateString(); got != "2026-03-15" {
		t.Errorf("DateString() = %q, want 2026-03-15", got)
	}
}

func TestParseFirst_ImpossibleOrderSwaps(t *testing.T) {
	// Day-first reading of 03/15 is impossible; the parser swaps.
	p := testParser(t, models.DateOrderDMY)

	res, ok := p.ParseFirst("due 03/15/2026")
	if !ok {
		t.Fatal("ParseFirst() found nothing")
	}
	if got := res.DateString(); got != "2026-03-15" {
		t.Errorf("DateString() = %q, want 2026-03-15", got)
	}
}

func TestParseFirst_Relative(t *testing.T) {
	p := testParser(t, models.DateOrderDMY)

	res, ok := p.ParseFirst("submit the form tomorrow without fail")
	if !ok {
		t.Fatal("ParseFirst() found nothing")
	}
	if got := res.DateString(); got != "2025-06-03" {
		t.Errorf("DateString() = %q, want 2025-06-03", got)
	}
}

func TestParseFirst_NoDate(t *testing.T) {
	p := testParser(t, models.DateOrderDMY)

	if _, ok := p.ParseFirst("the committee was established in its present form"); ok {
		t.Error("ParseFirst() = ok, want no match")
	}
}

func TestParseFirst_BareYearIsNotADate(t *testing.T) {
	p := testParser(t, models.DateOrderDMY)

	if res, ok := p.ParseFirst("established in 1990 as a residential campus"); ok {
		t.Errorf("ParseFirst() = %v, want no match for bare year", res.DateString())
	}
}

func TestParseFirst_RejectsOverflowDates(t *testing.T) {
	p := testParser(t, models.DateOrderDMY)

	if res, ok := p.ParseFirst("ref 31/02/2026 onwards"); ok {
		t.Errorf("ParseFirst() = %v, want rejection of 31 Feb", res.DateString())
	}
}
