// Package summary composes the extraction stages into the bounded
// bullet-point summary of a notice.
package summary

import (
	"strings"
	"time"

	"github.com/anveshm/notice-digest/models"
	"github.com/anveshm/notice-digest/pkg/action"
	"github.com/anveshm/notice-digest/pkg/dates"
	"github.com/anveshm/notice-digest/pkg/deadline"
	"github.com/anveshm/notice-digest/pkg/details"
	"github.com/anveshm/notice-digest/pkg/keywords"
	"github.com/anveshm/notice-digest/pkg/textnorm"
)

const topicKeywords = 3
const highlightCount = 3

// Summarizer runs the full pipeline with one fixed configuration. It keeps
// no per-call state; one instance serves concurrent calls.
type Summarizer struct {
	settings  models.Settings
	parser    *dates.Parser
	deadlines *deadline.Extractor
}

// New builds a Summarizer from engine settings.
func New(s models.Settings) *Summarizer {
	p := dates.New(s)
	return &Summarizer{
		settings:  s,
		parser:    p,
		deadlines: deadline.NewWithParser(p),
	}
}

// WithNow fixes the date parser's reference clock, for tests.
func (s *Summarizer) WithNow(now func() time.Time) *Summarizer {
	s.parser.WithNow(now)
	return s
}

// EventDetails exposes the calendar-facing extraction on the same
// configuration.
func (s *Summarizer) EventDetails(text string) models.EventDetails {
	return s.deadlines.EventDetails(text)
}

// Summarize turns raw notice text into the structured summary. Blank
// input short-circuits to an empty result; individual extractor misses
// shrink the output but never fail the call.
func (s *Summarizer) Summarize(text string) models.SummaryResult {
	if strings.TrimSpace(text) == "" {
		return models.SummaryResult{Bullets: []string{}, Links: []string{}}
	}

	links := textnorm.ExtractLinks(text)
	clean := textnorm.Normalize(text)
	sentences := textnorm.SplitSentences(clean)

	info, hasDeadline := s.deadlines.Extract(clean)
	act := action.Classify(clean)
	topics := keywords.Extract(clean, s.settings.TopKeywords)

	fee := details.Fee(clean, s.settings.FeeWindow)
	audience := details.Audience(clean)
	docs := details.RequiredDocs(clean)
	actionPoints := details.ActionSentences(sentences)
	formLink := details.FormLink(links)

	var bullets []string

	if len(topics) > 0 {
		head := topics
		if len(head) > topicKeywords {
			head = head[:topicKeywords]
		}
		bullets = append(bullets, "Topic: "+strings.Join(head, ", ")+".")
	} else {
		bullets = append(bullets, "Update: "+act+".")
	}

	if len(actionPoints) > 0 {
		bullets = append(bullets, "Action: "+actionPoints[0])
	} else if act != action.LabelUpdate {
		bullets = append(bullets, "Action: "+act+".")
	}

	if hasDeadline {
		when := FormatDateHuman(info.Date)
		if info.Time != "" {
			when += " " + info.Time
		}
		bullets = append(bullets, "WHEN: "+when+".")
	}

	if audience != "" {
		bullets = append(bullets, "Who: "+audience+".")
	}
	if fee != "" {
		bullets = append(bullets, "Fee: "+fee+".")
	}
	if len(docs) > 0 {
		shown := docs
		if len(shown) > 3 {
			shown = shown[:3]
		}
		bullets = append(bullets, "Required: "+strings.Join(shown, ", ")+".")
	}
	if formLink != "" {
		bullets = append(bullets, "Form: available in links below.")
	}

	bullets = pruneBullets(bullets, s.settings.MaxBullets)

	result := models.SummaryResult{
		Bullets: bullets,
		Links:   links,
		Date:    info.Date,
		Time:    info.Time,
	}
	result.Highlights = s.Highlights(clean, highlightCount)
	return result
}

// pruneBullets drops blank entries, then truncates.
func pruneBullets(bullets []string, max int) []string {
	out := make([]string, 0, len(bullets))
	for _, b := range bullets {
		b = strings.TrimSpace(b)
		if b == "" {
			continue
		}
		out = append(out, b)
	}
	if len(out) > max {
		out = out[:max]
	}
	return out
}

// FormatDateHuman renders YYYY-MM-DD as "02 Jan 2006 (Mon)". Anything
// unparseable comes back unchanged.
func FormatDateHuman(ds string) string {
	d, err := time.Parse("2006-01-02", ds)
	if err != nil {
		return ds
	}
	return d.Format("02 Jan 2006 (Mon)")
}
