// Package action maps a notice to one canonical action label using an
// ordered first-match-wins rule table.
package action

import (
	"regexp"
	"strings"
)

// Canonical labels. Exactly one is chosen per input.
const (
	LabelDeadlineExtended     = "deadline extended"
	LabelRegistrationOpens    = "registration opens"
	LabelRegistrationDeadline = "registration deadline"
	LabelFeePayment           = "fee payment"
	LabelExamUpdate           = "exam update"
	LabelEventAnnouncement    = "event announcement"
	LabelActionRequired       = "action required"
	LabelUpdate               = "update"
)

type rule struct {
	pattern *regexp.Regexp
	label   string
}

// rules encode priority: an extension beats a closing date even when both
// appear in the same notice. Do not reorder.
var rules = []rule{
	{regexp.MustCompile(`(?i)extended|extension|postponed|rescheduled`), LabelDeadlineExtended},
	{regexp.MustCompile(`(?i)opens|open|commence|start`), LabelRegistrationOpens},
	{regexp.MustCompile(`(?i)close|closing|ends|last date|deadline|due`), LabelRegistrationDeadline},
	{regexp.MustCompile(`(?i)payment|fee|fees|pay`), LabelFeePayment},
	{regexp.MustCompile(`(?i)exam|examination`), LabelExamUpdate},
	{regexp.MustCompile(`(?i)workshop|seminar|webinar|orientation|session`), LabelEventAnnouncement},
	{regexp.MustCompile(`(?i)submit|submission|upload|fill|apply|register|enrol|enroll`), LabelActionRequired},
}

// Hints are verbs that mark a sentence as directive. Shared with the
// action-sentence extractor and the sentence scorer.
var Hints = []string{
	"apply", "register", "submit", "enroll", "attend", "pay",
	"upload", "fill", "complete", "verify", "participate", "join",
}

// Classify returns the canonical action for the text. Falls back to
// "action required" when any directive hint is present, else "update".
func Classify(text string) string {
	for _, r := range rules {
		if r.pattern.MatchString(text) {
			return r.label
		}
	}
	if ContainsHint(text) {
		return LabelActionRequired
	}
	return LabelUpdate
}

// ContainsHint reports whether the text mentions any directive hint word.
func ContainsHint(text string) bool {
	lower := strings.ToLower(text)
	for _, h := range Hints {
		if strings.Contains(lower, h) {
			return true
		}
	}
	return false
}
