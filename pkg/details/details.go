// Package details holds the independent field extractors: contacts, fee,
// audience, required documents, form link, and action sentences. Each one
// reads the shared normalized text and degrades to a zero value on its own;
// none depends on another's output.
package details

import (
	"regexp"
	"sort"
	"strings"

	"github.com/anveshm/notice-digest/pkg/action"
	"github.com/anveshm/notice-digest/pkg/textnorm"
)

const (
	maxEmails          = 3
	maxPhones          = 3
	maxDocs            = 5
	maxActionSentences = 3
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	// Indian mobile format, optional +91 prefix.
	phonePattern    = regexp.MustCompile(`(?:\+?91[- ]?)?[6-9]\d{9}`)
	currencyPattern = regexp.MustCompile(`(?i)(?:₹|rs\.?|inr)\s*([0-9][0-9,]*)(?:\.[0-9]{1,2})?`)
	noFeePattern    = regexp.MustCompile(`(?i)no\s+fee|free\b`)
	carryPattern    = regexp.MustCompile(`(?i)(?:carry|bring|submit|upload)\s+([^.;\n]{3,60})`)
	itemSplit       = regexp.MustCompile(`,| and `)
	spacePattern    = regexp.MustCompile(`\s+`)
)

// feeContextWords must appear near a currency match for it to count as a fee.
var feeContextWords = []string{"fee", "fees", "payment", "pay", "amount"}

// audiencePatterns run in order; the first match is the audience.
var audiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)for\s+(?:all\s+)?(?:ug|pg|b\.?tech|m\.?tech|mca|mba|phd)\s+students`),
	regexp.MustCompile(`(?i)for\s+(?:first|second|third|final)\s+year\s+students`),
	regexp.MustCompile(`(?i)for\s+[a-z&/ ]+?\s+students`),
	regexp.MustCompile(`(?i)only\s+for\s+[a-z&/ ]+?\s+students`),
	regexp.MustCompile(`(?i)eligible\s+for\s+[a-z&/ ]+?\s+students`),
}

// docHints is the fixed vocabulary of documents notices ask for.
var docHints = []string{
	"id card", "aadhar", "aadhaar", "bonafide", "photo", "photograph",
	"passport size", "hall ticket", "admit card", "marksheet", "mark sheet",
	"resume", "cv", "payment receipt", "fee receipt", "signature",
	"consent form",
}

// formLinkHints identify form-hosting URLs; "form" last as the generic
// catch-all.
var formLinkHints = []string{
	"forms.gle", "docs.google.com/forms", "forms.office.com", "tinyurl.com", "form",
}

// Contacts returns up to three emails and three phone numbers each, in
// first-occurrence order without duplicates.
func Contacts(text string) (emails, phones []string) {
	emails = dedupCap(emailPattern.FindAllString(text, -1), maxEmails)

	raw := phonePattern.FindAllString(text, -1)
	for i, p := range raw {
		raw[i] = spacePattern.ReplaceAllString(p, "")
	}
	phones = dedupCap(raw, maxPhones)
	return emails, phones
}

// Fee returns a normalized fee amount ("₹1,500"), "No fee" for free
// events, or empty when no fee is mentioned. A currency match only counts
// when fee/payment wording appears within window characters around it.
func Fee(text string, window int) string {
	if m := currencyPattern.FindStringSubmatchIndex(text); m != nil {
		amount := text[m[2]:m[3]]

		start := m[0] - window
		if start < 0 {
			start = 0
		}
		end := m[1] + window
		if end > len(text) {
			end = len(text)
		}
		context := strings.ToLower(text[start:end])
		for _, kw := range feeContextWords {
			if strings.Contains(context, kw) {
				return "₹" + groupThousands(strings.ReplaceAll(amount, ",", ""))
			}
		}
	}
	if noFeePattern.MatchString(text) {
		return "No fee"
	}
	return ""
}

// Audience returns the target group phrase ("for final year students"), or
// empty when none of the patterns match.
func Audience(text string) string {
	for _, pat := range audiencePatterns {
		if m := pat.FindString(text); m != "" {
			return textnorm.CompressSentence(m)
		}
	}
	return ""
}

// RequiredDocs lists up to five documents the notice asks for: known hint
// vocabulary first, then items named after carry/bring/submit/upload.
func RequiredDocs(text string) []string {
	var found []string
	lower := strings.ToLower(text)
	for _, hint := range docHints {
		if strings.Contains(lower, hint) {
			found = append(found, hint)
		}
	}

	for _, m := range carryPattern.FindAllStringSubmatch(text, -1) {
		for _, part := range itemSplit.Split(m[1], -1) {
			part = strings.TrimSpace(part)
			if len(part) <= 2 {
				continue
			}
			found = append(found, strings.ToLower(part))
		}
	}
	return dedupCap(found, maxDocs)
}

// FormLink returns the first link that looks like an online form, or empty.
func FormLink(links []string) string {
	for _, l := range links {
		lower := strings.ToLower(l)
		for _, hint := range formLinkHints {
			if strings.Contains(lower, hint) {
				return l
			}
		}
	}
	return ""
}

// ActionSentences picks up to three directive sentences, shortest first
// (length then lexical order) as a proxy for the most direct instruction.
func ActionSentences(sentences []string) []string {
	var actionable []string
	for _, s := range sentences {
		if action.ContainsHint(s) {
			actionable = append(actionable, textnorm.CompressSentence(s))
		}
	}
	sort.Slice(actionable, func(i, j int) bool {
		if len(actionable[i]) != len(actionable[j]) {
			return len(actionable[i]) < len(actionable[j])
		}
		return actionable[i] < actionable[j]
	})
	if len(actionable) > maxActionSentences {
		actionable = actionable[:maxActionSentences]
	}
	return actionable
}

// dedupCap removes duplicates preserving first-occurrence order and caps
// the result.
func dedupCap(items []string, limit int) []string {
	var out []string
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
		if len(out) >= limit {
			break
		}
	}
	return out
}

// groupThousands inserts comma separators into a plain digit string.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
