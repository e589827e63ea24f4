// Package textnorm prepares raw notice text for the downstream extractors:
// link harvesting, boilerplate removal, whitespace normalization, and
// sentence segmentation.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	linkPattern       = regexp.MustCompile(`https?://[^\s)]+`)
	tabCRPattern      = regexp.MustCompile(`[\t\r]`)
	multiSpacePattern = regexp.MustCompile(`\s+`)
	sentenceSplit     = regexp.MustCompile(`[\n.!?]+`)
	bracketRefPattern = regexp.MustCompile(`\[[^\]]+\]`)
	parenRefPattern   = regexp.MustCompile(`\([^)]+\)`)
	leadingBullets    = regexp.MustCompile(`^[-•:]+\s*`)
)

// boilerplatePatterns are conversational fillers stripped before analysis.
// Order matters: each pattern runs on the output of the previous one.
var boilerplatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bhello\s+[a-zA-Z .'-]+,?\s*`),
	regexp.MustCompile(`(?i)\bhi\s+[a-zA-Z .'-]+,?\s*`),
	regexp.MustCompile(`(?i)\bdear\s+[a-zA-Z .'-]+,?\s*`),
	regexp.MustCompile(`(?i)\bclick here\b`),
	regexp.MustCompile(`(?i)\bclick the link\b`),
	regexp.MustCompile(`(?i)\bfor more (details|information).*`),
	regexp.MustCompile(`(?i)\bread more\b`),
	regexp.MustCompile(`(?i)\bkindly note\b`),
	regexp.MustCompile(`(?i)\bplease note\b`),
}

// trailingLinkJunk is trailing punctuation commonly glued onto pasted URLs.
const trailingLinkJunk = ").,;\"'\n"

// ExtractLinks returns every URL-looking substring in first-occurrence
// order, trailing punctuation stripped, duplicates removed.
func ExtractLinks(text string) []string {
	raw := linkPattern.FindAllString(text, -1)
	links := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, l := range raw {
		l = strings.TrimRight(l, trailingLinkJunk)
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		links = append(links, l)
	}
	return links
}

// Clean removes inline URLs, turns tabs and carriage returns into spaces,
// collapses whitespace runs, and trims.
func Clean(text string) string {
	out := linkPattern.ReplaceAllString(text, "")
	out = tabCRPattern.ReplaceAllString(out, " ")
	out = multiSpacePattern.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

// RemoveBoilerplate strips greeting phrases and filler, then collapses
// whitespace again. Running it on already-clean text is a no-op.
func RemoveBoilerplate(text string) string {
	cleaned := text
	for _, pat := range boilerplatePatterns {
		cleaned = pat.ReplaceAllString(cleaned, "")
	}
	return strings.TrimSpace(multiSpacePattern.ReplaceAllString(cleaned, " "))
}

// Normalize is the full cleanup pass applied before every extractor.
// Idempotent: Normalize(Normalize(t)) == Normalize(t).
func Normalize(text string) string {
	return RemoveBoilerplate(Clean(text))
}

// SplitSentences splits normalized text on sentence-ending punctuation and
// newlines, trims bullet markers, and drops empty fragments.
func SplitSentences(text string) []string {
	parts := sentenceSplit.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(p, " :•-")
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// CompressSentence tightens a sentence for display: bracketed references
// and parentheticals removed, leading bullets dropped, whitespace
// collapsed, first letter capitalized.
func CompressSentence(s string) string {
	s = bracketRefPattern.ReplaceAllString(s, "")
	s = parenRefPattern.ReplaceAllString(s, "")
	s = leadingBullets.ReplaceAllString(strings.TrimSpace(s), "")
	s = strings.TrimSpace(multiSpacePattern.ReplaceAllString(s, " "))
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
