// Package keywords ranks topic terms by frequency. Unigrams and
// consecutive-pair bigrams share one frequency table so meaningful phrases
// can outrank either word alone.
package keywords

import (
	"regexp"
	"sort"
	"strings"
)

// stopwords are frequency-analysis noise. Read-only after init.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {}, "if": {},
	"while": {}, "of": {}, "in": {}, "on": {}, "at": {}, "for": {}, "from": {},
	"to": {}, "with": {}, "as": {}, "by": {}, "into": {}, "over": {},
	"after": {}, "before": {}, "about": {}, "is": {}, "are": {}, "was": {},
	"were": {}, "be": {}, "been": {}, "being": {}, "this": {}, "that": {},
	"these": {}, "those": {}, "there": {}, "here": {}, "it": {}, "its": {},
	"they": {}, "them": {}, "their": {}, "you": {}, "your": {}, "we": {},
	"our": {}, "i": {}, "me": {}, "my": {}, "us": {}, "will": {}, "shall": {},
	"can": {}, "could": {}, "should": {}, "would": {}, "may": {}, "might": {},
	"not": {}, "no": {}, "yes": {}, "please": {}, "kindly": {}, "dear": {},
	"sir": {}, "madam": {}, "hello": {}, "hi": {}, "regards": {}, "thanks": {},
	"thank": {}, "hereby": {}, "above": {}, "below": {}, "also": {}, "etc": {},
}

// genericWords are notice-domain filler too common to be topics.
var genericWords = map[string]struct{}{
	"notice": {}, "update": {}, "information": {}, "details": {},
	"course": {}, "courses": {}, "department": {}, "college": {},
	"student": {}, "students": {}, "university": {}, "office": {},
}

var tokenPattern = regexp.MustCompile(`[a-zA-Z][a-zA-Z\-']+`)

// Tokenize lowercases the text and returns alphabetic tokens, internal
// hyphens and apostrophes kept.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// IsStopword reports whether the token is filtered from frequency analysis.
func IsStopword(word string) bool {
	_, ok := stopwords[strings.ToLower(word)]
	return ok
}

func retained(tok string) bool {
	if len(tok) < 3 {
		return false
	}
	if _, ok := stopwords[tok]; ok {
		return false
	}
	if _, ok := genericWords[tok]; ok {
		return false
	}
	return true
}

type termCount struct {
	term  string
	count int
	first int // insertion order of first occurrence, for deterministic ties
}

// Extract returns up to topN topic terms ordered by descending frequency.
// Selection greedily skips any candidate that is a substring of, or
// contains, an already-selected term.
func Extract(text string, topN int) []string {
	tokens := Tokenize(text)

	freq := make(map[string]int)
	firstSeen := make(map[string]int)
	inserted := 0
	note := func(term string) {
		if _, ok := firstSeen[term]; !ok {
			firstSeen[term] = inserted
			inserted++
		}
		freq[term]++
	}

	for i, tok := range tokens {
		if !retained(tok) {
			continue
		}
		note(tok)
		if i+1 < len(tokens) {
			nxt := tokens[i+1]
			if retained(nxt) {
				note(tok + " " + nxt)
			}
		}
	}

	if len(freq) == 0 {
		return nil
	}

	scored := make([]termCount, 0, len(freq))
	for term, count := range freq {
		scored = append(scored, termCount{term: term, count: count, first: firstSeen[term]})
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].count != scored[j].count {
			return scored[i].count > scored[j].count
		}
		return scored[i].first < scored[j].first
	})

	selected := make([]string, 0, topN)
	for _, cand := range scored {
		if overlaps(cand.term, selected) {
			continue
		}
		selected = append(selected, cand.term)
		if len(selected) >= topN {
			break
		}
	}
	return selected
}

// overlaps implements overlap suppression: a term is rejected when it
// contains, or is contained in, any already-selected term. Deliberately
// substring-based, so "exam" is suppressed under "example" too.
func overlaps(term string, used []string) bool {
	for _, u := range used {
		if strings.Contains(term, u) || strings.Contains(u, term) {
			return true
		}
	}
	return false
}
