package summary

import (
	"sort"
	"strings"

	"github.com/anveshm/notice-digest/pkg/action"
	"github.com/anveshm/notice-digest/pkg/keywords"
	"github.com/anveshm/notice-digest/pkg/textnorm"
)

// deadlineHints mark sentences that talk about dates and cutoffs; such
// sentences get a scoring bonus.
var deadlineHints = []string{
	"deadline", "last date", "last-day", "last day", "by", "before",
	"due", "closing", "closes", "ends",
}

const (
	hintBonus       = 1.2
	longLinePenalty = 0.85
	longLineChars   = 220
	minTokenDivisor = 6
)

// buildWordFreq computes max-normalized word frequencies across all
// sentences, stopwords excluded.
func buildWordFreq(sentences []string) map[string]float64 {
	counts := make(map[string]int)
	for _, s := range sentences {
		for _, tok := range keywords.Tokenize(s) {
			if keywords.IsStopword(tok) {
				continue
			}
			counts[tok]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	freq := make(map[string]float64, len(counts))
	for tok, c := range counts {
		freq[tok] = float64(c) / float64(max)
	}
	return freq
}

// scoreSentence is the frequency sum of a sentence's non-stopword tokens,
// length-normalized, with bonuses for actionable and deadline wording and
// a penalty for very long lines.
func scoreSentence(s string, freq map[string]float64) float64 {
	tokens := keywords.Tokenize(s)
	if len(tokens) == 0 {
		return 0
	}

	score := 0.0
	for _, tok := range tokens {
		if keywords.IsStopword(tok) {
			continue
		}
		score += freq[tok]
	}
	divisor := len(tokens)
	if divisor < minTokenDivisor {
		divisor = minTokenDivisor
	}
	score /= float64(divisor)

	lower := strings.ToLower(s)
	if action.ContainsHint(lower) {
		score *= hintBonus
	}
	for _, h := range deadlineHints {
		if strings.Contains(lower, h) {
			score *= hintBonus
			break
		}
	}
	if len(s) > longLineChars {
		score *= longLinePenalty
	}
	return score
}

// Highlights returns up to n sentences ranked by score, compressed and
// lightly paraphrased. Ties keep original sentence order.
func (s *Summarizer) Highlights(text string, n int) []string {
	sentences := textnorm.SplitSentences(text)
	if len(sentences) == 0 || n <= 0 {
		return nil
	}

	freq := buildWordFreq(sentences)
	type ranked struct {
		idx   int
		score float64
	}
	scores := make([]ranked, len(sentences))
	for i, sent := range sentences {
		scores[i] = ranked{idx: i, score: scoreSentence(sent, freq)}
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})

	if n > len(scores) {
		n = len(scores)
	}
	lines := make([]string, 0, n)
	for _, r := range scores[:n] {
		lines = append(lines, textnorm.CompressSentence(sentences[r.idx]))
	}
	return Paraphrase(lines)
}
