package summary

import (
	"regexp"
	"strings"
)

type replacement struct {
	pattern *regexp.Regexp
	with    string
}

// paraphraseRules neutralize formal notice-speak. Applied in order; later
// rules see the output of earlier ones.
var paraphraseRules = []replacement{
	{regexp.MustCompile(`(?i)hereby|kindly|please be informed that`), ""},
	{regexp.MustCompile(`(?i)this is to inform|this is to notify`), ""},
	{regexp.MustCompile(`(?i)registration|enrolment`), "registration"},
	{regexp.MustCompile(`(?i)examination`), "exam"},
	{regexp.MustCompile(`(?i)has been|have been`), "is"},
	{regexp.MustCompile(`(?i)is extended(?:\s+(?:till|until|to))?`), "deadline extended"},
	{regexp.MustCompile(`(?i)last date`), "deadline"},
	{regexp.MustCompile(`(?i)students are requested to`), "students should"},
	{regexp.MustCompile(`(?i)you are requested to`), "please"},
	{regexp.MustCompile(`(?i)shall`), "will"},
}

var collapseSpaces = regexp.MustCompile(`\s+`)

// Paraphrase applies the replacement rules to each line and ensures
// terminal punctuation.
func Paraphrase(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		t := line
		for _, r := range paraphraseRules {
			t = r.pattern.ReplaceAllString(t, r.with)
		}
		t = strings.TrimSpace(collapseSpaces.ReplaceAllString(t, " "))
		if t != "" && !strings.ContainsRune(".!?", rune(t[len(t)-1])) {
			t += "."
		}
		out = append(out, t)
	}
	return out
}
