package textnorm

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractLinks_DedupPreservesOrder(t *testing.T) {
	text := "See https://example.com/form. Also https://other.org/x, then https://example.com/form again and https://example.com/form."

	links := ExtractLinks(text)

	want := []string{"https://example.com/form", "https://other.org/x"}
	if !reflect.DeepEqual(links, want) {
		t.Errorf("ExtractLinks() = %v, want %v", links, want)
	}
}

func TestExtractLinks_StripsTrailingPunctuation(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"visit https://forms.gle/abc123).", "https://forms.gle/abc123"},
		{"link: https://x.org/a;", "https://x.org/a"},
		{"go to https://x.org/a,\"", "https://x.org/a"},
	}
	for _, tt := range tests {
		links := ExtractLinks(tt.in)
		if len(links) != 1 || links[0] != tt.want {
			t.Errorf("ExtractLinks(%q) = %v, want [%s]", tt.in, links, tt.want)
		}
	}
}

func TestExtractLinks_Empty(t *testing.T) {
	if links := ExtractLinks("no urls in here"); len(links) != 0 {
		t.Errorf("ExtractLinks() = %v, want empty", links)
	}
}

func TestClean(t *testing.T) {
	in := "Register\there:\thttps://example.com/form \r\n now.   Soon."
	want := "Register here: now. Soon."
	if got := Clean(in); got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}

func TestRemoveBoilerplate(t *testing.T) {
	in := "Dear Students, please note the exam schedule. Click here for the portal."
	got := RemoveBoilerplate(in)

	for _, banned := range []string{"Dear", "please note", "Click here"} {
		if containsFold(got, banned) {
			t.Errorf("RemoveBoilerplate() = %q, still contains %q", got, banned)
		}
	}
	if !containsFold(got, "exam schedule") {
		t.Errorf("RemoveBoilerplate() = %q, lost content words", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Hello John, submit by 15 March. https://x.org/f \t details",
		"plain text with   spaces",
		"",
		"Kindly note: fee payment closes soon!",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestSplitSentences(t *testing.T) {
	in := "First point. Second one!\n- Third item? : fourth"
	got := SplitSentences(in)
	want := []string{"First point", "Second one", "Third item", "fourth"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitSentences() = %v, want %v", got, want)
	}
}

func TestSplitSentences_DropsEmpty(t *testing.T) {
	if got := SplitSentences("...\n\n!!!"); len(got) != 0 {
		t.Errorf("SplitSentences() = %v, want empty", got)
	}
}

func TestCompressSentence(t *testing.T) {
	in := "- submit the form [ref 2] (see portal)  before friday"
	want := "Submit the form before friday"
	if got := CompressSentence(in); got != want {
		t.Errorf("CompressSentence() = %q, want %q", got, want)
	}
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
