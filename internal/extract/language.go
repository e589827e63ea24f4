package extract

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// Languages campus notices realistically arrive in. A small set keeps the
// detector's model loading cheap and its guesses sharp.
var noticeLanguages = []lingua.Language{
	lingua.English,
	lingua.Hindi,
	lingua.Bengali,
	lingua.Tamil,
	lingua.Telugu,
	lingua.Marathi,
}

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// Language returns the ISO-639-1 code of the text's most likely language,
// or an empty string when the detector cannot decide.
func Language(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(noticeLanguages...).
			Build()
	})

	lang, ok := detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}
