package services

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

var detector = sync.OnceValue(func() lingua.LanguageDetector {
	return lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.English,
			lingua.Spanish,
			lingua.French,
			lingua.German,
			lingua.Portuguese,
			lingua.Russian,
			lingua.Japanese,
			lingua.Chinese,
		).
		Build()
})

// DetectLanguage guesses the language of a post so clients can filter and
// hint screen readers. Returns "unknown" when confidence is too low.
func DetectLanguage(content string) string {
	if language, ok := detector().DetectLanguageOf(content); ok {
		return strings.ToLower(language.IsoCode639_1().String())
	}
	return "unknown"
}
