// Package detector tags paragraphs with their language so the race picker
// can serve typeable English text and skip the corpus's occasional
// foreign-language quotes.
package detector

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// DefaultLanguage is assumed when detection is not confident.
const DefaultLanguage = "en"

// Detector wraps a lingua language detector restricted to the languages that
// actually occur in the corpus.
type Detector struct {
	detector lingua.LanguageDetector
}

func New() *Detector {
	languages := []lingua.Language{
		lingua.English,
		lingua.French,
		lingua.German,
		lingua.Latin,
		lingua.Spanish,
	}
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// Tag returns the ISO 639-1 code of the paragraph's language, lowercased.
// Short or ambiguous text falls back to DefaultLanguage.
func (d *Detector) Tag(text string) string {
	if len(strings.Fields(text)) < 3 {
		return DefaultLanguage
	}
	language, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return DefaultLanguage
	}
	return strings.ToLower(language.IsoCode639_1().String())
}
