// Package locale selects the display language of the dashboard and holds its
// user interface messages.
package locale

import (
	"strings"

	"github.com/iwvelando/food-cpi/pkg/constants"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Language is a supported display language.
type Language int

const (
	// English is the canonical language of the dataset.
	English Language = iota
	// French uses the translation table for category labels.
	French
)

// supported is ordered so that index i is Language(i); the first entry is the
// fallback of the matcher.
var supported = []language.Tag{language.English, language.French}

var matcher = language.NewMatcher(supported)

// Parse matches s, a language tag or an Accept-Language header value, to a
// supported language. Anything unrecognised selects English.
func Parse(s string) Language {
	s = strings.TrimSpace(s)
	if s == "" {
		return English
	}
	// A single tag is a valid Accept-Language value.
	tags, _, err := language.ParseAcceptLanguage(s)
	if err != nil || len(tags) == 0 {
		return English
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return English
	}
	return Language(index)
}

// Valid reports whether s names a supported language exactly ("en" or "fr").
func Valid(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case constants.LanguageEnglish, constants.LanguageFrench:
		return true
	}
	return false
}

// Tag returns the BCP 47 tag of the language.
func (l Language) Tag() language.Tag {
	if l == French {
		return language.French
	}
	return language.English
}

// String returns the two-letter code of the language.
func (l Language) String() string {
	if l == French {
		return constants.LanguageFrench
	}
	return constants.LanguageEnglish
}

// IsFrench reports whether category labels must be translated.
func (l Language) IsFrench() bool {
	return l == French
}

// Printer returns a printer that translates catalog messages and formats
// numbers for the language.
func (l Language) Printer() *message.Printer {
	return message.NewPrinter(l.Tag())
}

// Languages returns the supported languages in display order.
func Languages() []Language {
	return []Language{English, French}
}

// Name returns the name of the language in that language.
func (l Language) Name() string {
	if l == French {
		return "Français"
	}
	return "English"
}
