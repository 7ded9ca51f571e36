package validation

import (
	"fmt"

	"github.com/iwvelando/food-cpi/pkg/constants"
)

// ValidateView checks that view names one end of a ranking.
func ValidateView(view string) error {
	if view != constants.ViewTop && view != constants.ViewBottom {
		return fmt.Errorf("expected view of %s or %s, got %q", constants.ViewTop, constants.ViewBottom, view)
	}
	return nil
}

// ValidateLanguage checks that language is a supported display language.
func ValidateLanguage(language string) error {
	if language != constants.LanguageEnglish && language != constants.LanguageFrench {
		return fmt.Errorf("expected language of %s or %s, got %q",
			constants.LanguageEnglish, constants.LanguageFrench, language)
	}
	return nil
}

// ValidateCount checks the number of categories requested from a ranking.
func ValidateCount(count int) error {
	if count < 0 {
		return fmt.Errorf("ranking count must not be negative, got %d", count)
	}
	if count > constants.MaxRankCount {
		return fmt.Errorf("ranking count must be at most %d, got %d", constants.MaxRankCount, count)
	}
	return nil
}
