package validation

import (
	"testing"

	"github.com/iwvelando/food-cpi/pkg/constants"
)

func TestValidateView(t *testing.T) {
	tests := []struct {
		name      string
		view      string
		expectErr bool
	}{
		{name: "Top", view: "top", expectErr: false},
		{name: "Bottom", view: "bottom", expectErr: false},
		{name: "Uppercase", view: "TOP", expectErr: true},
		{name: "Empty", view: "", expectErr: true},
		{name: "Unknown", view: "middle", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateView(tt.view)
			if (err != nil) != tt.expectErr {
				t.Errorf("ValidateView(%q) error = %v, expectErr %v", tt.view, err, tt.expectErr)
			}
		})
	}
}

func TestValidateLanguage(t *testing.T) {
	tests := []struct {
		name      string
		language  string
		expectErr bool
	}{
		{name: "English", language: "en", expectErr: false},
		{name: "French", language: "fr", expectErr: false},
		{name: "Regional tag", language: "fr-CA", expectErr: true},
		{name: "Empty", language: "", expectErr: true},
		{name: "Unsupported", language: "de", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLanguage(tt.language)
			if (err != nil) != tt.expectErr {
				t.Errorf("ValidateLanguage(%q) error = %v, expectErr %v", tt.language, err, tt.expectErr)
			}
		})
	}
}

func TestValidateCount(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		expectErr bool
	}{
		{name: "Zero", count: 0, expectErr: false},
		{name: "Default", count: constants.DefaultRankCount, expectErr: false},
		{name: "Maximum", count: constants.MaxRankCount, expectErr: false},
		{name: "Negative", count: -1, expectErr: true},
		{name: "Too large", count: constants.MaxRankCount + 1, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCount(tt.count)
			if (err != nil) != tt.expectErr {
				t.Errorf("ValidateCount(%d) error = %v, expectErr %v", tt.count, err, tt.expectErr)
			}
		})
	}
}
