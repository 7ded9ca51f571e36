package format

import (
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestRound(t *testing.T) {
	tests := map[float64]float64{
		105.24: 105.2,
		105.25: 105.3,
		98.75:  98.8,
		100:    100,
		-0.05:  -0.1,
	}

	for input, expected := range tests {
		if got := Round(input); got != expected {
			t.Errorf("Round(%v) = %v, expected %v", input, got, expected)
		}
	}
}

func TestIndex(t *testing.T) {
	tests := map[float64]string{
		105.2:   "105.2",
		101:     "101.0",
		98.749:  "98.7",
		159.999: "160.0",
	}

	for input, expected := range tests {
		if got := Index(input); got != expected {
			t.Errorf("Index(%v) = %q, expected %q", input, got, expected)
		}
	}
}

func TestLocalizedIndex(t *testing.T) {
	en := message.NewPrinter(language.English)
	if got := LocalizedIndex(en, 1234.56); got != "1,234.6" {
		t.Errorf("LocalizedIndex(en) = %q, expected %q", got, "1,234.6")
	}
	if got := LocalizedIndex(en, 98.7); got != "98.7" {
		t.Errorf("LocalizedIndex(en) = %q, expected %q", got, "98.7")
	}
}

func TestChange(t *testing.T) {
	tests := map[float64]string{
		120:   "+20.0%",
		85:    "-15.0%",
		100:   "0.0%",
		101.5: "+1.5%",
		96.8:  "-3.2%",
		212.1: "+112.1%",
	}

	for input, expected := range tests {
		if got := Change(input); got != expected {
			t.Errorf("Change(%v) = %q, expected %q", input, got, expected)
		}
	}
}
