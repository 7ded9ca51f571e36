package testutil

import (
	"testing"

	"github.com/iwvelando/food-cpi/pkg/cpi"
)

func TestFindEntry(t *testing.T) {
	entries := []cpi.RankedEntry{
		{Label: "Bœuf frais ou congelé", Category: "Fresh or frozen beef", Value: 212.1},
		{Label: "Margarine", Category: "Margarine", Value: 211.9},
		{Label: "Baies", Category: "Berries (2013=100)", Value: 109.7},
	}

	tests := []struct {
		name          string
		category      string
		expectFound   bool
		expectedValue float64
	}{
		{"Find first entry", "Fresh or frozen beef", true, 212.1},
		{"Find by raw category with annotation", "Berries (2013=100)", true, 109.7},
		{"Label is not a category", "Baies", false, 0},
		{"Missing category", "Caviar", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := FindEntry(entries, tt.category)
			if !tt.expectFound {
				if found != nil {
					t.Errorf("Expected not to find %q, got %+v", tt.category, found)
				}
				return
			}
			if found == nil {
				t.Fatalf("Expected to find %q", tt.category)
			}
			if found.Value != tt.expectedValue {
				t.Errorf("Expected value %v, got %v", tt.expectedValue, found.Value)
			}
		})
	}
}

func TestFindEntryReturnsPointer(t *testing.T) {
	entries := []cpi.RankedEntry{{Category: "Eggs", Value: 1}}

	found := FindEntry(entries, "Eggs")
	found.Value = 2
	if entries[0].Value != 2 {
		t.Error("Expected FindEntry to return a pointer into the slice")
	}

	if FindEntry(nil, "Eggs") != nil {
		t.Error("Expected nil for nil entries")
	}
}

func TestFindPoint(t *testing.T) {
	points := []cpi.TrendPoint{
		{Month: "2024-07", Value: Float(142)},
		{Month: "2024-08"},
	}

	if p := FindPoint(points, "2024-07"); p == nil || !p.Present() || *p.Value != 142 {
		t.Errorf("unexpected point %+v", p)
	}
	if p := FindPoint(points, "2024-08"); p == nil || p.Present() {
		t.Errorf("expected missing point, got %+v", p)
	}
	if FindPoint(points, "2024-09") != nil {
		t.Error("Expected nil for unknown month")
	}
}
