// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/food-cpi/pkg/cpi"
)

// FindEntry finds the ranked entry of a category in a ranking.
// Returns a pointer to the entry if found, nil otherwise.
func FindEntry(entries []cpi.RankedEntry, category string) *cpi.RankedEntry {
	for i := range entries {
		if entries[i].Category == category {
			return &entries[i]
		}
	}
	return nil
}

// FindPoint finds the trend point of a month.
// Returns a pointer to the point if found, nil otherwise.
func FindPoint(points []cpi.TrendPoint, month string) *cpi.TrendPoint {
	for i := range points {
		if points[i].Month == month {
			return &points[i]
		}
	}
	return nil
}

// Float returns a pointer to v, for building trend points.
func Float(v float64) *float64 {
	return &v
}
