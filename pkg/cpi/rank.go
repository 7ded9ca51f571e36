// Package cpi ranks food categories by Consumer Price Index value and
// projects monthly series for a single category.
//
// Every function in this package is a pure transformation of its inputs:
// nothing is cached and no input is modified.
package cpi

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/iwvelando/food-cpi/pkg/constants"
)

// ErrUnknownDirection is returned when a ranking direction cannot be parsed.
var ErrUnknownDirection = errors.New("unknown ranking direction")

// Row maps a category name to its index value for one month.
type Row map[string]float64

// Direction selects which end of the value range a ranking starts from.
type Direction int

const (
	// Top ranks the highest index values first.
	Top Direction = iota
	// Bottom ranks the lowest index values first.
	Bottom
)

// String returns the view name of the direction.
func (d Direction) String() string {
	if d == Bottom {
		return constants.ViewBottom
	}
	return constants.ViewTop
}

// ParseDirection converts a view name ("top" or "bottom") into a Direction.
// An empty string selects Top.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", constants.ViewTop:
		return Top, nil
	case constants.ViewBottom:
		return Bottom, nil
	default:
		return Top, fmt.Errorf("%w: %q (expected %s or %s)", ErrUnknownDirection, s, constants.ViewTop, constants.ViewBottom)
	}
}

// RankedEntry is one bar of a ranking.
type RankedEntry struct {
	Label    string  `json:"label"`
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// Rank returns at most n categories of catalog ordered by their value in
// latest. Categories missing from latest are skipped. Equal values keep their
// catalog order. The label of each entry is produced by translate; a nil
// translate keeps the category name.
func Rank(catalog []string, latest Row, dir Direction, n int, translate func(string) string) []RankedEntry {
	if n <= 0 || len(catalog) == 0 || len(latest) == 0 {
		return []RankedEntry{}
	}
	if translate == nil {
		translate = func(s string) string { return s }
	}

	entries := make([]RankedEntry, 0, len(catalog))
	for _, category := range catalog {
		value, ok := latest[category]
		if !ok {
			continue
		}
		entries = append(entries, RankedEntry{
			Label:    translate(category),
			Category: category,
			Value:    value,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if dir == Bottom {
			return entries[i].Value < entries[j].Value
		}
		return entries[i].Value > entries[j].Value
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
