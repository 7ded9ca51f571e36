// Package datetime provides helpers for the YYYY-MM month keys of the dataset.
package datetime

import (
	"fmt"
	"time"

	"github.com/iwvelando/food-cpi/pkg/constants"
)

const (
	// DateTimeLayout is the format of month keys in the dataset and is also
	// the output date format.
	DateTimeLayout = constants.DateTimeLayout
)

// ParseMonth parses a YYYY-MM month key into the first instant of the month, UTC.
func ParseMonth(month string) (time.Time, error) {
	t, err := time.Parse(DateTimeLayout, month)
	if err != nil {
		return time.Time{}, fmt.Errorf("month %q: %w", month, err)
	}
	return t, nil
}

// IsMonth reports whether month is a valid YYYY-MM month key.
func IsMonth(month string) bool {
	_, err := time.Parse(DateTimeLayout, month)
	return err == nil
}

// ParseMonths parses a sequence of month keys, stopping at the first invalid one.
func ParseMonths(months []string) ([]time.Time, error) {
	times := make([]time.Time, 0, len(months))
	for _, month := range months {
		t, err := ParseMonth(month)
		if err != nil {
			return nil, err
		}
		times = append(times, t)
	}
	return times, nil
}
