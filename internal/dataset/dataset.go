// Package dataset loads the monthly food CPI dataset the dashboard is built
// from. A dataset is read once at start-up and never modified afterwards.
package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/iwvelando/food-cpi/pkg/cpi"
	"github.com/iwvelando/food-cpi/pkg/datetime"
)

//go:embed foodPrices.json
var bundled []byte

var (
	// ErrMissingField is returned when a required top-level field is absent.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidMonth is returned for month keys not in YYYY-MM form.
	ErrInvalidMonth = errors.New("invalid month key")
	// ErrInvalidValue is returned for index values that are not finite numbers.
	ErrInvalidValue = errors.New("invalid index value")
	// ErrInvalidCategory is returned for empty category names.
	ErrInvalidCategory = errors.New("invalid category name")
)

// Dataset is the read-only CPI data: the category catalog and one row of
// index values per month.
type Dataset struct {
	categories []string
	months     []string
	rows       map[string]cpi.Row
}

type document struct {
	Categories  *[]string                             `json:"categories"`
	MonthlyData *map[string]map[string]json.RawMessage `json:"monthlyData"`
}

// Bundled returns the dataset embedded in the binary.
func Bundled() (*Dataset, error) {
	d, err := Load(bytes.NewReader(bundled))
	if err != nil {
		return nil, fmt.Errorf("bundled dataset: %w", err)
	}
	return d, nil
}

// LoadFile reads a dataset from a JSON file.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Load decodes a dataset of the form
//
//	{"categories": [...], "monthlyData": {"YYYY-MM": {"Category": 123.4}}}
//
// Values may be numbers or numeric strings; null values are treated as
// absent. Any other value is an error.
func Load(r io.Reader) (*Dataset, error) {
	var doc document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	if doc.Categories == nil {
		return nil, fmt.Errorf("%w: categories", ErrMissingField)
	}
	if doc.MonthlyData == nil {
		return nil, fmt.Errorf("%w: monthlyData", ErrMissingField)
	}

	categories := make([]string, 0, len(*doc.Categories))
	for i, category := range *doc.Categories {
		if strings.TrimSpace(category) == "" {
			return nil, fmt.Errorf("%w: categories[%d] is empty", ErrInvalidCategory, i)
		}
		categories = append(categories, category)
	}

	months := make([]string, 0, len(*doc.MonthlyData))
	rows := make(map[string]cpi.Row, len(*doc.MonthlyData))
	for month, raw := range *doc.MonthlyData {
		if !datetime.IsMonth(month) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidMonth, month)
		}
		row := make(cpi.Row, len(raw))
		for category, rawValue := range raw {
			value, present, err := parseValue(rawValue)
			if err != nil {
				return nil, fmt.Errorf("%s/%s: %w", month, category, err)
			}
			if present {
				row[category] = value
			}
		}
		months = append(months, month)
		rows[month] = row
	}
	// YYYY-MM keys sort chronologically.
	sort.Strings(months)

	return &Dataset{categories: categories, months: months, rows: rows}, nil
}

// New builds a dataset from values already in memory. The month keys of rows
// are ordered chronologically; the inputs are copied.
func New(categories []string, rows map[string]cpi.Row) (*Dataset, error) {
	d := &Dataset{
		categories: append([]string(nil), categories...),
		rows:       make(map[string]cpi.Row, len(rows)),
	}
	for i, category := range d.categories {
		if strings.TrimSpace(category) == "" {
			return nil, fmt.Errorf("%w: categories[%d] is empty", ErrInvalidCategory, i)
		}
	}
	for month, row := range rows {
		if !datetime.IsMonth(month) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidMonth, month)
		}
		copied := make(cpi.Row, len(row))
		for category, value := range row {
			if math.IsNaN(value) || math.IsInf(value, 0) {
				return nil, fmt.Errorf("%s/%s: %w: %v", month, category, ErrInvalidValue, value)
			}
			copied[category] = value
		}
		d.months = append(d.months, month)
		d.rows[month] = copied
	}
	sort.Strings(d.months)
	return d, nil
}

func parseValue(raw json.RawMessage) (float64, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return 0, false, nil
	}

	var text string
	if trimmed[0] == '"' {
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return 0, false, fmt.Errorf("%w: %s", ErrInvalidValue, trimmed)
		}
		text = strings.TrimSpace(text)
	} else {
		text = string(trimmed)
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false, fmt.Errorf("%w: %s", ErrInvalidValue, trimmed)
	}
	return value, true, nil
}

// Categories returns the category catalog in display order.
func (d *Dataset) Categories() []string {
	return append([]string(nil), d.categories...)
}

// Months returns the month keys in chronological order.
func (d *Dataset) Months() []string {
	return append([]string(nil), d.months...)
}

// Rows returns the rows keyed by month. The returned map is shared and must
// not be modified.
func (d *Dataset) Rows() map[string]cpi.Row {
	return d.rows
}

// LatestMonth returns the last month of the series, or "" if there is none.
func (d *Dataset) LatestMonth() string {
	if len(d.months) == 0 {
		return ""
	}
	return d.months[len(d.months)-1]
}

// Latest returns the row of the latest month; it is nil for an empty dataset.
func (d *Dataset) Latest() cpi.Row {
	return d.rows[d.LatestMonth()]
}

// HasCategory reports whether category is part of the catalog.
func (d *Dataset) HasCategory(category string) bool {
	for _, c := range d.categories {
		if c == category {
			return true
		}
	}
	return false
}

// Warnings describes inconsistencies that do not prevent the dataset from
// being used.
func (d *Dataset) Warnings() []string {
	var warnings []string

	if len(d.categories) == 0 {
		warnings = append(warnings, "dataset has no categories")
	}
	if len(d.months) == 0 {
		warnings = append(warnings, "dataset has no monthly data")
	}

	seen := make(map[string]bool, len(d.categories))
	for _, category := range d.categories {
		if seen[category] {
			warnings = append(warnings, fmt.Sprintf("category %q is listed more than once", category))
		}
		seen[category] = true
	}

	if latest := d.Latest(); latest != nil {
		for _, category := range d.categories {
			if _, ok := latest[category]; !ok {
				warnings = append(warnings, fmt.Sprintf("category %q has no value for latest month %s", category, d.LatestMonth()))
			}
		}
	}

	var unknown []string
	reported := make(map[string]bool)
	for _, month := range d.months {
		for category := range d.rows[month] {
			if !seen[category] && !reported[category] {
				reported[category] = true
				unknown = append(unknown, category)
			}
		}
	}
	sort.Strings(unknown)
	for _, category := range unknown {
		warnings = append(warnings, fmt.Sprintf("category %q has values but is not in the catalog", category))
	}

	return warnings
}
