// Package output provides utilities for formatting and displaying dashboard
// results on the command line.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/iwvelando/food-cpi/internal/dashboard"
	"github.com/iwvelando/food-cpi/pkg/constants"
	"github.com/iwvelando/food-cpi/pkg/format"
	"github.com/iwvelando/food-cpi/pkg/locale"
)

// Write renders view in the named output format.
func Write(w io.Writer, outputFormat string, view dashboard.View) error {
	switch outputFormat {
	case "", constants.OutputFormatPretty:
		return PrettyFormat(w, view)
	case constants.OutputFormatCSV:
		return CsvFormat(w, view)
	case constants.OutputFormatJSON:
		return JSONFormat(w, view)
	default:
		return fmt.Errorf("invalid output format: %s", outputFormat)
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable table,
// in the language of the view.
func PrettyFormat(w io.Writer, view dashboard.View) error {
	lang := locale.Parse(view.Language)
	p := lang.Printer()
	n := len(view.Ranking)

	heading := locale.MsgViewTop
	if view.View == constants.ViewBottom {
		heading = locale.MsgViewBottom
	}
	_, _ = fmt.Fprintf(w, "--- %s, %s ---\n", p.Sprintf(heading, n), view.LatestMonth)

	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	_, _ = fmt.Fprintf(tw, "%s\t| %s\t| %s\t| %s\n", p.Sprintf(locale.MsgRank), p.Sprintf(locale.MsgCPIValue), p.Sprintf(locale.MsgChange), p.Sprintf(locale.MsgCategory))
	_, _ = fmt.Fprintf(tw, "____\t| _________\t| ______\t| ________\n")
	for i, entry := range view.Ranking {
		_, _ = fmt.Fprintf(tw, "%d\t| %s\t| %s\t| %s\n", i+1, format.LocalizedIndex(p, entry.Value), format.Change(entry.Value), entry.Label)
	}
	if n == 0 {
		_, _ = fmt.Fprintf(tw, "%s\n", p.Sprintf(locale.MsgNoData))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "--- %s ---\n", p.Sprintf(locale.MsgTrendTitle, view.CategoryLabel))

	tw = tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	_, _ = fmt.Fprintf(tw, "%s\t| %s\n", p.Sprintf(locale.MsgMonth), p.Sprintf(locale.MsgCPIValue))
	_, _ = fmt.Fprintf(tw, "_______\t| _________\n")
	for _, point := range view.Trend {
		value := p.Sprintf(locale.MsgNotAvailable)
		if point.Present() {
			value = format.LocalizedIndex(p, *point.Value)
		}
		_, _ = fmt.Fprintf(tw, "%s\t| %s\n", point.Month, value)
	}
	if len(view.Trend) == 0 {
		_, _ = fmt.Fprintf(tw, "%s\n", p.Sprintf(locale.MsgNoData))
	}
	return tw.Flush()
}

// CsvFormat outputs in comma-separated value format: the ranking, a blank
// line, then the trend. Missing trend values are empty fields.
func CsvFormat(w io.Writer, view dashboard.View) error {
	cw := csv.NewWriter(w)

	records := [][]string{{"rank", "label", "category", "month", "value"}}
	for i, entry := range view.Ranking {
		records = append(records, []string{strconv.Itoa(i + 1), entry.Label, entry.Category, view.LatestMonth, format.Index(entry.Value)})
	}
	if err := cw.WriteAll(records); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	records = [][]string{{"category", "month", "value"}}
	for _, point := range view.Trend {
		value := ""
		if point.Present() {
			value = format.Index(*point.Value)
		}
		records = append(records, []string{view.Category, point.Month, value})
	}
	return cw.WriteAll(records)
}

// JSONFormat outputs the view as indented JSON. Missing trend values are
// null.
func JSONFormat(w io.Writer, view dashboard.View) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(view); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}
