// Package format renders CPI index values for display.
package format

import (
	"github.com/iwvelando/food-cpi/pkg/constants"
	"github.com/iwvelando/food-cpi/pkg/cpi"
	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
)

// Round rounds an index value to the display precision, half away from zero.
func Round(value float64) float64 {
	rounded, _ := decimal.NewFromFloat(value).Round(constants.DisplayPrecision).Float64()
	return rounded
}

// Index returns value with exactly one fractional digit (e.g. "105.2"),
// suitable for machine-readable output.
func Index(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(constants.DisplayPrecision)
}

// LocalizedIndex returns value with one fractional digit using the number
// conventions of the printer's language (e.g. "105,2" in French).
func LocalizedIndex(p *message.Printer, value float64) string {
	return p.Sprintf("%.1f", Round(value))
}

// Change returns the signed distance of value from the base period as a
// percentage with one fractional digit (e.g. "+20.0%").
func Change(value float64) string {
	change := decimal.NewFromFloat(cpi.ChangeFromBase(value)).Round(constants.DisplayPrecision)
	sign := ""
	if change.IsPositive() {
		sign = "+"
	}
	return sign + change.StringFixed(constants.DisplayPrecision) + "%"
}
