package cpi

import (
	"github.com/iwvelando/food-cpi/pkg/constants"
)

// TrendPoint is the value of one category in one month. Value is nil when the
// category has no data point for the month.
type TrendPoint struct {
	Month string   `json:"month"`
	Value *float64 `json:"value"`
}

// Present reports whether the point carries a value.
func (p TrendPoint) Present() bool {
	return p.Value != nil
}

// SelectTrend projects rows onto category, one point per month in the order
// of months.
func SelectTrend(months []string, rows map[string]Row, category string) []TrendPoint {
	points := make([]TrendPoint, 0, len(months))
	for _, month := range months {
		point := TrendPoint{Month: month}
		if value, ok := rows[month][category]; ok {
			v := value
			point.Value = &v
		}
		points = append(points, point)
	}
	return points
}

// TrendValues returns the values of the present points, in order.
func TrendValues(points []TrendPoint) []float64 {
	values := make([]float64, 0, len(points))
	for _, p := range points {
		if p.Value != nil {
			values = append(values, *p.Value)
		}
	}
	return values
}

// EntryValues returns the values of a ranking, in order.
func EntryValues(entries []RankedEntry) []float64 {
	values := make([]float64, 0, len(entries))
	for _, e := range entries {
		values = append(values, e.Value)
	}
	return values
}

// ValueDomain returns the charting range of values: the smallest and largest
// value, each pushed outwards by constants.DomainPadding. ok is false when
// values is empty.
func ValueDomain(values []float64) (lo, hi float64, ok bool) {
	if len(values) == 0 {
		return 0, 0, false
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo - constants.DomainPadding, hi + constants.DomainPadding, true
}

// ChangeFromBase returns how far value is from the base period, in percent.
// 120 means prices rose 20% since the base period, 85 that they fell 15%.
func ChangeFromBase(value float64) float64 {
	return value - constants.BaseIndex
}
