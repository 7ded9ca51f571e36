// Package chart draws the ranking bar chart and the trend line chart of the
// dashboard with go-chart.
package chart

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/food-cpi/pkg/constants"
	"github.com/iwvelando/food-cpi/pkg/cpi"
	"github.com/iwvelando/food-cpi/pkg/datetime"
	"github.com/iwvelando/food-cpi/pkg/format"
	"github.com/iwvelando/food-cpi/pkg/locale"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/text/message"
)

// ErrNotEnoughData is returned when there is nothing to draw: an empty
// ranking or a trend with fewer than two values.
var ErrNotEnoughData = errors.New("not enough data to draw a chart")

const (
	width  = 1024
	height = 512

	// Bars share the plot width; they never grow wider than maxBarWidth
	// nor narrower than minBarWidth.
	plotWidth   = width - 120
	maxBarWidth = 60
	minBarWidth = 4

	// MaxBars is the most bars a ranking chart draws. Longer rankings are
	// cut to their first MaxBars entries.
	MaxBars = 50
)

// barLayout returns the bar width and spacing that fit n bars into the plot.
func barLayout(n int) (barWidth, spacing int) {
	if n < 1 {
		n = 1
	}
	slot := plotWidth / n
	barWidth = slot * 3 / 4
	if barWidth > maxBarWidth {
		barWidth = maxBarWidth
	}
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}
	spacing = slot - barWidth
	if spacing < 1 {
		spacing = 1
	}
	return barWidth, spacing
}

// Format is an image encoding.
type Format int

const (
	// SVG is the default encoding.
	SVG Format = iota
	// PNG is a raster encoding.
	PNG
)

// ParseFormat converts a file extension ("svg", ".png") into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "", "svg":
		return SVG, nil
	case "png":
		return PNG, nil
	default:
		return SVG, fmt.Errorf("unsupported chart format: %s", s)
	}
}

// ContentType returns the MIME type of the encoding.
func (f Format) ContentType() string {
	if f == PNG {
		return "image/png"
	}
	return "image/svg+xml"
}

func (f Format) provider() gochart.RendererProvider {
	if f == PNG {
		return gochart.PNG
	}
	return gochart.SVG
}

func indexFormatter(p *message.Printer) gochart.ValueFormatter {
	return func(v interface{}) string {
		if value, ok := v.(float64); ok {
			return format.LocalizedIndex(p, value)
		}
		return ""
	}
}

// RenderRanking draws entries as a bar chart of the month, red for the top
// ranking and green for the bottom one. At most MaxBars entries are drawn.
func RenderRanking(w io.Writer, f Format, entries []cpi.RankedEntry, dir cpi.Direction, month string, lang locale.Language) error {
	if len(entries) == 0 {
		return ErrNotEnoughData
	}
	if len(entries) > MaxBars {
		entries = entries[:MaxBars]
	}
	barWidth, spacing := barLayout(len(entries))
	lo, hi, _ := cpi.ValueDomain(cpi.EntryValues(entries))

	color := drawing.ColorFromHex(constants.ColorTop)
	if dir == cpi.Bottom {
		color = drawing.ColorFromHex(constants.ColorBottom)
	}

	bars := make([]gochart.Value, 0, len(entries))
	for _, entry := range entries {
		bars = append(bars, gochart.Value{
			Label: entry.Label,
			Value: entry.Value,
			Style: gochart.Style{FillColor: color, StrokeColor: color},
		})
	}

	p := lang.Printer()
	graph := gochart.BarChart{
		Title:      p.Sprintf(locale.MsgRankingTitle, month),
		Width:      width,
		Height:     height,
		BarWidth:   barWidth,
		BarSpacing: spacing,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40},
		},
		YAxis: gochart.YAxis{
			Name:           p.Sprintf(locale.MsgCPIAxis),
			Range:          &gochart.ContinuousRange{Min: lo, Max: hi},
			ValueFormatter: indexFormatter(p),
		},
		Bars: bars,
	}

	if err := graph.Render(f.provider(), w); err != nil {
		return fmt.Errorf("failed to render ranking chart: %w", err)
	}
	return nil
}

// RenderTrend draws the present points of a trend as a line over months.
// label is the display name of the category.
func RenderTrend(w io.Writer, f Format, points []cpi.TrendPoint, label string, lang locale.Language) error {
	var (
		months []string
		ys     []float64
	)
	for _, point := range points {
		if !point.Present() {
			continue
		}
		months = append(months, point.Month)
		ys = append(ys, *point.Value)
	}
	if len(ys) < 2 {
		return ErrNotEnoughData
	}
	xs, err := datetime.ParseMonths(months)
	if err != nil {
		return err
	}
	lo, hi, _ := cpi.ValueDomain(ys)

	color := drawing.ColorFromHex(constants.ColorTrend)
	p := lang.Printer()
	graph := gochart.Chart{
		Title:  p.Sprintf(locale.MsgTrendTitle, label),
		Width:  width,
		Height: height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 16, Right: 12},
		},
		XAxis: gochart.XAxis{
			Name:           p.Sprintf(locale.MsgMonthAxis),
			ValueFormatter: gochart.TimeValueFormatterWithFormat(datetime.DateTimeLayout),
		},
		YAxis: gochart.YAxis{
			Name:           p.Sprintf(locale.MsgCPIValueAxis),
			Range:          &gochart.ContinuousRange{Min: lo, Max: hi},
			ValueFormatter: indexFormatter(p),
		},
		Series: []gochart.Series{
			gochart.TimeSeries{
				Name:    label,
				XValues: xs,
				YValues: ys,
				Style: gochart.Style{
					StrokeColor: color,
					StrokeWidth: 2,
					DotColor:    color,
					DotWidth:    3,
				},
			},
		},
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	if err := graph.Render(f.provider(), w); err != nil {
		return fmt.Errorf("failed to render trend chart: %w", err)
	}
	return nil
}
