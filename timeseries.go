package portfolio

import (
	"github.com/etnz/portfolio-lots/date"
	"github.com/shopspring/decimal"
)

// ValuePoint is the value of holdings on a date.
type ValuePoint struct {
	Date  date.Date
	Value decimal.Decimal
}

// Sample returns the value of h on every month from 'from' to 'to' (included).
//
// Each sample date is the previous one plus a calendar month, see date.Date.AddMonths.
func (h *Holdings) Sample(from, to date.Date, prices PriceIndex) []ValuePoint {
	var points []ValuePoint
	for on := range date.NewRange(from, to).Months() {
		points = append(points, ValuePoint{Date: on, Value: h.Value(on, prices)})
	}
	return points
}

const (
	// MaxChartRows is the maximum number of rows of a performance chart.
	MaxChartRows = 30
	// ChartWidth is the number of glyphs of the largest value of a chart.
	ChartWidth = 50
)

// ChartRow is a single line of a performance chart.
type ChartRow struct {
	ValuePoint
	Stars int
}

// Chart is a performance chart over a period, ready to be printed.
type Chart struct {
	Range    date.Range
	Interval int             // in days between rows
	Scale    decimal.Decimal // value of a single glyph
	Rows     []ChartRow
}

// ChartInterval returns the number of days between two rows of a chart over r.
func ChartInterval(r date.Range) int {
	days := r.Days()
	if days <= MaxChartRows {
		return 1
	}
	return (days + MaxChartRows - 1) / MaxChartRows
}

// NewChart samples the value of h from 'from' to 'to' every ChartInterval days.
//
// Only the first MaxChartRows samples become rows, but the scale is computed so
// that the largest sampled value over the whole range is ChartWidth glyphs wide.
func (h *Holdings) NewChart(from, to date.Date, prices PriceIndex) Chart {
	r := date.NewRange(from, to)
	c := Chart{Range: r, Interval: ChartInterval(r), Scale: decimal.NewFromInt(1)}

	var points []ValuePoint
	maxValue := decimal.Zero
	for on := range r.Step(c.Interval) {
		v := h.Value(on, prices)
		maxValue = decimal.Max(maxValue, v)
		points = append(points, ValuePoint{Date: on, Value: v})
	}
	if !maxValue.IsZero() {
		c.Scale = maxValue.Div(decimal.NewFromInt(ChartWidth))
	}

	for _, p := range points[:min(len(points), MaxChartRows)] {
		// value/scale, computed from maxValue to stay exact on the largest one.
		stars := p.Value
		if !maxValue.IsZero() {
			stars = p.Value.Mul(decimal.NewFromInt(ChartWidth)).Div(maxValue)
		}
		c.Rows = append(c.Rows, ChartRow{ValuePoint: p, Stars: int(stars.IntPart())})
	}
	return c
}
