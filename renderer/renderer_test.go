package renderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/etnz/portfolio-lots"
	"github.com/etnz/portfolio-lots/date"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// tables parses md and returns the cell texts of every table, header row first.
// Header cells are upper-cased, the table writer may format them.
func tables(t *testing.T, md string) [][][]string {
	t.Helper()
	src := []byte(md)
	doc := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(src))

	var result [][][]string
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != extast.KindTable {
			return ast.WalkContinue, nil
		}
		var rows [][]string
		for row := n.FirstChild(); row != nil; row = row.NextSibling() {
			var cells []string
			for c := row.FirstChild(); c != nil; c = c.NextSibling() {
				cell := cellText(c, src)
				if row.Kind() == extast.KindTableHeader {
					cell = strings.ToUpper(cell)
				}
				cells = append(cells, cell)
			}
			rows = append(rows, cells)
		}
		result = append(result, rows)
		return ast.WalkSkipChildren, nil
	})
	require.NoError(t, err)
	return result
}

func cellText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := c.(*ast.Text); ok && entering {
			b.Write(t.Segment.Value(src))
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

func on(s string) date.Date { return date.MustParse(s) }

// applePortfolio holds 10 AAPL bought on 2023-01-01 and 5 more on 2023-02-01.
func applePortfolio(t *testing.T) *portfolio.Portfolio {
	t.Helper()
	p := portfolio.New("Retirement")
	require.NoError(t, p.Buy("AAPL", portfolio.Q(10), on("2023-01-01")))
	require.NoError(t, p.Buy("AAPL", portfolio.Q(5), on("2023-02-01")))
	return p
}

func TestLotsMarkdown(t *testing.T) {
	md := LotsMarkdown(applePortfolio(t))

	assert.True(t, strings.HasPrefix(md, "# Lots of Retirement\n"))
	want := [][][]string{{
		{"SYMBOL", "DATE", "QUANTITY", "CLOSE"},
		{"AAPL", "2023-01-01", "10", ""},
		{"AAPL", "2023-02-01", "5", ""},
	}}
	assert.Equal(t, want, tables(t, md))
}

func TestLotsMarkdown_Empty(t *testing.T) {
	md := LotsMarkdown(portfolio.New("Empty"))
	assert.Contains(t, md, "No holdings.")
	assert.Empty(t, tables(t, md))
}

func TestCompositionMarkdown(t *testing.T) {
	p := applePortfolio(t)
	require.NoError(t, p.Buy("MSFT", portfolio.Q(3), on("2023-03-01")))

	// MSFT is not held yet on 2023-01-15.
	got := tables(t, CompositionMarkdown(p, on("2023-01-15")))
	want := [][][]string{{
		{"SYMBOL", "QUANTITY"},
		{"AAPL", "10"},
	}}
	assert.Equal(t, want, got)
}

func TestDistributionMarkdown(t *testing.T) {
	p := applePortfolio(t)
	d := map[string]portfolio.Money{
		"AAPL": portfolio.M(2400, "USD"),
	}
	require.NoError(t, p.Buy("MSFT", portfolio.Q(1), on("2023-02-01")))
	d["MSFT"] = portfolio.M(800, "USD")

	got := tables(t, DistributionMarkdown(p, on("2023-02-01"), d))
	want := [][][]string{{
		{"SYMBOL", "VALUE", "WEIGHT"},
		{"AAPL", "$2,400.00", "75.00%"},
		{"MSFT", "$800.00", "25.00%"},
		{"Total", "$3,200.00", ""},
	}}
	assert.Equal(t, want, got)
}

func TestValueMarkdown(t *testing.T) {
	p := applePortfolio(t)
	got := tables(t, ValueMarkdown(p, on("2023-02-01"), portfolio.M(2400, "USD")))
	assert.Equal(t, [][][]string{{{"DATE", "VALUE"}, {"2023-02-01", "$2,400.00"}}}, got)
}

func TestHistoryMarkdown(t *testing.T) {
	p := applePortfolio(t)
	points := []portfolio.ValuePoint{
		{Date: on("2023-01-01"), Value: decimal.NewFromInt(1500)},
		{Date: on("2023-02-01"), Value: decimal.NewFromInt(2400)},
	}

	got := tables(t, HistoryMarkdown(p, points))
	want := [][][]string{{
		{"DATE", "VALUE"},
		{"2023-01-01", "$1,500.00"},
		{"2023-02-01", "$2,400.00"},
	}}
	assert.Equal(t, want, got)

	assert.Contains(t, HistoryMarkdown(p, nil), "Empty period.")
}

func TestChart(t *testing.T) {
	c := portfolio.Chart{
		Range:    date.NewRange(on("2023-01-01"), on("2023-01-03")),
		Interval: 1,
		Scale:    decimal.NewFromInt(48),
		Rows: []portfolio.ChartRow{
			{ValuePoint: portfolio.ValuePoint{Date: on("2023-01-01"), Value: decimal.NewFromInt(2400)}, Stars: 5},
			{ValuePoint: portfolio.ValuePoint{Date: on("2023-01-02"), Value: decimal.NewFromInt(1500)}, Stars: 3},
			{ValuePoint: portfolio.ValuePoint{Date: on("2023-01-03")}, Stars: 0},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Chart(&buf, "Retirement", c, "USD"))

	want := "Performance of portfolio Retirement from 2023-01-01 to 2023-01-03\n" +
		"\n" +
		"2023-01-01: *****\n" +
		"2023-01-02: ***\n" +
		"2023-01-03: \n" +
		"\n" +
		"Scale: * = $48.00\n"
	assert.Equal(t, want, buf.String())
}
