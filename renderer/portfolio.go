// Package renderer turns portfolio reports into markdown, text charts and workbooks.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/portfolio-lots"
	"github.com/etnz/portfolio-lots/date"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// LotsMarkdown lists every lot of the portfolio, per symbol in holding order.
func LotsMarkdown(p *portfolio.Portfolio) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	h := p.Holdings()

	doc.H1(fmt.Sprintf("Lots of %s", p.Name()))
	if h.Len() == 0 {
		doc.PlainText("No holdings.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Symbol", "Date", "Quantity", "Close"},
		Rows:      [][]string{},
	}
	for _, symbol := range h.Symbols() {
		for _, lot := range h.Lots(symbol) {
			closing := ""
			if !lot.Close.IsZero() {
				closing = p.Money(lot.Close).String()
			}
			table.Rows = append(table.Rows, []string{symbol, lot.Date.String(), lot.Quantity.String(), closing})
		}
	}
	doc.Table(table)
	return doc.String()
}

// CompositionMarkdown lists the quantity held of each symbol on a day, symbols
// without shares on that day are left out.
func CompositionMarkdown(p *portfolio.Portfolio, on date.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	c := p.Composition(on)

	doc.H1(fmt.Sprintf("Composition of %s on %s", p.Name(), on))
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Symbol", "Quantity"},
		Rows:      [][]string{},
	}
	for _, symbol := range p.Holdings().Symbols() {
		if q, ok := c[symbol]; ok {
			table.Rows = append(table.Rows, []string{symbol, q.String()})
		}
	}
	doc.Table(table)
	return doc.String()
}

// DistributionMarkdown lists the value of each symbol on a day and its share of
// the total.
func DistributionMarkdown(p *portfolio.Portfolio, on date.Date, d map[string]portfolio.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	total := p.Money(decimal.Zero)
	for _, v := range d {
		total = total.Add(v)
	}

	doc.H1(fmt.Sprintf("Distribution of %s on %s", p.Name(), on))
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Symbol", "Value", "Weight"},
		Rows:      [][]string{},
	}
	for _, symbol := range p.Holdings().Symbols() {
		if v, ok := d[symbol]; ok {
			table.Rows = append(table.Rows, []string{symbol, v.String(), weight(v, total)})
		}
	}
	table.Rows = append(table.Rows, []string{md.Bold("Total"), md.Bold(total.String()), ""})
	doc.Table(table)
	return doc.String()
}

// ValueMarkdown reports the total value of the portfolio on a day.
func ValueMarkdown(p *portfolio.Portfolio, on date.Date, v portfolio.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Value of %s", p.Name()))
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Value"},
		Rows:      [][]string{{on.String(), v.String()}},
	})
	return doc.String()
}

// HistoryMarkdown lists the monthly values of the portfolio.
func HistoryMarkdown(p *portfolio.Portfolio, points []portfolio.ValuePoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("History of %s", p.Name()))
	if len(points) == 0 {
		doc.PlainText("Empty period.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Value"},
		Rows:      [][]string{},
	}
	for _, point := range points {
		table.Rows = append(table.Rows, []string{point.Date.String(), p.Money(point.Value).String()})
	}
	doc.Table(table)
	return doc.String()
}

// weight formats v as a percentage of total.
func weight(v, total portfolio.Money) string {
	if total.IsZero() {
		return "0.00%"
	}
	return v.Decimal().Mul(hundred).Div(total.Decimal()).StringFixed(2) + "%"
}
