package renderer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/portfolio-lots"
)

// Glyph is the character used to draw chart bars.
const Glyph = "*"

// Chart prints c as text, one bar per row:
//
//	Performance of portfolio Retirement from 2023-01-01 to 2023-01-03
//
//	2023-01-01: *****
//	...
//
//	Scale: * = $48.00
func Chart(w io.Writer, name string, c portfolio.Chart, currency string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Performance of portfolio %s from %s to %s\n\n", name, c.Range.From, c.Range.To)
	for _, row := range c.Rows {
		fmt.Fprintf(bw, "%s: %s\n", row.Date, strings.Repeat(Glyph, max(row.Stars, 0)))
	}
	fmt.Fprintf(bw, "\nScale: %s = %s\n", Glyph, portfolio.M(c.Scale, currency))

	return bw.Flush()
}
