package portfolio

import (
	"slices"

	"github.com/etnz/portfolio-lots/date"
	"github.com/shopspring/decimal"
)

// PriceRecord is a daily quote of a security.
type PriceRecord struct {
	Date   date.Date
	Open   decimal.Decimal
	High   decimal.Decimal
	Low    decimal.Decimal
	Close  decimal.Decimal
	Volume int64
}

// PriceIndex provides the daily price history of securities.
//
// Implementations are read-only from the portfolio point of view, and must
// return a consistent snapshot on each call.
type PriceIndex interface {
	// Prices returns the history of symbol in chronological order, and false if
	// there is no history at all for that symbol.
	Prices(symbol string) ([]PriceRecord, bool)
}

// closeAsOf returns the close of the latest record dated on or before day.
//
// On a chronological history this is the last such record encountered. Among
// records of the same day, the last one wins.
func closeAsOf(records []PriceRecord, day date.Date) (decimal.Decimal, bool) {
	var best PriceRecord
	found := false
	for _, r := range records {
		if r.Date.After(day) {
			continue
		}
		if !found || !r.Date.Before(best.Date) {
			best, found = r, true
		}
	}
	return best.Close, found
}

// closeOn returns the close of the first record dated exactly on day.
func closeOn(records []PriceRecord, day date.Date) (decimal.Decimal, bool) {
	for _, r := range records {
		if r.Date == day {
			return r.Close, true
		}
	}
	return decimal.Zero, false
}

// Library is an in-memory PriceIndex.
type Library struct {
	series map[string][]PriceRecord
}

// NewLibrary returns an empty Library.
func NewLibrary() *Library {
	return &Library{series: make(map[string][]PriceRecord)}
}

// Add appends records to the history of symbol.
//
// Records can be added in any order: the history is kept sorted by date, and
// records of the same day keep their insertion order.
func (l *Library) Add(symbol string, records ...PriceRecord) {
	symbol = canonical(symbol)
	s := append(l.series[symbol], records...)
	slices.SortStableFunc(s, func(a, b PriceRecord) int { return a.Date.Compare(b.Date) })
	l.series[symbol] = s
}

// Has reports whether the library holds a history for symbol.
func (l *Library) Has(symbol string) bool {
	_, ok := l.series[canonical(symbol)]
	return ok
}

// Prices implements PriceIndex.
func (l *Library) Prices(symbol string) ([]PriceRecord, bool) {
	s, ok := l.series[canonical(symbol)]
	return s, ok
}

// Symbols returns the symbols with a history, sorted.
func (l *Library) Symbols() []string {
	symbols := make([]string, 0, len(l.series))
	for s := range l.series {
		symbols = append(symbols, s)
	}
	slices.Sort(symbols)
	return symbols
}
