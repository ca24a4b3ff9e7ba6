package portfolio

import (
	"testing"

	"github.com/etnz/portfolio-lots/date"
	"github.com/shopspring/decimal"
)

// on is a helper for test to create dates from const.
func on(s string) date.Date { return date.MustParse(s) }

// dec is a helper for test to create decimals from const.
func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// closing returns price records with only a close, in the given order.
func closing(pairs ...any) []PriceRecord {
	var records []PriceRecord
	for i := 0; i+1 < len(pairs); i += 2 {
		records = append(records, PriceRecord{Date: on(pairs[i].(string)), Close: dec(pairs[i+1].(float64))})
	}
	return records
}

// unordered is a PriceIndex that returns records exactly as given.
type unordered map[string][]PriceRecord

func (u unordered) Prices(symbol string) ([]PriceRecord, bool) {
	r, ok := u[symbol]
	return r, ok
}

// mustBuy buys or fails the test.
func mustBuy(t *testing.T, p *Portfolio, symbol string, q float64, day string) {
	t.Helper()
	if err := p.Buy(symbol, Q(q), on(day)); err != nil {
		t.Fatalf("Buy(%s, %v, %s) unexpected error: %v", symbol, q, day, err)
	}
}

// applePortfolio bought 10 AAPL on 2023-01-01 and 5 more on 2023-02-01.
func applePortfolio(t *testing.T) *Portfolio {
	t.Helper()
	p := New("retirement")
	mustBuy(t, p, "AAPL", 10, "2023-01-01")
	mustBuy(t, p, "AAPL", 5, "2023-02-01")
	return p
}

// appleLibrary has AAPL closing at 150 on 2023-01-01 and 160 on 2023-02-01.
func appleLibrary() *Library {
	lib := NewLibrary()
	lib.Add("AAPL", closing("2023-01-01", 150.0, "2023-02-01", 160.0)...)
	return lib
}

// equalComposition compares two compositions.
func equalComposition(a, b map[string]Quantity) bool {
	if len(a) != len(b) {
		return false
	}
	for s, q := range a {
		if p, ok := b[s]; !ok || !p.Equal(q) {
			return false
		}
	}
	return true
}
