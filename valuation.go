package portfolio

import (
	"fmt"

	"github.com/etnz/portfolio-lots/date"
	"github.com/shopspring/decimal"
)

// Value returns the total value of h on day.
//
// Each symbol is valued at its latest close on or before day. A symbol without
// any price, in prices or before day, contributes nothing: the valuation is
// partial rather than failing.
func (h *Holdings) Value(day date.Date, prices PriceIndex) decimal.Decimal {
	total := decimal.Zero
	for _, symbol := range h.symbols {
		q := h.lots[symbol].asOf(day)
		if !q.IsPositive() {
			continue
		}
		records, ok := prices.Prices(symbol)
		if !ok || len(records) == 0 {
			continue
		}
		price, ok := closeAsOf(records, day)
		if !ok {
			continue
		}
		total = total.Add(price.Mul(q.value))
	}
	return total
}

// Composition returns the quantity held on day of every symbol with a positive
// quantity.
func (h *Holdings) Composition(day date.Date) map[string]Quantity {
	composition := make(map[string]Quantity)
	for _, symbol := range h.symbols {
		if q := h.lots[symbol].asOf(day); q.IsPositive() {
			composition[symbol] = q
		}
	}
	return composition
}

// Distribution returns the value on day of every symbol held.
//
// Unlike Value, prices must be known exactly on day: it fails with
// ErrNoDataForSymbol if a symbol has no history, and ErrNoDataOnDate if it has
// no close on that day.
func (h *Holdings) Distribution(day date.Date, prices PriceIndex) (map[string]decimal.Decimal, error) {
	distribution := make(map[string]decimal.Decimal, len(h.symbols))
	for _, symbol := range h.symbols {
		price, err := exactClose(prices, symbol, day)
		if err != nil {
			return nil, err
		}
		distribution[symbol] = price.Mul(h.lots[symbol].asOf(day).value)
	}
	return distribution, nil
}

// exactClose returns the close of symbol on day.
//
// A zero close is not a usable price and is reported as missing.
func exactClose(prices PriceIndex, symbol string, day date.Date) (decimal.Decimal, error) {
	records, ok := prices.Prices(symbol)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrNoDataForSymbol, symbol)
	}
	price, ok := closeOn(records, day)
	if !ok || price.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: %s on %v", ErrNoDataOnDate, symbol, day)
	}
	return price, nil
}
