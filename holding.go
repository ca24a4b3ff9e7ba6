package portfolio

import (
	"fmt"
	"slices"

	"github.com/etnz/portfolio-lots/date"
)

// Holdings maps symbols to their lots.
//
// Symbols are kept in the order they were first added, and lots of a symbol in
// the order they were added, not in date order. A symbol always has at least one
// lot: selling every lot removes the symbol.
type Holdings struct {
	symbols []string
	lots    map[string]lots
}

// NewHoldings returns empty holdings.
func NewHoldings() *Holdings {
	return &Holdings{lots: make(map[string]lots)}
}

// Clone returns a deep copy of h.
func (h *Holdings) Clone() *Holdings {
	c := &Holdings{
		symbols: slices.Clone(h.symbols),
		lots:    make(map[string]lots, len(h.lots)),
	}
	for s, l := range h.lots {
		c.lots[s] = slices.Clone(l)
	}
	return c
}

// Len returns the number of symbols held.
func (h *Holdings) Len() int { return len(h.symbols) }

// Symbols returns the symbols held, in insertion order.
func (h *Holdings) Symbols() []string { return slices.Clone(h.symbols) }

// Has reports whether symbol has lots.
func (h *Holdings) Has(symbol string) bool {
	_, ok := h.lots[canonical(symbol)]
	return ok
}

// Lots returns a copy of the lots of symbol.
func (h *Holdings) Lots(symbol string) []Lot { return slices.Clone(h.lots[canonical(symbol)]) }

// Add appends lot to symbol. The symbol must be a valid ticker and the lot
// quantity must not be negative, zero lots are accepted.
func (h *Holdings) Add(symbol string, lot Lot) error {
	symbol = canonical(symbol)
	if !ValidTicker(symbol) {
		return fmt.Errorf("%w: %q", ErrInvalidTicker, symbol)
	}
	if lot.Quantity.IsNegative() {
		return fmt.Errorf("%w: %v", ErrInvalidQuantity, lot.Quantity)
	}
	h.add(symbol, lot)
	return nil
}

// add appends lot to the canonical symbol.
func (h *Holdings) add(symbol string, lot Lot) {
	if _, ok := h.lots[symbol]; !ok {
		h.symbols = append(h.symbols, symbol)
	}
	h.lots[symbol] = append(h.lots[symbol], lot)
}

// AsOf returns the quantity of symbol held on day, that is the sum of its lots
// dated on or before day. It is zero for a symbol not held.
func (h *Holdings) AsOf(symbol string, day date.Date) Quantity {
	return h.lots[canonical(symbol)].asOf(day)
}

// buy adds a new lot of quantity shares of symbol on day.
func (h *Holdings) buy(symbol string, quantity Quantity, day date.Date) error {
	if !quantity.IsPositive() {
		return fmt.Errorf("%w: %v", ErrInvalidQuantity, quantity)
	}
	symbol = canonical(symbol)
	if !ValidTicker(symbol) {
		return fmt.Errorf("%w: %q", ErrInvalidTicker, symbol)
	}
	h.add(symbol, NewLot(day, quantity))
	return nil
}

// sell removes quantity shares of symbol from lots dated on or before day.
//
// h is left unchanged on error.
func (h *Holdings) sell(symbol string, quantity Quantity, day date.Date) error {
	if !quantity.IsPositive() {
		return fmt.Errorf("%w: %v", ErrInvalidQuantity, quantity)
	}
	symbol = canonical(symbol)
	current, ok := h.lots[symbol]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSymbolNotHeld, symbol)
	}
	remaining, ok := current.sell(quantity, day)
	if !ok {
		return fmt.Errorf("%w: %s has %v shares on %v, cannot sell %v", ErrInsufficientShares, symbol, current.asOf(day), day, quantity)
	}
	if len(remaining) > 0 {
		h.lots[symbol] = remaining
		return nil
	}
	delete(h.lots, symbol)
	h.symbols = slices.DeleteFunc(h.symbols, func(s string) bool { return s == symbol })
	return nil
}
