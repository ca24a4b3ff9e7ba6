package portfolio

import (
	"github.com/etnz/portfolio-lots/date"
	"github.com/shopspring/decimal"
)

// Lot represents a quantity of a security acquired (or priced) on a given day.
//
// A Lot is a value: reducing it produces a new Lot.
type Lot struct {
	Date     date.Date
	Quantity Quantity
	// Prices are only set by a rebalance; a bought lot resolves its price at
	// valuation time.
	Open, High, Low, Close decimal.Decimal
}

// NewLot returns a lot with no price information.
func NewLot(on date.Date, q Quantity) Lot { return Lot{Date: on, Quantity: q} }

type lots []Lot

// asOf returns the sum of quantities of lots dated on or before day.
func (l lots) asOf(day date.Date) Quantity {
	var total Quantity
	for _, lot := range l {
		if !lot.Date.After(day) {
			total = total.Add(lot.Quantity)
		}
	}
	return total
}

// sell consumes quantityToSell shares out of lots dated on or before day.
//
// Lots are consumed in list order, whatever their date. The receiver is never
// modified: the remaining lots are returned, with false if there was not enough
// eligible shares.
func (l lots) sell(quantityToSell Quantity, day date.Date) (lots, bool) {
	if l.asOf(day).LessThan(quantityToSell) {
		return l, false
	}

	remainingLots := make(lots, 0, len(l))
	for _, currentLot := range l {
		if quantityToSell.IsZero() || currentLot.Date.After(day) {
			remainingLots = append(remainingLots, currentLot)
			continue
		}

		if currentLot.Quantity.GreaterThan(quantityToSell) {
			// Partial sale from this lot
			currentLot.Quantity = currentLot.Quantity.Sub(quantityToSell)
			remainingLots = append(remainingLots, currentLot)
			quantityToSell = Quantity{}
		} else {
			// Full sale of this lot
			quantityToSell = quantityToSell.Sub(currentLot.Quantity)
		}
	}
	return remainingLots, true
}
