package portfolio

import (
	"fmt"
	"math"

	"github.com/etnz/portfolio-lots/date"
	"github.com/shopspring/decimal"
)

// WeightTolerance is the maximum distance to 1 of the sum of rebalance weights.
const WeightTolerance = 1e-4

// Rebalance returns new holdings where every symbol of h is a single lot on day,
// sized so that its value is its weight of the total value of h on day.
//
// Weight keys are case insensitive and every weight must be a finite number.
// Only symbols of h are considered: a weight for a symbol not held is ignored,
// and a held symbol without a weight gets a zero lot. Prices must be known
// exactly on day for every held symbol. h is never modified.
func (h *Holdings) Rebalance(day date.Date, prices PriceIndex, weights map[string]float64) (*Holdings, error) {
	w := make(map[string]decimal.Decimal, len(weights))
	sum := 0.0
	for symbol, weight := range weights {
		if math.IsNaN(weight) || math.IsInf(weight, 0) {
			return nil, fmt.Errorf("%w: %s weight is %v", ErrWeightsNotNormalized, symbol, weight)
		}
		symbol = canonical(symbol)
		if _, ok := w[symbol]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateWeight, symbol)
		}
		sum += weight
		w[symbol] = decimal.NewFromFloat(weight)
	}
	if math.Abs(sum-1) > WeightTolerance {
		return nil, fmt.Errorf("%w: got %v", ErrWeightsNotNormalized, sum)
	}

	total := h.Value(day, prices)

	rebalanced := NewHoldings()
	for _, symbol := range h.symbols {
		price, err := exactClose(prices, symbol, day)
		if err != nil {
			return nil, err
		}
		// a missing weight is a zero weight.
		q := total.Mul(w[symbol]).Div(price)
		if q.IsNegative() {
			return nil, fmt.Errorf("%w: %s", ErrNegativeRebalanceQuantity, symbol)
		}
		rebalanced.add(symbol, Lot{Date: day, Quantity: Q(q), Close: price})
	}
	return rebalanced, nil
}
