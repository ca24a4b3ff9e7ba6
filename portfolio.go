package portfolio

import (
	"github.com/etnz/portfolio-lots/date"
	"github.com/shopspring/decimal"
)

// Portfolio is a named set of holdings.
//
// A Portfolio is not safe for concurrent use.
type Portfolio struct {
	name     string
	currency string
	holdings *Holdings
}

// Option configures a Portfolio.
type Option func(*Portfolio)

// WithCurrency sets the display currency of the portfolio values.
func WithCurrency(currency string) Option {
	return func(p *Portfolio) {
		if currency != "" {
			p.currency = currency
		}
	}
}

// New returns an empty portfolio.
func New(name string, opts ...Option) *Portfolio {
	return NewWithHoldings(name, NewHoldings(), opts...)
}

// NewWithHoldings returns a portfolio holding a copy of h.
func NewWithHoldings(name string, h *Holdings, opts ...Option) *Portfolio {
	p := &Portfolio{name: name, currency: DefaultCurrency, holdings: h.Clone()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the portfolio name.
func (p *Portfolio) Name() string { return p.name }

// Currency returns the display currency.
func (p *Portfolio) Currency() string { return p.currency }

// Holdings returns a copy of the portfolio holdings.
func (p *Portfolio) Holdings() *Holdings { return p.holdings.Clone() }

// Buy adds quantity shares of symbol on day.
func (p *Portfolio) Buy(symbol string, quantity Quantity, day date.Date) error {
	return p.holdings.buy(symbol, quantity, day)
}

// Sell removes quantity shares of symbol, bought on or before day.
//
// Lots are consumed in the order they were bought, regardless of their date.
// On error the portfolio is unchanged.
func (p *Portfolio) Sell(symbol string, quantity Quantity, day date.Date) error {
	return p.holdings.sell(symbol, quantity, day)
}

// Value returns the portfolio total value on day.
func (p *Portfolio) Value(day date.Date, prices PriceIndex) Money {
	return p.Money(p.holdings.Value(day, prices))
}

// Composition returns the quantity of each symbol held on day.
func (p *Portfolio) Composition(day date.Date) map[string]Quantity {
	return p.holdings.Composition(day)
}

// Distribution returns the value of each symbol held on day.
func (p *Portfolio) Distribution(day date.Date, prices PriceIndex) (map[string]Money, error) {
	d, err := p.holdings.Distribution(day, prices)
	if err != nil {
		return nil, err
	}
	distribution := make(map[string]Money, len(d))
	for s, v := range d {
		distribution[s] = p.Money(v)
	}
	return distribution, nil
}

// Rebalance replaces all lots so that each held symbol weighs its target weight
// of the portfolio value on day. On error the portfolio is unchanged.
func (p *Portfolio) Rebalance(day date.Date, prices PriceIndex, weights map[string]float64) error {
	h, err := p.holdings.Rebalance(day, prices, weights)
	if err != nil {
		return err
	}
	p.holdings = h
	return nil
}

// Sample returns the monthly values of the portfolio between two dates.
func (p *Portfolio) Sample(from, to date.Date, prices PriceIndex) []ValuePoint {
	return p.holdings.Sample(from, to, prices)
}

// Chart returns the performance chart of the portfolio between two dates.
func (p *Portfolio) Chart(from, to date.Date, prices PriceIndex) Chart {
	return p.holdings.NewChart(from, to, prices)
}

// Money returns v in the portfolio currency.
func (p *Portfolio) Money(v decimal.Decimal) Money { return M(v, p.currency) }
