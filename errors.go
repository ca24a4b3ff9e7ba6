package portfolio

import "errors"

// Errors returned by portfolio operations. They are wrapped with details, use
// errors.Is to test for them.
var (
	ErrInvalidQuantity           = errors.New("negative or zero quantity not allowed")
	ErrInvalidTicker             = errors.New("invalid stock ticker")
	ErrSymbolNotHeld             = errors.New("stock not found in portfolio")
	ErrInsufficientShares        = errors.New("not enough shares to sell")
	ErrWeightsNotNormalized      = errors.New("weights must add up to 1.0 (100%)")
	ErrDuplicateWeight           = errors.New("symbol has more than one weight")
	ErrNoDataForSymbol           = errors.New("no data available for the symbol")
	ErrNoDataOnDate              = errors.New("no data available for the symbol on date")
	ErrNegativeRebalanceQuantity = errors.New("rebalancing would result in a negative quantity")
	ErrMalformedState            = errors.New("invalid portfolio file")
)
