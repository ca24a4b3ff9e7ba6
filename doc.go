// Package portfolio models a named stock portfolio made of lots.
//
// The core functionalities include:
//   - Holdings: lots of shares grouped by symbol, bought and sold on given days.
//     Quantities held on a day only count lots dated on or before that day.
//   - Valuation: total value, composition and value distribution on a day, using
//     the daily prices of a PriceIndex.
//   - Rebalancing: replacing every holding by a single lot matching a target
//     weight of the portfolio value.
//   - Time series: monthly values, and a performance chart sampling.
//   - Persistence: a flat, human-readable text format.
//
// Prices are never stored in the portfolio (except by a rebalance), they are
// resolved against a PriceIndex on demand. Two lookup rules coexist: valuation
// uses the latest close on or before the day and silently ignores symbols
// without price, whereas distribution and rebalancing require a close exactly
// on the day and fail otherwise.
//
// This package serves as the foundational logic for the `pcs` command-line tool.
package portfolio
