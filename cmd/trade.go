package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/portfolio-lots"
	"github.com/etnz/portfolio-lots/date"
	"github.com/google/subcommands"
)

// tradeFlags are the flags shared by buy and sell.
type tradeFlags struct {
	symbol   string
	quantity string
	date     string
}

func (t *tradeFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&t.symbol, "s", "", "Security ticker, e.g. AAPL")
	f.StringVar(&t.quantity, "q", "", "Quantity of shares")
	f.StringVar(&t.date, "d", date.Today().String(), "Trade date")
}

// parse returns the trade quantity and date, or a usage error.
func (t *tradeFlags) parse() (portfolio.Quantity, date.Date, error) {
	if t.symbol == "" || t.quantity == "" {
		return portfolio.Quantity{}, date.Date{}, errors.New("-s and -q flags are required")
	}
	q, err := portfolio.ParseQuantity(t.quantity)
	if err != nil {
		return portfolio.Quantity{}, date.Date{}, fmt.Errorf("invalid quantity %q: %w", t.quantity, err)
	}
	on, err := date.Parse(t.date)
	if err != nil {
		return portfolio.Quantity{}, date.Date{}, fmt.Errorf("invalid date %q: %w", t.date, err)
	}
	return q, on, nil
}

// trade applies op to the portfolio file, saving it only if op succeeds.
func (t *tradeFlags) trade(f *flag.FlagSet, verb string, op func(p *portfolio.Portfolio, q portfolio.Quantity, on date.Date) error) subcommands.ExitStatus {
	q, on, err := t.parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		f.Usage()
		return subcommands.ExitUsageError
	}

	p, err := loadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := op(p, q, on); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := savePortfolio(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing portfolio file %q: %v\n", *portfolioFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully %s %s %s on %s\n", verb, q, t.symbol, on)
	return subcommands.ExitSuccess
}

type buyCmd struct{ tradeFlags }

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "add a lot of shares to the portfolio" }
func (*buyCmd) Usage() string {
	return `pcs buy -s <symbol> -q <quantity> [-d <date>]

  Adds a new lot of <quantity> shares of <symbol> acquired on <date>.
`
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.trade(f, "bought", func(p *portfolio.Portfolio, q portfolio.Quantity, on date.Date) error {
		return p.Buy(c.symbol, q, on)
	})
}

type sellCmd struct{ tradeFlags }

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "remove shares from the portfolio lots" }
func (*sellCmd) Usage() string {
	return `pcs sell -s <symbol> -q <quantity> [-d <date>]

  Sells <quantity> shares of <symbol> on <date>, consuming lots in the order
  they were bought. Lots acquired after <date> are left untouched.
  Nothing is sold if not enough shares are held on <date>.
`
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.trade(f, "sold", func(p *portfolio.Portfolio, q portfolio.Quantity, on date.Date) error {
		return p.Sell(c.symbol, q, on)
	})
}
