package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/portfolio-lots/date"
	"github.com/google/subcommands"
)

type rebalanceCmd struct {
	date    string
	weights string
}

func (*rebalanceCmd) Name() string { return "rebalance" }
func (*rebalanceCmd) Synopsis() string {
	return "replace all lots to match target weights"
}
func (*rebalanceCmd) Usage() string {
	return `pcs rebalance -w <SYMBOL=WEIGHT,...> [-d <date>]

  Replaces every lot of the portfolio by a single lot per held symbol, dated
  <date>, so that each symbol weighs its target weight of the portfolio value.
  Weights must add up to 1. A held symbol without weight gets a zero lot,
  weights of symbols not held are ignored.

Usage Examples:
$ pcs rebalance -d 2024-01-02 -w AAPL=0.6,MSFT=0.4
`
}

func (c *rebalanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Rebalance date, every symbol must have a close on that date")
	f.StringVar(&c.weights, "w", "", "Comma separated list of SYMBOL=WEIGHT")
}

func (c *rebalanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	weights, err := parseWeights(c.weights)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing weights: %v\n", err)
		f.Usage()
		return subcommands.ExitUsageError
	}

	p, prices, err := load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := p.Rebalance(on, prices, weights); err != nil {
		fmt.Fprintf(os.Stderr, "Error rebalancing portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := savePortfolio(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing portfolio file %q: %v\n", *portfolioFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully rebalanced %s on %s\n", p.Name(), on)
	return subcommands.ExitSuccess
}

// parseWeights parses "AAPL=0.6,MSFT=0.4".
func parseWeights(s string) (map[string]float64, error) {
	weights := make(map[string]float64)
	for item := range strings.SplitSeq(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		symbol, value, ok := strings.Cut(item, "=")
		if !ok {
			return nil, fmt.Errorf("%q is not SYMBOL=WEIGHT", item)
		}
		symbol = strings.ToUpper(strings.TrimSpace(symbol))
		if _, exists := weights[symbol]; exists {
			return nil, fmt.Errorf("duplicate weight for %s", symbol)
		}
		w, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight for %s: %w", symbol, err)
		}
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("invalid weight for %s: %v", symbol, w)
		}
		weights[symbol] = w
	}
	if len(weights) == 0 {
		return nil, errors.New("no weights")
	}
	return weights, nil
}
