package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/portfolio-lots/date"
	"github.com/etnz/portfolio-lots/renderer"
	"github.com/google/subcommands"
)

type lotsCmd struct{}

func (*lotsCmd) Name() string     { return "lots" }
func (*lotsCmd) Synopsis() string { return "list every lot of the portfolio" }
func (*lotsCmd) Usage() string {
	return `pcs lots

  Lists every lot held, per symbol, in the order they were added.
`
}

func (*lotsCmd) SetFlags(*flag.FlagSet) {}

func (*lotsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := loadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.LotsMarkdown(p))
	return subcommands.ExitSuccess
}

type compositionCmd struct {
	date string
}

func (*compositionCmd) Name() string     { return "composition" }
func (*compositionCmd) Synopsis() string { return "display the quantity held of each symbol" }
func (*compositionCmd) Usage() string {
	return `pcs composition [-d <date>]

  Displays the number of shares held of each symbol on <date>.
`
}

func (c *compositionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the composition")
}

func (c *compositionCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	p, err := loadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CompositionMarkdown(p, on))
	return subcommands.ExitSuccess
}

type valueCmd struct {
	date string
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "display the total value of the portfolio" }
func (*valueCmd) Usage() string {
	return `pcs value [-d <date>]

  Displays the total value of the portfolio on <date>, each symbol valued at
  its latest close on or before <date>. Symbols without any price are skipped.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Valuation date")
}

func (c *valueCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	p, prices, err := load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ValueMarkdown(p, on, p.Value(on, prices)))
	return subcommands.ExitSuccess
}

type distributionCmd struct {
	date string
}

func (*distributionCmd) Name() string     { return "distribution" }
func (*distributionCmd) Synopsis() string { return "display the value of each symbol" }
func (*distributionCmd) Usage() string {
	return `pcs distribution [-d <date>]

  Displays the value of each symbol held, at its close on exactly <date>.
  Fails if a symbol has no close on <date>.
`
}

func (c *distributionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Valuation date")
}

func (c *distributionCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	p, prices, err := load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	d, err := p.Distribution(on, prices)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing distribution: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.DistributionMarkdown(p, on, d))
	return subcommands.ExitSuccess
}

type historyCmd struct {
	from, to string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the monthly value of the portfolio" }
func (*historyCmd) Usage() string {
	return `pcs history [-from <date>] [-to <date>]

  Displays the value of the portfolio every month from <from> to <to>.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", oneYearAgo(), "Start date")
	f.StringVar(&c.to, "to", date.Today().String(), "End date")
}

func (c *historyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := parseRange(c.from, c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	p, prices, err := load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.HistoryMarkdown(p, p.Sample(r.From, r.To, prices)))
	return subcommands.ExitSuccess
}

type chartCmd struct {
	from, to string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "draw the performance chart of the portfolio" }
func (*chartCmd) Usage() string {
	return `pcs chart [-from <date>] [-to <date>]

  Draws the value of the portfolio from <from> to <to> as a text chart of at
  most 30 rows.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", oneYearAgo(), "Start date")
	f.StringVar(&c.to, "to", date.Today().String(), "End date")
}

func (c *chartCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := parseRange(c.from, c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	p, prices, err := load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := renderer.Chart(os.Stdout, p.Name(), p.Chart(r.From, r.To, prices), p.Currency()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
