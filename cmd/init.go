package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/portfolio-lots"
	"github.com/google/subcommands"
)

type initCmd struct {
	name  string
	force bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create a new empty portfolio file" }
func (*initCmd) Usage() string {
	return `pcs init -n <name> [-f]

  Creates an empty portfolio named <name> in the portfolio file.
  An existing portfolio file is only overwritten with -f.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Portfolio name")
	f.BoolVar(&c.force, "f", false, "Overwrite an existing portfolio file")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -n flag is required.")
		f.Usage()
		return subcommands.ExitUsageError
	}

	if _, err := os.Stat(*portfolioFile); !c.force && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error: portfolio file %q already exists, use -f to overwrite it.\n", *portfolioFile)
		return subcommands.ExitFailure
	}

	p := portfolio.New(c.name, portfolio.WithCurrency(*currency))
	if err := savePortfolio(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing portfolio file %q: %v\n", *portfolioFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully created portfolio %q in %s\n", p.Name(), *portfolioFile)
	return subcommands.ExitSuccess
}
