package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/portfolio-lots/date"
	"github.com/etnz/portfolio-lots/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type exportCmd struct {
	date     string
	from, to string
	output   string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the portfolio to a spreadsheet" }
func (*exportCmd) Usage() string {
	return `pcs export [-d <date>] [-from <date>] [-to <date>] [-o <file.xlsx>]

  Writes a workbook with the composition of the portfolio on <date> and its
  monthly value from <from> to <to>.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Composition date")
	f.StringVar(&c.from, "from", oneYearAgo(), "History start date")
	f.StringVar(&c.to, "to", date.Today().String(), "History end date")
	f.StringVar(&c.output, "o", "portfolio.xlsx", "Output file")
}

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
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

	// the workbook is still useful without values.
	d, err := p.Distribution(on, prices)
	if err != nil {
		log.Warn().Err(err).Str("date", on.String()).Msg("exporting composition without values")
	}

	data, err := renderer.ExportXLSX(p, on, d, p.Sample(r.From, r.To, prices))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(c.output, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully exported %s to %s\n", p.Name(), c.output)
	return subcommands.ExitSuccess
}
