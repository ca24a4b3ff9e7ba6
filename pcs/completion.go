package main

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the commander subcommands and flags for shell completion.
//
// Install it with: COMP_INSTALL=1 pcs
func completion(commander *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flags(flag.CommandLine),
	}
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		root.Sub[c.Name()] = &complete.Command{Flags: flags(f)}
	})
	return root
}

func flags(f *flag.FlagSet) map[string]complete.Predictor {
	m := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		m[fl.Name] = predictor(fl)
	})
	return m
}

func predictor(fl *flag.Flag) complete.Predictor {
	switch {
	case fl.Name == "portfolio-file":
		return predict.Files("*.txt")
	case fl.Name == "o":
		return predict.Files("*.xlsx")
	case fl.Name == "provider":
		return predict.Set{"alphavantage", "eodhd"}
	case fl.Name == "log-level":
		return predict.Set{"debug", "info", "warn", "error"}
	case isBool(fl):
		return predict.Nothing
	default:
		return predict.Something
	}
}

func isBool(fl *flag.Flag) bool {
	b, ok := fl.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
