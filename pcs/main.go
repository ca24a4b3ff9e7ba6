package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/portfolio-lots/cmd"
	"github.com/etnz/portfolio-lots/config"
	"github.com/etnz/portfolio-lots/logger"
	"github.com/google/subcommands"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}
	cmd.Configure(cfg)

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// exits when invoked by the shell for completion.
	completion(commander).Complete(commander.Name())

	flag.Parse()
	logger.SetGlobal(logger.New(logger.Config{Level: *cmd.LogLevel, Pretty: cfg.LogPretty}, os.Stderr))

	os.Exit(int(commander.Execute(context.Background())))
}
