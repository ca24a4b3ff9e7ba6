// Package cmd implements the CLI application to manage a portfolio of lots.
package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/portfolio-lots"
	"github.com/etnz/portfolio-lots/alphavantage"
	"github.com/etnz/portfolio-lots/config"
	"github.com/etnz/portfolio-lots/date"
	"github.com/etnz/portfolio-lots/eodhd"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&initCmd{}, "portfolio")
	c.Register(&buyCmd{}, "portfolio")
	c.Register(&sellCmd{}, "portfolio")
	c.Register(&rebalanceCmd{}, "portfolio")

	c.Register(&lotsCmd{}, "reports")
	c.Register(&compositionCmd{}, "reports")
	c.Register(&valueCmd{}, "reports")
	c.Register(&distributionCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&chartCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioFile = flag.String("portfolio-file", "portfolio.txt", "Path to the portfolio file")
var currency = flag.String("currency", portfolio.DefaultCurrency, "Display currency of values")
var LogLevel = flag.String("log-level", "warn", "Log level: debug, info, warn or error")

var providerName = flag.String("provider", "alphavantage", "Price provider: alphavantage or eodhd")

var (
	alphavantageConfig alphavantage.Config
	eodhdConfig        eodhd.Config
)

// Configure sets the global flags defaults from cfg. It must be called before
// parsing the command line so that flags take precedence.
func Configure(cfg *config.Config) {
	*portfolioFile = cfg.PortfolioFile
	*currency = cfg.Currency
	*LogLevel = cfg.LogLevel
	*providerName = cfg.Provider
	alphavantageConfig = alphavantage.Config{
		APIKey:   cfg.AlphaVantage.APIKey,
		BaseURL:  cfg.AlphaVantage.URL,
		Timeout:  cfg.AlphaVantage.Timeout,
		CacheDir: cfg.AlphaVantage.CacheDir,
		Debug:    cfg.AlphaVantage.Debug,
	}
	eodhdConfig = eodhd.Config{
		APIKey:   cfg.EODHD.APIKey,
		BaseURL:  cfg.EODHD.URL,
		Exchange: cfg.EODHD.Exchange,
		Timeout:  cfg.EODHD.Timeout,
		CacheDir: cfg.EODHD.CacheDir,
		Debug:    cfg.EODHD.Debug,
	}
}

// provider fills a library with price histories.
type provider interface {
	Fill(ctx context.Context, lib *portfolio.Library, symbols ...string) error
}

// newProvider returns the provider selected by the -provider flag.
func newProvider() (provider, error) {
	switch *providerName {
	case "alphavantage":
		return alphavantage.New(alphavantageConfig), nil
	case "eodhd":
		return eodhd.New(eodhdConfig), nil
	default:
		return nil, fmt.Errorf("unknown price provider %q", *providerName)
	}
}

// loadPortfolio decodes the portfolio file.
func loadPortfolio() (*portfolio.Portfolio, error) {
	return portfolio.LoadFile(*portfolioFile, portfolio.WithCurrency(*currency))
}

// savePortfolio encodes p into the portfolio file.
func savePortfolio(p *portfolio.Portfolio) error {
	return portfolio.SaveFile(*portfolioFile, p)
}

// fetchPrices returns the price histories of symbols.
//
// A symbol that cannot be fetched is logged and left out, valuations decide
// how to deal with it.
var fetchPrices = func(ctx context.Context, symbols []string) (portfolio.PriceIndex, error) {
	client, err := newProvider()
	if err != nil {
		return nil, err
	}
	lib := portfolio.NewLibrary()
	for _, symbol := range symbols {
		if err := client.Fill(ctx, lib, symbol); err != nil {
			log.Warn().Err(err).Str("symbol", symbol).Msg("no price history")
		}
	}
	return lib, nil
}

// load decodes the portfolio file and fetches the prices of its symbols.
func load(ctx context.Context) (*portfolio.Portfolio, portfolio.PriceIndex, error) {
	p, err := loadPortfolio()
	if err != nil {
		return nil, nil, fmt.Errorf("loading portfolio: %w", err)
	}
	prices, err := fetchPrices(ctx, p.Holdings().Symbols())
	if err != nil {
		return nil, nil, fmt.Errorf("fetching prices: %w", err)
	}
	return p, prices, nil
}

// parseRange parses the -from and -to flags of period commands.
func parseRange(from, to string) (date.Range, error) {
	start, err := date.Parse(from)
	if err != nil {
		return date.Range{}, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := date.Parse(to)
	if err != nil {
		return date.Range{}, fmt.Errorf("invalid end date: %w", err)
	}
	if end.Before(start) {
		return date.Range{}, fmt.Errorf("end date %s is before start date %s", end, start)
	}
	return date.NewRange(start, end), nil
}

// printMarkdown renders md to the terminal, or prints it raw when it can't.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		log.Debug().Err(err).Msg("rendering markdown")
		out = md
	}
	fmt.Print(out)
}

func oneYearAgo() string { return date.Today().AddMonths(-12).String() }
