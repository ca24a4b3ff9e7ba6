// Package eodhd fetches end of day price histories from EOD Historical Data.
package eodhd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/etnz/portfolio-lots"
	"github.com/etnz/portfolio-lots/date"
	"github.com/etnz/portfolio-lots/httpcache"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// DemoKey is the API key EODHD accepts for a few tickers (e.g. MCD.US).
const DemoKey = "demo"

// DefaultURL is the EODHD API address.
const DefaultURL = "https://eodhd.com"

// DefaultExchange is the EODHD exchange code of US tickers.
const DefaultExchange = "US"

// Config configures a Client. Zero values fall back to DemoKey, DefaultURL and
// DefaultExchange.
type Config struct {
	APIKey   string
	BaseURL  string
	Exchange string // appended to symbols without an exchange, e.g. "AAPL.US"
	Timeout  time.Duration
	CacheDir string
	NoCache  bool
	Debug    bool
}

// Client fetches price histories.
type Client struct {
	apiKey   string
	exchange string
	client   *resty.Client
}

// New returns a new Client.
func New(cfg Config) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = DemoKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultURL
	}
	if cfg.Exchange == "" {
		cfg.Exchange = DefaultExchange
	}
	client := resty.New().
		SetDebug(cfg.Debug).
		SetTimeout(cfg.Timeout).
		SetBaseURL(cfg.BaseURL)
	if !cfg.NoCache {
		client.SetTransport(httpcache.New(http.DefaultTransport, cfg.CacheDir, "eodhd"))
	}
	return &Client{apiKey: cfg.APIKey, exchange: cfg.Exchange, client: client}
}

// Ticker returns the EODHD ticker of symbol, "SYMBOL.EXCHANGE".
func (c *Client) Ticker(symbol string) string {
	symbol = strings.ToUpper(symbol)
	if strings.Contains(symbol, ".") {
		return symbol
	}
	return symbol + "." + c.exchange
}

// record is a single day of https://eodhd.com/api/eod/MCD.US?api_token=demo&fmt=json
//
//	[
//	  {
//	    "date": "2024-02-13",
//	    "open": 675.066,
//	    "high": 684.219,
//	    "low": 648.659,
//	    "close": 668.445,
//	    "adjusted_close": 67.705,
//	    "volume": 0
//	  },
type record struct {
	Date   string          `json:"date"`
	Open   decimal.Decimal `json:"open"`
	High   decimal.Decimal `json:"high"`
	Low    decimal.Decimal `json:"low"`
	Close  decimal.Decimal `json:"close"`
	Volume int64           `json:"volume"`
}

// Series returns the full daily history of symbol, in chronological order.
func (c *Client) Series(ctx context.Context, symbol string) ([]portfolio.PriceRecord, error) {
	ticker := c.Ticker(symbol)
	log.Debug().Str("ticker", ticker).Msg("start eodhd.Series request")

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(map[string]string{
			"fmt":       "json",
			"api_token": c.apiKey,
		}).
		Get("/api/eod/" + url.PathEscape(ticker))
	if err != nil {
		return nil, fmt.Errorf("error fetching %q: %w", ticker, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("error fetching %q: %s", ticker, resp.Status())
	}

	records, err := parseEOD(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", ticker, err)
	}
	log.Debug().Str("ticker", ticker).Int("records", len(records)).Msg("eodhd.Series request complete")
	return records, nil
}

// Fill fetches the history of every symbol into lib.
func (c *Client) Fill(ctx context.Context, lib *portfolio.Library, symbols ...string) error {
	for _, symbol := range symbols {
		records, err := c.Series(ctx, symbol)
		if err != nil {
			return err
		}
		lib.Add(symbol, records...)
	}
	return nil
}

func parseEOD(body []byte) ([]portfolio.PriceRecord, error) {
	var content []record
	if err := json.Unmarshal(body, &content); err != nil {
		return nil, err
	}

	records := make([]portfolio.PriceRecord, 0, len(content))
	for _, r := range content {
		day, err := date.Parse(r.Date)
		if err != nil {
			return nil, err
		}
		records = append(records, portfolio.PriceRecord{
			Date:   day,
			Open:   r.Open,
			High:   r.High,
			Low:    r.Low,
			Close:  r.Close,
			Volume: r.Volume,
		})
	}
	slices.SortFunc(records, func(a, b portfolio.PriceRecord) int { return a.Date.Compare(b.Date) })
	return records, nil
}
