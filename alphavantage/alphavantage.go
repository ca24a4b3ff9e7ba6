// Package alphavantage fetches daily price histories from the Alpha Vantage API.
package alphavantage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/portfolio-lots"
	"github.com/etnz/portfolio-lots/date"
	"github.com/etnz/portfolio-lots/httpcache"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// DemoKey is the API key Alpha Vantage accepts for a few symbols (e.g. IBM).
const DemoKey = "demo"

// DefaultURL is the Alpha Vantage API address.
const DefaultURL = "https://www.alphavantage.co"

// ErrAPI is returned when Alpha Vantage answers with a message instead of data.
var ErrAPI = errors.New("alpha vantage error")

// Config configures a Client.
type Config struct {
	APIKey   string
	BaseURL  string
	Timeout  time.Duration
	CacheDir string // responses are cached there for the day, disabled if NoCache
	NoCache  bool
	Debug    bool
}

// Client fetches price histories.
type Client struct {
	apiKey string
	client *resty.Client
}

// New returns a new Client.
func New(cfg Config) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = DemoKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultURL
	}
	client := resty.New().
		SetDebug(cfg.Debug).
		SetTimeout(cfg.Timeout).
		SetBaseURL(cfg.BaseURL)
	if !cfg.NoCache {
		client.SetTransport(httpcache.New(http.DefaultTransport, cfg.CacheDir, "alphavantage"))
	}
	return &Client{apiKey: cfg.APIKey, client: client}
}

// messagePaths are the fields Alpha Vantage uses to answer without data.
var messagePaths = []string{`$["Error Message"]`, `$["Note"]`, `$["Information"]`}

// Series returns the full daily history of symbol, in chronological order.
func (c *Client) Series(ctx context.Context, symbol string) ([]portfolio.PriceRecord, error) {
	params := map[string]string{
		"function":   "TIME_SERIES_DAILY",
		"symbol":     symbol,
		"outputsize": "full",
		"datatype":   "json",
		"apikey":     c.apiKey,
	}

	log.Debug().Str("symbol", symbol).Msg("start alphavantage.Series request")

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(params).
		Get("/query")
	if err != nil {
		return nil, fmt.Errorf("error fetching %q: %w", symbol, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("error fetching %q: %s", symbol, resp.Status())
	}

	records, err := parseDaily(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", symbol, err)
	}
	log.Debug().Str("symbol", symbol).Int("records", len(records)).Msg("alphavantage.Series request complete")
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

// parseDaily reads a TIME_SERIES_DAILY json payload.
//
//	{
//	  "Meta Data": {...},
//	  "Time Series (Daily)": {
//	    "2023-01-03": {
//	      "1. open": "130.2800",
//	      "2. high": "130.9000",
//	      "3. low": "124.1700",
//	      "4. close": "125.0700",
//	      "5. volume": "112117471"
//	    },
//	    ...
func parseDaily(body []byte) ([]portfolio.PriceRecord, error) {
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return nil, err
	}
	for _, path := range messagePaths {
		if msg, err := jsonpath.Get(path, jobj); err == nil {
			return nil, fmt.Errorf("%w: %v", ErrAPI, msg)
		}
	}

	jval, err := jsonpath.Get(`$["Time Series (Daily)"]`, jobj)
	if err != nil {
		return nil, fmt.Errorf("missing daily time series: %w", err)
	}
	days, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("daily time series is not an object: %T", jval)
	}

	records := make([]portfolio.PriceRecord, 0, len(days))
	for day, v := range days {
		fields, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("invalid record on %s: %T", day, v)
		}
		r, err := parseRecord(day, fields)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	slices.SortFunc(records, func(a, b portfolio.PriceRecord) int { return a.Date.Compare(b.Date) })
	return records, nil
}

// parseRecord reads a single day of a daily time series.
func parseRecord(day string, fields map[string]any) (r portfolio.PriceRecord, err error) {
	if r.Date, err = date.Parse(day); err != nil {
		return r, err
	}
	for key, dst := range map[string]*decimal.Decimal{
		"1. open":  &r.Open,
		"2. high":  &r.High,
		"3. low":   &r.Low,
		"4. close": &r.Close,
	} {
		if *dst, err = field(fields, key); err != nil {
			return r, fmt.Errorf("invalid %q on %s: %w", key, day, err)
		}
	}
	volume, err := field(fields, "5. volume")
	if err != nil {
		return r, fmt.Errorf("invalid %q on %s: %w", "5. volume", day, err)
	}
	r.Volume = volume.IntPart()
	return r, nil
}

// field reads a decimal value, alpha vantage sends them as strings.
func field(fields map[string]any, key string) (decimal.Decimal, error) {
	switch v := fields[key].(type) {
	case string:
		return decimal.NewFromString(v)
	case float64:
		return decimal.NewFromFloat(v), nil
	case nil:
		return decimal.Zero, errors.New("missing")
	default:
		return decimal.Zero, fmt.Errorf("unexpected type %T", v)
	}
}
