package alphavantage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/etnz/portfolio-lots"
	"github.com/etnz/portfolio-lots/date"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dailyPayload = `{
    "Meta Data": {
        "1. Information": "Daily Prices (open, high, low, close) and Volumes",
        "2. Symbol": "IBM"
    },
    "Time Series (Daily)": {
        "2023-01-04": {
            "1. open": "142.0700",
            "2. high": "143.6150",
            "3. low": "141.3674",
            "4. close": "142.6000",
            "5. volume": "3904278"
        },
        "2023-01-03": {
            "1. open": "141.1000",
            "2. high": "141.9000",
            "3. low": "140.4800",
            "4. close": "141.5500",
            "5. volume": "3338829"
        }
    }
}`

// fakeServer serves payload on /query and counts the requests.
func fakeServer(t *testing.T, payload string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path != "/query" || r.URL.Query().Get("function") != "TIME_SERIES_DAILY" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestParseDaily(t *testing.T) {
	records, err := parseDaily([]byte(dailyPayload))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, date.New(2023, 1, 3), records[0].Date)
	assert.Equal(t, date.New(2023, 1, 4), records[1].Date)
	assert.True(t, records[0].Open.Equal(decimal.RequireFromString("141.1")))
	assert.True(t, records[0].High.Equal(decimal.RequireFromString("141.9")))
	assert.True(t, records[0].Low.Equal(decimal.RequireFromString("140.48")))
	assert.True(t, records[0].Close.Equal(decimal.RequireFromString("141.55")))
	assert.Equal(t, int64(3338829), records[0].Volume)
}

func TestParseDailyErrors(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
		api     bool
	}{
		{"error message", `{"Error Message": "Invalid API call."}`, true},
		{"rate limit", `{"Note": "Thank you for using Alpha Vantage!"}`, true},
		{"information", `{"Information": "The demo API key is for demo purposes only."}`, true},
		{"no series", `{"Meta Data": {}}`, false},
		{"not json", `<html></html>`, false},
		{"bad date", `{"Time Series (Daily)": {"yesterday": {"4. close": "1"}}}`, false},
		{"missing close", `{"Time Series (Daily)": {"2023-01-03": {"1. open": "1", "2. high": "1", "3. low": "1", "5. volume": "1"}}}`, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseDaily([]byte(tc.payload))
			require.Error(t, err)
			if tc.api {
				assert.ErrorIs(t, err, ErrAPI)
			} else {
				assert.NotErrorIs(t, err, ErrAPI)
			}
		})
	}
}

func TestClient_Fill(t *testing.T) {
	srv, hits := fakeServer(t, dailyPayload)
	c := New(Config{BaseURL: srv.URL, NoCache: true})

	lib := portfolio.NewLibrary()
	require.NoError(t, c.Fill(context.Background(), lib, "IBM"))

	assert.True(t, lib.Has("IBM"))
	records, _ := lib.Prices("IBM")
	assert.Len(t, records, 2)
	assert.Equal(t, int32(1), hits.Load())
}

func TestClient_SeriesHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL, NoCache: true})
	_, err := c.Series(context.Background(), "IBM")
	assert.ErrorContains(t, err, "500")
}

func TestClient_SeriesCached(t *testing.T) {
	srv, hits := fakeServer(t, dailyPayload)
	c := New(Config{BaseURL: srv.URL, CacheDir: t.TempDir()})

	for range 3 {
		records, err := c.Series(context.Background(), "IBM")
		require.NoError(t, err)
		require.Len(t, records, 2)
	}
	assert.Equal(t, int32(1), hits.Load(), "cached responses should not hit the server")

	_, err := c.Series(context.Background(), "MSFT")
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load(), "another symbol is another cache entry")
}
