package eodhd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/etnz/portfolio-lots"
	"github.com/etnz/portfolio-lots/date"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eodPayload = `[
  {"date":"2024-02-14","open":290.1,"high":292.5,"low":289.0,"close":291.2,"adjusted_close":289.9,"volume":3121000},
  {"date":"2024-02-13","open":292.0,"high":293.1,"low":288.4,"close":289.8,"adjusted_close":288.5,"volume":3410500}
]`

func fakeServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("api_token") != "secret" {
			http.Error(w, "Unauthenticated", http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/api/eod/MCD.US", "/api/eod/MCD.F":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(eodPayload))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestTicker(t *testing.T) {
	c := New(Config{NoCache: true})
	assert.Equal(t, "MCD.US", c.Ticker("mcd"))
	assert.Equal(t, "MCD.F", c.Ticker("MCD.F"))

	c = New(Config{Exchange: "XETRA", NoCache: true})
	assert.Equal(t, "SAP.XETRA", c.Ticker("SAP"))
}

func TestParseEOD(t *testing.T) {
	records, err := parseEOD([]byte(eodPayload))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, date.New(2024, 2, 13), records[0].Date)
	assert.True(t, records[0].Close.Equal(decimal.RequireFromString("289.8")))
	assert.True(t, records[1].Open.Equal(decimal.RequireFromString("290.1")))
	assert.Equal(t, int64(3121000), records[1].Volume)

	_, err = parseEOD([]byte(`{"error":"nope"}`))
	assert.Error(t, err)
	_, err = parseEOD([]byte(`[{"date":"13/02/2024","close":1}]`))
	assert.Error(t, err)
}

func TestClient_Fill(t *testing.T) {
	srv := fakeServer(t)
	c := New(Config{APIKey: "secret", BaseURL: srv.URL, NoCache: true})

	lib := portfolio.NewLibrary()
	require.NoError(t, c.Fill(context.Background(), lib, "MCD"))

	records, ok := lib.Prices("MCD")
	require.True(t, ok)
	assert.Len(t, records, 2)
}

func TestClient_SeriesErrors(t *testing.T) {
	srv := fakeServer(t)

	_, err := New(Config{APIKey: "wrong", BaseURL: srv.URL, NoCache: true}).Series(context.Background(), "MCD")
	assert.ErrorContains(t, err, "401")

	_, err = New(Config{APIKey: "secret", BaseURL: srv.URL, NoCache: true}).Series(context.Background(), "AAPL")
	assert.ErrorContains(t, err, "404")
}
