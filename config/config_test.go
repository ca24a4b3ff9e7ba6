package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "portfolio.txt", cfg.PortfolioFile)
	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.LogPretty)
	assert.Equal(t, "demo", cfg.AlphaVantage.APIKey)
	assert.Equal(t, "https://www.alphavantage.co", cfg.AlphaVantage.URL)
	assert.Equal(t, 30*time.Second, cfg.AlphaVantage.Timeout)
	assert.Empty(t, cfg.AlphaVantage.CacheDir)
	assert.Equal(t, "alphavantage", cfg.Provider)
	assert.Equal(t, "demo", cfg.EODHD.APIKey)
	assert.Equal(t, "US", cfg.EODHD.Exchange)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("PCS_PORTFOLIO_FILE", "retirement.txt")
	t.Setenv("ALPHAVANTAGE_TIMEOUT", "5s")
	t.Setenv("PCS_PROVIDER", "eodhd")
	t.Setenv("EODHD_EXCHANGE", "XETRA")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "retirement.txt", cfg.PortfolioFile)
	assert.Equal(t, 5*time.Second, cfg.AlphaVantage.Timeout)
	assert.Equal(t, "eodhd", cfg.Provider)
	assert.Equal(t, "XETRA", cfg.EODHD.Exchange)
}

func TestLoadDotenv(t *testing.T) {
	dotenv := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte("PCS_CURRENCY=EUR\nALPHAVANTAGE_API_KEY=secret\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("PCS_CURRENCY")
		os.Unsetenv("ALPHAVANTAGE_API_KEY")
	})

	cfg, err := Load(dotenv)
	require.NoError(t, err)

	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, "secret", cfg.AlphaVantage.APIKey)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("ALPHAVANTAGE_TIMEOUT", "soon")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
