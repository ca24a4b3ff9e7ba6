// Package config loads the pcs configuration from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	PortfolioFile string `env:"PCS_PORTFOLIO_FILE" envDefault:"portfolio.txt"`
	Currency      string `env:"PCS_CURRENCY" envDefault:"USD"`
	LogLevel      string `env:"PCS_LOG_LEVEL" envDefault:"warn"`
	LogPretty     bool   `env:"PCS_LOG_PRETTY" envDefault:"true"`

	// Provider is the price provider, "alphavantage" or "eodhd".
	Provider     string `env:"PCS_PROVIDER" envDefault:"alphavantage"`
	AlphaVantage AlphaVantage
	EODHD        EODHD
}

type AlphaVantage struct {
	APIKey   string        `env:"ALPHAVANTAGE_API_KEY" envDefault:"demo"`
	URL      string        `env:"ALPHAVANTAGE_URL" envDefault:"https://www.alphavantage.co"`
	Timeout  time.Duration `env:"ALPHAVANTAGE_TIMEOUT" envDefault:"30s"`
	CacheDir string        `env:"ALPHAVANTAGE_CACHE_DIR"`
	Debug    bool          `env:"ALPHAVANTAGE_DEBUG"`
}

type EODHD struct {
	APIKey   string        `env:"EODHD_API_KEY" envDefault:"demo"`
	URL      string        `env:"EODHD_URL" envDefault:"https://eodhd.com"`
	Exchange string        `env:"EODHD_EXCHANGE" envDefault:"US"`
	Timeout  time.Duration `env:"EODHD_TIMEOUT" envDefault:"30s"`
	CacheDir string        `env:"EODHD_CACHE_DIR"`
	Debug    bool          `env:"EODHD_DEBUG"`
}

// Load reads the configuration from the environment, after loading the
// optional dotenv files (".env" by default). Variables already set in the
// environment take precedence over dotenv files.
func Load(dotenv ...string) (*Config, error) {
	if len(dotenv) == 0 {
		dotenv = []string{".env"}
	}
	for _, f := range dotenv {
		// a missing file is fine.
		_ = godotenv.Load(f)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
