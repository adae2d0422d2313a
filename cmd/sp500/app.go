package main

import (
	"fmt"
	"log"
	"os"

	"SP500Keeper/internal/collector"
	"SP500Keeper/internal/config"
	"SP500Keeper/internal/recorder"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// loadConfig reads the config file named by CONFIG_PATH, or the default one.
func loadConfig() (*config.Config, error) {
	cfgPath := config.DefaultPath
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func newCollector(cfg *config.Config) *collector.Collector {
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	col := collector.NewCollector(fetcher, cfg.DataSource.Symbol)
	col.Interval = cfg.DataSource.Interval
	col.Range = cfg.DataSource.Range
	return col
}

// openRecorder falls back to a no-op recorder so run history never blocks an update.
func openRecorder(cfg *config.Config) recorder.Recorder {
	if cfg.Database.SQLitePath == "" {
		return recorder.NewNoopRecorder()
	}
	sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
	if err != nil {
		log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
		return recorder.NewNoopRecorder()
	}
	return sr
}

// usd formats an amount as US dollars, e.g. "$1,234.56".
func usd(amount decimal.Decimal) string {
	cur := money.GetCurrency(money.USD)
	factor, _ := decimal.NewFromInt(10).PowInt32(int32(cur.Fraction))
	return money.New(amount.Mul(factor).Round(0).IntPart(), money.USD).Display()
}
