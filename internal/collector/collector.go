package collector

import (
	"context"
	"fmt"
	"math/big"

	"SP500Keeper/internal/model"

	"github.com/shopspring/decimal"
)

// Default feed window: one month of daily bars.
const (
	DefaultInterval = "1d"
	DefaultRange    = "1mo"
)

// MockFetcher returns fixed bars for development and testing.
type MockFetcher struct {
	Bars  []model.OHLCV
	Err   error
	Calls int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchBars(_ context.Context, _, _, _ string) ([]model.OHLCV, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Bars, nil
}

// Collector turns a feed's history into the latest observation.
type Collector struct {
	Fetcher  Fetcher
	Symbol   string
	Interval string
	Range    string
}

// NewCollector creates a new Collector over the default one-month daily window.
func NewCollector(fetcher Fetcher, symbol string) *Collector {
	return &Collector{
		Fetcher:  fetcher,
		Symbol:   symbol,
		Interval: DefaultInterval,
		Range:    DefaultRange,
	}
}

// Latest fetches the trailing history and returns its last closed bar as an
// observation with the close rounded to two decimals. Trailing bars without a
// close (an in-progress session) are ignored.
func (c *Collector) Latest(ctx context.Context) (model.Observation, error) {
	bars, err := c.Fetcher.FetchBars(ctx, c.Symbol, c.Interval, c.Range)
	if err != nil {
		return model.Observation{}, fmt.Errorf("fetch %s history: %w", c.Symbol, err)
	}
	for i := len(bars) - 1; i >= 0; i-- {
		if bars[i].Close > 0 {
			return model.Observation{
				Date:    bars[i].Time,
				Closing: RoundClose(bars[i].Close),
			}, nil
		}
	}
	return model.Observation{}, fmt.Errorf("fetch %s history: %w", c.Symbol, ErrNoData)
}

// RoundClose rounds the exact binary value of v to two decimals, ties to
// even, so 5300.125 gives 5300.12 and 5277.515 (stored just above) 5277.52.
func RoundClose(v float64) decimal.Decimal {
	exact, err := decimal.NewFromString(new(big.Float).SetFloat64(v).Text('f', 1100))
	if err != nil {
		return decimal.NewFromFloat(v).Round(2)
	}
	return exact.RoundBank(2)
}
