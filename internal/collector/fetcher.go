package collector

import (
	"context"
	"errors"

	"SP500Keeper/internal/model"
)

// ErrNoData is returned when the feed has no bars for the requested window.
var ErrNoData = errors.New("no data received from market data feed")

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	// FetchBars returns bars in chronological order.
	FetchBars(ctx context.Context, symbol, interval, rng string) ([]model.OHLCV, error)
	Name() string
}
