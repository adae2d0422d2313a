package collector

import (
	"context"
	"errors"
	"testing"
	"time"

	"SP500Keeper/internal/model"
)

func TestLatest(t *testing.T) {
	tests := []struct {
		name        string
		bars        []model.OHLCV
		wantMonth   string
		wantClosing string
	}{
		{
			name: "single bar",
			bars: []model.OHLCV{
				{Time: time.Date(2024, 6, 1, 16, 0, 0, 0, time.UTC), Close: 5300.12},
			},
			wantMonth:   "01/06/2024",
			wantClosing: "5300.12",
		},
		{
			name: "takes the last bar",
			bars: []model.OHLCV{
				{Time: time.Date(2024, 5, 30, 16, 0, 0, 0, time.UTC), Close: 5235.48},
				{Time: time.Date(2024, 5, 31, 16, 0, 0, 0, time.UTC), Close: 5277.515},
			},
			wantMonth:   "31/05/2024",
			wantClosing: "5277.52",
		},
		{
			name: "ignores a trailing bar without a close",
			bars: []model.OHLCV{
				{Time: time.Date(2024, 5, 31, 16, 0, 0, 0, time.UTC), Close: 5277.51},
				{Time: time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC), Open: 5300, High: 5301, Low: 5290},
			},
			wantMonth:   "31/05/2024",
			wantClosing: "5277.51",
		},
		{
			name: "pads to two decimals",
			bars: []model.OHLCV{
				{Time: time.Date(2024, 7, 1, 16, 0, 0, 0, time.UTC), Close: 5475.1},
			},
			wantMonth:   "01/07/2024",
			wantClosing: "5475.10",
		},
		{
			name: "drops excess precision",
			bars: []model.OHLCV{
				{Time: time.Date(2024, 7, 2, 16, 0, 0, 0, time.UTC), Close: 5509.0146484375},
			},
			wantMonth:   "02/07/2024",
			wantClosing: "5509.01",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollector(&MockFetcher{Bars: tt.bars}, "^GSPC")
			obs, err := c.Latest(context.Background())
			if err != nil {
				t.Fatalf("Latest: %v", err)
			}
			if got := obs.Month(); got != tt.wantMonth {
				t.Errorf("Month() = %s, want %s", got, tt.wantMonth)
			}
			if got := obs.ClosingString(); got != tt.wantClosing {
				t.Errorf("ClosingString() = %s, want %s", got, tt.wantClosing)
			}
		})
	}
}

func TestLatest_NoData(t *testing.T) {
	tests := []struct {
		name string
		bars []model.OHLCV
	}{
		{name: "empty history"},
		{name: "no closed bar", bars: []model.OHLCV{
			{Time: time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC), Open: 5300},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollector(&MockFetcher{Bars: tt.bars}, "^GSPC")
			_, err := c.Latest(context.Background())
			if !errors.Is(err, ErrNoData) {
				t.Fatalf("expected ErrNoData, got %v", err)
			}
		})
	}
}

func TestRoundClose(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{5300.125, "5300.12"}, // exact tie, to even
		{5300.135, "5300.14"}, // stored just above the tie
		{5277.515, "5277.52"},
		{4000.005, "4000.01"},
		{5300.1249, "5300.12"},
		{5300.1, "5300.10"},
		{5509.0146484375, "5509.01"},
		{0.125, "0.12"},
		{0.375, "0.38"},
	}
	for _, tt := range tests {
		if got := RoundClose(tt.in).StringFixed(2); got != tt.want {
			t.Errorf("RoundClose(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestLatest_FetchError(t *testing.T) {
	boom := errors.New("connection refused")
	c := NewCollector(&MockFetcher{Err: boom}, "^GSPC")
	_, err := c.Latest(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped fetch error, got %v", err)
	}
	if errors.Is(err, ErrNoData) {
		t.Error("fetch failure must not be reported as ErrNoData")
	}
}
