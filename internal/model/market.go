package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthLayout is the date layout of the dataset's Month column (DD/MM/YYYY).
const MonthLayout = "02/01/2006"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Observation is one dated closing value of the index.
type Observation struct {
	Date    time.Time
	Closing decimal.Decimal
}

// Month returns the date formatted for the dataset's Month column.
func (o Observation) Month() string { return o.Date.Format(MonthLayout) }

// ClosingString returns the closing value with exactly two fractional digits.
func (o Observation) ClosingString() string { return o.Closing.StringFixed(2) }
