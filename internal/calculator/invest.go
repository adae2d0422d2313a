package calculator

import (
	"errors"
	"math"
	"time"

	"SP500Keeper/internal/model"

	"github.com/shopspring/decimal"
)

var (
	ErrNoObservations = errors.New("dataset has no usable observations")
	ErrEmptyRange     = errors.New("no observations in the requested date range")
)

// Plan describes a fixed monthly investment.
type Plan struct {
	From    time.Time
	To      time.Time // zero means the date of the last observation
	Monthly decimal.Decimal
}

// Purchase is one monthly buy.
type Purchase struct {
	YearMonth  string
	Price      decimal.Decimal
	Units      decimal.Decimal
	TotalUnits decimal.Decimal
	Invested   decimal.Decimal
	Value      decimal.Decimal
}

// Result is the outcome of a simulated plan, valued at the last closing.
type Result struct {
	Purchases     []Purchase
	TotalInvested decimal.Decimal
	TotalUnits    decimal.Decimal
	LastPrice     decimal.Decimal
	CurrentValue  decimal.Decimal
	LatestDate    string
	AsOf          time.Time // date of the last observation
}

// Simulate buys plan.Monthly worth of the index at the first observation of
// each calendar month within [From, To], walking observations in dataset order.
func Simulate(obs []model.Observation, plan Plan) (*Result, error) {
	if len(obs) == 0 {
		return nil, ErrNoObservations
	}
	if !plan.Monthly.IsPositive() {
		return nil, errors.New("monthly amount must be positive")
	}
	last := obs[len(obs)-1]
	from := day(plan.From)
	to := day(last.Date)
	if !plan.To.IsZero() {
		to = day(plan.To)
	}

	res := &Result{
		TotalInvested: decimal.Zero,
		TotalUnits:    decimal.Zero,
		LastPrice:     last.Closing,
		LatestDate:    last.Month(),
		AsOf:          day(last.Date),
	}
	prevMonth := ""
	for _, o := range obs {
		d := day(o.Date)
		ym := d.Format("2006-01")
		if d.Before(from) || d.After(to) || ym == prevMonth || !o.Closing.IsPositive() {
			continue
		}
		units := plan.Monthly.Div(o.Closing)
		res.TotalUnits = res.TotalUnits.Add(units)
		res.TotalInvested = res.TotalInvested.Add(plan.Monthly)
		res.Purchases = append(res.Purchases, Purchase{
			YearMonth:  ym,
			Price:      o.Closing,
			Units:      units,
			TotalUnits: res.TotalUnits,
			Invested:   res.TotalInvested,
			Value:      res.TotalUnits.Mul(o.Closing),
		})
		prevMonth = ym
	}
	if len(res.Purchases) == 0 {
		return nil, ErrEmptyRange
	}
	res.CurrentValue = res.TotalUnits.Mul(res.LastPrice)
	return res, nil
}

// day truncates t to its calendar date.
func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ProjectionRates are the annual returns of the low, mid and high retirement scenarios.
var ProjectionRates = []decimal.Decimal{
	decimal.RequireFromString("0.0927"),
	decimal.RequireFromString("0.1243"),
	decimal.RequireFromString("0.149"),
}

// Scenario is the projected value of a holding at one annual return.
type Scenario struct {
	Rate  decimal.Decimal
	Value decimal.Decimal
}

// AgeAt returns the completed years between birth and asOf, counting 365.25-day years.
func AgeAt(birth, asOf time.Time) int {
	days := day(asOf).Sub(day(birth)).Hours() / 24
	return int(math.Floor(days / 365.25))
}

// YearsToRetirement returns the years left until retireAge, and false when
// retireAge is not above the age at asOf.
func YearsToRetirement(birth, asOf time.Time, retireAge int) (int, bool) {
	age := AgeAt(birth, asOf)
	if retireAge <= age {
		return 0, false
	}
	return retireAge - age, true
}

// Project compounds the current value of res over years at each of ProjectionRates.
func Project(res *Result, years int) []Scenario {
	if years <= 0 {
		return nil
	}
	n := decimal.NewFromInt(int64(years))
	scenarios := make([]Scenario, 0, len(ProjectionRates))
	for _, r := range ProjectionRates {
		growth := decimal.NewFromInt(1).Add(r).Pow(n)
		scenarios = append(scenarios, Scenario{Rate: r, Value: res.CurrentValue.Mul(growth)})
	}
	return scenarios
}
