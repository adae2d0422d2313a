package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"SP500Keeper/internal/calculator"
	"SP500Keeper/internal/dataset"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type investCmd struct {
	from    string
	to      string
	monthly float64
	verbose bool

	birth     string
	retireAge int
}

func (*investCmd) Name() string { return "invest" }
func (*investCmd) Synopsis() string {
	return "simulate a fixed monthly investment in the index over the dataset"
}
func (*investCmd) Usage() string {
	return "sp500 invest -from DD/MM/YYYY [-to DD/MM/YYYY] [-monthly 100] [-v]\n" +
		"            [-birth DD/MM/YYYY -retire-age N]\n"
}
func (c *investCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "first day of the plan (DD/MM/YYYY)")
	f.StringVar(&c.to, "to", "", "last day of the plan (DD/MM/YYYY), defaults to the latest row")
	f.Float64Var(&c.monthly, "monthly", 100, "amount invested each month in USD")
	f.BoolVar(&c.verbose, "v", false, "print every monthly purchase")
	f.StringVar(&c.birth, "birth", "", "date of birth (DD/MM/YYYY), needed by -retire-age")
	f.IntVar(&c.retireAge, "retire-age", 0, "project the current value to this age (0 disables)")
}
func (c *investCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	plan, err := c.plan()
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitUsageError
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Printf("[FATAL] %v", err)
		return subcommands.ExitFailure
	}
	ds, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		log.Printf("[FATAL] %v", err)
		return subcommands.ExitFailure
	}
	res, err := calculator.Simulate(ds.Observations(), plan)
	if err != nil {
		log.Printf("[FATAL] simulate: %v", err)
		return subcommands.ExitFailure
	}

	if c.verbose {
		for _, p := range res.Purchases {
			fmt.Printf("%s  price %10s  units %s  value %s\n",
				p.YearMonth, p.Price.StringFixed(2), p.Units.StringFixed(4), usd(p.Value))
		}
		fmt.Println()
	}
	fmt.Printf("Latest data:    %s\n", res.LatestDate)
	fmt.Printf("Months:         %d\n", len(res.Purchases))
	fmt.Printf("Total invested: %s\n", usd(res.TotalInvested))
	fmt.Printf("Total units:    %s\n", res.TotalUnits.StringFixed(2))
	fmt.Printf("Last price:     %s\n", usd(res.LastPrice))
	fmt.Printf("Current value:  %s\n", usd(res.CurrentValue))

	if c.retireAge > 0 {
		birth, _ := dataset.ParseMonth(c.birth)
		years, ok := calculator.YearsToRetirement(birth, res.AsOf, c.retireAge)
		if !ok {
			fmt.Printf("\nRetirement age %d is not above current age %d, no projection.\n",
				c.retireAge, calculator.AgeAt(birth, res.AsOf))
			return subcommands.ExitSuccess
		}
		fmt.Printf("\nProjected value at %d (%d years):\n", c.retireAge, years)
		for _, s := range calculator.Project(res, years) {
			fmt.Printf("  %6s%%  %s\n", s.Rate.Shift(2).StringFixed(2), usd(s.Value))
		}
	}
	return subcommands.ExitSuccess
}

func (c *investCmd) plan() (calculator.Plan, error) {
	var plan calculator.Plan
	if c.from == "" {
		return plan, fmt.Errorf("-from is required")
	}
	from, ok := dataset.ParseMonth(c.from)
	if !ok {
		return plan, fmt.Errorf("invalid -from %q, want DD/MM/YYYY", c.from)
	}
	var to time.Time
	if c.to != "" {
		if to, ok = dataset.ParseMonth(c.to); !ok {
			return plan, fmt.Errorf("invalid -to %q, want DD/MM/YYYY", c.to)
		}
		if to.Before(from) {
			return plan, fmt.Errorf("-to %s is before -from %s", c.to, c.from)
		}
	}
	if c.monthly <= 0 {
		return plan, fmt.Errorf("-monthly must be positive")
	}
	if c.retireAge < 0 {
		return plan, fmt.Errorf("-retire-age must not be negative")
	}
	if c.retireAge > 0 {
		if c.birth == "" {
			return plan, fmt.Errorf("-retire-age needs -birth")
		}
		if _, ok := dataset.ParseMonth(c.birth); !ok {
			return plan, fmt.Errorf("invalid -birth %q, want DD/MM/YYYY", c.birth)
		}
	}
	plan.From = from
	plan.To = to
	plan.Monthly = decimal.NewFromFloat(c.monthly)
	return plan, nil
}
