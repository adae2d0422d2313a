package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"SP500Keeper/internal/dataset"

	"github.com/google/subcommands"
)

type showCmd struct {
	n int
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "print the most recent dataset rows" }
func (*showCmd) Usage() string    { return "sp500 show [-n rows]\n" }
func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.n, "n", 12, "number of rows to print, 0 for all")
}
func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	rows := ds.Rows()
	if c.n > 0 && len(rows) > c.n {
		rows = rows[len(rows)-c.n:]
	}
	fmt.Printf("%-12s %s\n", dataset.MonthColumn, dataset.ClosingColumn)
	for _, r := range rows {
		fmt.Printf("%-12s %s\n", r.Month, r.Closing)
	}
	fmt.Printf("(%d of %d rows)\n", len(rows), ds.Len())
	return subcommands.ExitSuccess
}
