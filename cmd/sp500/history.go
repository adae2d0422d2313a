package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/google/subcommands"
)

type historyCmd struct {
	n int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list recent update runs from the run database" }
func (*historyCmd) Usage() string    { return "sp500 history [-n runs]\n" }
func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.n, "n", 10, "number of runs to list")
}
func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		log.Printf("[FATAL] %v", err)
		return subcommands.ExitFailure
	}
	if cfg.Database.SQLitePath == "" {
		fmt.Println("run history is disabled: set database.sqlite_path or SQLITE_PATH")
		return subcommands.ExitFailure
	}
	rec := openRecorder(cfg)
	defer rec.Close()

	events, err := rec.History(c.n)
	if err != nil {
		log.Printf("[FATAL] read history: %v", err)
		return subcommands.ExitFailure
	}
	for _, e := range events {
		fmt.Printf("%s  %-8s  %-8s  %-10s  %s  %s\n",
			e.Time.Format("2006-01-02 15:04"), e.Outcome, e.Symbol, e.Month, e.Closing, e.Note)
	}
	if len(events) == 0 {
		fmt.Println("no runs recorded")
	}
	return subcommands.ExitSuccess
}
