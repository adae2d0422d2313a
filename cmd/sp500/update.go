package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"SP500Keeper/internal/notifier"
	"SP500Keeper/internal/updater"

	"github.com/google/subcommands"
)

type updateCmd struct{}

func (*updateCmd) Name() string { return "update" }
func (*updateCmd) Synopsis() string {
	return "append the latest index closing to the dataset (default command)"
}
func (*updateCmd) Usage() string              { return "sp500 [update]\n" }
func (c *updateCmd) SetFlags(f *flag.FlagSet) {}
func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Println("no arguments expected")
		return subcommands.ExitUsageError
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Printf("[FATAL] %v", err)
		return subcommands.ExitFailure
	}

	rec := openRecorder(cfg)
	defer rec.Close()

	u := updater.New(newCollector(cfg), cfg.Dataset.Path)
	u.Recorder = rec
	if cfg.TelegramEnabled() {
		u.Notifier = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	}

	res, err := u.Run(ctx)
	if err != nil {
		log.Printf("[FATAL] update dataset: %v", err)
		return subcommands.ExitFailure
	}
	fmt.Println(res.Message())
	return subcommands.ExitSuccess
}
