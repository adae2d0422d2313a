package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path"

	"github.com/google/subcommands"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	commander.Register(&updateCmd{}, "dataset")
	commander.Register(&showCmd{}, "dataset")
	commander.Register(&investCmd{}, "dataset")
	commander.Register(&historyCmd{}, "runs")

	if err := flag.CommandLine.Parse(withDefaultCommand(os.Args[1:])); err != nil {
		log.Fatalf("[FATAL] parse flags: %v", err)
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// withDefaultCommand runs "update" when no command is named.
func withDefaultCommand(args []string) []string {
	for _, a := range args {
		if len(a) > 0 && a[0] != '-' {
			return args
		}
	}
	return append(args, "update")
}
