package main

import (
	"fmt"
	"log/slog"
	"os"
)

var version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		// Bare invocation runs the smoke test.
		args = []string{"probe"}
	}
	if args[0] == "-h" || args[0] == "--help" {
		printUsage()
		return 0
	}

	sub := args[0]
	switch sub {
	case "probe":
		if err := cmdProbe(args[1:]); err != nil {
			slog.Error("probe failed", "err", err)
			return 1
		}
		return 0
	case "models":
		if err := cmdModels(args[1:]); err != nil {
			slog.Error("models failed", "err", err)
			return 1
		}
		return 0
	case "version":
		fmt.Println(version)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand: %s\n\n", sub)
		printUsage()
		return 2
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `gemprobe %s

Usage:
  gemprobe [subcommand] [flags]

Subcommands:
  probe    Run the three smoke-test requests against the Gemini API (default)
  models   List models available to the API key
  version  Print version

Run "gemprobe <subcommand> -h" for flags.
`, version)
}
