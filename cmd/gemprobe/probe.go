package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gemprobe/internal/ai"
	cfgpkg "gemprobe/internal/config"
	"gemprobe/internal/probe"
)

// newGenerator is a seam so tests can substitute a fake client.
var newGenerator = func(ctx context.Context, apiKey, model string) (ai.TextGenerator, error) {
	return ai.New(ctx, apiKey, model)
}

var errProbesFailed = errors.New("one or more probes failed")

// gemprobe probe
func cmdProbe(args []string) error {
	var cf commonFlags

	fs := flag.NewFlagSet("probe", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	addCommonFlags(fs, &cf)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	setupLogger(cf.logLevel)

	out := os.Stdout
	probe.Banner(out, "Gemini API Test")

	cfg, err := loadConfig(cf)
	if err != nil {
		return err
	}
	// The credential check happens before any client is constructed, so a
	// missing key never triggers network activity.
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(out, "Error: %s\n", err)
		if hint := cfgpkg.Remediation(err); hint != "" {
			fmt.Fprintln(out, hint)
		}
		return err
	}
	fmt.Fprintf(out, "✅ API key found (length: %d)\n", len(cfg.APIKey))

	ctx := context.Background()
	gen, err := newGenerator(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		return err
	}
	slog.Debug("probe start", "model", cfg.Model)

	runner := &probe.Runner{Gen: gen, Model: cfg.Model, Out: out}
	results := runner.RunAll(ctx, probe.Suite())
	probe.Summary(out, results)

	if !probe.AllPassed(results) {
		return errProbesFailed
	}
	return nil
}
