package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"gemprobe/internal/ai"
	cfgpkg "gemprobe/internal/config"
)

// newLister is a seam so tests can substitute a fake client.
var newLister = func(ctx context.Context, apiKey, model string) (ai.ModelLister, error) {
	return ai.New(ctx, apiKey, model)
}

// gemprobe models
func cmdModels(args []string) error {
	var cf commonFlags

	fs := flag.NewFlagSet("models", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	addCommonFlags(fs, &cf)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	setupLogger(cf.logLevel)

	cfg, err := loadConfig(cf)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stdout, "Error: %s\n", err)
		if hint := cfgpkg.Remediation(err); hint != "" {
			fmt.Fprintln(os.Stdout, hint)
		}
		return err
	}

	ctx := context.Background()
	lister, err := newLister(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		return err
	}
	names, err := lister.ListModels(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(os.Stdout, name)
	}
	return nil
}
