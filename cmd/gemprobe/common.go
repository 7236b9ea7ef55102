package main

import (
	"flag"
	"log/slog"
	"os"
	"strings"

	cfgpkg "gemprobe/internal/config"
)

// set up slog logger according to level; defaults to info.
func setupLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

// Common flags for env-file/model/log-level across subcommands.
type commonFlags struct {
	envFile  string
	model    string
	logLevel string
}

func addCommonFlags(fs *flag.FlagSet, cf *commonFlags) {
	fs.StringVar(&cf.envFile, "env-file", ".env", "Path to optional .env file")
	fs.StringVar(&cf.model, "model", "", "Model selector (overrides "+cfgpkg.EnvModel+")")
	fs.StringVar(&cf.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

// loadConfig resolves configuration in precedence order: flag > env > default.
// The optional .env file is loaded first and never overrides the environment.
func loadConfig(cf commonFlags) (cfgpkg.Config, error) {
	if err := cfgpkg.LoadDotenv(cf.envFile); err != nil {
		return cfgpkg.Config{}, err
	}
	cfg := cfgpkg.FromEnv()
	if cf.model != "" {
		cfg.Model = cf.model
	}
	return cfg, nil
}
