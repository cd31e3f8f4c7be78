package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"git2edx/internal/application"
	"git2edx/internal/config"
	"git2edx/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run resolves the configuration, configures logging, and seals the result
// for downstream consumers. Any configuration failure is fatal: the process
// must never continue with a partially validated configuration.
func run(args []string) int {
	app := kingpin.New("git2edx", "Webhook-driven synchronization of course repositories into edX Studio")
	configFile := app.Flag("config", "Path to the YAML configuration file (beats GIT2EDX_CONFIG_FILE)").String()
	logLevel := app.Flag("log-level", "Log level override (debug, info, warn, error)").String()
	checkOnly := app.Flag("check", "Validate the configuration and exit").Bool()

	if _, err := app.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "git2edx: %v\n", err)
		return 2
	}

	cfg, err := config.Load(&config.Overrides{ConfigFile: *configFile})
	if err != nil {
		fmt.Fprintf(os.Stderr, "git2edx: %v\n", err)
		return 1
	}

	logger, err := logging.New(*logLevel, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "git2edx: %v\n", err)
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	a, err := application.New(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", zap.Error(err))
		return 1
	}

	a.LogStartupSummary()

	if *checkOnly {
		logger.Info("configuration check passed")
	}
	return 0
}
