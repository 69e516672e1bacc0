package main

import (
	"fmt"
	"os"

	"github.com/hyqhyq3/winerror/internal/cli"
	"github.com/hyqhyq3/winerror/internal/config"
	"github.com/hyqhyq3/winerror/internal/i18n"
	"github.com/hyqhyq3/winerror/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitUsage)
	}
	i18n.Init(cfg.UILanguage)

	logger := logging.New(cfg.LogLevel, os.Stderr)
	err = cli.NewRootCommand(cli.Dependencies{Config: cfg, Logger: logger}).Execute()
	_ = logger.Sync()

	if err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(cli.ExitCode(err))
	}
}
