package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ethela-storefront/internal/config"
	"ethela-storefront/internal/console"
	"ethela-storefront/internal/logging"
)

func main() {
	cfg := config.ClientFromEnv()
	logger, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		File:   cfg.LogFile,
		Name:   "ethela",
		Stderr: true,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := console.Execute(ctx, cfg, logger); err != nil {
		if !console.IsSilent(err) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		stop()
		os.Exit(1)
	}
}
