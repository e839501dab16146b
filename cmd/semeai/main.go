package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"semeai_engine/internal/bootstrap"
	"semeai_engine/internal/delivery/cli"
)

func main() {
	cfg, err := bootstrap.Setup(os.Getenv("SEMEAI_CONFIG"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to setup configuration:", err)
		os.Exit(2)
	}

	logger, err := bootstrap.NewLogger(*cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(2)
	}
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := cli.NewSemeaiHandler(*cfg, logger).RootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		logger.Errorw("semeai failed", "error", err)
		cancel()
		logger.Sync()
		os.Exit(1)
	}
}
