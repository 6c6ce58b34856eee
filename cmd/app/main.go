// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := &cli.Command{
		Name:     "sisyphus",
		Usage:    "Derive site passwords from a full name and a master passphrase",
		Version:  version,
		Commands: getCommands(),
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
}
