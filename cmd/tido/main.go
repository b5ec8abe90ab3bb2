// Package main is the entry point for the tido CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"tido/internal/cli"
	"tido/internal/config"
	"tido/internal/logging"
	"tido/internal/manager"
	"tido/internal/store"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	logger := logging.New(cfg.LogLevel, os.Stderr)

	st, cleanup, err := newStore(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer cleanup()

	mgr := manager.New(ctx, st, logger)
	repl := cli.NewREPL(mgr, cfg.DataDir, os.Stdin, os.Stdout, os.Stderr, logger)
	if err := repl.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// newStore builds the persistence backend selected by the config. The
// returned cleanup is a no-op for backends without resources to release.
func newStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (store.Store, func(), error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return store.NewMemoryStore(), func() {}, nil
	case config.BackendPostgres:
		pg, err := store.NewPostgresStore(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return pg, func() { pg.Close() }, nil
	default:
		fs, err := store.NewFileStore(cfg.TasksPath(), logger)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {}, nil
	}
}
