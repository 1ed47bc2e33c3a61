package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tamzrod/statusreg/internal/config"
	"github.com/tamzrod/statusreg/internal/poller"
	"github.com/tamzrod/statusreg/internal/status"
	"github.com/tamzrod/statusreg/internal/writer"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run pollers and the status publisher",
	Long: `Run the status register daemon.

The daemon will:
  - Build the fault, warning and info banks (status.banks words each)
  - Poll every source and set or clear its bound conditions
  - Publish every class block to the publish endpoint, if configured

It runs until interrupted (Ctrl+C) or it receives SIGTERM.

Example:
  statusd serve -c statusd.yaml
  STATUSD_CONFIG=/etc/statusd.yaml statusd serve`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	// --------------------
	// Store
	// --------------------

	opts := []status.Option{
		status.WithMutex(),
		status.WithErrorSink(status.LogSink{Logger: logger}),
	}
	if cfg.Status.DebugTrap {
		opts = append(opts, status.WithDebugTrap())
	}

	store, err := status.New(cfg.Status.Banks, opts...)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}

	conditions, err := cfg.ConditionIndex()
	if err != nil {
		return fmt.Errorf("failed to resolve conditions: %w", err)
	}

	logger.Info("store ready",
		"banks", store.NumBanks(),
		"conditions", len(conditions),
		"sources", len(cfg.Sources),
	)

	// --------------------
	// Pipelines
	// --------------------

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup

	if err := startSources(ctx, &wg, cfg.Sources, conditions, store, logger); err != nil {
		stop()
		wg.Wait()
		return err
	}

	if cfg.Publish != nil {
		pub, closePub, err := writer.Build(cfg.Publish, store, store.NumBanks(), logger)
		if err != nil {
			stop()
			wg.Wait()
			return fmt.Errorf("publisher build failed: %w", err)
		}
		defer closePub()

		logger.Info("publishing status",
			"endpoint", cfg.Publish.Endpoint,
			"transport", cfg.Publish.Transport,
			"base_address", cfg.Publish.BaseAddress,
		)

		wg.Add(1)
		go func() {
			defer wg.Done()
			pub.Run(ctx)
		}()
	}

	<-ctx.Done()
	wg.Wait()
	logger.Info("shutdown complete")
	return nil
}

// startSources builds a runner for every source and only then starts them,
// so a build failure leaves no runner behind.
func startSources(
	ctx context.Context,
	wg *sync.WaitGroup,
	sources []config.SourceConfig,
	conditions map[string]config.Condition,
	st poller.Setter,
	logger *slog.Logger,
) error {
	runners := make([]*poller.Runner, 0, len(sources))
	for _, src := range sources {
		p, err := poller.Build(src, conditions)
		if err != nil {
			return fmt.Errorf("poller build failed (source=%s): %w", src.ID, err)
		}
		runners = append(runners, poller.NewRunner(p, st, logger))
	}

	for _, r := range runners {
		r := r
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Run(ctx)
		}()
	}
	return nil
}
