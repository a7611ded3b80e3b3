// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"website-monitor/internal/api"
	"website-monitor/internal/config"
	"website-monitor/internal/healthcheck"
	"website-monitor/internal/log"
	"website-monitor/internal/metrics"
	"website-monitor/internal/monitor"
	"website-monitor/internal/notify"
	"website-monitor/internal/probe"
	"website-monitor/internal/snapshot"
	"website-monitor/internal/state"
	"website-monitor/internal/tracing"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the monitor loop",
	RunE:  startMonitor,
}

// startMonitor returns nil for every failure that has been recorded in the state, so
// the process exits normally.
func startMonitor(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		recordConfigError(ctx, err)
		return nil
	}

	logger := log.New(cfg.Debug, os.Stdout)
	metrics.SetEnabled(cfg.Metrics.Enabled)

	shutdown, err := tracing.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("Tracing could not be initialized, continuing without it")
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn().Err(err).Msg("Could not flush traces")
		}
	}()

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("Could not open state store")
		return nil
	}
	if closer, ok := store.(interface{ Close(context.Context) error }); ok {
		defer closer.Close(context.Background())
	}

	manager := state.Load(ctx, store, cfg, logger)

	transport, err := notify.NewTransport(cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("Could not create mail transport")
		_ = manager.RecordError(ctx, state.KindConfig, err)
		return nil
	}
	if closer, ok := transport.(io.Closer); ok {
		defer closer.Close()
	}

	prober := probe.New(probe.Options{
		Timeout:   cfg.Probe.Timeout,
		UserAgent: cfg.Probe.UserAgent,
	}, logger)
	runner := healthcheck.NewRunner(prober, cfg.Probe.Delay, logger)
	mailer := notify.NewMailer(cfg.Mail.Key, cfg.AppName, transport, logger)
	holder := snapshot.NewHolder()

	if cfg.Api.Enabled {
		server := api.New(holder, logger)
		go func() {
			if err := server.Listen(cfg.Api.Port); err != nil {
				logger.Error().Err(err).Msg("Status API stopped")
			}
		}()
		defer server.Shutdown()
	}

	m := monitor.New(cfg, runner, mailer, manager, holder, logger)
	m.Start(ctx)

	if err := m.Run(ctx); err != nil {
		var fatal *monitor.FatalError
		if errors.As(err, &fatal) {
			logger.Error().Err(err).Msg("Website monitor stopped")
			return nil
		}
		return err
	}

	return nil
}

func openStore(ctx context.Context, cfg config.Configuration, logger zerolog.Logger) (state.Store, error) {
	switch cfg.State.Backend {
	case config.BackendMongo:
		store, err := state.NewMongoStore(ctx, cfg.Mongo, cfg.AppName, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		path := state.PathFor(cfg)
		logger.Debug().Msgf("Using state file %s", path)
		return state.NewFileStore(path), nil
	}
}

// recordConfigError stores a configuration failure in the state file derived from the
// default configuration.
func recordConfigError(ctx context.Context, cause error) {
	logger := log.New(false, os.Stderr)
	logger.Error().Err(cause).Msg("Error occurred while loading settings")

	defaults := config.Defaults()
	manager := state.Load(ctx, state.NewFileStore(state.PathFor(defaults)), defaults, logger)
	_ = manager.RecordError(ctx, state.KindConfig, cause)
}
