package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/daystreak/internal/api"
	"github.com/terraincognita07/daystreak/internal/cache"
	"github.com/terraincognita07/daystreak/internal/metrics"
	"github.com/terraincognita07/daystreak/internal/services"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := loadRuntime()
			if err != nil {
				return err
			}
			return runServer(cmd.Context(), rt)
		},
	}
}

func runServer(ctx context.Context, rt *bootstrap) error {
	if ctx == nil {
		ctx = context.Background()
	}

	database, closeDatabase, err := rt.openDatabase()
	if err != nil {
		return err
	}
	defer closeDatabase()

	summaryCache, closeCache, err := openProfileCache(ctx, rt)
	if err != nil {
		return err
	}
	defer closeCache()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics.MustRegister(registry)

	handler, err := api.NewHandler(database, api.HandlerOptions{
		SecretKey: rt.cfg.Auth.SecretKey,
		Location:  rt.location,
		Cache:     summaryCache,
		Logger:    rt.log,
	})
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := api.NewApp(handler, api.AppOptions{
		CORSOrigins: rt.cfg.Server.CORSOrigins,
		Gatherer:    registry,
	})

	sigCtx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), rt.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			rt.log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	rt.log.Info().
		Str("port", rt.cfg.Server.Port).
		Str("driver", rt.cfg.Database.Driver).
		Str("tz", rt.location.String()).
		Bool("cache", rt.cfg.Redis.Address != "").
		Msg("daystreak listening")

	if err := app.Listen(":" + rt.cfg.Server.Port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

// openProfileCache returns nil when no Redis address is configured.
func openProfileCache(ctx context.Context, rt *bootstrap) (services.ProfileSummaryCache, func(), error) {
	if rt.cfg.Redis.Address == "" {
		return nil, func() {}, nil
	}

	client, err := cache.Connect(ctx, rt.cfg.Redis.Address)
	if err != nil {
		return nil, nil, fmt.Errorf("redis init failed: %w", err)
	}
	closeClient := func() {
		_ = client.Close()
	}
	return cache.NewProfileCache(client, rt.cfg.Redis.TTL, rt.log), closeClient, nil
}
