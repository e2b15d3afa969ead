package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"resource_broker/internal/broker"
	"resource_broker/internal/config"
	"resource_broker/internal/core"
	"resource_broker/internal/infrastructure/health"
	"resource_broker/internal/infrastructure/server"
	"resource_broker/pkg/concurrency"
	"resource_broker/pkg/eventfeed"
	"resource_broker/pkg/logging"
	"resource_broker/pkg/telemetry"

	"golang.org/x/sync/errgroup"
)

var (
	// Version information (set via build flags)
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	configPath := flag.String("config", "configs/broker.yaml", "Path to configuration file")
	grpcPort := flag.Int("port", 0, "gRPC port (overrides config)")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("broker_server version %s (built %s)\n", version, buildTime)
		os.Exit(0)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *grpcPort != 0 {
		cfg.Server.GRPCPort = *grpcPort
	}

	logger, err := logging.NewZapLogger(cfg.System.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	logging.SetGlobalLogger(logger)

	logger.Info("Starting broker_server",
		"version", version,
		"grpc_port", cfg.Server.GRPCPort,
		"observability_port", cfg.Server.ObservabilityPort,
	)

	var tel *telemetry.Telemetry
	if cfg.Telemetry.EnableMetrics {
		tel, err = telemetry.Setup("broker_server")
		if err != nil {
			logger.Warn("Failed to initialize telemetry", "error", err)
		} else {
			logger.Info("Telemetry initialized")
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Worker pool behind asynchronous coordinator passes
	pool := concurrency.NewWorkerPool(concurrency.PoolConfig{
		Name:        "coordinator",
		MaxWorkers:  cfg.Concurrency.CoordinatorPoolSize,
		MaxCapacity: cfg.Concurrency.CoordinatorPoolBuffer,
		NonBlocking: true,
	}, logger)
	defer pool.Stop()

	// Event feed (optional)
	var events core.IEventSink
	var feed *eventfeed.Feed
	if cfg.Feed.Enabled {
		feed = eventfeed.NewFeed(cfg.Feed, logger)
		go feed.Hub().Run(ctx)
		events = feed
		logger.Info("Event feed enabled", "max_connections", cfg.Feed.MaxConnections)
	}

	ledger := broker.NewLedger(logger)
	coordinator := broker.NewCoordinator(ledger, pool, events, logger)
	service := broker.NewService(ledger, coordinator, events, cfg.Broker, logger)

	// Observability surface
	healthManager := health.NewHealthManager(logger)
	healthManager.Register("coordinator", func() error { return nil })

	var feedHandler server.FeedHandler
	if feed != nil {
		feedHandler = feed
	}
	obs := server.NewObservabilityServer(strconv.Itoa(cfg.Server.ObservabilityPort), logger, healthManager, feedHandler)
	obs.UpdateStatus("version", version)
	obs.Start()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return service.Serve(gctx, cfg.Server.GRPCPort)
	})

	g.Go(func() error {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case sig := <-sigCh:
			logger.Info("Shutdown signal received", "signal", sig.String())
			cancel()
			return nil
		case <-gctx.Done():
			return nil
		}
	})

	err = g.Wait()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if stopErr := obs.Stop(shutdownCtx); stopErr != nil {
		logger.Warn("Observability server shutdown failed", "error", stopErr)
	}
	if tel != nil {
		if stopErr := tel.Shutdown(shutdownCtx); stopErr != nil {
			logger.Warn("Telemetry shutdown failed", "error", stopErr)
		}
	}

	if err != nil && ctx.Err() == nil {
		logger.Error("Broker server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Broker server stopped")
}
