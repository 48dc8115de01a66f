package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	api "crudapp/internal/adapter/http"
	"crudapp/internal/adapter/http/routes"
	"crudapp/pkg/config"
	"crudapp/pkg/logger"
	"crudapp/pkg/metrics"
	"crudapp/pkg/tracing"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	ctx := context.Background()

	appLogger, err := logger.New("crudapp")

	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	defer appLogger.Sync()

	otlpEndpoint := os.Getenv("OTLP_ENDPOINT")

	if otlpEndpoint == "" {
		otlpEndpoint = "localhost:4317"
	}

	shutdownTracing, err := tracing.Init(ctx, tracing.Config{
		ServiceName:    "crudapp",
		ServiceVersion: "1.0.0",
		OTLPEndpoint:   otlpEndpoint,
	}, slog.Default())

	if err != nil {
		log.Fatal("Failed to initialize telemetry:", err)
	}

	defer shutdownTracing(ctx)

	registry := prometheus.NewRegistry()
	appMetrics := metrics.NewAppMetrics(registry)
	appMetrics.StartSystemMetrics(ctx)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		cfg := config.GetDefaultConfig()

		if os.Getenv("GIN_MODE") == "release" {
			cfg.Environment = "production"
		}

		api.StartServerWithConfig(routes.RouterDeps{
			Metrics:  appMetrics,
			Registry: registry,
			Logger:   appLogger,
		}, cfg)
	}()

	<-c
	appLogger.Info("Shutting down gracefully...")
}
