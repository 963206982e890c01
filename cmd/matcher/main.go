package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tradeverifyd/entity-resolution/internal/jurisdiction"
	"github.com/tradeverifyd/entity-resolution/internal/matcher"
	"github.com/tradeverifyd/entity-resolution/internal/pipeline"
	"github.com/tradeverifyd/entity-resolution/internal/store"
	"github.com/tradeverifyd/entity-resolution/pkg/config"
	"github.com/tradeverifyd/entity-resolution/pkg/health"
	"github.com/tradeverifyd/entity-resolution/pkg/kafka"
	"github.com/tradeverifyd/entity-resolution/pkg/logger"
	"github.com/tradeverifyd/entity-resolution/pkg/metrics"
	"github.com/tradeverifyd/entity-resolution/pkg/postgres"
)

func main() {
	configPath := flag.String("config", "configs/development.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Info("starting matcher",
		"strategy", cfg.Matching.ScoringStrategy,
		"threshold", cfg.Matching.MinScoreThreshold,
	)

	pg, err := postgres.New(cfg.Postgres)
	if err != nil {
		slog.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer pg.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := store.EnsureSchema(ctx, pg); err != nil {
		slog.Error("failed to ensure schema", "error", err)
		os.Exit(1)
	}

	m := metrics.New()
	if cfg.Metrics.Enabled {
		checker := health.NewChecker()
		checker.Register("postgres", func(ctx context.Context) health.ComponentHealth {
			if err := pg.DB.PingContext(ctx); err != nil {
				return health.ComponentHealth{Status: health.StatusDown, Message: err.Error()}
			}
			return health.ComponentHealth{Status: health.StatusUp}
		})
		shutdown := metrics.StartServer(cfg.Metrics.Port, map[string]http.Handler{
			"/health/live":  checker.LiveHandler(),
			"/health/ready": checker.ReadyHandler(),
		})
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				slog.Error("metrics server shutdown failed", "error", err)
			}
		}()
	}

	var events pipeline.Publisher
	if cfg.Kafka.Enabled {
		producer := kafka.NewProducer(cfg.Kafka)
		defer producer.Close()
		events = producer
	}

	entities := store.NewEntityStore(pg)
	shipments := store.NewShipmentStore(pg)
	resolver := matcher.New(entities, jurisdiction.Default(), cfg.Matching, m)
	runner := pipeline.NewRunner(shipments, resolver, events, cfg.Matching, m)

	report, err := runner.Run(ctx)
	if err != nil {
		slog.Error("run failed", "error", err, "processed", report.Processed)
		os.Exit(1)
	}
	slog.Info("matcher finished",
		"processed", report.Processed,
		"matched", report.Matched,
		"match_rate", fmt.Sprintf("%.4f", report.MatchRate),
	)
}
