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

	"github.com/tradeverifyd/entity-resolution/internal/checkpoint"
	"github.com/tradeverifyd/entity-resolution/internal/index"
	"github.com/tradeverifyd/entity-resolution/internal/store"
	"github.com/tradeverifyd/entity-resolution/pkg/config"
	"github.com/tradeverifyd/entity-resolution/pkg/health"
	"github.com/tradeverifyd/entity-resolution/pkg/logger"
	"github.com/tradeverifyd/entity-resolution/pkg/metrics"
	"github.com/tradeverifyd/entity-resolution/pkg/postgres"
	"github.com/tradeverifyd/entity-resolution/pkg/redis"
)

func main() {
	configPath := flag.String("config", "configs/development.yaml", "path to config file")
	phase := flag.String("phase", "all", "index phase to run: tokenize, build, prune, merge, or all")
	reset := flag.Bool("reset", false, "clear the phase's checkpoint before running, forcing a fresh start")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Info("starting indexer", "phase", *phase)

	pg, err := postgres.New(cfg.Postgres)
	if err != nil {
		slog.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer pg.Close()

	rd, err := redis.NewClient(cfg.Redis)
	if err != nil {
		slog.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer rd.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := store.EnsureSchema(ctx, pg); err != nil {
		slog.Error("failed to ensure schema", "error", err)
		os.Exit(1)
	}

	m := metrics.New()
	if cfg.Metrics.Enabled {
		checker := health.NewChecker()
		registerProbes(checker, pg, rd)
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

	entities := store.NewEntityStore(pg)
	raw := store.NewRawChunkTable(pg)
	filtered := store.NewFilteredChunkTable(pg)
	merged := store.NewMergedTable(pg)
	checkpoints := checkpoint.NewStore(rd, cfg.Redis)

	phases := phasesToRun(*phase)
	if phases == nil {
		fmt.Fprintf(os.Stderr, "unknown phase %q\n", *phase)
		os.Exit(2)
	}

	for _, p := range phases {
		if *reset {
			if err := checkpoints.Clear(ctx, p); err != nil {
				slog.Error("failed to clear checkpoint", "phase", p, "error", err)
				os.Exit(1)
			}
			slog.Info("checkpoint cleared", "phase", p)
		}

		var runErr error
		switch p {
		case index.PhaseTokenize:
			runErr = index.NewTokenizePass(entities, cfg.Indexing, m).Run(ctx)
		case index.PhaseBuild:
			runErr = index.NewBuilder(entities, raw, checkpoints, cfg.Indexing, m).Run(ctx)
		case index.PhasePrune:
			runErr = index.NewPruner(raw, filtered, checkpoints, cfg.Indexing, m).Run(ctx)
		case index.PhaseMerge:
			runErr = index.NewMerger(filtered, merged, checkpoints, cfg.Indexing, m).Run(ctx)
		}
		if runErr != nil {
			slog.Error("phase failed", "phase", p, "error", runErr)
			os.Exit(1)
		}
	}

	slog.Info("indexer finished", "phases", phases)
}

func phasesToRun(phase string) []string {
	switch phase {
	case "all":
		return []string{index.PhaseTokenize, index.PhaseBuild, index.PhasePrune, index.PhaseMerge}
	case index.PhaseTokenize, index.PhaseBuild, index.PhasePrune, index.PhaseMerge:
		return []string{phase}
	}
	return nil
}

func registerProbes(checker *health.Checker, pg *postgres.Client, rd *redis.Client) {
	checker.Register("postgres", func(ctx context.Context) health.ComponentHealth {
		if err := pg.DB.PingContext(ctx); err != nil {
			return health.ComponentHealth{Status: health.StatusDown, Message: err.Error()}
		}
		return health.ComponentHealth{Status: health.StatusUp}
	})
	checker.Register("redis", func(ctx context.Context) health.ComponentHealth {
		if err := rd.Ping(ctx); err != nil {
			return health.ComponentHealth{Status: health.StatusDown, Message: err.Error()}
		}
		return health.ComponentHealth{Status: health.StatusUp}
	})
}
