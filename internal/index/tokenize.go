package index

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tradeverifyd/entity-resolution/internal/tokenizer"
	"github.com/tradeverifyd/entity-resolution/pkg/config"
	"github.com/tradeverifyd/entity-resolution/pkg/metrics"
)

// EntityName is the projection the tokenize pass reads: an entity that has
// no token set yet.
type EntityName struct {
	ID   int64
	Name string
}

// UntokenizedSource scans and backfills entities missing their token set.
type UntokenizedSource interface {
	// ScanUntokenized returns up to limit entities with id > afterID and no
	// token set, ascending by id.
	ScanUntokenized(ctx context.Context, afterID int64, limit int) ([]EntityName, error)
	// UpdateTokens writes the computed token sets in bulk.
	UpdateTokens(ctx context.Context, updates []EntityTokens) error
}

// TokenizePass backfills tokenized names for reference entities that lack
// them. The "missing token set" filter is self-advancing, so the pass needs
// no durable checkpoint; the in-run cursor only keeps the prefetcher from
// re-reading rows whose updates have not committed yet.
type TokenizePass struct {
	entities UntokenizedSource
	cfg      config.IndexingConfig
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewTokenizePass(entities UntokenizedSource, cfg config.IndexingConfig, m *metrics.Metrics) *TokenizePass {
	return &TokenizePass{
		entities: entities,
		cfg:      cfg,
		metrics:  m,
		logger:   slog.Default().With("component", "entity-tokenizer"),
	}
}

// Run tokenizes until the scan is exhausted.
func (t *TokenizePass) Run(ctx context.Context) error {
	batches := make(chan []EntityName, 1)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(batches)
		var cursor int64
		for {
			var batch []EntityName
			err := retryStore(gctx, t.cfg, "scan untokenized entities", func(c context.Context) error {
				var err error
				batch, err = t.entities.ScanUntokenized(c, cursor, t.cfg.BatchSize)
				return err
			})
			if err != nil {
				return err
			}
			if len(batch) == 0 {
				return nil
			}
			cursor = batch[len(batch)-1].ID
			select {
			case batches <- batch:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
	})

	g.Go(func() error {
		for batch := range batches {
			if err := t.processBatch(gctx, batch); err != nil {
				return err
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("tokenize pass aborted: %w", err)
	}
	t.logger.Info("tokenize pass complete")
	return nil
}

func (t *TokenizePass) processBatch(ctx context.Context, batch []EntityName) error {
	start := time.Now()
	updates := make([]EntityTokens, 0, len(batch))
	for _, entity := range batch {
		updates = append(updates, EntityTokens{
			ID:     entity.ID,
			Tokens: tokenizer.Tokenize(entity.Name).Slice(),
		})
	}

	err := retryStore(ctx, t.cfg, "update entity tokens", func(c context.Context) error {
		return t.entities.UpdateTokens(c, updates)
	})
	if err != nil {
		return err
	}

	if t.metrics != nil {
		t.metrics.EntitiesScannedTotal.WithLabelValues(PhaseTokenize).Add(float64(len(batch)))
		t.metrics.BatchesCommittedTotal.WithLabelValues(PhaseTokenize).Inc()
		t.metrics.BatchDuration.WithLabelValues(PhaseTokenize).Observe(time.Since(start).Seconds())
	}
	t.logger.Info("batch committed",
		"phase", PhaseTokenize,
		"entities", len(batch),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return nil
}
