package index

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tradeverifyd/entity-resolution/pkg/config"
	"github.com/tradeverifyd/entity-resolution/pkg/errors"
	"github.com/tradeverifyd/entity-resolution/pkg/metrics"
	"github.com/tradeverifyd/entity-resolution/pkg/resilience"
)

// Builder scans reference entities in ascending id order and writes raw
// token chunk records. Progress is checkpointed by last processed entity id
// after each batch's writes commit; a missing checkpoint authorizes a
// destructive rebuild of the raw index.
type Builder struct {
	entities    EntitySource
	raw         RawChunkStore
	checkpoints CheckpointStore
	cfg         config.IndexingConfig
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

func NewBuilder(entities EntitySource, raw RawChunkStore, checkpoints CheckpointStore, cfg config.IndexingConfig, m *metrics.Metrics) *Builder {
	return &Builder{
		entities:    entities,
		raw:         raw,
		checkpoints: checkpoints,
		cfg:         cfg,
		metrics:     m,
		logger:      slog.Default().With("component", "index-builder"),
	}
}

// Run executes the build pass until the entity scan is exhausted or the run
// fails. The next batch is prefetched while the current one is written.
func (b *Builder) Run(ctx context.Context) error {
	after, err := b.resumePoint(ctx)
	if err != nil {
		return err
	}

	batches := make(chan []EntityTokens, 1)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(batches)
		cursor := after
		for {
			var batch []EntityTokens
			err := retryStore(gctx, b.cfg, "scan reference entities", func(c context.Context) error {
				var err error
				batch, err = b.entities.ScanTokenized(c, cursor, b.cfg.BatchSize)
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
			if err := b.processBatch(gctx, batch); err != nil {
				return err
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("build pass aborted, checkpoint preserved: %w", err)
	}
	b.logger.Info("build pass complete")
	return nil
}

// resumePoint loads the build checkpoint. No checkpoint means a fresh
// start: the raw index is dropped before scanning from the beginning.
func (b *Builder) resumePoint(ctx context.Context) (int64, error) {
	value, ok, err := b.checkpoints.Load(ctx, PhaseBuild)
	if err != nil {
		return 0, fmt.Errorf("loading build checkpoint: %w", err)
	}
	if !ok {
		b.logger.Info("no build checkpoint, reinitializing raw index")
		if err := retryStore(ctx, b.cfg, "reset raw index", b.raw.Reset); err != nil {
			return 0, err
		}
		return 0, nil
	}
	last, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: build checkpoint %q", errors.ErrCheckpointCorrupt, value)
	}
	b.logger.Info("resuming build after checkpoint", "last_id", last)
	return last, nil
}

func (b *Builder) processBatch(ctx context.Context, batch []EntityTokens) error {
	start := time.Now()
	postings := make(map[string][]int64)
	for _, entity := range batch {
		for _, token := range entity.Tokens {
			postings[token] = append(postings[token], entity.ID)
		}
	}
	var chunks []Chunk
	for token, ids := range postings {
		chunks = append(chunks, splitIntoChunks(token, ids, b.cfg.ChunkSize)...)
	}

	if len(chunks) > 0 {
		err := retryStore(ctx, b.cfg, "insert raw chunks", func(c context.Context) error {
			return b.raw.InsertChunks(c, chunks)
		})
		if err != nil {
			return err
		}
	}

	lastID := batch[len(batch)-1].ID
	err := retryStore(ctx, b.cfg, "save build checkpoint", func(c context.Context) error {
		return b.checkpoints.Save(c, PhaseBuild, strconv.FormatInt(lastID, 10))
	})
	if err != nil {
		return err
	}

	if b.metrics != nil {
		b.metrics.EntitiesScannedTotal.WithLabelValues(PhaseBuild).Add(float64(len(batch)))
		b.metrics.ChunksWrittenTotal.WithLabelValues(PhaseBuild).Add(float64(len(chunks)))
		b.metrics.BatchesCommittedTotal.WithLabelValues(PhaseBuild).Inc()
		b.metrics.CheckpointCommits.WithLabelValues(PhaseBuild).Inc()
		b.metrics.BatchDuration.WithLabelValues(PhaseBuild).Observe(time.Since(start).Seconds())
	}
	b.logger.Info("batch committed",
		"phase", PhaseBuild,
		"entities", len(batch),
		"chunks", len(chunks),
		"last_id", lastID,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return nil
}

// retryStore wraps a store call in the bounded retry loop with the
// configured per-call timeout. Only transient errors are retried; after the
// attempt budget the error escalates to a run-level abort.
func retryStore(ctx context.Context, cfg config.IndexingConfig, name string, fn func(ctx context.Context) error) error {
	return resilience.Retry(ctx, name, resilience.RetryConfig{
		MaxAttempts:  cfg.MaxRetries,
		InitialDelay: cfg.RetryDelay,
		RetryIf:      errors.IsTransient,
	}, func() error {
		return resilience.WithTimeout(ctx, cfg.StoreTimeout, name, fn)
	})
}
