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
)

// Pruner is the pre-pass between build and merge. Tokens that spilled past
// their first chunk are already known to be too common, so they are dropped
// up front; the remaining tokens' raw chunks are consolidated per batch into
// the filtered index, with entity ids coerced to canonical form and
// deduplicated. Separating this cheap screen from the merge keeps the
// expensive per-token union off tokens that would be discarded anyway.
type Pruner struct {
	raw         RawChunkStore
	filtered    FilteredChunkStore
	checkpoints CheckpointStore
	cfg         config.IndexingConfig
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

func NewPruner(raw RawChunkStore, filtered FilteredChunkStore, checkpoints CheckpointStore, cfg config.IndexingConfig, m *metrics.Metrics) *Pruner {
	return &Pruner{
		raw:         raw,
		filtered:    filtered,
		checkpoints: checkpoints,
		cfg:         cfg,
		metrics:     m,
		logger:      slog.Default().With("component", "index-pruner"),
	}
}

// Run executes the prune pass over the raw index.
func (p *Pruner) Run(ctx context.Context) error {
	after, err := p.resumePoint(ctx)
	if err != nil {
		return err
	}

	var excluded map[string]struct{}
	err = retryStore(ctx, p.cfg, "identify high-cardinality tokens", func(c context.Context) error {
		var err error
		excluded, err = p.raw.HighCardinalityTokens(c)
		return err
	})
	if err != nil {
		return err
	}
	p.logger.Info("high-cardinality tokens excluded up front", "tokens", len(excluded))

	batches := make(chan []RawChunk, 1)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(batches)
		cursor := after
		for {
			var batch []RawChunk
			err := retryStore(gctx, p.cfg, "scan raw chunks", func(c context.Context) error {
				var err error
				batch, err = p.raw.ScanChunks(c, cursor, p.cfg.BatchSize)
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
			if err := p.processBatch(gctx, batch, excluded); err != nil {
				return err
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("prune pass aborted, checkpoint preserved: %w", err)
	}
	p.logger.Info("prune pass complete")
	return nil
}

func (p *Pruner) resumePoint(ctx context.Context) (int64, error) {
	value, ok, err := p.checkpoints.Load(ctx, PhasePrune)
	if err != nil {
		return 0, fmt.Errorf("loading prune checkpoint: %w", err)
	}
	if !ok {
		p.logger.Info("no prune checkpoint, reinitializing filtered index")
		if err := retryStore(ctx, p.cfg, "reset filtered index", p.filtered.Reset); err != nil {
			return 0, err
		}
		return 0, nil
	}
	last, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: prune checkpoint %q", errors.ErrCheckpointCorrupt, value)
	}
	p.logger.Info("resuming prune after checkpoint", "last_id", last)
	return last, nil
}

func (p *Pruner) processBatch(ctx context.Context, batch []RawChunk, excluded map[string]struct{}) error {
	start := time.Now()
	grouped := make(map[string][]int64)
	var malformed int
	for _, chunk := range batch {
		if _, skip := excluded[chunk.Token]; skip {
			continue
		}
		for _, raw := range chunk.EntityIDs {
			id, err := ParseEntityRef(chunk.Token, raw)
			if err != nil {
				// A single bad reference never fails the batch; the
				// offending id is dropped from this token's posting.
				p.logger.Warn("dropping malformed entity reference", "error", err)
				malformed++
				continue
			}
			grouped[chunk.Token] = append(grouped[chunk.Token], id)
		}
	}

	consolidated := make([]Chunk, 0, len(grouped))
	for token, ids := range grouped {
		consolidated = append(consolidated, Chunk{
			Token:     token,
			Seq:       0,
			EntityIDs: dedupeSorted(ids),
		})
	}

	if len(consolidated) > 0 {
		err := retryStore(ctx, p.cfg, "insert filtered chunks", func(c context.Context) error {
			return p.filtered.InsertChunks(c, consolidated)
		})
		if err != nil {
			return err
		}
	}

	lastID := batch[len(batch)-1].ID
	err := retryStore(ctx, p.cfg, "save prune checkpoint", func(c context.Context) error {
		return p.checkpoints.Save(c, PhasePrune, strconv.FormatInt(lastID, 10))
	})
	if err != nil {
		return err
	}

	if p.metrics != nil {
		p.metrics.ChunksWrittenTotal.WithLabelValues(PhasePrune).Add(float64(len(consolidated)))
		p.metrics.BatchesCommittedTotal.WithLabelValues(PhasePrune).Inc()
		p.metrics.CheckpointCommits.WithLabelValues(PhasePrune).Inc()
		p.metrics.MalformedRefsTotal.Add(float64(malformed))
		p.metrics.BatchDuration.WithLabelValues(PhasePrune).Observe(time.Since(start).Seconds())
	}
	p.logger.Info("batch committed",
		"phase", PhasePrune,
		"raw_chunks", len(batch),
		"consolidated", len(consolidated),
		"malformed_refs", malformed,
		"last_id", lastID,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return nil
}
