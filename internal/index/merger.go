package index

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tradeverifyd/entity-resolution/pkg/config"
	"github.com/tradeverifyd/entity-resolution/pkg/metrics"
)

// Merger is the final index pass. It walks the distinct surviving tokens in
// ascending token order, unions each token's filtered chunks into a single
// deduplicated posting, and drops any token whose union exceeds the
// configured cardinality ceiling. The checkpoint is the last processed
// token key rather than a record id.
type Merger struct {
	filtered    FilteredChunkStore
	merged      MergedStore
	checkpoints CheckpointStore
	cfg         config.IndexingConfig
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

func NewMerger(filtered FilteredChunkStore, merged MergedStore, checkpoints CheckpointStore, cfg config.IndexingConfig, m *metrics.Metrics) *Merger {
	return &Merger{
		filtered:    filtered,
		merged:      merged,
		checkpoints: checkpoints,
		cfg:         cfg,
		metrics:     m,
		logger:      slog.Default().With("component", "index-merger"),
	}
}

// Run executes the merge pass, producing the final index.
func (m *Merger) Run(ctx context.Context) error {
	after, err := m.resumePoint(ctx)
	if err != nil {
		return err
	}

	batches := make(chan []string, 1)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(batches)
		cursor := after
		for {
			var tokens []string
			err := retryStore(gctx, m.cfg, "scan distinct tokens", func(c context.Context) error {
				var err error
				tokens, err = m.filtered.DistinctTokens(c, cursor, m.cfg.BatchSize)
				return err
			})
			if err != nil {
				return err
			}
			if len(tokens) == 0 {
				return nil
			}
			cursor = tokens[len(tokens)-1]
			select {
			case batches <- tokens:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
	})

	g.Go(func() error {
		for tokens := range batches {
			if err := m.processBatch(gctx, tokens); err != nil {
				return err
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("merge pass aborted, checkpoint preserved: %w", err)
	}
	m.logger.Info("merge pass complete")
	return nil
}

func (m *Merger) resumePoint(ctx context.Context) (string, error) {
	value, ok, err := m.checkpoints.Load(ctx, PhaseMerge)
	if err != nil {
		return "", fmt.Errorf("loading merge checkpoint: %w", err)
	}
	if !ok {
		m.logger.Info("no merge checkpoint, reinitializing merged index")
		if err := retryStore(ctx, m.cfg, "reset merged index", m.merged.Reset); err != nil {
			return "", err
		}
		return "", nil
	}
	m.logger.Info("resuming merge after checkpoint", "last_token", value)
	return value, nil
}

func (m *Merger) processBatch(ctx context.Context, tokens []string) error {
	start := time.Now()
	var chunks []Chunk
	err := retryStore(ctx, m.cfg, "fetch filtered chunks", func(c context.Context) error {
		var err error
		chunks, err = m.filtered.ChunksForTokens(c, tokens)
		return err
	})
	if err != nil {
		return err
	}

	grouped := make(map[string][]int64, len(tokens))
	for _, chunk := range chunks {
		grouped[chunk.Token] = append(grouped[chunk.Token], chunk.EntityIDs...)
	}

	postings := make([]Posting, 0, len(tokens))
	var dropped int
	for _, token := range tokens {
		ids, ok := grouped[token]
		if !ok {
			continue
		}
		union := dedupeSorted(ids)
		// The ceiling judges the deduplicated union, so duplicate ids
		// left behind by a replayed batch cannot push a token over it.
		if len(union) > m.cfg.TokenCardinalityCeiling {
			m.logger.Info("dropping over-broad token",
				"token", token,
				"entities", len(union),
				"ceiling", m.cfg.TokenCardinalityCeiling,
			)
			dropped++
			continue
		}
		postings = append(postings, Posting{Token: token, EntityIDs: union})
	}

	if len(postings) > 0 {
		err := retryStore(ctx, m.cfg, "insert merged postings", func(c context.Context) error {
			return m.merged.InsertPostings(c, postings)
		})
		if err != nil {
			return err
		}
	}

	lastToken := tokens[len(tokens)-1]
	err = retryStore(ctx, m.cfg, "save merge checkpoint", func(c context.Context) error {
		return m.checkpoints.Save(c, PhaseMerge, lastToken)
	})
	if err != nil {
		return err
	}

	if m.metrics != nil {
		m.metrics.TokensMergedTotal.Add(float64(len(postings)))
		m.metrics.TokensDroppedTotal.Add(float64(dropped))
		m.metrics.BatchesCommittedTotal.WithLabelValues(PhaseMerge).Inc()
		m.metrics.CheckpointCommits.WithLabelValues(PhaseMerge).Inc()
		m.metrics.BatchDuration.WithLabelValues(PhaseMerge).Observe(time.Since(start).Seconds())
	}
	m.logger.Info("batch committed",
		"phase", PhaseMerge,
		"tokens", len(tokens),
		"merged", len(postings),
		"dropped", dropped,
		"last_token", lastToken,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return nil
}
