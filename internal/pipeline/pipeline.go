// Package pipeline drives batch resolution of shipment records: it streams
// unmatched shipments, resolves each shipper name through the matcher, and
// writes the outcome back so processed records leave the unmatched set.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tradeverifyd/entity-resolution/internal/matcher"
	"github.com/tradeverifyd/entity-resolution/pkg/config"
	"github.com/tradeverifyd/entity-resolution/pkg/errors"
	"github.com/tradeverifyd/entity-resolution/pkg/kafka"
	"github.com/tradeverifyd/entity-resolution/pkg/logger"
	"github.com/tradeverifyd/entity-resolution/pkg/metrics"
	"github.com/tradeverifyd/entity-resolution/pkg/resilience"
)

// Shipment is one inbound record awaiting resolution.
type Shipment struct {
	ID             int64
	ShipperName    string
	ShipperCountry string
}

// ShipmentSource streams unmatched shipments and persists outcomes. Writing
// an outcome, matched or not, marks the record processed.
type ShipmentSource interface {
	// FetchUnmatched returns up to limit unprocessed shipments with
	// id > afterID, ascending by id.
	FetchUnmatched(ctx context.Context, afterID int64, limit int) ([]Shipment, error)
	WriteResult(ctx context.Context, shipmentID int64, result *matcher.MatchResult) error
}

// Publisher emits run progress events. *kafka.Producer satisfies it; a nil
// Publisher disables events.
type Publisher interface {
	Publish(ctx context.Context, event kafka.Event) error
}

// RunReport summarises one resolution run.
type RunReport struct {
	RunID     string        `json:"run_id"`
	Processed int64         `json:"processed"`
	Matched   int64         `json:"matched"`
	Unmatched int64         `json:"unmatched"`
	Errors    int64         `json:"errors"`
	MatchRate float64       `json:"match_rate"`
	Duration  time.Duration `json:"duration"`
}

type batchEvent struct {
	RunID     string `json:"run_id"`
	Type      string `json:"type"`
	Batch     int    `json:"batch"`
	Processed int64  `json:"processed"`
	Matched   int64  `json:"matched"`
}

// Runner executes resolution runs until the unmatched set is exhausted.
type Runner struct {
	shipments ShipmentSource
	matcher   *matcher.Matcher
	events    Publisher
	cfg       config.MatchingConfig
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

func NewRunner(shipments ShipmentSource, m *matcher.Matcher, events Publisher, cfg config.MatchingConfig, metrics *metrics.Metrics) *Runner {
	return &Runner{
		shipments: shipments,
		matcher:   m,
		events:    events,
		cfg:       cfg,
		metrics:   metrics,
		logger:    slog.Default().With("component", "pipeline"),
	}
}

// Run processes every unmatched shipment and returns a report. The report
// is returned even when the run aborts partway, so callers can account for
// work that committed before the failure. Per-record failures are logged
// and counted, never fatal; only store-level failures past the retry budget
// abort the run.
func (r *Runner) Run(ctx context.Context) (*RunReport, error) {
	report := &RunReport{RunID: time.Now().UTC().Format("20060102T150405Z")}
	ctx = logger.WithRunID(ctx, report.RunID)
	log := logger.FromContext(ctx).With("component", "pipeline")
	start := time.Now()
	defer func() {
		report.Duration = time.Since(start)
		if report.Processed > 0 {
			report.MatchRate = float64(report.Matched) / float64(report.Processed)
		}
		log.Info("run finished",
			"processed", report.Processed,
			"matched", report.Matched,
			"unmatched", report.Unmatched,
			"errors", report.Errors,
			"match_rate", fmt.Sprintf("%.4f", report.MatchRate),
			"duration", report.Duration.Round(time.Millisecond),
		)
	}()

	batches := make(chan []Shipment, 1)
	g, gctx := errgroup.WithContext(ctx)

	// The cursor advances past fetched-but-uncommitted rows so the
	// prefetcher never re-reads the batch the consumer is still writing.
	// Across runs the unmatched filter itself advances the frontier.
	g.Go(func() error {
		defer close(batches)
		var cursor int64
		for {
			var batch []Shipment
			err := r.retryStore(gctx, "fetch unmatched shipments", func(c context.Context) error {
				var err error
				batch, err = r.shipments.FetchUnmatched(c, cursor, r.cfg.BatchSize)
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
		batchNum := 0
		for batch := range batches {
			batchNum++
			if err := r.processBatch(gctx, log, batch, batchNum, report); err != nil {
				return err
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		r.publishEvent(ctx, report, "run_aborted", 0)
		return report, fmt.Errorf("resolution run aborted: %w", err)
	}
	r.publishEvent(ctx, report, "run_complete", 0)
	return report, nil
}

func (r *Runner) processBatch(ctx context.Context, log *slog.Logger, batch []Shipment, batchNum int, report *RunReport) error {
	start := time.Now()
	for _, shipment := range batch {
		result, err := r.matcher.FindBestMatch(ctx, shipment.ShipperName, shipment.ShipperCountry)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Warn("resolution failed for shipment",
				"shipment_id", shipment.ID,
				"shipper_name", shipment.ShipperName,
				"error", err,
			)
			report.Errors++
			r.countResolved("error")
			continue
		}

		err = r.retryStore(ctx, "write resolution result", func(c context.Context) error {
			return r.shipments.WriteResult(c, shipment.ID, result)
		})
		if err != nil {
			return err
		}

		report.Processed++
		if result != nil {
			report.Matched++
			r.countResolved("matched")
		} else {
			report.Unmatched++
			r.countResolved("unmatched")
		}
	}

	if r.metrics != nil {
		r.metrics.BatchesCommittedTotal.WithLabelValues("match").Inc()
		r.metrics.BatchDuration.WithLabelValues("match").Observe(time.Since(start).Seconds())
	}
	log.Info("batch resolved",
		"batch", batchNum,
		"shipments", len(batch),
		"matched_so_far", report.Matched,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	r.publishEvent(ctx, report, "batch_complete", batchNum)
	return nil
}

func (r *Runner) countResolved(outcome string) {
	if r.metrics != nil {
		r.metrics.RecordsResolvedTotal.WithLabelValues(outcome).Inc()
	}
}

// publishEvent emits a progress event when a publisher is configured.
// Event delivery is best effort: a broker outage must not fail the run.
func (r *Runner) publishEvent(ctx context.Context, report *RunReport, eventType string, batchNum int) {
	if r.events == nil {
		return
	}
	err := r.events.Publish(ctx, kafka.Event{
		Key: report.RunID,
		Value: batchEvent{
			RunID:     report.RunID,
			Type:      eventType,
			Batch:     batchNum,
			Processed: report.Processed,
			Matched:   report.Matched,
		},
	})
	if err != nil {
		r.logger.Warn("failed to publish run event", "type", eventType, "error", err)
	}
}

func (r *Runner) retryStore(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	return resilience.Retry(ctx, name, resilience.RetryConfig{
		MaxAttempts:  r.cfg.MaxRetries,
		InitialDelay: r.cfg.RetryDelay,
		RetryIf:      errors.IsTransient,
	}, func() error {
		return resilience.WithTimeout(ctx, r.cfg.StoreTimeout, name, fn)
	})
}
