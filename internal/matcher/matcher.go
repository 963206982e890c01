package matcher

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tradeverifyd/entity-resolution/internal/jurisdiction"
	"github.com/tradeverifyd/entity-resolution/internal/tokenizer"
	"github.com/tradeverifyd/entity-resolution/pkg/config"
	"github.com/tradeverifyd/entity-resolution/pkg/metrics"
)

// Matcher resolves one shipper name at a time against the merged index.
type Matcher struct {
	retriever     Retriever
	scorer        Scorer
	jurisdictions *jurisdiction.Table
	cfg           config.MatchingConfig
	stopwords     map[string]struct{}
	metrics       *metrics.Metrics
	logger        *slog.Logger
}

func New(retriever Retriever, jurisdictions *jurisdiction.Table, cfg config.MatchingConfig, m *metrics.Metrics) *Matcher {
	return &Matcher{
		retriever:     retriever,
		scorer:        NewScorer(cfg),
		jurisdictions: jurisdictions,
		cfg:           cfg,
		stopwords:     tokenizer.StopwordSet(cfg.Stopwords),
		metrics:       m,
		logger:        slog.Default().With("component", "matcher"),
	}
}

// FindBestMatch resolves shipperName against the reference catalogue. It
// returns nil when no candidate scores strictly above the threshold; that
// is a resolution outcome, not an error. A perfect score ends the scan
// early.
func (m *Matcher) FindBestMatch(ctx context.Context, shipperName, shipperCountry string) (*MatchResult, error) {
	searchName := shipperName
	if m.cfg.DropTrailingToken {
		searchName = dropTrailingWord(searchName)
	}

	queryTokens := tokenizer.Tokenize(searchName)
	retrievalTokens := tokenizer.PrepareForSearch(queryTokens, m.cfg.MinTokenLength, m.stopwords)
	if len(retrievalTokens) == 0 {
		return nil, nil
	}

	candidates, err := m.retriever.Query(ctx, retrievalTokens, m.cfg.MaxSearchResults)
	if err != nil {
		return nil, fmt.Errorf("retrieving candidates for %q: %w", shipperName, err)
	}

	countryCode := m.jurisdictions.NormalizeCountry(shipperCountry)
	neighbors := m.jurisdictions.NeighborSet(countryCode)

	bestScore := m.cfg.MinScoreThreshold
	var best *Candidate
	scored := 0
	for i := range candidates {
		scored++
		score := m.scorer.Score(queryTokens, countryCode, neighbors, candidates[i])
		if score > bestScore {
			bestScore = score
			best = &candidates[i]
			if score == 1.0 {
				break
			}
		}
	}

	if m.metrics != nil {
		m.metrics.CandidatesScored.Observe(float64(scored))
	}
	if best == nil {
		return nil, nil
	}
	if m.metrics != nil {
		m.metrics.MatchScore.Observe(bestScore)
	}
	return &MatchResult{
		Source:       shipperName,
		Name:         best.Name,
		Jurisdiction: best.Jurisdiction,
		Score:        bestScore,
		EntityUID:    best.EntityUID,
	}, nil
}

// dropTrailingWord removes the last whitespace-delimited word. Single-word
// names are returned unchanged.
func dropTrailingWord(name string) string {
	fields := strings.Fields(name)
	if len(fields) <= 1 {
		return name
	}
	return strings.Join(fields[:len(fields)-1], " ")
}
