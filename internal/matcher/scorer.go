package matcher

import (
	"github.com/tradeverifyd/entity-resolution/internal/jurisdiction"
	"github.com/tradeverifyd/entity-resolution/internal/tokenizer"
	"github.com/tradeverifyd/entity-resolution/pkg/config"
)

// Scorer computes a similarity score in [0, 1] (or below, with a negative
// non-matching jurisdiction score) between a query and one candidate.
type Scorer interface {
	Score(queryTokens tokenizer.Set, queryCountry string, neighbors map[string]struct{}, c Candidate) float64
}

// Jaccard returns |a ∩ b| / |a ∪ b|. Two empty sets score zero.
func Jaccard(a, b tokenizer.Set) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	intersection := 0
	for token := range a {
		if b.Contains(token) {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// WeightedScorer blends token-set similarity with jurisdiction proximity.
type WeightedScorer struct {
	cfg config.MatchingConfig
}

func NewWeightedScorer(cfg config.MatchingConfig) *WeightedScorer {
	return &WeightedScorer{cfg: cfg}
}

func (s *WeightedScorer) Score(queryTokens tokenizer.Set, queryCountry string, neighbors map[string]struct{}, c Candidate) float64 {
	nameScore := Jaccard(queryTokens, tokenizer.FromSlice(c.Tokens))
	jurScore := s.jurisdictionScore(queryCountry, c.MainJurisdiction(), neighbors)
	return nameScore*s.cfg.NameSimilarityWeight + jurScore*s.cfg.JurisdictionWeight
}

func (s *WeightedScorer) jurisdictionScore(queryCountry, candidateCountry string, neighbors map[string]struct{}) float64 {
	// An unresolvable country on either side never counts as agreement.
	if queryCountry == jurisdiction.UnknownCode || candidateCountry == jurisdiction.UnknownCode || candidateCountry == "" {
		return s.cfg.NonMatchingJurisdictionScore
	}
	if candidateCountry == queryCountry {
		return s.cfg.ExactJurisdictionScore
	}
	if _, ok := neighbors[candidateCountry]; ok {
		return s.cfg.NeighboringJurisdictionScore
	}
	return s.cfg.NonMatchingJurisdictionScore
}

// JaccardScorer scores on token-set similarity alone, ignoring
// jurisdiction. Selected with scoringStrategy "jaccard".
type JaccardScorer struct{}

func (JaccardScorer) Score(queryTokens tokenizer.Set, _ string, _ map[string]struct{}, c Candidate) float64 {
	return Jaccard(queryTokens, tokenizer.FromSlice(c.Tokens))
}

// NewScorer returns the scorer named by cfg.ScoringStrategy. Validate has
// already rejected unknown names.
func NewScorer(cfg config.MatchingConfig) Scorer {
	if cfg.ScoringStrategy == config.StrategyJaccard {
		return JaccardScorer{}
	}
	return NewWeightedScorer(cfg)
}
