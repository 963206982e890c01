package matcher

import (
	"math"
	"testing"

	"github.com/tradeverifyd/entity-resolution/internal/tokenizer"
	"github.com/tradeverifyd/entity-resolution/pkg/config"
)

func testMatchingConfig() config.MatchingConfig {
	return config.MatchingConfig{
		MinTokenLength:               2,
		NameSimilarityWeight:         0.7,
		JurisdictionWeight:           0.3,
		ExactJurisdictionScore:       1.0,
		NeighboringJurisdictionScore: 0.5,
		NonMatchingJurisdictionScore: 0.0,
		MinScoreThreshold:            0.55,
		MaxSearchResults:             20,
		BatchSize:                    100,
		DropTrailingToken:            true,
		ScoringStrategy:              config.StrategyWeighted,
		MaxRetries:                   1,
	}
}

func TestJaccard(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want float64
	}{
		{"identical sets", []string{"A", "B"}, []string{"A", "B"}, 1.0},
		{"disjoint sets", []string{"A"}, []string{"B"}, 0.0},
		{"partial overlap", []string{"A", "B", "C"}, []string{"B", "C", "D"}, 0.5},
		{"both empty", nil, nil, 0.0},
		{"one empty", []string{"A"}, nil, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Jaccard(tokenizer.FromSlice(tt.a), tokenizer.FromSlice(tt.b))
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Jaccard = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJaccardSymmetry(t *testing.T) {
	a := tokenizer.FromSlice([]string{"ACME", "GLOBAL", "GMBH"})
	b := tokenizer.FromSlice([]string{"ACME", "TRADING"})
	if Jaccard(a, b) != Jaccard(b, a) {
		t.Error("Jaccard must be symmetric")
	}
}

func TestWeightedScorerJurisdiction(t *testing.T) {
	cfg := testMatchingConfig()
	scorer := NewWeightedScorer(cfg)
	query := tokenizer.FromSlice([]string{"ACME", "GLOBAL"})
	neighbors := map[string]struct{}{"DE": {}, "AT": {}}

	tests := []struct {
		name         string
		jurisdiction string
		want         float64
	}{
		{"exact country", "de_hrb_12345", 0.7*1.0 + 0.3*1.0},
		{"neighboring country", "at_fn_99", 0.7*1.0 + 0.3*0.5},
		{"distant country", "us_de_llc", 0.7 * 1.0},
		{"missing jurisdiction", "", 0.7 * 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Candidate{Tokens: []string{"ACME", "GLOBAL"}, Jurisdiction: tt.jurisdiction}
			got := scorer.Score(query, "DE", neighbors, c)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWeightedScorerUnknownQueryCountry(t *testing.T) {
	cfg := testMatchingConfig()
	scorer := NewWeightedScorer(cfg)
	query := tokenizer.FromSlice([]string{"ACME"})
	c := Candidate{Tokens: []string{"ACME"}, Jurisdiction: "xx_reg_1"}

	// Two unknowns must never look like jurisdictional agreement.
	got := scorer.Score(query, "XX", nil, c)
	if math.Abs(got-0.7) > 1e-9 {
		t.Errorf("Score = %v, want 0.7", got)
	}
}

func TestWeightedScorerOrdering(t *testing.T) {
	cfg := testMatchingConfig()
	scorer := NewWeightedScorer(cfg)
	query := tokenizer.FromSlice([]string{"ACME", "GLOBAL", "TRADING"})
	neighbors := map[string]struct{}{}

	strong := Candidate{Tokens: []string{"ACME", "GLOBAL", "TRADING"}, Jurisdiction: "de_1"}
	weak := Candidate{Tokens: []string{"ACME"}, Jurisdiction: "de_1"}
	if scorer.Score(query, "DE", neighbors, strong) <= scorer.Score(query, "DE", neighbors, weak) {
		t.Error("higher token overlap must outscore lower overlap")
	}
}

func TestMainJurisdiction(t *testing.T) {
	tests := []struct {
		jurisdiction string
		want         string
	}{
		{"de_hrb_12345", "DE"},
		{"us", "US"},
		{"", ""},
		{"FR_rcs", "FR"},
	}
	for _, tt := range tests {
		c := Candidate{Jurisdiction: tt.jurisdiction}
		if got := c.MainJurisdiction(); got != tt.want {
			t.Errorf("MainJurisdiction(%q) = %q, want %q", tt.jurisdiction, got, tt.want)
		}
	}
}

func TestNewScorerSelectsStrategy(t *testing.T) {
	cfg := testMatchingConfig()
	if _, ok := NewScorer(cfg).(*WeightedScorer); !ok {
		t.Error("weighted strategy must yield a WeightedScorer")
	}
	cfg.ScoringStrategy = config.StrategyJaccard
	if _, ok := NewScorer(cfg).(JaccardScorer); !ok {
		t.Error("jaccard strategy must yield a JaccardScorer")
	}
}
