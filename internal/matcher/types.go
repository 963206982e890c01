// Package matcher resolves free-text shipper names against the reference
// entity catalogue. Retrieval finds candidates whose token sets contain
// every query token; scoring ranks them by name similarity blended with
// jurisdiction proximity.
package matcher

import (
	"context"
	"strings"
)

// Candidate is a reference entity fetched for scoring.
type Candidate struct {
	EntityID     int64
	Name         string
	Tokens       []string
	Jurisdiction string
	EntityUID    string
}

// MainJurisdiction returns the candidate's country segment: the part of the
// registry jurisdiction before the first underscore, uppercased (for
// example "de_hrb_12345" yields "DE").
func (c Candidate) MainJurisdiction() string {
	j := c.Jurisdiction
	if i := strings.IndexByte(j, '_'); i >= 0 {
		j = j[:i]
	}
	return strings.ToUpper(j)
}

// MatchResult is one resolved shipper name.
type MatchResult struct {
	Source       string  `json:"source"`
	Name         string  `json:"name"`
	Jurisdiction string  `json:"jurisdiction"`
	Score        float64 `json:"score"`
	EntityUID    string  `json:"entity_uid"`
}

// Retriever fetches candidates whose token sets contain every query token.
type Retriever interface {
	Query(ctx context.Context, tokens []string, limit int) ([]Candidate, error)
}
