package index

import "context"

// EntityTokens is the projection of a reference entity the index passes
// consume: its ordered id and normalised token set.
type EntityTokens struct {
	ID     int64
	Tokens []string
}

// EntitySource scans reference entities in strictly ascending id order.
type EntitySource interface {
	// ScanTokenized returns up to limit entities with id > afterID,
	// ascending, projected to id and token set.
	ScanTokenized(ctx context.Context, afterID int64, limit int) ([]EntityTokens, error)
}

// RawChunkStore holds the Builder's output: unconsolidated chunk records.
type RawChunkStore interface {
	// Reset destructively reinitializes the raw index.
	Reset(ctx context.Context) error
	InsertChunks(ctx context.Context, chunks []Chunk) error
	// ScanChunks returns up to limit records with id > afterID, ascending.
	ScanChunks(ctx context.Context, afterID int64, limit int) ([]RawChunk, error)
	// HighCardinalityTokens returns the tokens that spilled past their
	// first chunk (any record with Seq >= 1).
	HighCardinalityTokens(ctx context.Context) (map[string]struct{}, error)
}

// FilteredChunkStore holds the Pruner's output: per-batch consolidated
// chunks for tokens that passed the cheap cardinality screen.
type FilteredChunkStore interface {
	Reset(ctx context.Context) error
	InsertChunks(ctx context.Context, chunks []Chunk) error
	// DistinctTokens returns up to limit distinct tokens > afterToken in
	// ascending token order.
	DistinctTokens(ctx context.Context, afterToken string, limit int) ([]string, error)
	// ChunksForTokens returns every chunk whose token is in tokens.
	ChunksForTokens(ctx context.Context, tokens []string) ([]Chunk, error)
}

// MergedStore holds the final index consumed by candidate retrieval.
type MergedStore interface {
	Reset(ctx context.Context) error
	InsertPostings(ctx context.Context, postings []Posting) error
}

// CheckpointStore persists one durable resume value per phase. A missing
// value authorizes a destructive fresh start of that phase's target index.
type CheckpointStore interface {
	Load(ctx context.Context, phase string) (value string, ok bool, err error)
	Save(ctx context.Context, phase string, value string) error
	Clear(ctx context.Context, phase string) error
}
