// Package index maintains the token inverted index in three passes: the
// Builder emits raw size-bounded chunk records, the Pruner drops over-broad
// tokens and consolidates the survivors, and the Merger unions each
// surviving token's chunks into a single deduplicated posting.
package index

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/tradeverifyd/entity-resolution/pkg/errors"
)

// Phase names used for checkpoint keys, metrics labels, and logging.
const (
	PhaseTokenize = "tokenize"
	PhaseBuild    = "build"
	PhasePrune    = "prune"
	PhaseMerge    = "merge"
)

// Chunk is one size-bounded shard of a token's posting list. A token may
// span multiple chunks before the merge pass; afterwards each surviving
// token has exactly one.
type Chunk struct {
	ID        int64
	Token     string
	Seq       int
	EntityIDs []int64
}

// RawChunk is a chunk as read back from the store, with entity ids still in
// their wire shape. Historical writers stored ids as numbers, strings, and
// {"$id": "..."} objects; the pruner coerces them to canonical int64.
type RawChunk struct {
	ID        int64
	Token     string
	Seq       int
	EntityIDs []json.RawMessage
}

// Posting is a token's final merged entry: one deduplicated id set.
type Posting struct {
	Token     string
	EntityIDs []int64
}

// wireRef matches the object wire shape {"$id": "123"}.
type wireRef struct {
	ID string `json:"$id"`
}

// ParseEntityRef coerces one wire-shaped entity id to its canonical int64
// form. Unrecognizable shapes yield ErrMalformedReference.
func ParseEntityRef(token string, raw json.RawMessage) (int64, error) {
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if id, err := strconv.ParseInt(s, 10, 64); err == nil {
			return id, nil
		}
		return 0, errors.MalformedRef(token, s)
	}
	var ref wireRef
	if err := json.Unmarshal(raw, &ref); err == nil && ref.ID != "" {
		if id, err := strconv.ParseInt(ref.ID, 10, 64); err == nil {
			return id, nil
		}
	}
	return 0, errors.MalformedRef(token, string(raw))
}

// splitIntoChunks partitions a token's ids into chunks of at most chunkSize,
// assigning ascending sequence numbers.
func splitIntoChunks(token string, ids []int64, chunkSize int) []Chunk {
	chunks := make([]Chunk, 0, (len(ids)+chunkSize-1)/chunkSize)
	for i := 0; i < len(ids); i += chunkSize {
		end := i + chunkSize
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, Chunk{
			Token:     token,
			Seq:       i / chunkSize,
			EntityIDs: ids[i:end],
		})
	}
	return chunks
}

// dedupeSorted returns the unique ids in ascending order.
func dedupeSorted(ids []int64) []int64 {
	if len(ids) == 0 {
		return nil
	}
	sorted := make([]int64, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	out := sorted[:1]
	for _, id := range sorted[1:] {
		if id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return out
}
