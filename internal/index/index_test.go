package index

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"testing"
	"time"

	"github.com/tradeverifyd/entity-resolution/pkg/config"
	pkgerrors "github.com/tradeverifyd/entity-resolution/pkg/errors"
)

func testIndexingConfig() config.IndexingConfig {
	return config.IndexingConfig{
		BatchSize:               2,
		ChunkSize:               3,
		TokenCardinalityCeiling: 5,
		MaxRetries:              1,
		RetryDelay:              time.Millisecond,
	}
}

// ---------------------------------------------------------------------------
// In-memory fakes
// ---------------------------------------------------------------------------

type memCheckpoints struct {
	values map[string]string
}

func newMemCheckpoints() *memCheckpoints {
	return &memCheckpoints{values: make(map[string]string)}
}

func (c *memCheckpoints) Load(_ context.Context, phase string) (string, bool, error) {
	v, ok := c.values[phase]
	return v, ok, nil
}

func (c *memCheckpoints) Save(_ context.Context, phase, value string) error {
	c.values[phase] = value
	return nil
}

func (c *memCheckpoints) Clear(_ context.Context, phase string) error {
	delete(c.values, phase)
	return nil
}

type memEntitySource struct {
	entities []EntityTokens
}

func (s *memEntitySource) ScanTokenized(_ context.Context, afterID int64, limit int) ([]EntityTokens, error) {
	var out []EntityTokens
	for _, e := range s.entities {
		if e.ID > afterID {
			out = append(out, e)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

type memRawStore struct {
	chunks []RawChunk
	nextID int64
	resets int

	failOnInsert int // fail the Nth InsertChunks call, 0 disables
	inserts      int
}

func (s *memRawStore) Reset(context.Context) error {
	s.chunks = nil
	s.nextID = 0
	s.resets++
	return nil
}

func (s *memRawStore) InsertChunks(_ context.Context, chunks []Chunk) error {
	s.inserts++
	if s.failOnInsert > 0 && s.inserts == s.failOnInsert {
		return errors.New("disk on fire")
	}
	for _, chunk := range chunks {
		s.nextID++
		raw := make([]json.RawMessage, len(chunk.EntityIDs))
		for i, id := range chunk.EntityIDs {
			raw[i] = json.RawMessage(fmt.Sprintf("%d", id))
		}
		s.chunks = append(s.chunks, RawChunk{
			ID:        s.nextID,
			Token:     chunk.Token,
			Seq:       chunk.Seq,
			EntityIDs: raw,
		})
	}
	return nil
}

func (s *memRawStore) ScanChunks(_ context.Context, afterID int64, limit int) ([]RawChunk, error) {
	var out []RawChunk
	for _, chunk := range s.chunks {
		if chunk.ID > afterID {
			out = append(out, chunk)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (s *memRawStore) HighCardinalityTokens(context.Context) (map[string]struct{}, error) {
	out := make(map[string]struct{})
	for _, chunk := range s.chunks {
		if chunk.Seq >= 1 {
			out[chunk.Token] = struct{}{}
		}
	}
	return out, nil
}

type memFilteredStore struct {
	chunks []Chunk
	nextID int64
	resets int
}

func (s *memFilteredStore) Reset(context.Context) error {
	s.chunks = nil
	s.nextID = 0
	s.resets++
	return nil
}

func (s *memFilteredStore) InsertChunks(_ context.Context, chunks []Chunk) error {
	for _, chunk := range chunks {
		s.nextID++
		chunk.ID = s.nextID
		s.chunks = append(s.chunks, chunk)
	}
	return nil
}

func (s *memFilteredStore) DistinctTokens(_ context.Context, afterToken string, limit int) ([]string, error) {
	seen := make(map[string]struct{})
	var tokens []string
	for _, chunk := range s.chunks {
		if chunk.Token <= afterToken {
			continue
		}
		if _, dup := seen[chunk.Token]; dup {
			continue
		}
		seen[chunk.Token] = struct{}{}
		tokens = append(tokens, chunk.Token)
	}
	sort.Strings(tokens)
	if len(tokens) > limit {
		tokens = tokens[:limit]
	}
	return tokens, nil
}

func (s *memFilteredStore) ChunksForTokens(_ context.Context, tokens []string) ([]Chunk, error) {
	want := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		want[t] = struct{}{}
	}
	var out []Chunk
	for _, chunk := range s.chunks {
		if _, ok := want[chunk.Token]; ok {
			out = append(out, chunk)
		}
	}
	return out, nil
}

type memMergedStore struct {
	postings map[string][]int64
	resets   int
}

func newMemMergedStore() *memMergedStore {
	return &memMergedStore{postings: make(map[string][]int64)}
}

func (s *memMergedStore) Reset(context.Context) error {
	s.postings = make(map[string][]int64)
	s.resets++
	return nil
}

func (s *memMergedStore) InsertPostings(_ context.Context, postings []Posting) error {
	for _, p := range postings {
		s.postings[p.Token] = p.EntityIDs
	}
	return nil
}

// ---------------------------------------------------------------------------
// Chunk helpers
// ---------------------------------------------------------------------------

func TestSplitIntoChunks(t *testing.T) {
	ids := []int64{1, 2, 3, 4, 5, 6, 7}
	chunks := splitIntoChunks("ACME", ids, 3)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	var total int
	for i, chunk := range chunks {
		if chunk.Seq != i {
			t.Errorf("chunk %d has seq %d", i, chunk.Seq)
		}
		if len(chunk.EntityIDs) > 3 {
			t.Errorf("chunk %d exceeds chunk size: %d ids", i, len(chunk.EntityIDs))
		}
		total += len(chunk.EntityIDs)
	}
	if total != len(ids) {
		t.Errorf("chunks hold %d ids, want %d", total, len(ids))
	}
}

func TestParseEntityRef(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int64
		wantErr bool
	}{
		{"number", `42`, 42, false},
		{"numeric string", `"42"`, 42, false},
		{"object ref", `{"$id": "42"}`, 42, false},
		{"garbage string", `"not-a-number"`, 0, true},
		{"garbage object", `{"foo": "bar"}`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEntityRef("ACME", json.RawMessage(tt.raw))
			if tt.wantErr {
				if !errors.Is(err, pkgerrors.ErrMalformedReference) {
					t.Fatalf("err = %v, want ErrMalformedReference", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseEntityRef: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseEntityRef = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDedupeSorted(t *testing.T) {
	got := dedupeSorted([]int64{5, 1, 5, 3, 1})
	if !reflect.DeepEqual(got, []int64{1, 3, 5}) {
		t.Errorf("dedupeSorted = %v", got)
	}
	if dedupeSorted(nil) != nil {
		t.Error("dedupeSorted(nil) must be nil")
	}
}

// ---------------------------------------------------------------------------
// Passes
// ---------------------------------------------------------------------------

func runAllPasses(t *testing.T, entities *memEntitySource, cfg config.IndexingConfig) (*memRawStore, *memFilteredStore, *memMergedStore) {
	t.Helper()
	ctx := context.Background()
	raw := &memRawStore{}
	filtered := &memFilteredStore{}
	merged := newMemMergedStore()
	checkpoints := newMemCheckpoints()

	if err := NewBuilder(entities, raw, checkpoints, cfg, nil).Run(ctx); err != nil {
		t.Fatalf("build: %v", err)
	}
	if err := NewPruner(raw, filtered, checkpoints, cfg, nil).Run(ctx); err != nil {
		t.Fatalf("prune: %v", err)
	}
	if err := NewMerger(filtered, merged, checkpoints, cfg, nil).Run(ctx); err != nil {
		t.Fatalf("merge: %v", err)
	}
	return raw, filtered, merged
}

func TestBuilderFreshStartResets(t *testing.T) {
	ctx := context.Background()
	cfg := testIndexingConfig()
	raw := &memRawStore{}
	checkpoints := newMemCheckpoints()
	entities := &memEntitySource{entities: []EntityTokens{
		{ID: 1, Tokens: []string{"ACME", "GLOBAL"}},
		{ID: 2, Tokens: []string{"ACME"}},
	}}

	if err := NewBuilder(entities, raw, checkpoints, cfg, nil).Run(ctx); err != nil {
		t.Fatalf("build: %v", err)
	}
	if raw.resets != 1 {
		t.Errorf("expected one destructive reset on fresh start, got %d", raw.resets)
	}
	if v, ok := checkpoints.values[PhaseBuild]; !ok || v != "2" {
		t.Errorf("checkpoint = %q, want last entity id 2", v)
	}

	// A second run resumes past the checkpoint: no reset, no new chunks.
	before := len(raw.chunks)
	if err := NewBuilder(entities, raw, checkpoints, cfg, nil).Run(ctx); err != nil {
		t.Fatalf("rerun: %v", err)
	}
	if raw.resets != 1 {
		t.Errorf("resumed run must not reset, got %d resets", raw.resets)
	}
	if len(raw.chunks) != before {
		t.Errorf("resumed run wrote %d extra chunks", len(raw.chunks)-before)
	}
}

func TestBuilderCorruptCheckpoint(t *testing.T) {
	cfg := testIndexingConfig()
	checkpoints := newMemCheckpoints()
	checkpoints.values[PhaseBuild] = "not-a-number"

	err := NewBuilder(&memEntitySource{}, &memRawStore{}, checkpoints, cfg, nil).Run(context.Background())
	if !errors.Is(err, pkgerrors.ErrCheckpointCorrupt) {
		t.Fatalf("err = %v, want ErrCheckpointCorrupt", err)
	}
}

func TestChunkRoundTrip(t *testing.T) {
	// 7 entities share one token that fits in a single chunk; the merged
	// posting must be the full deduplicated union.
	entities := &memEntitySource{}
	for id := int64(1); id <= 7; id++ {
		entities.entities = append(entities.entities, EntityTokens{ID: id, Tokens: []string{"SHARED", fmt.Sprintf("UNIQ%d", id)}})
	}
	want := []int64{1, 2, 3, 4, 5, 6, 7}

	cfg := testIndexingConfig()
	cfg.ChunkSize = 10
	cfg.TokenCardinalityCeiling = 100
	_, _, merged := runAllPasses(t, entities, cfg)
	if !reflect.DeepEqual(merged.postings["SHARED"], want) {
		t.Errorf("SHARED posting = %v, want %v", merged.postings["SHARED"], want)
	}
}

func TestMergeUnionIndependentOfBoundaries(t *testing.T) {
	// The same id set arranged with different chunk boundaries must merge
	// to the same posting.
	ctx := context.Background()
	cfg := testIndexingConfig()
	cfg.TokenCardinalityCeiling = 100
	want := []int64{1, 2, 3, 4, 5}

	boundaries := [][][]int64{
		{{1, 2, 3, 4, 5}},
		{{1}, {2, 3}, {4, 5}},
		{{5, 4}, {3, 2, 1}},
		{{1, 2, 3}, {3, 4, 5}}, // overlap across chunks
	}
	for i, layout := range boundaries {
		filtered := &memFilteredStore{}
		for _, ids := range layout {
			_ = filtered.InsertChunks(ctx, []Chunk{{Token: "ACME", Seq: 0, EntityIDs: ids}})
		}
		merged := newMemMergedStore()
		if err := NewMerger(filtered, merged, newMemCheckpoints(), cfg, nil).Run(ctx); err != nil {
			t.Fatalf("layout %d: merge: %v", i, err)
		}
		if !reflect.DeepEqual(merged.postings["ACME"], want) {
			t.Errorf("layout %d: posting = %v, want %v", i, merged.postings["ACME"], want)
		}
	}
}

func TestPrunerExcludesSpilledTokens(t *testing.T) {
	// With the whole catalogue in one build batch, ChunkSize 3 forces the
	// 7-entity token to spill into later chunks, so the prune pass drops
	// it before any merge work happens.
	entities := &memEntitySource{}
	for id := int64(1); id <= 7; id++ {
		entities.entities = append(entities.entities, EntityTokens{ID: id, Tokens: []string{"COMMON", fmt.Sprintf("UNIQ%d", id)}})
	}
	cfg := testIndexingConfig()
	cfg.BatchSize = 10
	_, filtered, merged := runAllPasses(t, entities, cfg)

	for _, chunk := range filtered.chunks {
		if chunk.Token == "COMMON" {
			t.Error("spilled token survived the prune pass")
		}
	}
	if _, ok := merged.postings["COMMON"]; ok {
		t.Error("spilled token reached the merged index")
	}
	if _, ok := merged.postings["UNIQ3"]; !ok {
		t.Error("rare token missing from merged index")
	}
}

func TestPrunerSkipsMalformedRefs(t *testing.T) {
	ctx := context.Background()
	cfg := testIndexingConfig()
	raw := &memRawStore{chunks: []RawChunk{
		{ID: 1, Token: "ACME", Seq: 0, EntityIDs: []json.RawMessage{
			json.RawMessage(`1`),
			json.RawMessage(`"oops"`),
			json.RawMessage(`"3"`),
			json.RawMessage(`{"$id": "2"}`),
		}},
	}, nextID: 1}
	filtered := &memFilteredStore{}

	if err := NewPruner(raw, filtered, newMemCheckpoints(), cfg, nil).Run(ctx); err != nil {
		t.Fatalf("prune: %v", err)
	}
	if len(filtered.chunks) != 1 {
		t.Fatalf("expected 1 consolidated chunk, got %d", len(filtered.chunks))
	}
	if got := filtered.chunks[0].EntityIDs; !reflect.DeepEqual(got, []int64{1, 2, 3}) {
		t.Errorf("consolidated ids = %v, want [1 2 3] with the bad ref dropped", got)
	}
}

func TestMergerDropsOverBroadTokens(t *testing.T) {
	ctx := context.Background()
	cfg := testIndexingConfig()
	cfg.TokenCardinalityCeiling = 3
	filtered := &memFilteredStore{}
	_ = filtered.InsertChunks(ctx, []Chunk{
		{Token: "BROAD", Seq: 0, EntityIDs: []int64{1, 2}},
		{Token: "BROAD", Seq: 0, EntityIDs: []int64{3, 4}},
		{Token: "NARROW", Seq: 0, EntityIDs: []int64{1, 2, 3}},
	})
	merged := newMemMergedStore()

	if err := NewMerger(filtered, merged, newMemCheckpoints(), cfg, nil).Run(ctx); err != nil {
		t.Fatalf("merge: %v", err)
	}
	if _, ok := merged.postings["BROAD"]; ok {
		t.Error("token past the ceiling must be dropped")
	}
	if got := merged.postings["NARROW"]; !reflect.DeepEqual(got, []int64{1, 2, 3}) {
		t.Errorf("NARROW posting = %v, want full union at the ceiling boundary", got)
	}
}

func TestMergerCeilingJudgesDeduplicatedUnion(t *testing.T) {
	ctx := context.Background()
	cfg := testIndexingConfig()
	cfg.TokenCardinalityCeiling = 3
	// A replayed batch leaves the same chunk twice: six raw ids, three
	// distinct. The ceiling must see three and keep the token.
	filtered := &memFilteredStore{}
	_ = filtered.InsertChunks(ctx, []Chunk{
		{Token: "REPLAYED", Seq: 0, EntityIDs: []int64{1, 2, 3}},
		{Token: "REPLAYED", Seq: 0, EntityIDs: []int64{1, 2, 3}},
	})
	merged := newMemMergedStore()

	if err := NewMerger(filtered, merged, newMemCheckpoints(), cfg, nil).Run(ctx); err != nil {
		t.Fatalf("merge: %v", err)
	}
	if got := merged.postings["REPLAYED"]; !reflect.DeepEqual(got, []int64{1, 2, 3}) {
		t.Errorf("REPLAYED posting = %v, want deduplicated union kept under the ceiling", got)
	}
}

func TestBuildResumabilityEquivalence(t *testing.T) {
	ctx := context.Background()
	entities := &memEntitySource{}
	for id := int64(1); id <= 6; id++ {
		entities.entities = append(entities.entities, EntityTokens{ID: id, Tokens: []string{fmt.Sprintf("T%d", id), "AND"}})
	}
	cfg := testIndexingConfig()
	cfg.TokenCardinalityCeiling = 100

	// Uninterrupted baseline.
	_, _, wantMerged := runAllPasses(t, entities, cfg)

	// Interrupted build: the third insert fails, the run aborts, and a
	// rerun over the same stores picks up from the checkpoint.
	raw := &memRawStore{failOnInsert: 3}
	checkpoints := newMemCheckpoints()
	if err := NewBuilder(entities, raw, checkpoints, cfg, nil).Run(ctx); err == nil {
		t.Fatal("expected the interrupted build to fail")
	}
	raw.failOnInsert = 0
	if err := NewBuilder(entities, raw, checkpoints, cfg, nil).Run(ctx); err != nil {
		t.Fatalf("resumed build: %v", err)
	}

	filtered := &memFilteredStore{}
	merged := newMemMergedStore()
	if err := NewPruner(raw, filtered, checkpoints, cfg, nil).Run(ctx); err != nil {
		t.Fatalf("prune: %v", err)
	}
	if err := NewMerger(filtered, merged, checkpoints, cfg, nil).Run(ctx); err != nil {
		t.Fatalf("merge: %v", err)
	}

	if !reflect.DeepEqual(merged.postings, wantMerged.postings) {
		t.Errorf("resumed index differs from uninterrupted run:\ngot  %v\nwant %v", merged.postings, wantMerged.postings)
	}
}

// ---------------------------------------------------------------------------
// Tokenize pass
// ---------------------------------------------------------------------------

type memUntokenized struct {
	pending map[int64]string
	updated map[int64][]string
}

func (s *memUntokenized) ScanUntokenized(_ context.Context, afterID int64, limit int) ([]EntityName, error) {
	var ids []int64
	for id := range s.pending {
		if id > afterID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if len(ids) > limit {
		ids = ids[:limit]
	}
	out := make([]EntityName, 0, len(ids))
	for _, id := range ids {
		out = append(out, EntityName{ID: id, Name: s.pending[id]})
	}
	return out, nil
}

func (s *memUntokenized) UpdateTokens(_ context.Context, updates []EntityTokens) error {
	for _, u := range updates {
		s.updated[u.ID] = u.Tokens
		delete(s.pending, u.ID)
	}
	return nil
}

func TestTokenizePass(t *testing.T) {
	src := &memUntokenized{
		pending: map[int64]string{
			1: "Acme Trading Co.",
			2: "Müller & Sons GmbH",
			3: "X",
		},
		updated: make(map[int64][]string),
	}
	cfg := testIndexingConfig()

	if err := NewTokenizePass(src, cfg, nil).Run(context.Background()); err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if len(src.pending) != 0 {
		t.Errorf("%d entities left untokenized", len(src.pending))
	}
	got := src.updated[1]
	sort.Strings(got)
	if !reflect.DeepEqual(got, []string{"ACME", "CO", "TRADING"}) {
		t.Errorf("entity 1 tokens = %v", got)
	}
}
