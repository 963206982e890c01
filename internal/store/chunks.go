package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"github.com/tradeverifyd/entity-resolution/internal/index"
	"github.com/tradeverifyd/entity-resolution/pkg/postgres"
)

// RawChunkTable implements index.RawChunkStore on token_chunks_raw.
type RawChunkTable struct {
	client *postgres.Client
}

func NewRawChunkTable(client *postgres.Client) *RawChunkTable {
	return &RawChunkTable{client: client}
}

func (t *RawChunkTable) Reset(ctx context.Context) error {
	_, err := t.client.DB.ExecContext(ctx, `TRUNCATE token_chunks_raw RESTART IDENTITY`)
	if err != nil {
		return postgres.Classify(fmt.Errorf("resetting raw chunks: %w", err))
	}
	return nil
}

func (t *RawChunkTable) InsertChunks(ctx context.Context, chunks []index.Chunk) error {
	return insertChunks(ctx, t.client, "token_chunks_raw", chunks)
}

func (t *RawChunkTable) ScanChunks(ctx context.Context, afterID int64, limit int) ([]index.RawChunk, error) {
	rows, err := t.client.DB.QueryContext(ctx,
		`SELECT id, token, seq, entity_ids
		   FROM token_chunks_raw
		  WHERE id > $1
		  ORDER BY id
		  LIMIT $2`,
		afterID, limit,
	)
	if err != nil {
		return nil, postgres.Classify(fmt.Errorf("scanning raw chunks: %w", err))
	}
	defer rows.Close()

	var out []index.RawChunk
	for rows.Next() {
		var (
			chunk index.RawChunk
			raw   []byte
		)
		if err := rows.Scan(&chunk.ID, &chunk.Token, &chunk.Seq, &raw); err != nil {
			return nil, postgres.Classify(fmt.Errorf("scanning raw chunk row: %w", err))
		}
		// Ids keep their wire shape here; the pruner coerces them.
		if err := json.Unmarshal(raw, &chunk.EntityIDs); err != nil {
			return nil, fmt.Errorf("decoding id list for chunk %d: %w", chunk.ID, err)
		}
		out = append(out, chunk)
	}
	return out, postgres.Classify(rows.Err())
}

func (t *RawChunkTable) HighCardinalityTokens(ctx context.Context) (map[string]struct{}, error) {
	rows, err := t.client.DB.QueryContext(ctx,
		`SELECT DISTINCT token FROM token_chunks_raw WHERE seq >= 1`)
	if err != nil {
		return nil, postgres.Classify(fmt.Errorf("listing high-cardinality tokens: %w", err))
	}
	defer rows.Close()

	out := make(map[string]struct{})
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, postgres.Classify(err)
		}
		out[token] = struct{}{}
	}
	return out, postgres.Classify(rows.Err())
}

// FilteredChunkTable implements index.FilteredChunkStore on
// token_chunks_filtered.
type FilteredChunkTable struct {
	client *postgres.Client
}

func NewFilteredChunkTable(client *postgres.Client) *FilteredChunkTable {
	return &FilteredChunkTable{client: client}
}

func (t *FilteredChunkTable) Reset(ctx context.Context) error {
	_, err := t.client.DB.ExecContext(ctx, `TRUNCATE token_chunks_filtered RESTART IDENTITY`)
	if err != nil {
		return postgres.Classify(fmt.Errorf("resetting filtered chunks: %w", err))
	}
	return nil
}

func (t *FilteredChunkTable) InsertChunks(ctx context.Context, chunks []index.Chunk) error {
	return insertChunks(ctx, t.client, "token_chunks_filtered", chunks)
}

func (t *FilteredChunkTable) DistinctTokens(ctx context.Context, afterToken string, limit int) ([]string, error) {
	rows, err := t.client.DB.QueryContext(ctx,
		`SELECT DISTINCT token
		   FROM token_chunks_filtered
		  WHERE token > $1
		  ORDER BY token
		  LIMIT $2`,
		afterToken, limit,
	)
	if err != nil {
		return nil, postgres.Classify(fmt.Errorf("listing distinct tokens: %w", err))
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, postgres.Classify(err)
		}
		out = append(out, token)
	}
	return out, postgres.Classify(rows.Err())
}

func (t *FilteredChunkTable) ChunksForTokens(ctx context.Context, tokens []string) ([]index.Chunk, error) {
	rows, err := t.client.DB.QueryContext(ctx,
		`SELECT id, token, seq, entity_ids
		   FROM token_chunks_filtered
		  WHERE token = ANY($1)`,
		pq.Array(tokens),
	)
	if err != nil {
		return nil, postgres.Classify(fmt.Errorf("fetching chunks for tokens: %w", err))
	}
	defer rows.Close()

	var out []index.Chunk
	for rows.Next() {
		var (
			chunk index.Chunk
			raw   []byte
		)
		if err := rows.Scan(&chunk.ID, &chunk.Token, &chunk.Seq, &raw); err != nil {
			return nil, postgres.Classify(fmt.Errorf("scanning filtered chunk row: %w", err))
		}
		if err := json.Unmarshal(raw, &chunk.EntityIDs); err != nil {
			return nil, fmt.Errorf("decoding id list for chunk %d: %w", chunk.ID, err)
		}
		out = append(out, chunk)
	}
	return out, postgres.Classify(rows.Err())
}

// MergedTable implements index.MergedStore on token_index_merged.
type MergedTable struct {
	client *postgres.Client
}

func NewMergedTable(client *postgres.Client) *MergedTable {
	return &MergedTable{client: client}
}

func (t *MergedTable) Reset(ctx context.Context) error {
	_, err := t.client.DB.ExecContext(ctx, `TRUNCATE token_index_merged`)
	if err != nil {
		return postgres.Classify(fmt.Errorf("resetting merged index: %w", err))
	}
	return nil
}

// InsertPostings upserts so a batch replayed after a crash-before-checkpoint
// overwrites rather than duplicates.
func (t *MergedTable) InsertPostings(ctx context.Context, postings []index.Posting) error {
	err := t.client.InTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO token_index_merged (token, entity_ids)
			 VALUES ($1, $2)
			 ON CONFLICT (token) DO UPDATE SET entity_ids = EXCLUDED.entity_ids`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, posting := range postings {
			ids, err := json.Marshal(posting.EntityIDs)
			if err != nil {
				return fmt.Errorf("encoding id list for token %q: %w", posting.Token, err)
			}
			if _, err := stmt.ExecContext(ctx, posting.Token, ids); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return postgres.Classify(fmt.Errorf("inserting merged postings: %w", err))
	}
	return nil
}

func insertChunks(ctx context.Context, client *postgres.Client, table string, chunks []index.Chunk) error {
	err := client.InTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
			`INSERT INTO %s (token, seq, entity_ids) VALUES ($1, $2, $3)`, table))
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, chunk := range chunks {
			ids, err := json.Marshal(chunk.EntityIDs)
			if err != nil {
				return fmt.Errorf("encoding id list for token %q: %w", chunk.Token, err)
			}
			if _, err := stmt.ExecContext(ctx, chunk.Token, chunk.Seq, ids); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return postgres.Classify(fmt.Errorf("inserting chunks into %s: %w", table, err))
	}
	return nil
}
