package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/tradeverifyd/entity-resolution/internal/index"
	"github.com/tradeverifyd/entity-resolution/internal/matcher"
	"github.com/tradeverifyd/entity-resolution/pkg/postgres"
)

// EntityStore reads and backfills the reference entity catalogue. It serves
// both the index passes (token scans) and the matcher (candidate retrieval
// through the GIN index on tokenized_name).
type EntityStore struct {
	client *postgres.Client
}

func NewEntityStore(client *postgres.Client) *EntityStore {
	return &EntityStore{client: client}
}

// ScanTokenized implements index.EntitySource.
func (s *EntityStore) ScanTokenized(ctx context.Context, afterID int64, limit int) ([]index.EntityTokens, error) {
	rows, err := s.client.DB.QueryContext(ctx,
		`SELECT id, tokenized_name
		   FROM reference_entities
		  WHERE tokenized_name IS NOT NULL AND id > $1
		  ORDER BY id
		  LIMIT $2`,
		afterID, limit,
	)
	if err != nil {
		return nil, postgres.Classify(fmt.Errorf("scanning tokenized entities: %w", err))
	}
	defer rows.Close()

	var out []index.EntityTokens
	for rows.Next() {
		var (
			entity index.EntityTokens
			raw    []byte
		)
		if err := rows.Scan(&entity.ID, &raw); err != nil {
			return nil, postgres.Classify(fmt.Errorf("scanning entity row: %w", err))
		}
		if err := json.Unmarshal(raw, &entity.Tokens); err != nil {
			return nil, fmt.Errorf("decoding token set for entity %d: %w", entity.ID, err)
		}
		out = append(out, entity)
	}
	return out, postgres.Classify(rows.Err())
}

// ScanUntokenized implements index.UntokenizedSource.
func (s *EntityStore) ScanUntokenized(ctx context.Context, afterID int64, limit int) ([]index.EntityName, error) {
	rows, err := s.client.DB.QueryContext(ctx,
		`SELECT id, name
		   FROM reference_entities
		  WHERE tokenized_name IS NULL AND id > $1
		  ORDER BY id
		  LIMIT $2`,
		afterID, limit,
	)
	if err != nil {
		return nil, postgres.Classify(fmt.Errorf("scanning untokenized entities: %w", err))
	}
	defer rows.Close()

	var out []index.EntityName
	for rows.Next() {
		var entity index.EntityName
		if err := rows.Scan(&entity.ID, &entity.Name); err != nil {
			return nil, postgres.Classify(fmt.Errorf("scanning entity row: %w", err))
		}
		out = append(out, entity)
	}
	return out, postgres.Classify(rows.Err())
}

// UpdateTokens writes computed token sets in one transaction.
func (s *EntityStore) UpdateTokens(ctx context.Context, updates []index.EntityTokens) error {
	err := s.client.InTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx,
			`UPDATE reference_entities SET tokenized_name = $1 WHERE id = $2`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, update := range updates {
			tokens, err := json.Marshal(update.Tokens)
			if err != nil {
				return fmt.Errorf("encoding token set for entity %d: %w", update.ID, err)
			}
			if _, err := stmt.ExecContext(ctx, tokens, update.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return postgres.Classify(fmt.Errorf("updating entity tokens: %w", err))
	}
	return nil
}

// Query implements matcher.Retriever: it returns entities whose token set
// contains every query token, via JSONB containment against the GIN index.
func (s *EntityStore) Query(ctx context.Context, tokens []string, limit int) ([]matcher.Candidate, error) {
	// An empty requirement would contain-match every entity.
	if len(tokens) == 0 {
		return nil, nil
	}
	required, err := json.Marshal(tokens)
	if err != nil {
		return nil, fmt.Errorf("encoding query tokens: %w", err)
	}
	rows, err := s.client.DB.QueryContext(ctx,
		`SELECT id, name, jurisdiction, entity_uid, tokenized_name
		   FROM reference_entities
		  WHERE tokenized_name @> $1::jsonb
		  LIMIT $2`,
		required, limit,
	)
	if err != nil {
		return nil, postgres.Classify(fmt.Errorf("querying candidates: %w", err))
	}
	defer rows.Close()

	var out []matcher.Candidate
	for rows.Next() {
		var (
			c   matcher.Candidate
			raw []byte
		)
		if err := rows.Scan(&c.EntityID, &c.Name, &c.Jurisdiction, &c.EntityUID, &raw); err != nil {
			return nil, postgres.Classify(fmt.Errorf("scanning candidate row: %w", err))
		}
		if err := json.Unmarshal(raw, &c.Tokens); err != nil {
			return nil, fmt.Errorf("decoding token set for entity %d: %w", c.EntityID, err)
		}
		out = append(out, c)
	}
	return out, postgres.Classify(rows.Err())
}
