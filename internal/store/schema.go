// Package store implements the Postgres-backed persistence layer: the
// reference entity catalogue, the shipment queue, and the three index
// chunk tables consumed by the build, prune, and merge passes.
package store

import (
	"context"
	"fmt"

	"github.com/tradeverifyd/entity-resolution/pkg/postgres"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS reference_entities (
		id             BIGSERIAL PRIMARY KEY,
		entity_uid     TEXT NOT NULL UNIQUE,
		name           TEXT NOT NULL,
		jurisdiction   TEXT NOT NULL DEFAULT '',
		tokenized_name JSONB
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reference_entities_tokens
		ON reference_entities USING GIN (tokenized_name jsonb_path_ops)`,
	`CREATE TABLE IF NOT EXISTS shipments (
		id              BIGSERIAL PRIMARY KEY,
		shipper_name    TEXT NOT NULL,
		shipper_country TEXT NOT NULL DEFAULT '',
		match_result    JSONB,
		matched_at      TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_shipments_unmatched
		ON shipments (id) WHERE matched_at IS NULL`,
	`CREATE TABLE IF NOT EXISTS token_chunks_raw (
		id         BIGSERIAL PRIMARY KEY,
		token      TEXT NOT NULL,
		seq        INT NOT NULL,
		entity_ids JSONB NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_token_chunks_raw_token
		ON token_chunks_raw (token, seq)`,
	`CREATE TABLE IF NOT EXISTS token_chunks_filtered (
		id         BIGSERIAL PRIMARY KEY,
		token      TEXT NOT NULL,
		seq        INT NOT NULL,
		entity_ids JSONB NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_token_chunks_filtered_token
		ON token_chunks_filtered (token)`,
	`CREATE TABLE IF NOT EXISTS token_index_merged (
		token      TEXT PRIMARY KEY,
		entity_ids JSONB NOT NULL
	)`,
}

// EnsureSchema creates every table and index the pipelines use. Statements
// are idempotent, so it runs unconditionally at startup.
func EnsureSchema(ctx context.Context, client *postgres.Client) error {
	for _, stmt := range schemaStatements {
		if _, err := client.DB.ExecContext(ctx, stmt); err != nil {
			return postgres.Classify(fmt.Errorf("ensuring schema: %w", err))
		}
	}
	return nil
}
