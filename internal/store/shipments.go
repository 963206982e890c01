package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tradeverifyd/entity-resolution/internal/matcher"
	"github.com/tradeverifyd/entity-resolution/internal/pipeline"
	"github.com/tradeverifyd/entity-resolution/pkg/postgres"
)

// ShipmentStore implements pipeline.ShipmentSource on the shipments table.
type ShipmentStore struct {
	client *postgres.Client
}

func NewShipmentStore(client *postgres.Client) *ShipmentStore {
	return &ShipmentStore{client: client}
}

// FetchUnmatched returns unprocessed shipments after the in-run cursor.
func (s *ShipmentStore) FetchUnmatched(ctx context.Context, afterID int64, limit int) ([]pipeline.Shipment, error) {
	rows, err := s.client.DB.QueryContext(ctx,
		`SELECT id, shipper_name, shipper_country
		   FROM shipments
		  WHERE matched_at IS NULL AND id > $1
		  ORDER BY id
		  LIMIT $2`,
		afterID, limit,
	)
	if err != nil {
		return nil, postgres.Classify(fmt.Errorf("fetching unmatched shipments: %w", err))
	}
	defer rows.Close()

	var out []pipeline.Shipment
	for rows.Next() {
		var shipment pipeline.Shipment
		if err := rows.Scan(&shipment.ID, &shipment.ShipperName, &shipment.ShipperCountry); err != nil {
			return nil, postgres.Classify(fmt.Errorf("scanning shipment row: %w", err))
		}
		out = append(out, shipment)
	}
	return out, postgres.Classify(rows.Err())
}

// WriteResult records the resolution outcome and stamps the shipment
// processed. A nil result stores a NULL match_result: the record was
// examined and no entity cleared the threshold.
func (s *ShipmentStore) WriteResult(ctx context.Context, shipmentID int64, result *matcher.MatchResult) error {
	var payload any
	if result != nil {
		encoded, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("encoding match result for shipment %d: %w", shipmentID, err)
		}
		payload = encoded
	}
	_, err := s.client.DB.ExecContext(ctx,
		`UPDATE shipments SET match_result = $2, matched_at = now() WHERE id = $1`,
		shipmentID, payload,
	)
	if err != nil {
		return postgres.Classify(fmt.Errorf("writing result for shipment %d: %w", shipmentID, err))
	}
	return nil
}
