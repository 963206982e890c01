// Package checkpoint persists per-phase resume values in Redis. Values are
// written without expiry: a checkpoint must outlive any gap between runs,
// and its absence is what authorizes a destructive fresh start.
package checkpoint

import (
	"context"
	"fmt"

	"github.com/tradeverifyd/entity-resolution/pkg/config"
	"github.com/tradeverifyd/entity-resolution/pkg/errors"
	"github.com/tradeverifyd/entity-resolution/pkg/redis"
)

// Store implements index.CheckpointStore on Redis.
type Store struct {
	client *redis.Client
	prefix string
}

func NewStore(client *redis.Client, cfg config.RedisConfig) *Store {
	return &Store{client: client, prefix: cfg.KeyPrefix}
}

func (s *Store) key(phase string) string {
	return fmt.Sprintf("%s:checkpoint:%s", s.prefix, phase)
}

// Load returns the phase's resume value. ok is false when no checkpoint
// exists, which is a normal fresh-start condition, not an error.
func (s *Store) Load(ctx context.Context, phase string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.key(phase))
	if err != nil {
		if redis.IsNilError(err) {
			return "", false, nil
		}
		return "", false, errors.Transient(fmt.Errorf("loading %s checkpoint: %w", phase, err))
	}
	return value, true, nil
}

// Save durably records the phase's resume value.
func (s *Store) Save(ctx context.Context, phase string, value string) error {
	if err := s.client.Set(ctx, s.key(phase), value, 0); err != nil {
		return errors.Transient(fmt.Errorf("saving %s checkpoint: %w", phase, err))
	}
	return nil
}

// Clear removes the phase's checkpoint, forcing the next run to start
// fresh. Clearing a missing key is a no-op.
func (s *Store) Clear(ctx context.Context, phase string) error {
	if err := s.client.Del(ctx, s.key(phase)); err != nil {
		return errors.Transient(fmt.Errorf("clearing %s checkpoint: %w", phase, err))
	}
	return nil
}
