package snapshot

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"debtwise/internal/engine"
	"debtwise/internal/logger"
)

// snapshotKey is the single redis key holding the portfolio document.
const snapshotKey = "debtwise:portfolio"

// RedisStore keeps the snapshot under one key in redis, for setups where
// the tracker runs on more than one machine.
type RedisStore struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		log:    logger.WithComponent("snapshot-redis"),
	}
}

// Load reads the snapshot key. An absent key starts a fresh portfolio; a
// corrupt value is discarded with a warning. Connection errors propagate
// since they do not mean the data is gone.
func (s *RedisStore) Load(ctx context.Context) (*engine.Portfolio, error) {
	raw, err := s.client.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return engine.NewPortfolio(), nil
		}
		return nil, err
	}

	p, err := decode(raw)
	if err != nil {
		s.log.Warn().
			Err(err).
			Str("key", snapshotKey).
			Msg("Discarding malformed snapshot, starting empty")
		return engine.NewPortfolio(), nil
	}
	return p, nil
}

func (s *RedisStore) Save(ctx context.Context, p *engine.Portfolio) error {
	raw, err := encode(p)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, snapshotKey, raw, 0).Err()
}

// Close releases the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
