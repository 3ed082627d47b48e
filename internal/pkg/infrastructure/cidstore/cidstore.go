package cidstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = 7 * 24 * time.Hour

// Store is a content addressed payload store backed by redis. The key
// is the sha256 of the payload, so identical batches deduplicate to a
// single entry.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func New(ctx context.Context, addr string) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("could not connect to redis at %s: %w", addr, err)
	}

	return &Store{client: client, ttl: defaultTTL}, nil
}

func (s *Store) Store(ctx context.Context, payload []byte) (string, error) {
	cid := ContentID(payload)

	err := s.client.Set(ctx, cid, payload, s.ttl).Err()
	if err != nil {
		return "", fmt.Errorf("could not store payload: %w", err)
	}

	return cid, nil
}

func (s *Store) Get(ctx context.Context, cid string) ([]byte, error) {
	b, err := s.client.Get(ctx, cid).Bytes()
	if err != nil {
		return nil, fmt.Errorf("could not fetch payload %s: %w", cid, err)
	}

	return b, nil
}

func (s *Store) Close() {
	s.client.Close()
}

func ContentID(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
