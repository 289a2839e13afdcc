package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"skillconnect/models"

	"github.com/go-redis/redis/v8"
)

const (
	identityKeySuffix = ":identity"
	tokenKeySuffix    = ":token"
)

// SessionKeyPrefix namespaces the client's credential keys in Redis.
const SessionKeyPrefix = "skillconnect:session"

// RedisStore persists credentials in Redis, for deployments where the client
// runs headless and shares session state across restarts or hosts.
type RedisStore struct {
	client  *redis.Client
	prefix  string
	timeout time.Duration
}

// NewRedisStore creates a RedisStore on the given client. An empty prefix
// falls back to SessionKeyPrefix.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = SessionKeyPrefix
	}
	return &RedisStore{client: client, prefix: prefix, timeout: 2 * time.Second}
}

func (s *RedisStore) LoadIdentity() (*models.Identity, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	data, err := s.client.Get(ctx, s.prefix+identityKeySuffix).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load identity: %w", err)
	}
	var identity models.Identity
	if err := json.Unmarshal([]byte(data), &identity); err != nil {
		return nil, fmt.Errorf("failed to unmarshal identity: %w", err)
	}
	return &identity, nil
}

func (s *RedisStore) LoadToken() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	token, err := s.client.Get(ctx, s.prefix+tokenKeySuffix).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load token: %w", err)
	}
	return token, nil
}

func (s *RedisStore) Save(identity models.Identity, token string) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to marshal identity: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	// Both entries in one round trip so a load never pairs a fresh token with
	// a stale identity.
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.prefix+tokenKeySuffix, token, 0)
	pipe.Set(ctx, s.prefix+identityKeySuffix, data, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.client.Del(ctx, s.prefix+identityKeySuffix, s.prefix+tokenKeySuffix).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
