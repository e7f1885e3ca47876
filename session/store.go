// Package session provides server-side session storage and the OAuth
// access token lifecycle for signed-in admins.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"catalogo-pro/models"
)

// sessionTTL bounds how long a session record lives without re-login.
const sessionTTL = 30 * 24 * time.Hour

// Store keeps session records in Redis, keyed by opaque session ID.
type Store struct {
	client *redis.Client
	prefix string
}

// NewStore creates a Redis-backed session store.
func NewStore(redisURL string) (*Store, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &Store{
		client: client,
		prefix: "sess:",
	}, nil
}

// NewStoreWithClient creates a store from an existing Redis client.
func NewStoreWithClient(client *redis.Client) *Store {
	return &Store{
		client: client,
		prefix: "sess:",
	}
}

func (s *Store) key(sessionID string) string {
	return s.prefix + sessionID
}

// Save writes a session record, resetting its TTL.
func (s *Store) Save(ctx context.Context, sessionID string, data models.SessionData) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal session data: %w", err)
	}

	if err := s.client.Set(ctx, s.key(sessionID), jsonData, sessionTTL).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

// Lookup retrieves a session record. Missing or expired sessions return
// models.ErrNoSession.
func (s *Store) Lookup(ctx context.Context, sessionID string) (models.SessionData, error) {
	jsonData, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if err == redis.Nil {
		return models.SessionData{}, models.ErrNoSession
	}
	if err != nil {
		return models.SessionData{}, fmt.Errorf("lookup session: %w", err)
	}

	var data models.SessionData
	if err := json.Unmarshal([]byte(jsonData), &data); err != nil {
		return models.SessionData{}, fmt.Errorf("unmarshal session data: %w", err)
	}

	return data, nil
}

// Revoke deletes a session record.
func (s *Store) Revoke(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// Ping checks if Redis is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
