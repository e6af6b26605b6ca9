package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedPrefix = "revoked:"

// Store keeps revoked tokens in redis until their natural expiry.
// Logout writes the token here; the auth middleware rejects anything found.
type Store struct {
	client *redis.Client
}

// NewStore connects to redis and verifies the connection
func NewStore(host string, port int, password string, db int) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Store{client: client}, nil
}

// Revoke marks a token as revoked until ttl elapses
func (s *Store) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, revokedPrefix+fingerprint(token), "1", ttl).Err()
}

// IsRevoked reports whether a token has been revoked
func (s *Store) IsRevoked(ctx context.Context, token string) (bool, error) {
	err := s.client.Get(ctx, revokedPrefix+fingerprint(token)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Close releases the underlying redis connection
func (s *Store) Close() error {
	return s.client.Close()
}

// fingerprint avoids storing raw tokens in redis
func fingerprint(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
