package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RefreshTokenRepository stores refresh tokens for the revocation check in
// the refresh flow. Only the SHA-256 of a token is ever written; the store
// never contains a plaintext refresh token. Keys expire with the token, so
// an entry's presence is proof the session is still live.
//
// Key format: refresh_token:<sha256-hex>
type RefreshTokenRepository struct {
	client *redis.Client
}

func NewRefreshTokenRepository(client *redis.Client) *RefreshTokenRepository {
	return &RefreshTokenRepository{client: client}
}

// Save records the token's hash against its owner with the token's lifetime.
func (r *RefreshTokenRepository) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	if err := r.client.Set(ctx, key(token), userID, ttl).Err(); err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	return nil
}

// Exists reports whether the token's hash is still on record (not revoked,
// not expired).
func (r *RefreshTokenRepository) Exists(ctx context.Context, token string) (bool, error) {
	n, err := r.client.Exists(ctx, key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("check refresh token: %w", err)
	}
	return n > 0, nil
}

// Delete revokes the token. Deleting an unknown token is not an error.
func (r *RefreshTokenRepository) Delete(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, key(token)).Err(); err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}
	return nil
}

func key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "refresh_token:" + hex.EncodeToString(sum[:])
}
