package ports

import (
	"context"
	"time"
)

// RefreshTokenRepository persists refresh-token records for revocation.
// Implementations store only a one-way hash of the token, never the token
// itself, and expire records after ttl.
type RefreshTokenRepository interface {
	Save(ctx context.Context, token, userID string, ttl time.Duration) error
	Exists(ctx context.Context, token string) (bool, error)
	Delete(ctx context.Context, token string) error
}
