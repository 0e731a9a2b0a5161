package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/i-am-Shekinah/alx-workspace-booking-app-backend/internal/core/domain"
)

// AuthEventRepository persists the auth audit trail.
type AuthEventRepository struct {
	pool *pgxpool.Pool
}

func NewAuthEventRepository(pool *pgxpool.Pool) *AuthEventRepository {
	return &AuthEventRepository{pool: pool}
}

func (r *AuthEventRepository) Record(ctx context.Context, event domain.AuthEvent) error {
	// user_id is NULL when the attempt never resolved to an account.
	var userID any
	if event.UserID != "" {
		userID = event.UserID
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO auth_events (id, user_id, email, event_type, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		event.ID, userID, event.Email, event.Type, event.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}
