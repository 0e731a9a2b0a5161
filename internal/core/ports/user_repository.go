package ports

import (
	"context"

	"github.com/i-am-Shekinah/alx-workspace-booking-app-backend/internal/core/domain"
)

// UserRepository defines the interface for user persistence. Implementations
// enforce uniqueness on email (case-insensitive) and username, reporting
// violations as *domain.ConstraintViolation.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
