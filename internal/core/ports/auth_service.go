package ports

import (
	"context"
	"time"

	"github.com/i-am-Shekinah/alx-workspace-booking-app-backend/internal/core/domain"
)

// SignupInput carries an already-validated signup payload. Normalisation
// (email lowering, name title-casing) is the service's job, not the caller's.
type SignupInput struct {
	Username    string
	Email       string
	Password    string
	FirstName   string
	LastName    string
	Role        string
	Preferences map[string]any
	RememberMe  bool
}

// LoginInput carries an already-validated login payload.
type LoginInput struct {
	Email      string
	Password   string
	RememberMe bool
}

// Session is the outcome of a successful signup or login: the stored user,
// a short-lived access token, and a refresh token with its chosen lifetime.
// The refresh token travels back to the client only via an HTTP-only cookie.
type Session struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
	RefreshTTL   time.Duration
}

type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*Session, error)
	Login(ctx context.Context, in LoginInput) (*Session, error)
	// Refresh mints a new access token for the session the refresh token
	// belongs to. The token must verify and its hash must still be stored.
	Refresh(ctx context.Context, refreshToken string) (string, error)
	// Logout revokes the server-side refresh-token record.
	Logout(ctx context.Context, refreshToken string) error
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}
