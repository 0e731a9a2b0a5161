package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/i-am-Shekinah/alx-workspace-booking-app-backend/internal/core/domain"
	"github.com/i-am-Shekinah/alx-workspace-booking-app-backend/internal/core/ports"
	"github.com/i-am-Shekinah/alx-workspace-booking-app-backend/internal/pkg/password"
	"github.com/i-am-Shekinah/alx-workspace-booking-app-backend/internal/pkg/token"
)

const (
	refreshTTL         = 24 * time.Hour
	refreshTTLRemember = 30 * 24 * time.Hour
)

// AuthService implements signup, login, token refresh, and logout. It owns
// every protocol invariant: normalisation, duplicate precedence, credential
// uniformity, and the refresh-token lifecycle.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.RefreshTokenRepository
	issuer *token.Issuer
	events ports.AuthEventSink
}

func NewAuthService(users ports.UserRepository, tokens ports.RefreshTokenRepository, issuer *token.Issuer, events ports.AuthEventSink) *AuthService {
	return &AuthService{users: users, tokens: tokens, issuer: issuer, events: events}
}

// Signup registers a new account and opens its first session.
// Email is checked before username so dual conflicts always report the email.
func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (*ports.Session, error) {
	if !domain.ValidRole(in.Role) {
		return nil, fmt.Errorf("signup: unknown role %q", in.Role)
	}

	email := domain.NormalizeEmail(in.Email)

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("signup: check email: %w", err)
	}

	taken, err := s.users.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("signup: check username: %w", err)
	}
	if taken {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Email:        email,
		PasswordHash: hash,
		FirstName:    domain.TitleCase(in.FirstName),
		LastName:     domain.TitleCase(in.LastName),
		Role:         in.Role,
		Preferences:  in.Preferences,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		// Concurrent signups race on the store's uniqueness constraints;
		// the loser surfaces here as a typed violation, not a 500.
		var cv *domain.ConstraintViolation
		if errors.As(err, &cv) {
			if cv.Field == "email" {
				return nil, domain.ErrEmailTaken
			}
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf("signup: create user: %w", err)
	}

	session, err := s.openSession(ctx, created, in.RememberMe)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	s.record(domain.AuthEvent{UserID: created.ID, Email: created.Email, Type: domain.EventSignup})
	return session, nil
}

// Login validates credentials and opens a session. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (*ports.Session, error) {
	email := domain.NormalizeEmail(in.Email)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.record(domain.AuthEvent{Email: email, Type: domain.EventLoginFailed})
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: find user: %w", err)
	}

	if !password.Verify(in.Password, user.PasswordHash) {
		s.record(domain.AuthEvent{UserID: user.ID, Email: email, Type: domain.EventLoginFailed})
		return nil, domain.ErrInvalidCredentials
	}

	session, err := s.openSession(ctx, user, in.RememberMe)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	s.record(domain.AuthEvent{UserID: user.ID, Email: email, Type: domain.EventLogin})
	return session, nil
}

// Refresh mints a new access token. The presented refresh token must carry a
// valid signature, be unexpired, and still have its hash on record (i.e. not
// revoked by logout).
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.issuer.VerifyRefresh(refreshToken)
	if err != nil {
		return "", domain.ErrInvalidRefreshToken
	}

	active, err := s.tokens.Exists(ctx, refreshToken)
	if err != nil {
		return "", fmt.Errorf("refresh: check token: %w", err)
	}
	if !active {
		return "", domain.ErrInvalidRefreshToken
	}

	accessToken, err := s.issuer.IssueAccess(claims.UserID, claims.Role)
	if err != nil {
		return "", fmt.Errorf("refresh: issue access token: %w", err)
	}

	s.record(domain.AuthEvent{UserID: claims.UserID, Type: domain.EventRefresh})
	return accessToken, nil
}

// Logout revokes the refresh token's server-side record so it can never mint
// another access token. The token itself may already be expired or garbage;
// revocation is still attempted on whatever hash it maps to.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if err := s.tokens.Delete(ctx, refreshToken); err != nil {
		return fmt.Errorf("logout: revoke token: %w", err)
	}

	if claims, err := s.issuer.VerifyRefresh(refreshToken); err == nil {
		s.record(domain.AuthEvent{UserID: claims.UserID, Type: domain.EventLogout})
	}
	return nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}
	return user, nil
}

// openSession mints the token pair and persists the refresh token's hash
// with a lifetime matching the token's own expiry.
func (s *AuthService) openSession(ctx context.Context, user *domain.User, rememberMe bool) (*ports.Session, error) {
	accessToken, err := s.issuer.IssueAccess(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	ttl := refreshTTL
	if rememberMe {
		ttl = refreshTTLRemember
	}

	refreshToken, err := s.issuer.IssueRefresh(user.ID, user.Role, ttl)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	if err := s.tokens.Save(ctx, refreshToken, user.ID, ttl); err != nil {
		return nil, fmt.Errorf("save refresh token: %w", err)
	}

	return &ports.Session{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		RefreshTTL:   ttl,
	}, nil
}

func (s *AuthService) record(event domain.AuthEvent) {
	if s.events == nil {
		return
	}
	event.ID = uuid.NewString()
	event.CreatedAt = time.Now().UTC()
	s.events.Enqueue(event)
}
