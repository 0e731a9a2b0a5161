package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/i-am-Shekinah/alx-workspace-booking-app-backend/internal/core/domain"
)

func TestUserHandler_Me(t *testing.T) {
	stub := &stubAuthService{
		userFn: func(ctx context.Context, userID string) (*domain.User, error) {
			if userID != "user-1" {
				t.Fatalf("unexpected userID: %q", userID)
			}
			return &domain.User{ID: "user-1", Username: "Johnny", Role: "learner"}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/users/me", "")
	c.Set("userId", "user-1")

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["username"] != "Johnny" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_Me_MissingClaims(t *testing.T) {
	stub := &stubAuthService{
		userFn: func(ctx context.Context, userID string) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/api/users/me", "")

	err := h.Me(c)
	if err == nil {
		t.Fatalf("expected error without claims")
	}
}
