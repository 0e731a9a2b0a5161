package handler

import "github.com/i-am-Shekinah/alx-workspace-booking-app-backend/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// errorsResponse carries the per-field message list for validation and
// duplicate failures.
type errorsResponse struct {
	Errors []string `json:"errors"`
}

// --- Request / Response types ---

type signupRequest struct {
	Username    string         `json:"username"    validate:"required,min=3,max=30,nowhitespace"`
	Email       string         `json:"email"       validate:"required,email"`
	Password    string         `json:"password"    validate:"required,min=6"`
	FirstName   string         `json:"firstName"   validate:"required"`
	LastName    string         `json:"lastName"    validate:"required"`
	Role        string         `json:"role"        validate:"required,oneof=admin learner employee"`
	Preferences map[string]any `json:"preferences"`
	RememberMe  bool           `json:"rememberMe"`
}

type loginRequest struct {
	Email      string `json:"email"    validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"rememberMe"`
}

type authResponse struct {
	Message     string       `json:"message"`
	User        *domain.User `json:"user,omitempty"`
	AccessToken string       `json:"accessToken,omitempty"`
}

type userResponse struct {
	User *domain.User `json:"user"`
}
