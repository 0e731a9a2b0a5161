package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/i-am-Shekinah/alx-workspace-booking-app-backend/internal/api/metrics"
	"github.com/i-am-Shekinah/alx-workspace-booking-app-backend/internal/core/domain"
	"github.com/i-am-Shekinah/alx-workspace-booking-app-backend/internal/core/ports"
)

const refreshCookieName = "refreshToken"

// AuthHandler handles HTTP requests for the authentication endpoints.
type AuthHandler struct {
	authService ports.AuthService
	production  bool
	log         zerolog.Logger
}

// NewAuthHandler wires the auth endpoints. production controls the Secure
// attribute on the refresh-token cookie.
func NewAuthHandler(authService ports.AuthService, production bool, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, production: production, log: log}
}

// Signup registers a new account and opens its first session.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Signup details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorsResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorsResponse{Errors: []string{"invalid request payload"}})
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)

	if err := c.Validate(&req); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, errorsResponse{Errors: ve.Messages})
		}
		return c.JSON(http.StatusBadRequest, errorsResponse{Errors: []string{"invalid request payload"}})
	}

	session, err := h.authService.Signup(c.Request().Context(), ports.SignupInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Role:        req.Role,
		Preferences: req.Preferences,
		RememberMe:  req.RememberMe,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			return c.JSON(http.StatusBadRequest, errorsResponse{Errors: []string{"Email is already taken"}})
		case errors.Is(err, domain.ErrUsernameTaken):
			return c.JSON(http.StatusBadRequest, errorsResponse{Errors: []string{"Username is already taken"}})
		}
		h.log.Error().Err(err).Msg("signup failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to create user. An unexpected error occurred"})
	}

	metrics.SignupsTotal.WithLabelValues(session.User.Role).Inc()
	h.setRefreshCookie(c, session.RefreshToken, session.RefreshTTL)

	return c.JSON(http.StatusCreated, authResponse{
		Message:     "User created successfully",
		User:        session.User,
		AccessToken: session.AccessToken,
	})
}

// Login authenticates a user and opens a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorsResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorsResponse{Errors: []string{"invalid request payload"}})
	}

	req.Email = strings.TrimSpace(req.Email)

	if err := c.Validate(&req); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, errorsResponse{Errors: ve.Messages})
		}
		return c.JSON(http.StatusBadRequest, errorsResponse{Errors: []string{"invalid request payload"}})
	}

	session, err := h.authService.Login(c.Request().Context(), ports.LoginInput{
		Email:      req.Email,
		Password:   req.Password,
		RememberMe: req.RememberMe,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			// One message for "no such user" and "wrong password" alike.
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Invalid email or password"})
		}
		h.log.Error().Err(err).Msg("login failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "An unexpected error occurred"})
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.setRefreshCookie(c, session.RefreshToken, session.RefreshTTL)

	return c.JSON(http.StatusOK, authResponse{
		Message:     "Login successful",
		User:        session.User,
		AccessToken: session.AccessToken,
	})
}

// Refresh mints a new access token from the refresh-token cookie.
//
// @Summary      Issue a new access token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	cookie, err := c.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Refresh token not found"})
	}

	accessToken, err := h.authService.Refresh(c.Request().Context(), cookie.Value)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRefreshToken) {
			metrics.TokenRefreshesTotal.WithLabelValues("rejected").Inc()
			return c.JSON(http.StatusForbidden, errorResponse{Error: "Invalid token"})
		}
		h.log.Error().Err(err).Msg("token refresh failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "An unexpected error occurred"})
	}

	metrics.TokenRefreshesTotal.WithLabelValues("issued").Inc()
	return c.JSON(http.StatusOK, authResponse{
		Message:     "A new token has been issued",
		AccessToken: accessToken,
	})
}

// Logout revokes the refresh token and clears its cookie. No access token is
// required: a client with an expired session can still log out.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(refreshCookieName); err == nil && cookie.Value != "" {
		if err := h.authService.Logout(c.Request().Context(), cookie.Value); err != nil {
			// Cookie removal proceeds regardless; the stored hash expires
			// on its own TTL.
			h.log.Error().Err(err).Msg("refresh token revocation failed")
		}
	}

	h.clearRefreshCookie(c)
	return c.JSON(http.StatusOK, authResponse{Message: "Logged out successfully"})
}

// setRefreshCookie delivers the refresh token outside the JSON body. The
// attributes mirror how the token was minted: MaxAge tracks the token TTL
// and Secure is on in production.
func (h *AuthHandler) setRefreshCookie(c echo.Context, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.production,
		SameSite: http.SameSiteStrictMode,
	})
}

// clearRefreshCookie expires the cookie with the same attributes it was set
// with, otherwise browsers keep it.
func (h *AuthHandler) clearRefreshCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.production,
		SameSite: http.SameSiteStrictMode,
	})
}
