package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/i-am-Shekinah/alx-workspace-booking-app-backend/internal/core/domain"
	"github.com/i-am-Shekinah/alx-workspace-booking-app-backend/internal/core/ports"
)

// UserHandler serves the authenticated user's own record.
type UserHandler struct {
	authService ports.AuthService
}

func NewUserHandler(authService ports.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// Me returns the caller's user projection.
//
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.authService.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Token outlived the account.
			return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
		}
		return err
	}

	return c.JSON(http.StatusOK, userResponse{User: user})
}
