// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"passport/internal/delivery/http/response"
	"passport/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the user registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "Username and password are required")
	}

	if _, err := h.uc.Register(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "User registered")
}

// Login handles the user login request and returns the access token.
func (h *AccountHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "Username and password are required")
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, output)
}

// Delete handles the user deletion request. Removing an id that does not
// exist still succeeds; the store reports zero rows removed.
func (h *AccountHandler) Delete(c echo.Context) error {
	var input usecase.DeleteUserInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "Invalid delete input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "userId is required")
	}

	if _, err := h.uc.DeleteUser(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "User deleted")
}

// Me returns the identity claim of the calling token. It is the smallest
// consumer of the token-verifying side of the token service.
func (h *AccountHandler) Me(c echo.Context) error {
	userID, ok := c.Get("userID").(int64)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	return response.JSON(c, http.StatusOK, map[string]int64{"userId": userID})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{"status": "ok"})
}
