package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/propati/propati/internal/pkg/middleware"
	"github.com/propati/propati/internal/pkg/models"
	"github.com/propati/propati/services/account"
)

// AccountHandler handles HTTP requests for account operations
type AccountHandler struct {
	accountUC account.AccountUC
	jwtConfig models.JWTConfig
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountUC account.AccountUC, jwtConfig models.JWTConfig) *AccountHandler {
	return &AccountHandler{
		accountUC: accountUC,
		jwtConfig: jwtConfig,
	}
}

// RegisterRoutes registers the account routes
func (h *AccountHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1")
	g.Use(middleware.JWTAuthMiddleware(h.jwtConfig))

	g.GET("/me", h.GetProfile)
}
