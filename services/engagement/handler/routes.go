package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/propati/propati/internal/pkg/middleware"
	"github.com/propati/propati/internal/pkg/models"
	"github.com/propati/propati/services/engagement"
)

// EngagementHandler handles HTTP requests for listing engagement
type EngagementHandler struct {
	engagementUC engagement.EngagementUC
	jwtConfig    models.JWTConfig
}

// NewEngagementHandler creates a new engagement handler
func NewEngagementHandler(engagementUC engagement.EngagementUC, jwtConfig models.JWTConfig) *EngagementHandler {
	return &EngagementHandler{
		engagementUC: engagementUC,
		jwtConfig:    jwtConfig,
	}
}

// RegisterRoutes registers the engagement routes
func (h *EngagementHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/listings")
	g.Use(middleware.JWTAuthMiddleware(h.jwtConfig))

	g.POST("/:id/love", h.ToggleLove)
	g.GET("/:id/love", h.GetLoveStatus)
}
