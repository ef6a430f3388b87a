package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/propati/propati/internal/pkg/middleware"
	"github.com/propati/propati/internal/pkg/models"
	"github.com/propati/propati/services/newsletter"
)

// NewsletterHandler handles HTTP requests for newsletter and notification
// operations
type NewsletterHandler struct {
	newsletterUC newsletter.NewsletterUC
	apiKeyConfig models.APIKeyConfig
}

// NewNewsletterHandler creates a new newsletter handler
func NewNewsletterHandler(newsletterUC newsletter.NewsletterUC, apiKeyConfig models.APIKeyConfig) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterUC: newsletterUC,
		apiKeyConfig: apiKeyConfig,
	}
}

// RegisterRoutes registers the public newsletter routes and the API-key
// guarded internal notification routes.
func (h *NewsletterHandler) RegisterRoutes(e *echo.Echo) {
	public := e.Group("/api/v1/newsletter")
	public.POST("/subscribe", h.Subscribe)
	public.POST("/unsubscribe", h.Unsubscribe)

	internal := e.Group("/internal/notifications")
	internal.Use(middleware.ValidateAPIKey(h.apiKeyConfig))
	internal.POST("/market-trends", h.SendMarketTrends)
	internal.POST("/agent-welcome", h.SendAgentWelcome)
}
