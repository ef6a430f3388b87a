package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/propati/propati/internal/pkg/middleware"
	"github.com/propati/propati/internal/pkg/models"
	"github.com/propati/propati/services/payment"
)

// PaymentHandler handles HTTP requests for payment operations
type PaymentHandler struct {
	paymentUC payment.PaymentUC
	jwtConfig models.JWTConfig
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payment.PaymentUC, jwtConfig models.JWTConfig) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
		jwtConfig: jwtConfig,
	}
}

// RegisterRoutes registers the payment routes
func (h *PaymentHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/payments")
	g.Use(middleware.JWTAuthMiddleware(h.jwtConfig))

	g.POST("/purchase", h.PurchaseCredits)
	g.POST("/verify", h.VerifyPayment)
	g.GET("/balance", h.GetBalance)
}
