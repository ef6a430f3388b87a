package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/propati/propati/internal/pkg/middleware"
	"github.com/propati/propati/internal/pkg/models"
	"github.com/propati/propati/internal/utils"
)

// PurchaseCredits handles credit purchase initiation requests
func (h *PaymentHandler) PurchaseCredits(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.PurchaseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	origin := c.Request().Header.Get("Origin")

	resp, err := h.paymentUC.InitiatePurchase(c.Request().Context(), identity, &req, origin)
	if err != nil {
		return paymentError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// VerifyPayment handles payment verification requests
func (h *PaymentHandler) VerifyPayment(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.VerifyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	resp, err := h.paymentUC.VerifyPayment(c.Request().Context(), identity, req.Reference)
	if err != nil {
		return paymentError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// GetBalance returns the caller's current credit balance
func (h *PaymentHandler) GetBalance(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	balance, err := h.paymentUC.Balance(c.Request().Context(), identity.UserID)
	if err != nil {
		return paymentError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"balance": balance})
}

// paymentError maps use case errors to the payment endpoints' plain
// {error} body contract.
func paymentError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrValidation):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, models.ErrUnauthenticated):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
