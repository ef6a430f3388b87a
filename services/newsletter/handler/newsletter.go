package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/propati/propati/internal/pkg/models"
	"github.com/propati/propati/internal/utils"
)

// Subscribe handles public newsletter subscription requests.
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var req models.SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	subscriber, already, err := h.newsletterUC.Subscribe(c.Request().Context(), req.Email)
	if err != nil {
		return newsletterError(c, err)
	}

	message := "Successfully subscribed to the newsletter"
	if already {
		message = "You are already subscribed to the newsletter"
	}
	return utils.SuccessResponse(c, http.StatusOK, message, subscriber)
}

// Unsubscribe handles public newsletter unsubscription requests.
func (h *NewsletterHandler) Unsubscribe(c echo.Context) error {
	var req models.SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.newsletterUC.Unsubscribe(c.Request().Context(), req.Email); err != nil {
		return newsletterError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Successfully unsubscribed from the newsletter", nil)
}

// SendMarketTrends triggers the bulk market trends send. The response is 200
// with per-recipient tallies even when some sends fail.
func (h *NewsletterHandler) SendMarketTrends(c echo.Context) error {
	var req models.MarketTrendsRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	report, err := h.newsletterUC.SendMarketTrends(c.Request().Context(), &req)
	if err != nil {
		return newsletterError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "Market trends notifications processed",
		"total":      report.Total,
		"successful": report.Successful,
		"failed":     report.Failed,
	})
}

// SendAgentWelcome sends the agent onboarding email.
func (h *NewsletterHandler) SendAgentWelcome(c echo.Context) error {
	var req models.AgentWelcomeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.newsletterUC.SendAgentWelcome(c.Request().Context(), &req)
	if err != nil {
		return newsletterError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Agent welcome email sent", result)
}

func newsletterError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrValidation):
		return utils.BadRequestResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c, err.Error())
	}
}
