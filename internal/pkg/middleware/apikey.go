package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/propati/propati/internal/pkg/models"
	"github.com/propati/propati/internal/utils"
)

const (
	// APIKeyHeader carries the key for privileged internal endpoints.
	APIKeyHeader = "X-API-Key"
)

// ValidateAPIKey middleware guards internal endpoints that hold privileged
// credentials (bulk notification sends, agent onboarding mail).
func ValidateAPIKey(config models.APIKeyConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			if config.NotificationKey == "" ||
				subtle.ConstantTimeCompare([]byte(apiKey), []byte(config.NotificationKey)) != 1 {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}
