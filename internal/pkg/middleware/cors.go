package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CORSMiddleware allows cross-origin browser calls from any origin. An
// OPTIONS preflight short-circuits with an empty 200 before auth or routing
// logic runs.
func CORSMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("Access-Control-Allow-Origin", "*")
			h.Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type, x-api-key")
			h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")

			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusOK)
			}

			return next(c)
		}
	}
}
