package middleware

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// LoggerMiddleware creates a middleware for request logging
func LoggerMiddleware(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Start timer
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			// Process request
			err := next(c)

			// Stop timer
			latency := time.Since(start)

			// Get status code
			statusCode := c.Response().Status

			// Format URL
			if raw != "" {
				path = path + "?" + raw
			}

			// Get user ID if available
			userID := c.Get("user_id")
			userIDStr := "anonymous"
			if userID != nil {
				userIDStr = fmt.Sprintf("%v", userID)
			}

			// Get request ID from header
			requestID := c.Response().Header().Get("X-Request-ID")

			// Log with appropriate level based on status code
			entry := logger.WithFields(logrus.Fields{
				"status":     statusCode,
				"latency":    latency.String(),
				"client_ip":  c.RealIP(),
				"method":     c.Request().Method,
				"path":       path,
				"user_id":    userIDStr,
				"request_id": requestID,
			})

			if statusCode >= 500 {
				entry.Error("Server error")
			} else if statusCode >= 400 {
				entry.Warn("Client error")
			} else {
				entry.Info("Request processed")
			}

			return err
		}
	}
}
