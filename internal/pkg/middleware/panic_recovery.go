package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack trace
// and answers with a generic 500 so no fault escapes the request.
func PanicRecoveryMiddleware(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, logger)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, logger *logrus.Logger) {
	stackTrace := string(debug.Stack())

	// Get user ID if available
	userID := "anonymous"
	if uid := c.Get("user_id"); uid != nil {
		userID = fmt.Sprintf("%v", uid)
	}

	requestID := c.Response().Header().Get("X-Request-ID")

	logger.WithFields(logrus.Fields{
		"panic_value": fmt.Sprintf("%v", r),
		"panic_type":  fmt.Sprintf("%T", r),
		"stack_trace": stackTrace,
		"method":      c.Request().Method,
		"path":        c.Request().URL.Path,
		"client_ip":   c.RealIP(),
		"user_id":     userID,
		"request_id":  requestID,
	}).Error("Panic recovered during request processing")

	if !c.Response().Committed {
		err := c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error":      "Internal Server Error",
			"request_id": requestID,
		})
		if err != nil {
			c.String(http.StatusInternalServerError, "Internal Server Error")
		}
	}
}
