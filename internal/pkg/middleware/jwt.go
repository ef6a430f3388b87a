package middleware

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/propati/propati/internal/pkg/jwt"
	"github.com/propati/propati/internal/pkg/models"
	"github.com/propati/propati/internal/utils"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Get the Authorization header
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			// Check if the Authorization header has the correct format
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			// Extract the token
			tokenString := parts[1]

			// Validate the token using our JWT package
			claims, err := jwtpkg.ValidateToken(tokenString, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			// Extract user ID, email and role from claims
			userIDStr, ok := (*claims)["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			email, ok := (*claims)["email"]
			if !ok || fmt.Sprintf("%v", email) == "" {
				// An identity without an email cannot transact with the
				// payment processor or receive mail.
				return utils.UnauthorizedResponse(c, "Invalid token: missing email claim")
			}

			role, ok := (*claims)["role"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			// Parse the UUID
			userID, err := uuid.Parse(fmt.Sprintf("%v", userIDStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: user_id is not a valid UUID")
			}

			// Set the identity in the context
			c.Set("user_id", userID)
			c.Set("user_email", fmt.Sprintf("%v", email))
			c.Set("user_role", fmt.Sprintf("%v", role))

			return next(c)
		}
	}
}

// GetIdentity assembles the authenticated identity from the echo context.
// It returns false when the request did not pass the JWT middleware.
func GetIdentity(c echo.Context) (models.Identity, bool) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return models.Identity{}, false
	}
	email, _ := c.Get("user_email").(string)
	role, _ := c.Get("user_role").(string)
	return models.Identity{UserID: userID, Email: email, Role: role}, true
}
