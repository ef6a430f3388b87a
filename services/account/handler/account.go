package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/propati/propati/internal/pkg/middleware"
	"github.com/propati/propati/internal/pkg/models"
	"github.com/propati/propati/internal/utils"
)

// GetProfile returns the caller's profile with derived flags and balance.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	profile, err := h.accountUC.GetProfile(c.Request().Context(), identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUnauthenticated):
			return utils.UnauthorizedResponse(c, err.Error())
		case errors.Is(err, models.ErrNotFound):
			return utils.NotFoundResponse(c, "User not found")
		default:
			return utils.InternalServerErrorResponse(c, err.Error())
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved", profile)
}
