package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/propati/propati/internal/pkg/middleware"
	"github.com/propati/propati/internal/pkg/models"
	"github.com/propati/propati/internal/utils"
)

// ToggleLove flips the caller's love state for a listing and returns the new
// state together with the live count.
func (h *EngagementHandler) ToggleLove(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid listing id")
	}

	status, err := h.engagementUC.ToggleLove(c.Request().Context(), identity.UserID, listingID)
	if err != nil {
		return engagementError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Love state updated", status)
}

// GetLoveStatus reports the caller's love state and the live count for a
// listing without changing anything.
func (h *EngagementHandler) GetLoveStatus(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid listing id")
	}

	status, err := h.engagementUC.LoveStatus(c.Request().Context(), identity.UserID, listingID)
	if err != nil {
		return engagementError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Love state retrieved", status)
}

func engagementError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrValidation):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, models.ErrUnauthenticated):
		return utils.UnauthorizedResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c, err.Error())
	}
}
