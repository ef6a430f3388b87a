package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/propati/propati/internal/pkg/models"
	"github.com/propati/propati/internal/utils"
	"github.com/propati/propati/services/account/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJWTConfig = models.JWTConfig{
	Secret:     "test-secret",
	Expiration: 60,
	Issuer:     "test-issuer",
}

func TestGetProfile_Handler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	h := NewAccountHandler(mockUC, testJWTConfig)

	e := echo.New()
	userID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("user_email", "agent@example.com")
	c.Set("user_role", models.RoleAgent)

	mockUC.EXPECT().
		GetProfile(gomock.Any(), userID).
		Return(&models.Profile{
			User:          models.User{ID: userID, Email: "agent@example.com", Role: models.RoleAgent},
			IsAgent:       true,
			CreditBalance: 75,
		}, nil)

	err := h.GetProfile(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)

	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, data["is_agent"])
	assert.Equal(t, float64(75), data["credit_balance"])
}

func TestGetProfile_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	h := NewAccountHandler(mockUC, testJWTConfig)

	e := echo.New()
	userID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("user_email", "ghost@example.com")
	c.Set("user_role", models.RoleBuyer)

	mockUC.EXPECT().
		GetProfile(gomock.Any(), userID).
		Return(nil, models.ErrNotFound)

	err := h.GetProfile(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAccountRoutes_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	h := NewAccountHandler(mockUC, testJWTConfig)

	e := echo.New()
	h.RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
