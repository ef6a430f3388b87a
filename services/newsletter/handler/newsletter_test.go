package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/propati/propati/internal/pkg/middleware"
	"github.com/propati/propati/internal/pkg/models"
	"github.com/propati/propati/internal/utils"
	"github.com/propati/propati/services/newsletter/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAPIKeyConfig = models.APIKeyConfig{NotificationKey: "internal-test-key"}

func TestSubscribe_Handler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockNewsletterUC(ctrl)
	h := NewNewsletterHandler(mockUC, testAPIKeyConfig)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/newsletter/subscribe", strings.NewReader(`{"email": "buyer@example.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		Subscribe(gomock.Any(), "buyer@example.com").
		Return(&models.Subscriber{ID: uuid.New(), Email: "buyer@example.com", IsActive: true}, false, nil)

	err := h.Subscribe(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Contains(t, response.Message, "Successfully subscribed")
}

func TestSubscribe_AlreadySubscribed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockNewsletterUC(ctrl)
	h := NewNewsletterHandler(mockUC, testAPIKeyConfig)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/newsletter/subscribe", strings.NewReader(`{"email": "buyer@example.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		Subscribe(gomock.Any(), "buyer@example.com").
		Return(&models.Subscriber{Email: "buyer@example.com", IsActive: true}, true, nil)

	err := h.Subscribe(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Contains(t, response.Message, "already subscribed")
}

func TestSubscribe_InvalidEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockNewsletterUC(ctrl)
	h := NewNewsletterHandler(mockUC, testAPIKeyConfig)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/newsletter/subscribe", strings.NewReader(`{"email": "nope"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		Subscribe(gomock.Any(), "nope").
		Return(nil, false, models.ErrValidation)

	err := h.Subscribe(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendMarketTrends_Handler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockNewsletterUC(ctrl)
	h := NewNewsletterHandler(mockUC, testAPIKeyConfig)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/internal/notifications/market-trends", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		SendMarketTrends(gomock.Any(), gomock.Any()).
		Return(&models.BatchReport{Total: 10, Successful: 7, Failed: 3}, nil)

	err := h.SendMarketTrends(c)

	assert.NoError(t, err)
	// Partial failure still reports 200 with the tallies.
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(10), body["total"])
	assert.Equal(t, float64(7), body["successful"])
	assert.Equal(t, float64(3), body["failed"])
}

func TestSendAgentWelcome_Handler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockNewsletterUC(ctrl)
	h := NewNewsletterHandler(mockUC, testAPIKeyConfig)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/internal/notifications/agent-welcome", strings.NewReader(`{"name": "Ada Obi", "email": "agent@example.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		SendAgentWelcome(gomock.Any(), gomock.Any()).
		Return(&models.EmailResult{ID: "email-9"}, nil)

	err := h.SendAgentWelcome(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSendAgentWelcome_ProviderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockNewsletterUC(ctrl)
	h := NewNewsletterHandler(mockUC, testAPIKeyConfig)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/internal/notifications/agent-welcome", strings.NewReader(`{"name": "Ada Obi", "email": "agent@example.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		SendAgentWelcome(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("failed to send agent welcome email: provider unavailable"))

	err := h.SendAgentWelcome(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var response utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Contains(t, response.Error, "provider unavailable")
}

// Internal notification routes reject callers without the configured key
// before the use case runs.
func TestInternalRoutes_RequireAPIKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockNewsletterUC(ctrl)
	h := NewNewsletterHandler(mockUC, testAPIKeyConfig)

	e := echo.New()
	h.RegisterRoutes(e)

	for _, tc := range []struct {
		name string
		key  string
		want int
	}{
		{name: "Missing Key", key: "", want: http.StatusUnauthorized},
		{name: "Wrong Key", key: "nope", want: http.StatusUnauthorized},
	} {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/internal/notifications/market-trends", strings.NewReader(`{}`))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tc.key != "" {
				req.Header.Set(middleware.APIKeyHeader, tc.key)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestInternalRoutes_ValidAPIKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockNewsletterUC(ctrl)
	h := NewNewsletterHandler(mockUC, testAPIKeyConfig)

	e := echo.New()
	h.RegisterRoutes(e)

	mockUC.EXPECT().
		SendMarketTrends(gomock.Any(), gomock.Any()).
		Return(&models.BatchReport{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/internal/notifications/market-trends", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(middleware.APIKeyHeader, "internal-test-key")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
