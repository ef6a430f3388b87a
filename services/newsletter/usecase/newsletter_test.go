package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/propati/propati/internal/pkg/models"
	"github.com/propati/propati/services/newsletter/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *models.Config {
	return &models.Config{
		Email: models.EmailConfig{
			BaseURL:     "https://api.resend.test",
			APIKey:      "re_test_key",
			FromName:    "Propati",
			FromAddress: "hello@propati.test",
		},
	}
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func setupNewsletterUCTest(t *testing.T) (*mocks.MockNewsletterRepo, *mocks.MockNewsletterGW, *NewsletterUC, func()) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockNewsletterRepo(ctrl)
	mockGW := mocks.NewMockNewsletterGW(ctrl)
	uc := NewNewsletterUC(testConfig(), mockRepo, mockGW, testLogger()).(*NewsletterUC)
	return mockRepo, mockGW, uc, ctrl.Finish
}

func TestSubscribe_NewEmail(t *testing.T) {
	mockRepo, mockGW, uc, finish := setupNewsletterUCTest(t)
	defer finish()

	mockRepo.EXPECT().GetSubscriberByEmail(gomock.Any(), "buyer@example.com").Return(nil, nil)
	mockRepo.EXPECT().CreateSubscriber(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, subscriber *models.Subscriber) error {
			assert.Equal(t, "buyer@example.com", subscriber.Email)
			assert.True(t, subscriber.IsActive)
			assert.NotEqual(t, uuid.Nil, subscriber.ID)
			return nil
		})
	mockGW.EXPECT().SendEmail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *models.EmailMessage) (*models.EmailResult, error) {
			assert.Equal(t, "Propati <hello@propati.test>", msg.From)
			assert.Equal(t, "buyer@example.com", msg.To)
			return &models.EmailResult{ID: "email-1"}, nil
		})
	mockGW.EXPECT().PublishSubscriberEvent(gomock.Any(), gomock.Any()).Return(nil)

	subscriber, already, err := uc.Subscribe(context.Background(), "Buyer@Example.com ")

	require.NoError(t, err)
	assert.False(t, already)
	assert.Equal(t, "buyer@example.com", subscriber.Email)
}

func TestSubscribe_AlreadyActive(t *testing.T) {
	mockRepo, _, uc, finish := setupNewsletterUCTest(t)
	defer finish()

	existing := &models.Subscriber{
		ID:           uuid.New(),
		Email:        "buyer@example.com",
		IsActive:     true,
		SubscribedAt: time.Now().Add(-24 * time.Hour),
	}

	// No create, reactivate, email, or event expectations: an active
	// subscription must have no side effects.
	mockRepo.EXPECT().GetSubscriberByEmail(gomock.Any(), "buyer@example.com").Return(existing, nil)

	subscriber, already, err := uc.Subscribe(context.Background(), "buyer@example.com")

	require.NoError(t, err)
	assert.True(t, already)
	assert.Equal(t, existing.ID, subscriber.ID)
}

func TestSubscribe_ReactivatesInactive(t *testing.T) {
	mockRepo, mockGW, uc, finish := setupNewsletterUCTest(t)
	defer finish()

	unsubscribedAt := time.Now().Add(-time.Hour)
	existing := &models.Subscriber{
		ID:             uuid.New(),
		Email:          "buyer@example.com",
		IsActive:       false,
		SubscribedAt:   time.Now().Add(-48 * time.Hour),
		UnsubscribedAt: &unsubscribedAt,
	}

	mockRepo.EXPECT().GetSubscriberByEmail(gomock.Any(), "buyer@example.com").Return(existing, nil)
	mockRepo.EXPECT().ReactivateSubscriber(gomock.Any(), "buyer@example.com").Return(nil)
	mockGW.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return(&models.EmailResult{ID: "email-2"}, nil)
	mockGW.EXPECT().PublishSubscriberEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.SubscriberEvent) error {
			assert.Equal(t, "resubscribed", event.Action)
			return nil
		})

	subscriber, already, err := uc.Subscribe(context.Background(), "buyer@example.com")

	require.NoError(t, err)
	assert.False(t, already)
	assert.True(t, subscriber.IsActive)
	assert.Nil(t, subscriber.UnsubscribedAt)
}

func TestSubscribe_WelcomeEmailFailureIsNotFatal(t *testing.T) {
	mockRepo, mockGW, uc, finish := setupNewsletterUCTest(t)
	defer finish()

	mockRepo.EXPECT().GetSubscriberByEmail(gomock.Any(), "buyer@example.com").Return(nil, nil)
	mockRepo.EXPECT().CreateSubscriber(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().SendEmail(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("provider unavailable"))
	mockGW.EXPECT().PublishSubscriberEvent(gomock.Any(), gomock.Any()).Return(nil)

	subscriber, already, err := uc.Subscribe(context.Background(), "buyer@example.com")

	require.NoError(t, err)
	assert.False(t, already)
	assert.NotNil(t, subscriber)
}

func TestSubscribe_InvalidEmail(t *testing.T) {
	_, _, uc, finish := setupNewsletterUCTest(t)
	defer finish()

	for _, email := range []string{"", "not-an-email", "missing@tld", "@example.com"} {
		_, _, err := uc.Subscribe(context.Background(), email)
		assert.ErrorIs(t, err, models.ErrValidation, email)
	}
}

func TestUnsubscribe(t *testing.T) {
	mockRepo, _, uc, finish := setupNewsletterUCTest(t)
	defer finish()

	mockRepo.EXPECT().DeactivateSubscriber(gomock.Any(), "buyer@example.com").Return(nil)

	err := uc.Unsubscribe(context.Background(), "Buyer@Example.com")
	assert.NoError(t, err)
}

func TestSendMarketTrends_AllDelivered(t *testing.T) {
	mockRepo, mockGW, uc, finish := setupNewsletterUCTest(t)
	defer finish()

	subscribers := make([]models.Subscriber, 5)
	for i := range subscribers {
		subscribers[i] = models.Subscriber{
			ID:       uuid.New(),
			Email:    uuid.NewString() + "@example.com",
			IsActive: true,
		}
	}

	mockRepo.EXPECT().GetActiveSubscribers(gomock.Any()).Return(subscribers, nil)
	mockGW.EXPECT().SendEmail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *models.EmailMessage) (*models.EmailResult, error) {
			assert.Equal(t, defaultTrendsSubject, msg.Subject)
			assert.Contains(t, msg.HTML, "Propati Market Trends")
			return &models.EmailResult{ID: "email-x"}, nil
		}).Times(5)

	report, err := uc.SendMarketTrends(context.Background(), &models.MarketTrendsRequest{})

	require.NoError(t, err)
	assert.Equal(t, 5, report.Total)
	assert.Equal(t, 5, report.Successful)
	assert.Equal(t, 0, report.Failed)
}

// Partial provider failures are tallied per recipient and never abort the
// batch.
func TestSendMarketTrends_PartialFailure(t *testing.T) {
	mockRepo, mockGW, uc, finish := setupNewsletterUCTest(t)
	defer finish()

	subscribers := make([]models.Subscriber, 10)
	failing := map[string]bool{}
	for i := range subscribers {
		email := uuid.NewString() + "@example.com"
		subscribers[i] = models.Subscriber{ID: uuid.New(), Email: email, IsActive: true}
		if i < 3 {
			failing[email] = true
		}
	}

	mockRepo.EXPECT().GetActiveSubscribers(gomock.Any()).Return(subscribers, nil)
	mockGW.EXPECT().SendEmail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *models.EmailMessage) (*models.EmailResult, error) {
			if failing[msg.To] {
				return nil, errors.New("mailbox rejected")
			}
			return &models.EmailResult{ID: "email-x"}, nil
		}).Times(10)

	report, err := uc.SendMarketTrends(context.Background(), &models.MarketTrendsRequest{
		Subject: "August trends",
		Content: "<p>Prices held steady.</p>",
	})

	require.NoError(t, err)
	assert.Equal(t, 10, report.Total)
	assert.Equal(t, 7, report.Successful)
	assert.Equal(t, 3, report.Failed)
}

func TestSendMarketTrends_NoSubscribers(t *testing.T) {
	mockRepo, _, uc, finish := setupNewsletterUCTest(t)
	defer finish()

	mockRepo.EXPECT().GetActiveSubscribers(gomock.Any()).Return([]models.Subscriber{}, nil)

	report, err := uc.SendMarketTrends(context.Background(), &models.MarketTrendsRequest{})

	require.NoError(t, err)
	assert.Equal(t, 0, report.Total)
	assert.Equal(t, 0, report.Successful)
	assert.Equal(t, 0, report.Failed)
}

func TestSendAgentWelcome(t *testing.T) {
	_, mockGW, uc, finish := setupNewsletterUCTest(t)
	defer finish()

	mockGW.EXPECT().SendEmail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *models.EmailMessage) (*models.EmailResult, error) {
			assert.Equal(t, "agent@example.com", msg.To)
			assert.Contains(t, msg.HTML, "Ada Obi")
			return &models.EmailResult{ID: "email-9"}, nil
		})

	result, err := uc.SendAgentWelcome(context.Background(), &models.AgentWelcomeRequest{
		Name:  "Ada Obi",
		Email: "agent@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "email-9", result.ID)
}

func TestSendAgentWelcome_ProviderFailure(t *testing.T) {
	_, mockGW, uc, finish := setupNewsletterUCTest(t)
	defer finish()

	mockGW.EXPECT().SendEmail(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("provider unavailable"))

	_, err := uc.SendAgentWelcome(context.Background(), &models.AgentWelcomeRequest{
		Name:  "Ada Obi",
		Email: "agent@example.com",
	})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrValidation)
}

func TestSendAgentWelcome_InvalidInput(t *testing.T) {
	_, _, uc, finish := setupNewsletterUCTest(t)
	defer finish()

	_, err := uc.SendAgentWelcome(context.Background(), &models.AgentWelcomeRequest{Email: "agent@example.com"})
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = uc.SendAgentWelcome(context.Background(), &models.AgentWelcomeRequest{Name: "Ada", Email: "bad"})
	assert.ErrorIs(t, err, models.ErrValidation)
}
