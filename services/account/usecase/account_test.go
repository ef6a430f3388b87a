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
	accountmocks "github.com/propati/propati/services/account/mocks"
	paymentmocks "github.com/propati/propati/services/payment/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestGetProfile_Agent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := accountmocks.NewMockAccountRepo(ctrl)
	mockPaymentUC := paymentmocks.NewMockPaymentUC(ctrl)
	uc := NewAccountUC(&models.Config{}, mockRepo, mockPaymentUC, testLogger())

	userID := uuid.New()
	user := &models.User{
		ID:        userID,
		Email:     "agent@example.com",
		FullName:  "Ada Obi",
		Role:      models.RoleAgent,
		IsActive:  true,
		CreatedAt: time.Now().Add(-30 * 24 * time.Hour),
	}

	mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).Return(user, nil)
	mockPaymentUC.EXPECT().Balance(gomock.Any(), userID).Return(int64(120), nil)

	profile, err := uc.GetProfile(context.Background(), userID)

	require.NoError(t, err)
	assert.True(t, profile.IsAgent)
	assert.Equal(t, int64(120), profile.CreditBalance)
	assert.Equal(t, "agent@example.com", profile.User.Email)
}

func TestGetProfile_BuyerIsNotAgent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := accountmocks.NewMockAccountRepo(ctrl)
	mockPaymentUC := paymentmocks.NewMockPaymentUC(ctrl)
	uc := NewAccountUC(&models.Config{}, mockRepo, mockPaymentUC, testLogger())

	userID := uuid.New()
	mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, Role: models.RoleBuyer, IsActive: true}, nil)
	mockPaymentUC.EXPECT().Balance(gomock.Any(), userID).Return(int64(0), nil)

	profile, err := uc.GetProfile(context.Background(), userID)

	require.NoError(t, err)
	assert.False(t, profile.IsAgent)
	assert.Equal(t, int64(0), profile.CreditBalance)
}

// A balance read failure must not break the session surface.
func TestGetProfile_BalanceFailureDegradesToZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := accountmocks.NewMockAccountRepo(ctrl)
	mockPaymentUC := paymentmocks.NewMockPaymentUC(ctrl)
	uc := NewAccountUC(&models.Config{}, mockRepo, mockPaymentUC, testLogger())

	userID := uuid.New()
	mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, Role: models.RoleBuyer, IsActive: true}, nil)
	mockPaymentUC.EXPECT().Balance(gomock.Any(), userID).
		Return(int64(0), errors.New("connection refused"))

	profile, err := uc.GetProfile(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, int64(0), profile.CreditBalance)
}

func TestGetProfile_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := accountmocks.NewMockAccountRepo(ctrl)
	mockPaymentUC := paymentmocks.NewMockPaymentUC(ctrl)
	uc := NewAccountUC(&models.Config{}, mockRepo, mockPaymentUC, testLogger())

	userID := uuid.New()
	mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).
		Return(nil, models.ErrNotFound)

	_, err := uc.GetProfile(context.Background(), userID)

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestGetProfile_NilUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := accountmocks.NewMockAccountRepo(ctrl)
	mockPaymentUC := paymentmocks.NewMockPaymentUC(ctrl)
	uc := NewAccountUC(&models.Config{}, mockRepo, mockPaymentUC, testLogger())

	_, err := uc.GetProfile(context.Background(), uuid.Nil)

	assert.ErrorIs(t, err, models.ErrUnauthenticated)
}
