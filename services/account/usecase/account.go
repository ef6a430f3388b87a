package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/propati/propati/internal/pkg/models"
	"github.com/propati/propati/services/account"
	"github.com/propati/propati/services/payment"
	"github.com/sirupsen/logrus"
)

// AccountUC implements the account.AccountUC interface
type AccountUC struct {
	cfg       *models.Config
	repo      account.AccountRepo
	paymentUC payment.PaymentUC
	logger    *logrus.Logger
}

// NewAccountUC creates a new account use case
func NewAccountUC(cfg *models.Config, repo account.AccountRepo, paymentUC payment.PaymentUC, logger *logrus.Logger) account.AccountUC {
	return &AccountUC{
		cfg:       cfg,
		repo:      repo,
		paymentUC: paymentUC,
		logger:    logger,
	}
}

// GetProfile assembles the session surface for a user: the account record,
// the derived agent flag, and the current credit balance.
func (uc *AccountUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	if userID == uuid.Nil {
		return nil, models.ErrUnauthenticated
	}

	user, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	// A balance read failure degrades to zero rather than breaking the
	// session surface.
	balance, err := uc.paymentUC.Balance(ctx, userID)
	if err != nil {
		uc.logger.WithError(err).WithField("user_id", userID).
			Warn("Failed to load credit balance for profile")
		balance = 0
	}

	return &models.Profile{
		User:          *user,
		IsAgent:       user.Role == models.RoleAgent,
		CreditBalance: balance,
	}, nil
}
