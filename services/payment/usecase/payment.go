package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/propati/propati/internal/pkg/metrics"
	"github.com/propati/propati/internal/pkg/models"
	"github.com/propati/propati/services/payment"
	"github.com/sirupsen/logrus"
)

// PaymentUC implements the payment.PaymentUC interface
type PaymentUC struct {
	cfg    *models.Config
	repo   payment.PaymentRepo
	gw     payment.PaymentGW
	logger *logrus.Logger
}

// NewPaymentUC creates a new payment use case
func NewPaymentUC(cfg *models.Config, repo payment.PaymentRepo, gw payment.PaymentGW, logger *logrus.Logger) payment.PaymentUC {
	return &PaymentUC{
		cfg:    cfg,
		repo:   repo,
		gw:     gw,
		logger: logger,
	}
}

// InitiatePurchase opens a pending transaction with the payment processor
// and returns the checkout URL. Nothing is persisted in the ledger here; the
// credit is applied only after verification.
func (uc *PaymentUC) InitiatePurchase(ctx context.Context, identity models.Identity, req *models.PurchaseRequest, origin string) (*models.PurchaseResponse, error) {
	if identity.UserID == uuid.Nil || identity.Email == "" {
		return nil, models.ErrUnauthenticated
	}
	if req.Credits <= 0 {
		return nil, fmt.Errorf("%w: credits must be a positive integer", models.ErrValidation)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", models.ErrValidation)
	}

	if origin == "" {
		origin = uc.cfg.App.BaseURL
	}

	description := fmt.Sprintf("Purchase of %d credits", req.Credits)

	// The processor bills in the minor currency unit.
	initReq := &models.PaystackInitializeRequest{
		Email:       identity.Email,
		Amount:      int64(math.Round(req.Amount * 100)),
		Currency:    uc.cfg.Paystack.Currency,
		CallbackURL: origin + "/payment/success",
		Metadata: models.PaystackMetadata{
			UserID:       identity.UserID.String(),
			Credits:      req.Credits,
			Description:  description,
			CancelAction: origin + "/payment/cancelled",
		},
	}

	data, err := uc.gw.InitializeTransaction(ctx, initReq)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize transaction: %w", err)
	}

	// Pending metadata is advisory; verification reads the authoritative
	// copy back from the processor.
	pending := &models.PendingPayment{
		UserID:  identity.UserID,
		Credits: req.Credits,
		Amount:  req.Amount,
	}
	if err := uc.repo.StorePendingPayment(ctx, data.Reference, pending); err != nil {
		uc.logger.WithError(err).WithField("reference", data.Reference).
			Warn("Failed to store pending payment")
	}

	metrics.PaymentsInitiated.Inc()

	return &models.PurchaseResponse{
		AuthorizationURL: data.AuthorizationURL,
		Reference:        data.Reference,
	}, nil
}

// VerifyPayment confirms the transaction with the processor and applies the
// credit ledger mutation. Re-invoking with an already-credited reference is a
// no-op that still reports success.
func (uc *PaymentUC) VerifyPayment(ctx context.Context, identity models.Identity, reference string) (*models.VerifyResponse, error) {
	if identity.UserID == uuid.Nil {
		return nil, models.ErrUnauthenticated
	}
	if reference == "" {
		return nil, fmt.Errorf("%w: reference is required", models.ErrValidation)
	}

	data, err := uc.gw.VerifyTransaction(ctx, reference)
	if err != nil {
		metrics.PaymentsVerified.WithLabelValues(metrics.OutcomeFailed).Inc()
		return nil, fmt.Errorf("payment verification failed: %w", err)
	}

	if data.Status != "success" {
		metrics.PaymentsVerified.WithLabelValues(metrics.OutcomeFailed).Inc()
		return nil, fmt.Errorf("%w: transaction status is %q", models.ErrExternalService, data.Status)
	}

	if data.Metadata.Credits <= 0 {
		return nil, fmt.Errorf("%w: transaction metadata carries no credits", models.ErrExternalService)
	}
	if data.Metadata.UserID != "" && data.Metadata.UserID != identity.UserID.String() {
		return nil, fmt.Errorf("%w: transaction does not belong to caller", models.ErrExternalService)
	}

	// A reference credits the ledger at most once. The existence check
	// catches replays; the unique constraint inside ApplyCreditTransaction
	// closes the race between concurrent verifications.
	exists, err := uc.repo.TransactionExists(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("failed to check transaction reference: %w", err)
	}
	if exists {
		metrics.PaymentsVerified.WithLabelValues(metrics.OutcomeReplayed).Inc()
		uc.logger.WithField("reference", reference).Info("Reference already credited, skipping")
		return &models.VerifyResponse{
			Success:              true,
			CreditsAdded:         data.Metadata.Credits,
			TransactionReference: reference,
		}, nil
	}

	description := data.Metadata.Description
	if description == "" {
		description = fmt.Sprintf("Purchase of %d credits", data.Metadata.Credits)
	}

	txn := &models.CreditTransaction{
		ID:                uuid.New(),
		UserID:            identity.UserID,
		Amount:            int64(data.Metadata.Credits),
		TransactionType:   models.CreditTxPurchase,
		Description:       description,
		ExternalReference: reference,
		CreatedAt:         time.Now(),
	}

	applied, err := uc.repo.ApplyCreditTransaction(ctx, txn)
	if err != nil {
		metrics.PaymentsVerified.WithLabelValues(metrics.OutcomeFailed).Inc()
		return nil, fmt.Errorf("failed to update credits: %w", err)
	}

	if applied {
		metrics.PaymentsVerified.WithLabelValues(metrics.OutcomeSuccess).Inc()
		metrics.CreditsApplied.Add(float64(data.Metadata.Credits))

		// Event publication and pending cleanup are best-effort.
		event := &models.CreditEvent{
			UserID:    identity.UserID,
			Amount:    txn.Amount,
			Type:      txn.TransactionType,
			Reference: reference,
			Timestamp: time.Now().UTC(),
		}
		if err := uc.gw.PublishCreditApplied(ctx, event); err != nil {
			uc.logger.WithError(err).Warn("Failed to publish credit event")
		}
		if err := uc.repo.DeletePendingPayment(ctx, reference); err != nil {
			uc.logger.WithError(err).WithField("reference", reference).
				Warn("Failed to delete pending payment")
		}
	} else {
		metrics.PaymentsVerified.WithLabelValues(metrics.OutcomeReplayed).Inc()
	}

	return &models.VerifyResponse{
		Success:              true,
		CreditsAdded:         data.Metadata.Credits,
		TransactionReference: reference,
	}, nil
}

// Balance returns the user's current credit balance.
func (uc *PaymentUC) Balance(ctx context.Context, userID uuid.UUID) (int64, error) {
	balance, err := uc.repo.GetBalance(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get credit balance: %w", err)
	}
	return balance, nil
}
