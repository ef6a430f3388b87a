package payment

import (
	"context"

	"github.com/propati/propati/internal/pkg/models"
)

// PaymentGW defines the interface for payment gateway operations: the
// payment processor REST API and the credit event stream.
type PaymentGW interface {
	InitializeTransaction(ctx context.Context, req *models.PaystackInitializeRequest) (*models.PaystackInitializeData, error)
	VerifyTransaction(ctx context.Context, reference string) (*models.PaystackTransactionData, error)
	PublishCreditApplied(ctx context.Context, event *models.CreditEvent) error
}
