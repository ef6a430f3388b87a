package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/propati/propati/internal/pkg/models"
)

// PaymentUC defines the interface for payment use cases
type PaymentUC interface {
	InitiatePurchase(ctx context.Context, identity models.Identity, req *models.PurchaseRequest, origin string) (*models.PurchaseResponse, error)
	VerifyPayment(ctx context.Context, identity models.Identity, reference string) (*models.VerifyResponse, error)
	Balance(ctx context.Context, userID uuid.UUID) (int64, error)
}
