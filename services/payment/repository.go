package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/propati/propati/internal/pkg/models"
)

// PaymentRepo defines the interface for credit ledger and pending payment
// storage. The ledger lives in PostgreSQL, pending references in Redis.
type PaymentRepo interface {
	// TransactionExists reports whether a ledger row already carries the
	// external reference.
	TransactionExists(ctx context.Context, reference string) (bool, error)

	// ApplyCreditTransaction inserts the ledger row and updates the running
	// balance in one database transaction. It returns false when the
	// reference was already recorded and nothing was applied.
	ApplyCreditTransaction(ctx context.Context, txn *models.CreditTransaction) (bool, error)

	// GetBalance returns the user's current credit balance.
	GetBalance(ctx context.Context, userID uuid.UUID) (int64, error)

	StorePendingPayment(ctx context.Context, reference string, pending *models.PendingPayment) error
	GetPendingPayment(ctx context.Context, reference string) (*models.PendingPayment, error)
	DeletePendingPayment(ctx context.Context, reference string) error
}
