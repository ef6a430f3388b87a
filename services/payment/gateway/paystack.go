package gateway

import (
	"context"
	"fmt"

	"github.com/propati/propati/internal/pkg/models"
)

// InitializeTransaction opens a pending transaction with the processor and
// returns the checkout data.
func (g *PaymentGateway) InitializeTransaction(ctx context.Context, req *models.PaystackInitializeRequest) (*models.PaystackInitializeData, error) {
	var resp models.PaystackInitializeResponse
	err := g.client.PostJSON(ctx, "/transaction/initialize", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize paystack transaction: %w", err)
	}

	if !resp.Status {
		return nil, fmt.Errorf("%w: %s", models.ErrExternalService, resp.Message)
	}

	return &resp.Data, nil
}

// VerifyTransaction confirms a transaction's state with the processor by
// reference.
func (g *PaymentGateway) VerifyTransaction(ctx context.Context, reference string) (*models.PaystackTransactionData, error) {
	var resp models.PaystackVerifyResponse
	endpoint := fmt.Sprintf("/transaction/verify/%s", reference)
	err := g.client.GetJSON(ctx, endpoint, &resp)
	if err != nil {
		return nil, fmt.Errorf("failed to verify paystack transaction: %w", err)
	}

	if !resp.Status {
		return nil, fmt.Errorf("%w: %s", models.ErrExternalService, resp.Message)
	}

	return &resp.Data, nil
}
