package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/propati/propati/internal/pkg/models"
)

const (
	// keyPendingPayment is the Redis key for a processor reference awaiting
	// verification.
	keyPendingPayment = "payment:pending:%s"

	// pendingPaymentTTL bounds how long an unverified reference is kept.
	pendingPaymentTTL = 24 * time.Hour
)

// StorePendingPayment stores initiation metadata under the processor
// reference until verification completes or the TTL lapses.
func (r *PaymentRepo) StorePendingPayment(ctx context.Context, reference string, pending *models.PendingPayment) error {
	data, err := json.Marshal(pending)
	if err != nil {
		return fmt.Errorf("failed to marshal pending payment: %w", err)
	}

	key := fmt.Sprintf(keyPendingPayment, reference)
	if err := r.redisClient.Set(ctx, key, data, pendingPaymentTTL); err != nil {
		return fmt.Errorf("failed to store pending payment: %w", err)
	}
	return nil
}

// GetPendingPayment retrieves initiation metadata for a reference.
func (r *PaymentRepo) GetPendingPayment(ctx context.Context, reference string) (*models.PendingPayment, error) {
	key := fmt.Sprintf(keyPendingPayment, reference)
	val, err := r.redisClient.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending payment: %w", err)
	}

	var pending models.PendingPayment
	if err := json.Unmarshal([]byte(val), &pending); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pending payment: %w", err)
	}
	return &pending, nil
}

// DeletePendingPayment removes the pending entry once the reference has been
// credited.
func (r *PaymentRepo) DeletePendingPayment(ctx context.Context, reference string) error {
	key := fmt.Sprintf(keyPendingPayment, reference)
	return r.redisClient.Delete(ctx, key)
}
