package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/propati/propati/internal/pkg/models"
)

// GetSubscriberByEmail fetches the subscription row for an email, nil when
// none exists. The unique constraint on email guarantees at most one row.
func (r *NewsletterRepo) GetSubscriberByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	var subscriber models.Subscriber
	query := `
		SELECT id, email, is_active, subscribed_at, unsubscribed_at
		FROM newsletter_subscribers
		WHERE email = $1
	`

	err := r.db.GetContext(ctx, &subscriber, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subscriber: %w", err)
	}
	return &subscriber, nil
}

// CreateSubscriber inserts a new subscription row.
func (r *NewsletterRepo) CreateSubscriber(ctx context.Context, subscriber *models.Subscriber) error {
	query := `
		INSERT INTO newsletter_subscribers (id, email, is_active, subscribed_at)
		VALUES (:id, :email, :is_active, :subscribed_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, subscriber)
	if err != nil {
		return fmt.Errorf("failed to create subscriber: %w", err)
	}
	return nil
}

// ReactivateSubscriber flips an inactive subscription back on, refreshing the
// subscription timestamp and clearing the unsubscribe marker.
func (r *NewsletterRepo) ReactivateSubscriber(ctx context.Context, email string) error {
	query := `
		UPDATE newsletter_subscribers
		SET is_active = TRUE, subscribed_at = NOW(), unsubscribed_at = NULL
		WHERE email = $1
	`

	_, err := r.db.ExecContext(ctx, query, email)
	if err != nil {
		return fmt.Errorf("failed to reactivate subscriber: %w", err)
	}
	return nil
}

// DeactivateSubscriber flips a subscription off, keeping the row for later
// reactivation.
func (r *NewsletterRepo) DeactivateSubscriber(ctx context.Context, email string) error {
	query := `
		UPDATE newsletter_subscribers
		SET is_active = FALSE, unsubscribed_at = NOW()
		WHERE email = $1
	`

	_, err := r.db.ExecContext(ctx, query, email)
	if err != nil {
		return fmt.Errorf("failed to deactivate subscriber: %w", err)
	}
	return nil
}

// GetActiveSubscribers returns every active subscription, oldest first.
func (r *NewsletterRepo) GetActiveSubscribers(ctx context.Context) ([]models.Subscriber, error) {
	var subscribers []models.Subscriber
	query := `
		SELECT id, email, is_active, subscribed_at, unsubscribed_at
		FROM newsletter_subscribers
		WHERE is_active = TRUE
		ORDER BY subscribed_at
	`

	err := r.db.SelectContext(ctx, &subscribers, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get active subscribers: %w", err)
	}
	return subscribers, nil
}
