package newsletter

import (
	"context"

	"github.com/propati/propati/internal/pkg/models"
)

// NewsletterRepo defines the interface for newsletter data operations
type NewsletterRepo interface {
	// GetSubscriberByEmail returns nil without error when no row exists.
	GetSubscriberByEmail(ctx context.Context, email string) (*models.Subscriber, error)
	CreateSubscriber(ctx context.Context, subscriber *models.Subscriber) error
	ReactivateSubscriber(ctx context.Context, email string) error
	DeactivateSubscriber(ctx context.Context, email string) error
	GetActiveSubscribers(ctx context.Context) ([]models.Subscriber, error)
}
