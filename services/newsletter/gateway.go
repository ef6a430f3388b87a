package newsletter

import (
	"context"

	"github.com/propati/propati/internal/pkg/models"
)

// NewsletterGW defines the interface for newsletter external integrations
type NewsletterGW interface {
	SendEmail(ctx context.Context, msg *models.EmailMessage) (*models.EmailResult, error)
	PublishSubscriberEvent(ctx context.Context, event *models.SubscriberEvent) error
}
