package newsletter

import (
	"context"

	"github.com/propati/propati/internal/pkg/models"
)

// NewsletterUC defines the interface for newsletter use cases
type NewsletterUC interface {
	// Subscribe upserts a subscription for the email. The bool reports
	// whether the address was already actively subscribed.
	Subscribe(ctx context.Context, email string) (*models.Subscriber, bool, error)
	Unsubscribe(ctx context.Context, email string) error
	SendMarketTrends(ctx context.Context, req *models.MarketTrendsRequest) (*models.BatchReport, error)
	SendAgentWelcome(ctx context.Context, req *models.AgentWelcomeRequest) (*models.EmailResult, error)
}
