package gateway

import (
	"context"

	"github.com/propati/propati/internal/pkg/models"
	"github.com/propati/propati/internal/pkg/nsq"
)

// PublishSubscriberEvent publishes a subscription change event.
func (g *NewsletterGateway) PublishSubscriberEvent(_ context.Context, event *models.SubscriberEvent) error {
	if g.producer == nil {
		return nil
	}
	return g.producer.Publish(nsq.TopicNewsletterSubscribed, event)
}
