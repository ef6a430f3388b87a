package gateway

import (
	"context"

	"github.com/propati/propati/internal/pkg/models"
	"github.com/propati/propati/internal/pkg/nsq"
)

// PublishCreditApplied publishes a credit event after a ledger mutation.
func (g *PaymentGateway) PublishCreditApplied(_ context.Context, event *models.CreditEvent) error {
	if g.producer == nil {
		return nil
	}
	return g.producer.Publish(nsq.TopicCreditApplied, event)
}
