package gateway

import (
	httpclient "github.com/propati/propati/internal/pkg/http"
	"github.com/propati/propati/internal/pkg/models"
	"github.com/propati/propati/internal/pkg/nsq"
)

// PaymentGateway implements the payment.PaymentGW interface: the Paystack
// REST API for money movement and NSQ for credit events.
type PaymentGateway struct {
	client   *httpclient.Client
	producer *nsq.Producer
}

// NewPaymentGateway creates a new payment gateway. The NSQ producer may be
// nil when messaging is disabled; event publication then becomes a no-op.
func NewPaymentGateway(cfg models.PaystackConfig, producer *nsq.Producer) *PaymentGateway {
	return &PaymentGateway{
		client:   httpclient.NewClient(cfg.BaseURL, cfg.SecretKey, 0),
		producer: producer,
	}
}
