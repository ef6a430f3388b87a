package gateway

import (
	httpclient "github.com/propati/propati/internal/pkg/http"
	"github.com/propati/propati/internal/pkg/models"
	"github.com/propati/propati/internal/pkg/nsq"
)

// NewsletterGateway implements the newsletter.NewsletterGW interface: a
// Resend-style REST API for transactional mail and NSQ for subscriber events.
type NewsletterGateway struct {
	client   *httpclient.Client
	producer *nsq.Producer
}

// NewNewsletterGateway creates a new newsletter gateway. The NSQ producer may
// be nil when messaging is disabled; event publication then becomes a no-op.
func NewNewsletterGateway(cfg models.EmailConfig, producer *nsq.Producer) *NewsletterGateway {
	return &NewsletterGateway{
		client:   httpclient.NewClient(cfg.BaseURL, cfg.APIKey, 0),
		producer: producer,
	}
}
