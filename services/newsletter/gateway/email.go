package gateway

import (
	"context"
	"fmt"

	"github.com/propati/propati/internal/pkg/models"
)

// SendEmail posts one transactional email to the provider and returns its
// acknowledgement.
func (g *NewsletterGateway) SendEmail(ctx context.Context, msg *models.EmailMessage) (*models.EmailResult, error) {
	var result models.EmailResult
	err := g.client.PostJSON(ctx, "/emails", msg, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to send email: %w", err)
	}
	return &result, nil
}
