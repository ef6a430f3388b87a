package engagement

import (
	"context"

	"github.com/google/uuid"
	"github.com/propati/propati/internal/pkg/models"
)

// EngagementUC defines the interface for listing engagement use cases
type EngagementUC interface {
	ToggleLove(ctx context.Context, userID, listingID uuid.UUID) (*models.LoveStatus, error)
	LoveStatus(ctx context.Context, userID, listingID uuid.UUID) (*models.LoveStatus, error)
}
