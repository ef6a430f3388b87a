package engagement

import (
	"context"

	"github.com/google/uuid"
)

// EngagementRepo defines the interface for engagement data operations
type EngagementRepo interface {
	IsLoved(ctx context.Context, userID, listingID uuid.UUID) (bool, error)
	AddLove(ctx context.Context, userID, listingID uuid.UUID) error
	RemoveLove(ctx context.Context, userID, listingID uuid.UUID) error
	CountLoves(ctx context.Context, listingID uuid.UUID) (int, error)
}
