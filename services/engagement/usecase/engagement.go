package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/propati/propati/internal/pkg/models"
	"github.com/propati/propati/services/engagement"
	"github.com/sirupsen/logrus"
)

// EngagementUC implements the engagement.EngagementUC interface
type EngagementUC struct {
	cfg    *models.Config
	repo   engagement.EngagementRepo
	logger *logrus.Logger
}

// NewEngagementUC creates a new engagement use case
func NewEngagementUC(cfg *models.Config, repo engagement.EngagementRepo, logger *logrus.Logger) engagement.EngagementUC {
	return &EngagementUC{
		cfg:    cfg,
		repo:   repo,
		logger: logger,
	}
}

// ToggleLove flips the caller's love state for the listing. The state is
// re-derived from the database on every call, so a stale client toggling
// twice lands back where it started rather than drifting.
func (uc *EngagementUC) ToggleLove(ctx context.Context, userID, listingID uuid.UUID) (*models.LoveStatus, error) {
	if userID == uuid.Nil {
		return nil, models.ErrUnauthenticated
	}
	if listingID == uuid.Nil {
		return nil, fmt.Errorf("%w: listing id is required", models.ErrValidation)
	}

	loved, err := uc.repo.IsLoved(ctx, userID, listingID)
	if err != nil {
		return nil, fmt.Errorf("failed to read love state: %w", err)
	}

	if loved {
		if err := uc.repo.RemoveLove(ctx, userID, listingID); err != nil {
			return nil, fmt.Errorf("failed to remove love: %w", err)
		}
	} else {
		if err := uc.repo.AddLove(ctx, userID, listingID); err != nil {
			return nil, fmt.Errorf("failed to add love: %w", err)
		}
	}

	count, err := uc.repo.CountLoves(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("failed to count loves: %w", err)
	}

	return &models.LoveStatus{
		ListingID: listingID,
		Loved:     !loved,
		Count:     count,
	}, nil
}

// LoveStatus reports the caller's love state and the live count without
// mutating anything.
func (uc *EngagementUC) LoveStatus(ctx context.Context, userID, listingID uuid.UUID) (*models.LoveStatus, error) {
	if listingID == uuid.Nil {
		return nil, fmt.Errorf("%w: listing id is required", models.ErrValidation)
	}

	loved, err := uc.repo.IsLoved(ctx, userID, listingID)
	if err != nil {
		return nil, fmt.Errorf("failed to read love state: %w", err)
	}

	count, err := uc.repo.CountLoves(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("failed to count loves: %w", err)
	}

	return &models.LoveStatus{
		ListingID: listingID,
		Loved:     loved,
		Count:     count,
	}, nil
}
