package account

import (
	"context"

	"github.com/google/uuid"
	"github.com/propati/propati/internal/pkg/models"
)

// AccountUC defines the interface for account use cases
type AccountUC interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
}
