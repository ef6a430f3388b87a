package account

import (
	"context"

	"github.com/google/uuid"
	"github.com/propati/propati/internal/pkg/models"
)

// AccountRepo defines the interface for account data operations
type AccountRepo interface {
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
}
