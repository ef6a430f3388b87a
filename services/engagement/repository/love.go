package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// IsLoved reports whether the user currently loves the listing.
func (r *EngagementRepo) IsLoved(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	var loved bool
	query := `SELECT EXISTS(SELECT 1 FROM listing_loves WHERE user_id = $1 AND listing_id = $2)`

	err := r.db.QueryRowContext(ctx, query, userID, listingID).Scan(&loved)
	if err != nil {
		return false, fmt.Errorf("failed to check love state: %w", err)
	}
	return loved, nil
}

// AddLove records a love for the (user, listing) pair. The composite primary
// key makes a repeated add a no-op rather than an error.
func (r *EngagementRepo) AddLove(ctx context.Context, userID, listingID uuid.UUID) error {
	query := `
		INSERT INTO listing_loves (user_id, listing_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, listing_id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, userID, listingID)
	if err != nil {
		return fmt.Errorf("failed to add love: %w", err)
	}
	return nil
}

// RemoveLove deletes the love for the (user, listing) pair.
func (r *EngagementRepo) RemoveLove(ctx context.Context, userID, listingID uuid.UUID) error {
	query := `DELETE FROM listing_loves WHERE user_id = $1 AND listing_id = $2`

	_, err := r.db.ExecContext(ctx, query, userID, listingID)
	if err != nil {
		return fmt.Errorf("failed to remove love: %w", err)
	}
	return nil
}

// CountLoves returns the live love count for the listing.
func (r *EngagementRepo) CountLoves(ctx context.Context, listingID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM listing_loves WHERE listing_id = $1`

	err := r.db.GetContext(ctx, &count, query, listingID)
	if err != nil {
		return 0, fmt.Errorf("failed to count loves: %w", err)
	}
	return count, nil
}
