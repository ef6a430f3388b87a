package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/propati/propati/internal/pkg/models"
)

// EngagementRepo implements the engagement.EngagementRepo interface backed
// by PostgreSQL.
type EngagementRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewEngagementRepo creates a new engagement repository
func NewEngagementRepo(cfg *models.Config, db *sqlx.DB) *EngagementRepo {
	return &EngagementRepo{
		cfg: cfg,
		db:  db,
	}
}
