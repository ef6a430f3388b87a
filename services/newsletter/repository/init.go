package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/propati/propati/internal/pkg/models"
)

// NewsletterRepo implements the newsletter.NewsletterRepo interface backed
// by PostgreSQL.
type NewsletterRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewNewsletterRepo creates a new newsletter repository
func NewNewsletterRepo(cfg *models.Config, db *sqlx.DB) *NewsletterRepo {
	return &NewsletterRepo{
		cfg: cfg,
		db:  db,
	}
}
