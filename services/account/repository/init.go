package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/propati/propati/internal/pkg/models"
)

// AccountRepo implements the account.AccountRepo interface backed by
// PostgreSQL.
type AccountRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewAccountRepo creates a new account repository
func NewAccountRepo(cfg *models.Config, db *sqlx.DB) *AccountRepo {
	return &AccountRepo{
		cfg: cfg,
		db:  db,
	}
}
