package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/propati/propati/internal/pkg/database"
	"github.com/propati/propati/internal/pkg/models"
)

// PaymentRepo implements the payment.PaymentRepo interface backed by
// PostgreSQL for the ledger and Redis for pending references.
type PaymentRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewPaymentRepo creates a new payment repository
func NewPaymentRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *PaymentRepo {
	return &PaymentRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
