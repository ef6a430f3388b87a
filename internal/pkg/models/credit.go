package models

import (
	"time"

	"github.com/google/uuid"
)

// Credit transaction types
const (
	CreditTxPurchase = "purchase"
	CreditTxSpend    = "spend"
	CreditTxBonus    = "bonus"
)

// CreditTransaction is a single row in the append-only credit ledger.
// ExternalReference carries the payment processor reference and is unique,
// so a reference can credit a user at most once.
type CreditTransaction struct {
	ID                uuid.UUID `json:"id" db:"id"`
	UserID            uuid.UUID `json:"user_id" db:"user_id"`
	Amount            int64     `json:"amount" db:"amount"`
	TransactionType   string    `json:"transaction_type" db:"transaction_type"`
	Description       string    `json:"description" db:"description"`
	ExternalReference string    `json:"external_reference" db:"external_reference"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// CreditBalance is the running total maintained alongside the ledger.
type CreditBalance struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Balance   int64     `json:"balance" db:"balance"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreditEvent is published to NSQ after a ledger mutation is committed.
type CreditEvent struct {
	UserID    uuid.UUID `json:"user_id"`
	Amount    int64     `json:"amount"`
	Type      string    `json:"type"`
	Reference string    `json:"reference"`
	Timestamp time.Time `json:"timestamp"`
}
