package models

import "github.com/google/uuid"

// PurchaseRequest is the body of a credit purchase initiation.
// Amount is in the major currency unit; the processor is paid in minor units.
type PurchaseRequest struct {
	Credits int     `json:"credits"`
	Amount  float64 `json:"amount"`
}

// PurchaseResponse carries the processor checkout URL and the transaction
// reference that must round-trip to verification.
type PurchaseResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	Reference        string `json:"reference"`
}

// VerifyRequest is the body of a payment verification call.
type VerifyRequest struct {
	Reference string `json:"reference"`
}

// VerifyResponse reports the outcome of a verified payment.
type VerifyResponse struct {
	Success              bool   `json:"success"`
	CreditsAdded         int    `json:"credits_added"`
	TransactionReference string `json:"transaction_reference"`
}

// PendingPayment is the metadata stored when a transaction is initialized,
// keyed by processor reference until verification completes or the TTL lapses.
type PendingPayment struct {
	UserID  uuid.UUID `json:"user_id"`
	Credits int       `json:"credits"`
	Amount  float64   `json:"amount"`
}
