package models

// PaystackMetadata round-trips unchanged from initialization to verification.
// Credits are read back from here when the payment is confirmed.
type PaystackMetadata struct {
	UserID       string `json:"user_id"`
	Credits      int    `json:"credits"`
	Description  string `json:"description"`
	CancelAction string `json:"cancel_action,omitempty"`
}

// PaystackInitializeRequest is the body of POST /transaction/initialize.
// Amount is in the minor currency unit.
type PaystackInitializeRequest struct {
	Email       string           `json:"email"`
	Amount      int64            `json:"amount"`
	Currency    string           `json:"currency"`
	CallbackURL string           `json:"callback_url"`
	Metadata    PaystackMetadata `json:"metadata"`
}

// PaystackInitializeData is the payload of a successful initialization.
type PaystackInitializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// PaystackInitializeResponse is the envelope returned by initialize.
type PaystackInitializeResponse struct {
	Status  bool                   `json:"status"`
	Message string                 `json:"message"`
	Data    PaystackInitializeData `json:"data"`
}

// PaystackTransactionData is the transaction payload returned by verify.
type PaystackTransactionData struct {
	Status    string           `json:"status"`
	Reference string           `json:"reference"`
	Amount    int64            `json:"amount"`
	Currency  string           `json:"currency"`
	PaidAt    string           `json:"paid_at"`
	Metadata  PaystackMetadata `json:"metadata"`
}

// PaystackVerifyResponse is the envelope returned by verify.
type PaystackVerifyResponse struct {
	Status  bool                    `json:"status"`
	Message string                  `json:"message"`
	Data    PaystackTransactionData `json:"data"`
}
