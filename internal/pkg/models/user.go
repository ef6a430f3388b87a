package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleBuyer = "buyer"
	RoleAgent = "agent"
)

// User represents a marketplace account. Identity lifecycle is owned by the
// external auth platform; this table mirrors the fields the API reads.
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	FullName  string    `json:"fullname" db:"fullname"`
	Role      string    `json:"role" db:"role"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Identity is the authenticated caller resolved from the bearer token.
type Identity struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
}

// IsAgent reports whether the identity belongs to a listing agent.
func (i Identity) IsAgent() bool {
	return i.Role == RoleAgent
}

// Profile is the session surface returned to the client: the user record
// plus derived flags and the current credit balance.
type Profile struct {
	User          User  `json:"user"`
	IsAgent       bool  `json:"is_agent"`
	CreditBalance int64 `json:"credit_balance"`
}
