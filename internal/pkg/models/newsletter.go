package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscriber is a newsletter subscription record, unique per email.
type Subscriber struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	Email          string     `json:"email" db:"email"`
	IsActive       bool       `json:"is_active" db:"is_active"`
	SubscribedAt   time.Time  `json:"subscribed_at" db:"subscribed_at"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at,omitempty" db:"unsubscribed_at"`
}

// SubscribeRequest is the body of a newsletter subscription call.
type SubscribeRequest struct {
	Email string `json:"email"`
}

// MarketTrendsRequest is the body of a bulk market-trends send. Blank fields
// fall back to configured defaults.
type MarketTrendsRequest struct {
	Subject string `json:"subject,omitempty"`
	Content string `json:"content,omitempty"`
}

// BatchReport summarizes a fan-out send: independent per-recipient outcomes,
// never a request failure.
type BatchReport struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// AgentWelcomeRequest is the body of an agent onboarding email send.
type AgentWelcomeRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// EmailMessage is one outbound transactional email.
type EmailMessage struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// EmailResult is the provider acknowledgement for a sent email.
type EmailResult struct {
	ID string `json:"id"`
}

// SubscriberEvent is published to NSQ when a subscription is created or
// reactivated.
type SubscriberEvent struct {
	Email     string    `json:"email"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}
