package models

import "errors"

// Sentinel errors used across services. Handlers map these to HTTP status
// codes; everything else surfaces as a 500 with the wrapped message.
var (
	// ErrUnauthenticated indicates a missing or invalid bearer credential,
	// or a resolved identity without an email address.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrValidation indicates malformed or out-of-range input.
	ErrValidation = errors.New("validation failed")

	// ErrExternalService indicates the payment processor or email provider
	// returned a failure.
	ErrExternalService = errors.New("external service error")

	// ErrPersistence indicates a database operation failed.
	ErrPersistence = errors.New("persistence error")

	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")
)
