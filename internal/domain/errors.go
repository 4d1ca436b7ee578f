package domain

import "errors"

// Sentinel errors shared across services and repositories. The HTTP boundary
// maps each one to a stable status code and error type; nothing in the
// application signals a domain failure any other way.
var (
	// ErrNotFound covers any absent entity: user, event, registration,
	// ticket, comment, or notification.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when creating a user with an email
	// that is already registered.
	ErrDuplicateEmail = errors.New("email already in use")

	// ErrAlreadyRegistered is returned when a live registration already
	// exists for the (user, event) pair, including the case where a
	// concurrent attempt won the uniqueness race.
	ErrAlreadyRegistered = errors.New("already registered for event")

	// ErrInvalidCredentials is returned on login when the email is unknown
	// or the password does not match. The two cases are indistinguishable
	// to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden is returned on role or ownership violations.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidInput is returned for malformed input that slipped past
	// the boundary validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrArtifactWrite is returned when the ticket QR artifact cannot be
	// persisted. The registration transaction is rolled back so no ticket
	// row is left without its artifact.
	ErrArtifactWrite = errors.New("ticket artifact write failed")
)
