package domain

import "errors"

var (
	// ErrMissingSourceID indicates the spreadsheet identifier is not configured.
	ErrMissingSourceID = errors.New("missing sheet ID")

	// ErrInvalidCode indicates the entry code does not map to a condition.
	ErrInvalidCode = errors.New("invalid code")

	// ErrMissingCredentials indicates the username or the entry code was left empty.
	ErrMissingCredentials = errors.New("username and code are required")

	// ErrNoSession indicates session-scoped data was requested outside a session.
	ErrNoSession = errors.New("no session")
)
