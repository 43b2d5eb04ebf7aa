package domain

import "github.com/rotisserie/eris"

// Error classes. Services wrap these with eris so handlers can map a failure
// to a response with errors.Is while keeping the full wrap chain for logs.
var (
	// ErrInvalidInput covers unknown climate categories, budgets below the
	// minimum and malformed request fields.
	ErrInvalidInput = eris.New("invalid input")

	// ErrScoring covers model invocation failures, row-count mismatches and
	// degenerate zero-price candidates. It aborts the whole request.
	ErrScoring = eris.New("scoring failed")

	// ErrTransport covers email and telephony delivery failures. Non-fatal
	// to a saved booking.
	ErrTransport = eris.New("transport failed")

	// ErrOTP covers missing, expired or mismatched verification codes.
	ErrOTP = eris.New("otp verification failed")
)
