package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Arithmetic errors
	ErrMsgDomainFault = "undefined arithmetic"

	// Lookup errors
	ErrMsgUnknownTrack = "unknown upgrade track"
	ErrMsgUnknownTier  = "unknown bite tier"
	ErrMsgUnknownCrate = "unknown crate"
)

// Common domain errors
// Every formula failure wraps exactly one of ErrInvalidInput or ErrDomainFault.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrInvalidInput means an argument was missing, non-numeric, zero, or negative.
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// ErrDomainFault means validated inputs still hit an undefined operation
	// (zero denominator, negative discriminant, non-finite result).
	ErrDomainFault = errors.New(ErrMsgDomainFault)
)
