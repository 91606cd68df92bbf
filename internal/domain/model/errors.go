package model

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrMalformedSource reports a resume value source whose shape does not
	// match the expected structure. It is distinct from a merely empty
	// source, which is a normal, non-exceptional outcome.
	ErrMalformedSource = errors.New("malformed resume value source")
)
