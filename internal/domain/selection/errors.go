package selection

import "errors"

// Sentinel kinds for selection errors.
var (
	// ErrIndexOutOfRange reports a caller-supplied explicit index outside
	// the available entries. It signals caller misuse, not absent data.
	ErrIndexOutOfRange = errors.New("explicit index out of range")
	// ErrUnknownStrategy reports an unrecognized strategy name.
	ErrUnknownStrategy = errors.New("unknown selection strategy")
)
