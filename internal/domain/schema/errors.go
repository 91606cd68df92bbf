package schema

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidVersion   = errors.New("invalid schema version")
	ErrUnknownField     = errors.New("unknown canonical field")
	ErrDuplicateVariant = errors.New("variant bound to more than one canonical field")
	ErrInvalidVariant   = errors.New("variant is not in normalized form")
	ErrInvalidWeight    = errors.New("sensitivity weight outside (0, 1]")
)
