package pattern

import "errors"

var (
	// ErrInvalidOrder is returned when an order label is not A, B, C or D.
	ErrInvalidOrder = errors.New("pattern: order label must be one of A, B, C, D")

	// ErrParseError is returned by ParseRepr on a malformed pattern string.
	ErrParseError = errors.New("pattern: malformed pattern string representation")
)
