package cubesight

import "errors"

// Sentinel errors for the cubesight package.
var (
	// ErrInvalidNotation is returned when a move token cannot be parsed.
	ErrInvalidNotation = errors.New("cubesight: invalid move notation")

	// ErrUnknownColor is returned when a color name has no matching face.
	ErrUnknownColor = errors.New("cubesight: unknown face color")
)
