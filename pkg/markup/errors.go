package markup

import "errors"

var (
	// ErrNilNode is returned when rendering a nil root node.
	ErrNilNode = errors.New("markup: nil node")

	// ErrInvalidTag is returned when an element tag is empty or contains characters
	// outside [a-z0-9].
	ErrInvalidTag = errors.New("markup: invalid tag name")
)
