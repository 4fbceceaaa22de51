package viewport

import "errors"

// Errors returned for contract violations.
var (
	// ErrInvalidAnchor indicates an anchor that is not legal for the
	// selection variant it is paired with.
	ErrInvalidAnchor = errors.New("invalid anchor for selection")

	// ErrLabelNotAllowed indicates a label where a concrete reference is
	// required.
	ErrLabelNotAllowed = errors.New("label not allowed")

	// ErrInvalidSize indicates a rectangle width or height that is not
	// positive.
	ErrInvalidSize = errors.New("invalid size")

	// ErrInvalidPixels indicates a pixel navigation whose distance is not
	// positive.
	ErrInvalidPixels = errors.New("invalid pixel count")
)
