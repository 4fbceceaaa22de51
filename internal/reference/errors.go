package reference

import "errors"

// ErrOutOfRange indicates a column or row index outside the sheet limits.
var ErrOutOfRange = errors.New("reference out of range")
