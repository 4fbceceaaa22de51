// Package parse provides the position-carrying syntax error and the small
// text scanner shared by the reference, anchor, navigation and URL fragment
// parsers.
package parse

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrSyntax is matched by every *Error via errors.Is.
var ErrSyntax = errors.New("syntax error")

// Error reports malformed input. Offset is a byte offset into Input; an
// offset equal to len(Input) means the input ended early.
type Error struct {
	// Input is the complete text being parsed.
	Input string
	// Offset is the byte offset of the offending character.
	Offset int
	// Message describes what was expected.
	Message string
}

// Errorf creates an Error at offset within input.
func Errorf(input string, offset int, format string, args ...any) *Error {
	return &Error{
		Input:   input,
		Offset:  offset,
		Message: fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Offset >= 0 && e.Offset < len(e.Input) {
		r, _ := utf8.DecodeRuneInString(e.Input[e.Offset:])
		return fmt.Sprintf("invalid character %q at %d in %q: %s", r, e.Offset, e.Input, e.Message)
	}
	return fmt.Sprintf("unexpected end of input at %d in %q: %s", e.Offset, e.Input, e.Message)
}

// Unwrap returns ErrSyntax.
func (e *Error) Unwrap() error {
	return ErrSyntax
}

// Shift re-bases the error onto outer, where the text that produced e
// started at byte offset base.
func (e *Error) Shift(outer string, base int) *Error {
	return &Error{
		Input:   outer,
		Offset:  e.Offset + base,
		Message: e.Message,
	}
}

// Remap shifts err into outer's coordinate space when it is an *Error and
// returns any other error unchanged.
func Remap(err error, outer string, base int) error {
	if err == nil {
		return nil
	}
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Shift(outer, base)
	}
	return err
}
