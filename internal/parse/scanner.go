package parse

import "strings"

// Scanner walks a string left to right, tracking the byte offset so that
// errors can point at the offending character.
type Scanner struct {
	input string
	pos   int
}

// NewScanner creates a scanner positioned at the start of input.
func NewScanner(input string) *Scanner {
	return &Scanner{input: input}
}

// Input returns the complete text being scanned.
func (s *Scanner) Input() string {
	return s.input
}

// Pos returns the current byte offset.
func (s *Scanner) Pos() int {
	return s.pos
}

// Done returns true when the whole input has been consumed.
func (s *Scanner) Done() bool {
	return s.pos >= len(s.input)
}

// Peek returns the next byte without consuming it, or 0 at end of input.
func (s *Scanner) Peek() byte {
	if s.Done() {
		return 0
	}
	return s.input[s.pos]
}

// Rest returns the unconsumed remainder of the input.
func (s *Scanner) Rest() string {
	return s.input[s.pos:]
}

// Consume advances past lit when the remaining input starts with it.
func (s *Scanner) Consume(lit string) bool {
	if strings.HasPrefix(s.input[s.pos:], lit) {
		s.pos += len(lit)
		return true
	}
	return false
}

// Expect consumes lit or returns an error at the first mismatching byte.
func (s *Scanner) Expect(lit string) error {
	for i := 0; i < len(lit); i++ {
		if s.pos+i >= len(s.input) || s.input[s.pos+i] != lit[i] {
			return Errorf(s.input, s.pos+i, "expected %q", lit)
		}
	}
	s.pos += len(lit)
	return nil
}

// Until consumes and returns the text up to, but excluding, the next sep
// byte or the end of input.
func (s *Scanner) Until(sep byte) string {
	start := s.pos
	for s.pos < len(s.input) && s.input[s.pos] != sep {
		s.pos++
	}
	return s.input[start:s.pos]
}

// Digits consumes a run of ASCII digits.
func (s *Scanner) Digits() string {
	start := s.pos
	for s.pos < len(s.input) && s.input[s.pos] >= '0' && s.input[s.pos] <= '9' {
		s.pos++
	}
	return s.input[start:s.pos]
}

// Errorf creates an error at the current offset.
func (s *Scanner) Errorf(format string, args ...any) *Error {
	return Errorf(s.input, s.pos, format, args...)
}
