package parse

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	err := Errorf("left 10pixels", 8, "expected %q", "px")
	assert.Equal(t, `invalid character 'i' at 8 in "left 10pixels": expected "px"`, err.Error())
	assert.ErrorIs(t, err, ErrSyntax)

	end := Errorf("select cell", 11, "missing reference")
	assert.Equal(t, `unexpected end of input at 11 in "select cell": missing reference`, end.Error())
}

func TestRemap(t *testing.T) {
	inner := Errorf("A0", 1, "row out of range")
	outer := "/home/A0/width/1/height/1"

	err := Remap(inner, outer, 6)
	var pe *Error
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, outer, pe.Input)
	assert.Equal(t, 7, pe.Offset)
	assert.Equal(t, "row out of range", pe.Message)

	assert.NoError(t, Remap(nil, outer, 6))
	other := fmt.Errorf("boom")
	assert.Same(t, other, Remap(other, outer, 6))
}

func TestScanner(t *testing.T) {
	s := NewScanner("down 40px,up")
	assert.Equal(t, byte('d'), s.Peek())
	assert.True(t, s.Consume("down"))
	assert.False(t, s.Consume("up"))
	require.NoError(t, s.Expect(" "))
	assert.Equal(t, "40", s.Digits())
	assert.Equal(t, "px", s.Until(','))
	assert.Equal(t, ",up", s.Rest())
	assert.Equal(t, 9, s.Pos())
	assert.True(t, s.Consume(","))
	assert.Equal(t, "up", s.Until(','))
	assert.True(t, s.Done())
	assert.Equal(t, byte(0), s.Peek())
}

func TestScannerExpectOffset(t *testing.T) {
	s := NewScanner("extend-lift")
	err := s.Expect("extend-left")
	var pe *Error
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 8, pe.Offset)
	assert.Equal(t, 0, s.Pos(), "failed Expect consumes nothing")

	err = NewScanner("ext").Expect("extend")
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 3, pe.Offset)
}
