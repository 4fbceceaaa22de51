package viewport

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/sheetview/internal/parse"
	"github.com/dshills/sheetview/internal/reference"
)

func TestNewRectangle(t *testing.T) {
	r, err := NewRectangle(reference.MustParseCell("$C$3"), 200, 100)
	require.NoError(t, err)
	assert.Equal(t, "C3", r.Home().String(), "home is stored relative")
	assert.Equal(t, 200, r.Width())
	assert.Equal(t, 100, r.Height())

	_, err = NewRectangle(reference.MustParseCell("A1"), 0, 100)
	assert.ErrorIs(t, err, ErrInvalidSize)
	_, err = NewRectangle(reference.MustParseCell("A1"), 10, -1)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestRectangleSetters(t *testing.T) {
	r := MustRectangle(reference.MustParseCell("A1"), 200, 100)

	assert.Equal(t, "B$2", reference.MustParseCell("B$2").String())
	assert.Equal(t, "B2", r.SetHome(reference.MustParseCell("B$2")).Home().String())
	assert.Equal(t, 300, r.SetWidth(300).Width())
	assert.Equal(t, 50, r.SetHeight(50).Height())
	assert.Equal(t, 200, r.Width(), "receiver is unchanged")

	assert.Panics(t, func() { r.SetWidth(0) })
	assert.Panics(t, func() { r.SetHeight(-5) })
}

func TestRectangleTest(t *testing.T) {
	r := MustRectangle(reference.MustParseCell("A1"), 200, 100)

	assert.True(t, r.Test(0, 0))
	assert.True(t, r.Test(200, 100))
	assert.True(t, r.Test(100, 50))
	assert.False(t, r.Test(-1, 0))
	assert.False(t, r.Test(201, 0))
	assert.False(t, r.Test(0, 101))
}

func TestRectangleText(t *testing.T) {
	r := MustRectangle(reference.MustParseCell("B7"), 640, 480)
	assert.Equal(t, "B7:640:480", r.String())

	got, err := ParseRectangle(r.String())
	require.NoError(t, err)
	assert.Equal(t, r, got)
}

func TestParseRectangleErrors(t *testing.T) {
	tests := []struct {
		text   string
		offset int
	}{
		{"A0:1:1", 1},
		{"A1", 2},
		{"A1:x:1", 3},
		{"A1:0:1", 3},
		{"A1:5", 4},
		{"A1:5:5px", 6},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := ParseRectangle(tt.text)
			var pe *parse.Error
			require.True(t, errors.As(err, &pe), "%v", err)
			assert.Equal(t, tt.offset, pe.Offset)
			assert.Equal(t, tt.text, pe.Input)
		})
	}
}
