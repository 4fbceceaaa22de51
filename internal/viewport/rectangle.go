package viewport

import (
	"fmt"
	"strconv"

	"github.com/dshills/sheetview/internal/parse"
	"github.com/dshills/sheetview/internal/reference"
)

// Rectangle is the pixel frame of the viewport: the home cell at its top
// left plus a width and height. Rectangle is an immutable value type.
type Rectangle struct {
	home   reference.Cell
	width  int
	height int
}

// NewRectangle creates a rectangle. The home cell is stored in relative
// form; width and height must be positive.
func NewRectangle(home reference.Cell, width, height int) (Rectangle, error) {
	if width <= 0 {
		return Rectangle{}, fmt.Errorf("width %d: %w", width, ErrInvalidSize)
	}
	if height <= 0 {
		return Rectangle{}, fmt.Errorf("height %d: %w", height, ErrInvalidSize)
	}
	return Rectangle{home: home.ToRelative(), width: width, height: height}, nil
}

// MustRectangle is like NewRectangle but panics on invalid sizes.
func MustRectangle(home reference.Cell, width, height int) Rectangle {
	r, err := NewRectangle(home, width, height)
	if err != nil {
		panic(err)
	}
	return r
}

// Home returns the top-left cell.
func (r Rectangle) Home() reference.Cell {
	return r.home
}

// Width returns the width in pixels.
func (r Rectangle) Width() int {
	return r.width
}

// Height returns the height in pixels.
func (r Rectangle) Height() int {
	return r.height
}

// SetHome returns a copy with a new home cell.
func (r Rectangle) SetHome(home reference.Cell) Rectangle {
	r.home = home.ToRelative()
	return r
}

// SetWidth returns a copy with a new width. Non-positive widths panic.
func (r Rectangle) SetWidth(width int) Rectangle {
	if width <= 0 {
		panic(fmt.Sprintf("viewport: width %d must be positive", width))
	}
	r.width = width
	return r
}

// SetHeight returns a copy with a new height. Non-positive heights panic.
func (r Rectangle) SetHeight(height int) Rectangle {
	if height <= 0 {
		panic(fmt.Sprintf("viewport: height %d must be positive", height))
	}
	r.height = height
	return r
}

// Test returns true when the pixel offset (x, y) lies inside the frame;
// both edges are inclusive.
func (r Rectangle) Test(x, y int) bool {
	return x >= 0 && x <= r.width && y >= 0 && y <= r.height
}

// String returns "home:width:height", e.g. "A1:200:100".
func (r Rectangle) String() string {
	return fmt.Sprintf("%s:%d:%d", r.home, r.width, r.height)
}

// ParseRectangle parses the "home:width:height" text form.
func ParseRectangle(text string) (Rectangle, error) {
	s := parse.NewScanner(text)

	homeText := s.Until(':')
	home, err := reference.ParseCell(homeText)
	if err != nil {
		return Rectangle{}, parse.Remap(err, text, 0)
	}
	if err := s.Expect(":"); err != nil {
		return Rectangle{}, err
	}

	width, err := scanSize(s)
	if err != nil {
		return Rectangle{}, err
	}
	if err := s.Expect(":"); err != nil {
		return Rectangle{}, err
	}
	height, err := scanSize(s)
	if err != nil {
		return Rectangle{}, err
	}
	if !s.Done() {
		return Rectangle{}, s.Errorf("unexpected character")
	}
	return NewRectangle(home, width, height)
}

// scanSize scans a positive decimal pixel count.
func scanSize(s *parse.Scanner) (int, error) {
	start := s.Pos()
	digits := s.Digits()
	if digits == "" {
		return 0, s.Errorf("expected digits")
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return 0, parse.Errorf(s.Input(), start, "size must be a positive number")
	}
	return n, nil
}
