package reference

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// MaxColumn is the largest zero-based column index (XFD).
const MaxColumn = excelize.MaxColumns - 1

// Column is a zero-based column reference.
type Column struct {
	value    int
	absolute bool
}

// NewColumn creates a relative column reference.
func NewColumn(value int) (Column, error) {
	if value < 0 || value > MaxColumn {
		return Column{}, fmt.Errorf("column %d: %w", value, ErrOutOfRange)
	}
	return Column{value: value}, nil
}

// MustColumn is like NewColumn but panics on an invalid index.
func MustColumn(value int) Column {
	c, err := NewColumn(value)
	if err != nil {
		panic(err)
	}
	return c
}

// Value returns the zero-based index.
func (c Column) Value() int {
	return c.value
}

// IsAbsolute returns true for "$A" style references.
func (c Column) IsAbsolute() bool {
	return c.absolute
}

// SetAbsolute returns a copy with the absolute flag set to absolute.
func (c Column) SetAbsolute(absolute bool) Column {
	c.absolute = absolute
	return c
}

// ToRelative returns the relative form of the column.
func (c Column) ToRelative() Column {
	return c.SetAbsolute(false)
}

// IsFirst returns true for column A.
func (c Column) IsFirst() bool {
	return c.value == 0
}

// IsLast returns true for the last column of the sheet.
func (c Column) IsLast() bool {
	return c.value == MaxColumn
}

// Add returns the column delta places away, or false when that would leave
// the sheet.
func (c Column) Add(delta int) (Column, bool) {
	v := c.value + delta
	if v < 0 || v > MaxColumn {
		return c, false
	}
	c.value = v
	return c, true
}

// Compare returns -1, 0 or 1 comparing indices; the absolute flag is ignored.
func (c Column) Compare(other Column) int {
	switch {
	case c.value < other.value:
		return -1
	case c.value > other.value:
		return 1
	default:
		return 0
	}
}

// SetRow combines the column with row into a cell.
func (c Column) SetRow(row Row) Cell {
	return Cell{column: c, row: row}
}

// Kind implements Selection.
func (Column) Kind() Kind {
	return KindColumn
}

// String returns the column letters, e.g. "AB" or "$AB".
func (c Column) String() string {
	name, err := excelize.ColumnNumberToName(c.value + 1)
	if err != nil {
		name = fmt.Sprintf("#%d", c.value)
	}
	if c.absolute {
		return "$" + name
	}
	return name
}
