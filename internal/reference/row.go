package reference

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// MaxRow is the largest zero-based row index.
const MaxRow = excelize.TotalRows - 1

// Row is a zero-based row reference.
type Row struct {
	value    int
	absolute bool
}

// NewRow creates a relative row reference.
func NewRow(value int) (Row, error) {
	if value < 0 || value > MaxRow {
		return Row{}, fmt.Errorf("row %d: %w", value, ErrOutOfRange)
	}
	return Row{value: value}, nil
}

// MustRow is like NewRow but panics on an invalid index.
func MustRow(value int) Row {
	r, err := NewRow(value)
	if err != nil {
		panic(err)
	}
	return r
}

// Value returns the zero-based index.
func (r Row) Value() int {
	return r.value
}

// IsAbsolute returns true for "$1" style references.
func (r Row) IsAbsolute() bool {
	return r.absolute
}

// SetAbsolute returns a copy with the absolute flag set to absolute.
func (r Row) SetAbsolute(absolute bool) Row {
	r.absolute = absolute
	return r
}

// ToRelative returns the relative form of the row.
func (r Row) ToRelative() Row {
	return r.SetAbsolute(false)
}

// IsFirst returns true for row 1.
func (r Row) IsFirst() bool {
	return r.value == 0
}

// IsLast returns true for the last row of the sheet.
func (r Row) IsLast() bool {
	return r.value == MaxRow
}

// Add returns the row delta places away, or false when that would leave
// the sheet.
func (r Row) Add(delta int) (Row, bool) {
	v := r.value + delta
	if v < 0 || v > MaxRow {
		return r, false
	}
	r.value = v
	return r, true
}

// Compare returns -1, 0 or 1 comparing indices; the absolute flag is ignored.
func (r Row) Compare(other Row) int {
	switch {
	case r.value < other.value:
		return -1
	case r.value > other.value:
		return 1
	default:
		return 0
	}
}

// SetColumn combines the row with column into a cell.
func (r Row) SetColumn(column Column) Cell {
	return Cell{column: column, row: r}
}

// Kind implements Selection.
func (Row) Kind() Kind {
	return KindRow
}

// String returns the one-based row number, e.g. "7" or "$7".
func (r Row) String() string {
	s := strconv.Itoa(r.value + 1)
	if r.absolute {
		return "$" + s
	}
	return s
}
