package viewport

import (
	"fmt"
	"strings"

	"github.com/dshills/sheetview/internal/reference"
)

// Context supplies the sheet geometry navigation depends on. It must be
// synchronous and free of side effects, and must return consistent answers
// for the duration of a single Update call.
type Context interface {
	// IsColumnHidden reports whether column is hidden.
	IsColumnHidden(column reference.Column) bool
	// IsRowHidden reports whether row is hidden.
	IsRowHidden(row reference.Row) bool

	// ColumnWidth returns the width of column in pixels.
	ColumnWidth(column reference.Column) int
	// RowHeight returns the height of row in pixels.
	RowHeight(row reference.Row) int

	// MoveLeft returns the nearest visible column left of column. At the
	// sheet boundary a visible start is returned unchanged. False means the
	// start and every column toward the boundary are hidden.
	MoveLeft(column reference.Column) (reference.Column, bool)
	// MoveRight mirrors MoveLeft toward the last column.
	MoveRight(column reference.Column) (reference.Column, bool)
	// MoveUp mirrors MoveLeft for rows toward row 1.
	MoveUp(row reference.Row) (reference.Row, bool)
	// MoveDown mirrors MoveLeft for rows toward the last row.
	MoveDown(row reference.Row) (reference.Row, bool)

	// LeftPixels walks left from column spending pixels. Hidden columns
	// are free; each visible column landed on costs its width; the walk
	// stops on the column that drives the budget negative or at the
	// boundary. Negative pixel counts panic.
	LeftPixels(column reference.Column, pixels int) (reference.Column, bool)
	// RightPixels mirrors LeftPixels toward the last column.
	RightPixels(column reference.Column, pixels int) (reference.Column, bool)
	// UpPixels mirrors LeftPixels for rows toward row 1.
	UpPixels(row reference.Row, pixels int) (reference.Row, bool)
	// DownPixels mirrors LeftPixels for rows toward the last row.
	DownPixels(row reference.Row, pixels int) (reference.Row, bool)

	// Windows returns the cell spans rendered for rectangle, including
	// frozen columns and rows when includeFrozenColumnsRows is true.
	Windows(rectangle Rectangle, includeFrozenColumnsRows bool) Windows
}

// Windows is the set of cell ranges currently rendered.
type Windows struct {
	ranges []reference.CellRange
}

// NewWindows creates a window set from ranges.
func NewWindows(ranges ...reference.CellRange) Windows {
	return Windows{ranges: append([]reference.CellRange(nil), ranges...)}
}

// Ranges returns a copy of the ranges.
func (w Windows) Ranges() []reference.CellRange {
	return append([]reference.CellRange(nil), w.ranges...)
}

// IsEmpty returns true when nothing is rendered.
func (w Windows) IsEmpty() bool {
	return len(w.ranges) == 0
}

// ContainsCell returns true if any window contains cell.
func (w Windows) ContainsCell(cell reference.Cell) bool {
	for _, r := range w.ranges {
		if r.Contains(cell) {
			return true
		}
	}
	return false
}

// ContainsColumn returns true if any window spans column.
func (w Windows) ContainsColumn(column reference.Column) bool {
	for _, r := range w.ranges {
		if r.Columns().Contains(column) {
			return true
		}
	}
	return false
}

// ContainsRow returns true if any window spans row.
func (w Windows) ContainsRow(row reference.Row) bool {
	for _, r := range w.ranges {
		if r.Rows().Contains(row) {
			return true
		}
	}
	return false
}

// Contains returns true when selection is rendered. Ranges are rendered
// when both ends are. Labels panic.
func (w Windows) Contains(selection reference.Selection) bool {
	switch v := selection.(type) {
	case reference.Cell:
		return w.ContainsCell(v)
	case reference.Column:
		return w.ContainsColumn(v)
	case reference.Row:
		return w.ContainsRow(v)
	case reference.CellRange:
		return w.ContainsCell(v.Begin()) && w.ContainsCell(v.End())
	case reference.ColumnRange:
		return w.ContainsColumn(v.Begin()) && w.ContainsColumn(v.End())
	case reference.RowRange:
		return w.ContainsRow(v.Begin()) && w.ContainsRow(v.End())
	case reference.Label:
		panic("viewport: label " + v.String() + " has no location")
	default:
		panic(fmt.Sprintf("viewport: unknown selection %T", selection))
	}
}

// String returns the ranges separated by commas.
func (w Windows) String() string {
	parts := make([]string, len(w.ranges))
	for i, r := range w.ranges {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}
