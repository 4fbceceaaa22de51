package terminal

import (
	"strconv"

	"github.com/dshills/sheetview/internal/reference"
	"github.com/dshills/sheetview/internal/viewport"
)

// gutterWidth fits the largest row number plus a separating space.
var gutterWidth = len(strconv.Itoa(reference.MaxRow+1)) + 1

// Scale converts sheet pixels to terminal cells.
type Scale struct {
	PixelsPerChar int
	PixelsPerLine int
}

func (s Scale) columns(px int) int {
	return max(1, px/s.PixelsPerChar)
}

func (s Scale) lines(px int) int {
	return max(1, px/s.PixelsPerLine)
}

// Rectangle returns the viewport size that fills a screen of the given
// size, leaving room for the header, gutter and status line.
func (s Scale) Rectangle(r viewport.Rectangle, width, height int) viewport.Rectangle {
	return r.SetWidth(max(1, width-gutterWidth) * s.PixelsPerChar).
		SetHeight(max(1, height-2) * s.PixelsPerLine)
}

type columnSlot struct {
	column reference.Column
	x      int
	width  int
}

type rowSlot struct {
	row    reference.Row
	y      int
	height int
}

// frame is the screen placement of the visible columns and rows.
type frame struct {
	columns []columnSlot
	rows    []rowSlot
}

// newFrame lays out the visible units of windows left to right and top to
// bottom, frozen spans first.
func newFrame(windows viewport.Windows, ctx viewport.Context, scale Scale) frame {
	var f frame
	var seenColumns []reference.ColumnRange
	var seenRows []reference.RowRange

	x := gutterWidth
	y := 1
	for _, r := range windows.Ranges() {
		if cols := r.Columns(); !containsColumnRange(seenColumns, cols) {
			seenColumns = append(seenColumns, cols)
			for i := cols.Begin().Value(); i <= cols.End().Value(); i++ {
				c := reference.MustColumn(i)
				if ctx.IsColumnHidden(c) {
					continue
				}
				w := scale.columns(ctx.ColumnWidth(c))
				f.columns = append(f.columns, columnSlot{column: c, x: x, width: w})
				x += w
			}
		}
		if rows := r.Rows(); !containsRowRange(seenRows, rows) {
			seenRows = append(seenRows, rows)
			for i := rows.Begin().Value(); i <= rows.End().Value(); i++ {
				row := reference.MustRow(i)
				if ctx.IsRowHidden(row) {
					continue
				}
				h := scale.lines(ctx.RowHeight(row))
				f.rows = append(f.rows, rowSlot{row: row, y: y, height: h})
				y += h
			}
		}
	}
	return f
}

func containsColumnRange(ranges []reference.ColumnRange, r reference.ColumnRange) bool {
	for _, s := range ranges {
		if s == r {
			return true
		}
	}
	return false
}

func containsRowRange(ranges []reference.RowRange, r reference.RowRange) bool {
	for _, s := range ranges {
		if s == r {
			return true
		}
	}
	return false
}

func (f frame) columnAt(x int) (reference.Column, bool) {
	for _, s := range f.columns {
		if x >= s.x && x < s.x+s.width {
			return s.column, true
		}
	}
	return reference.Column{}, false
}

func (f frame) rowAt(y int) (reference.Row, bool) {
	for _, s := range f.rows {
		if y >= s.y && y < s.y+s.height {
			return s.row, true
		}
	}
	return reference.Row{}, false
}

// hit returns what a click at screen position (x, y) selects: a column in
// the header row, a row in the gutter, otherwise a cell.
func (f frame) hit(x, y int) (reference.Selection, bool) {
	switch {
	case y == 0 && x < gutterWidth:
		return nil, false
	case y == 0:
		c, ok := f.columnAt(x)
		if !ok {
			return nil, false
		}
		return c, true
	case x < gutterWidth:
		r, ok := f.rowAt(y)
		if !ok {
			return nil, false
		}
		return r, true
	}
	c, ok := f.columnAt(x)
	if !ok {
		return nil, false
	}
	r, ok := f.rowAt(y)
	if !ok {
		return nil, false
	}
	return reference.NewCell(c, r), true
}

// selected reports whether cell lies inside sel. A nil selection holds
// nothing.
func selected(sel reference.Selection, cell reference.Cell) bool {
	switch s := sel.(type) {
	case nil:
		return false
	case reference.Cell:
		return s.ToRelative() == cell.ToRelative()
	case reference.CellRange:
		return s.Contains(cell)
	case reference.Column:
		return s.ToRelative() == cell.Column().ToRelative()
	case reference.ColumnRange:
		return s.Contains(cell.Column())
	case reference.Row:
		return s.ToRelative() == cell.Row().ToRelative()
	case reference.RowRange:
		return s.Contains(cell.Row())
	case reference.Label:
		return false
	default:
		panic("terminal: unknown selection")
	}
}

// columnSelected reports whether sel covers any cell of column.
func columnSelected(sel reference.Selection, column reference.Column) bool {
	switch s := sel.(type) {
	case reference.Cell:
		return s.Column().ToRelative() == column.ToRelative()
	case reference.CellRange:
		return s.Columns().Contains(column)
	case reference.Column:
		return s.ToRelative() == column.ToRelative()
	case reference.ColumnRange:
		return s.Contains(column)
	case reference.Row, reference.RowRange:
		return true
	}
	return false
}

// rowSelected reports whether sel covers any cell of row.
func rowSelected(sel reference.Selection, row reference.Row) bool {
	switch s := sel.(type) {
	case reference.Cell:
		return s.Row().ToRelative() == row.ToRelative()
	case reference.CellRange:
		return s.Rows().Contains(row)
	case reference.Row:
		return s.ToRelative() == row.ToRelative()
	case reference.RowRange:
		return s.Contains(row)
	case reference.Column, reference.ColumnRange:
		return true
	}
	return false
}
