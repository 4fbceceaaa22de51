package layout

import (
	"errors"
	"fmt"

	"github.com/dshills/sheetview/internal/reference"
	"github.com/dshills/sheetview/internal/viewport"
)

// Default unit sizes in pixels.
const (
	DefaultColumnWidth = 64
	DefaultRowHeight   = 20
)

// ErrInvalidLayout is returned by Build for sizes or counts that are out of
// range.
var ErrInvalidLayout = errors.New("invalid layout")

// Sheet holds the geometry of one worksheet. A built Sheet is never
// modified and may be shared.
type Sheet struct {
	defaultColumnWidth int
	defaultRowHeight   int
	columnWidths       map[int]int
	rowHeights         map[int]int
	hiddenColumns      map[int]bool
	hiddenRows         map[int]bool
	frozenColumns      int
	frozenRows         int
}

var _ viewport.Context = (*Sheet)(nil)

// Builder provides a fluent API for constructing sheets.
type Builder struct {
	sheet Sheet
	err   error
}

// NewBuilder creates a builder with default sizes and nothing hidden.
func NewBuilder() *Builder {
	return &Builder{sheet: Sheet{
		defaultColumnWidth: DefaultColumnWidth,
		defaultRowHeight:   DefaultRowHeight,
		columnWidths:       make(map[int]int),
		rowHeights:         make(map[int]int),
		hiddenColumns:      make(map[int]bool),
		hiddenRows:         make(map[int]bool),
	}}
}

// DefaultColumnWidth sets the width of columns without their own width.
func (b *Builder) DefaultColumnWidth(px int) *Builder {
	b.check(px > 0, "default column width %d", px)
	b.sheet.defaultColumnWidth = px
	return b
}

// DefaultRowHeight sets the height of rows without their own height.
func (b *Builder) DefaultRowHeight(px int) *Builder {
	b.check(px > 0, "default row height %d", px)
	b.sheet.defaultRowHeight = px
	return b
}

// ColumnWidth sets the width of one column.
func (b *Builder) ColumnWidth(column reference.Column, px int) *Builder {
	b.check(px > 0, "column %s width %d", column, px)
	b.sheet.columnWidths[column.Value()] = px
	return b
}

// RowHeight sets the height of one row.
func (b *Builder) RowHeight(row reference.Row, px int) *Builder {
	b.check(px > 0, "row %s height %d", row, px)
	b.sheet.rowHeights[row.Value()] = px
	return b
}

// HideColumns marks columns hidden.
func (b *Builder) HideColumns(columns ...reference.Column) *Builder {
	for _, c := range columns {
		b.sheet.hiddenColumns[c.Value()] = true
	}
	return b
}

// HideRows marks rows hidden.
func (b *Builder) HideRows(rows ...reference.Row) *Builder {
	for _, r := range rows {
		b.sheet.hiddenRows[r.Value()] = true
	}
	return b
}

// FreezeColumns freezes the first n columns.
func (b *Builder) FreezeColumns(n int) *Builder {
	b.check(n >= 0 && n <= reference.MaxColumn, "frozen columns %d", n)
	b.sheet.frozenColumns = n
	return b
}

// FreezeRows freezes the first n rows.
func (b *Builder) FreezeRows(n int) *Builder {
	b.check(n >= 0 && n <= reference.MaxRow, "frozen rows %d", n)
	b.sheet.frozenRows = n
	return b
}

// Build returns the sheet, or the first invalid setting.
func (b *Builder) Build() (*Sheet, error) {
	if b.err != nil {
		return nil, b.err
	}
	s := b.sheet
	s.columnWidths = cloneMap(s.columnWidths)
	s.rowHeights = cloneMap(s.rowHeights)
	s.hiddenColumns = cloneMap(s.hiddenColumns)
	s.hiddenRows = cloneMap(s.hiddenRows)
	return &s, nil
}

// MustBuild is like Build but panics on invalid settings.
func (b *Builder) MustBuild() *Sheet {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

func (b *Builder) check(ok bool, format string, args ...any) {
	if !ok && b.err == nil {
		b.err = fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidLayout)
	}
}

func cloneMap[V any](m map[int]V) map[int]V {
	out := make(map[int]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// FrozenColumns returns the number of frozen columns.
func (s *Sheet) FrozenColumns() int {
	return s.frozenColumns
}

// FrozenRows returns the number of frozen rows.
func (s *Sheet) FrozenRows() int {
	return s.frozenRows
}

// IsColumnHidden reports whether column is hidden.
func (s *Sheet) IsColumnHidden(column reference.Column) bool {
	return s.hiddenColumns[column.Value()]
}

// IsRowHidden reports whether row is hidden.
func (s *Sheet) IsRowHidden(row reference.Row) bool {
	return s.hiddenRows[row.Value()]
}

// ColumnWidth returns the width of column in pixels. Hidden columns keep
// their width; callers skip them.
func (s *Sheet) ColumnWidth(column reference.Column) int {
	return s.columnWidth(column.Value())
}

// RowHeight returns the height of row in pixels.
func (s *Sheet) RowHeight(row reference.Row) int {
	return s.rowHeight(row.Value())
}

func (s *Sheet) columnWidth(i int) int {
	if w, ok := s.columnWidths[i]; ok {
		return w
	}
	return s.defaultColumnWidth
}

func (s *Sheet) rowHeight(i int) int {
	if h, ok := s.rowHeights[i]; ok {
		return h
	}
	return s.defaultRowHeight
}

func (s *Sheet) columns() axis {
	return axis{
		last:   reference.MaxColumn,
		hidden: func(i int) bool { return s.hiddenColumns[i] },
		size:   s.columnWidth,
	}
}

func (s *Sheet) rows() axis {
	return axis{
		last:   reference.MaxRow,
		hidden: func(i int) bool { return s.hiddenRows[i] },
		size:   s.rowHeight,
	}
}
