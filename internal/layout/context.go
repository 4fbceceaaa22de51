package layout

import (
	"github.com/dshills/sheetview/internal/reference"
	"github.com/dshills/sheetview/internal/viewport"
)

// MoveLeft returns the nearest visible column left of column.
func (s *Sheet) MoveLeft(column reference.Column) (reference.Column, bool) {
	return toColumn(s.columns().move(column.Value(), -1))
}

// MoveRight returns the nearest visible column right of column.
func (s *Sheet) MoveRight(column reference.Column) (reference.Column, bool) {
	return toColumn(s.columns().move(column.Value(), 1))
}

// MoveUp returns the nearest visible row above row.
func (s *Sheet) MoveUp(row reference.Row) (reference.Row, bool) {
	return toRow(s.rows().move(row.Value(), -1))
}

// MoveDown returns the nearest visible row below row.
func (s *Sheet) MoveDown(row reference.Row) (reference.Row, bool) {
	return toRow(s.rows().move(row.Value(), 1))
}

// LeftPixels walks pixels to the left of column.
func (s *Sheet) LeftPixels(column reference.Column, pixels int) (reference.Column, bool) {
	return toColumn(s.columns().walk(column.Value(), -1, pixels))
}

// RightPixels walks pixels to the right of column.
func (s *Sheet) RightPixels(column reference.Column, pixels int) (reference.Column, bool) {
	return toColumn(s.columns().walk(column.Value(), 1, pixels))
}

// UpPixels walks pixels above row.
func (s *Sheet) UpPixels(row reference.Row, pixels int) (reference.Row, bool) {
	return toRow(s.rows().walk(row.Value(), -1, pixels))
}

// DownPixels walks pixels below row.
func (s *Sheet) DownPixels(row reference.Row, pixels int) (reference.Row, bool) {
	return toRow(s.rows().walk(row.Value(), 1, pixels))
}

// Windows returns the cross product of the rendered column and row spans,
// at most four ranges with frozen panes on both axes.
func (s *Sheet) Windows(rect viewport.Rectangle, includeFrozenColumnsRows bool) viewport.Windows {
	home := rect.Home()
	columns := s.columns().window(home.Column().Value(), s.frozenColumns, rect.Width(), includeFrozenColumnsRows)
	rows := s.rows().window(home.Row().Value(), s.frozenRows, rect.Height(), includeFrozenColumnsRows)

	ranges := make([]reference.CellRange, 0, len(columns)*len(rows))
	for _, r := range rows {
		for _, c := range columns {
			ranges = append(ranges, reference.NewCellRange(
				reference.NewCell(reference.MustColumn(c.begin), reference.MustRow(r.begin)),
				reference.NewCell(reference.MustColumn(c.end), reference.MustRow(r.end)),
			))
		}
	}
	return viewport.NewWindows(ranges...)
}

func toColumn(i int, ok bool) (reference.Column, bool) {
	if !ok {
		return reference.Column{}, false
	}
	return reference.MustColumn(i), true
}

func toRow(i int, ok bool) (reference.Row, bool) {
	if !ok {
		return reference.Row{}, false
	}
	return reference.MustRow(i), true
}
