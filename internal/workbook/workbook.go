// Package workbook reads sheet geometry and cell text from xlsx files.
package workbook

import (
	"errors"
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/dshills/sheetview/internal/layout"
	"github.com/dshills/sheetview/internal/reference"
)

// ErrSheetNotFound is returned when the named worksheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// Workbook is an open xlsx file.
type Workbook struct {
	file *excelize.File
}

// Open opens the xlsx file at path.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	return &Workbook{file: f}, nil
}

// New wraps an already open file.
func New(f *excelize.File) *Workbook {
	return &Workbook{file: f}
}

// Close releases the file.
func (w *Workbook) Close() error {
	return w.file.Close()
}

// SheetNames lists the worksheets in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// Sheet loads the named worksheet. An empty name selects the active sheet.
func (w *Workbook) Sheet(name string) (*Sheet, error) {
	if name == "" {
		name = w.file.GetSheetName(w.file.GetActiveSheetIndex())
	}
	if idx, err := w.file.GetSheetIndex(name); err != nil || idx < 0 {
		return nil, fmt.Errorf("%q: %w", name, ErrSheetNotFound)
	}
	l, err := w.layout(name)
	if err != nil {
		return nil, err
	}
	return &Sheet{file: w.file, name: name, layout: l}, nil
}

// layout reads widths, heights, visibility and frozen panes. Only the used
// range and the frozen panes are scanned; everything beyond uses the sheet
// defaults.
func (w *Workbook) layout(name string) (*layout.Sheet, error) {
	f := w.file
	b := layout.NewBuilder()

	props, err := f.GetSheetProps(name)
	if err != nil {
		return nil, fmt.Errorf("read %s properties: %w", name, err)
	}
	if props.DefaultColWidth != nil && *props.DefaultColWidth > 0 {
		b.DefaultColumnWidth(ColumnWidthPixels(*props.DefaultColWidth))
	}
	if props.DefaultRowHeight != nil && *props.DefaultRowHeight > 0 {
		b.DefaultRowHeight(RowHeightPixels(*props.DefaultRowHeight))
	}

	panes, err := f.GetPanes(name)
	if err != nil {
		return nil, fmt.Errorf("read %s panes: %w", name, err)
	}
	if panes.Freeze {
		b.FreezeColumns(panes.XSplit).FreezeRows(panes.YSplit)
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read %s rows: %w", name, err)
	}
	lastRow := max(len(rows), panes.YSplit)
	lastColumn := panes.XSplit
	for _, r := range rows {
		lastColumn = max(lastColumn, len(r))
	}

	for i := 1; i <= min(lastColumn, reference.MaxColumn+1); i++ {
		column := reference.MustColumn(i - 1)
		letters := column.String()
		width, err := f.GetColWidth(name, letters)
		if err != nil {
			return nil, fmt.Errorf("read %s column %s: %w", name, letters, err)
		}
		if px := ColumnWidthPixels(width); px > 0 {
			b.ColumnWidth(column, px)
		}
		visible, err := f.GetColVisible(name, letters)
		if err != nil {
			return nil, fmt.Errorf("read %s column %s: %w", name, letters, err)
		}
		if !visible || width == 0 {
			b.HideColumns(column)
		}
	}

	for i := 1; i <= min(lastRow, reference.MaxRow+1); i++ {
		row := reference.MustRow(i - 1)
		height, err := f.GetRowHeight(name, i)
		if err != nil {
			return nil, fmt.Errorf("read %s row %d: %w", name, i, err)
		}
		if px := RowHeightPixels(height); px > 0 {
			b.RowHeight(row, px)
		}
		if height == 0 {
			b.HideRows(row)
		}
		// Rows past the stored data report as not visible.
		if i > len(rows) {
			continue
		}
		visible, err := f.GetRowVisible(name, i)
		if err != nil {
			return nil, fmt.Errorf("read %s row %d: %w", name, i, err)
		}
		if !visible {
			b.HideRows(row)
		}
	}

	return b.Build()
}

// ColumnWidthPixels converts a width in characters of the default font to
// pixels.
func ColumnWidthPixels(chars float64) int {
	if chars <= 0 {
		return 0
	}
	return int(math.Round(chars*7 + 5))
}

// RowHeightPixels converts a height in points to pixels at 96 DPI.
func RowHeightPixels(points float64) int {
	if points <= 0 {
		return 0
	}
	return int(math.Round(points * 96 / 72))
}

// Sheet is one worksheet of an open workbook.
type Sheet struct {
	file   *excelize.File
	name   string
	layout *layout.Sheet
}

// Name returns the worksheet name.
func (s *Sheet) Name() string {
	return s.name
}

// Layout returns the geometry read from the worksheet.
func (s *Sheet) Layout() *layout.Sheet {
	return s.layout
}

// CellText returns the formatted value of cell, or "" when it is empty or
// unreadable.
func (s *Sheet) CellText(cell reference.Cell) string {
	v, err := s.file.GetCellValue(s.name, cell.ToRelative().String())
	if err != nil {
		return ""
	}
	return v
}
