package reference

import "fmt"

// Kind identifies the variant of a Selection.
type Kind uint8

const (
	// KindCell is a single cell.
	KindCell Kind = iota
	// KindCellRange is a rectangular range of cells.
	KindCellRange
	// KindColumn is a whole column.
	KindColumn
	// KindColumnRange is a span of whole columns.
	KindColumnRange
	// KindRow is a whole row.
	KindRow
	// KindRowRange is a span of whole rows.
	KindRowRange
	// KindLabel is a named reference.
	KindLabel
)

// String returns a lower-case name for the kind.
func (k Kind) String() string {
	switch k {
	case KindCell:
		return "cell"
	case KindCellRange:
		return "cell-range"
	case KindColumn:
		return "column"
	case KindColumnRange:
		return "column-range"
	case KindRow:
		return "row"
	case KindRowRange:
		return "row-range"
	case KindLabel:
		return "label"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Selection is the sealed union of every selectable reference.
// Selections are comparable with ==.
type Selection interface {
	// Kind returns the variant tag.
	Kind() Kind
	// String returns the A1 text of the selection.
	String() string

	selection()
}

func (Cell) selection()        {}
func (CellRange) selection()   {}
func (Column) selection()      {}
func (ColumnRange) selection() {}
func (Row) selection()         {}
func (RowRange) selection()    {}
func (Label) selection()       {}

// Ensure every variant implements Selection.
var (
	_ Selection = Cell{}
	_ Selection = CellRange{}
	_ Selection = Column{}
	_ Selection = ColumnRange{}
	_ Selection = Row{}
	_ Selection = RowRange{}
	_ Selection = Label{}
)

// IsHidden reports whether any part of the selection that must be visible
// is hidden according to the given predicates. A cell is hidden when either
// its column or its row is hidden; ranges are never hidden as a whole.
// Labels panic.
func IsHidden(s Selection, columnHidden func(Column) bool, rowHidden func(Row) bool) bool {
	switch v := s.(type) {
	case Cell:
		return columnHidden(v.column) || rowHidden(v.row)
	case Column:
		return columnHidden(v)
	case Row:
		return rowHidden(v)
	case CellRange, ColumnRange, RowRange:
		return false
	case Label:
		panic("reference: label " + v.String() + " has no location")
	default:
		panic(fmt.Sprintf("reference: unknown selection %T", s))
	}
}
