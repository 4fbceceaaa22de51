package reference

// ColumnRange is an inclusive span of columns with Begin <= End.
type ColumnRange struct {
	begin Column
	end   Column
}

// NewColumnRange creates a range covering a and b in either order.
func NewColumnRange(a, b Column) ColumnRange {
	if a.Compare(b) > 0 {
		a, b = b, a
	}
	return ColumnRange{begin: a, end: b}
}

// ColumnOrRange returns a Column when a and b are the same column and a
// ColumnRange otherwise.
func ColumnOrRange(a, b Column) Selection {
	if a.Compare(b) == 0 {
		return a
	}
	return NewColumnRange(a, b)
}

// Begin returns the leftmost column.
func (r ColumnRange) Begin() Column {
	return r.begin
}

// End returns the rightmost column.
func (r ColumnRange) End() Column {
	return r.end
}

// Count returns the number of columns in the range.
func (r ColumnRange) Count() int {
	return r.end.value - r.begin.value + 1
}

// Contains returns true if column lies within the range.
func (r ColumnRange) Contains(column Column) bool {
	return column.value >= r.begin.value && column.value <= r.end.value
}

// Kind implements Selection.
func (ColumnRange) Kind() Kind {
	return KindColumnRange
}

// String returns text such as "B:D".
func (r ColumnRange) String() string {
	return r.begin.String() + ":" + r.end.String()
}

// RowRange is an inclusive span of rows with Begin <= End.
type RowRange struct {
	begin Row
	end   Row
}

// NewRowRange creates a range covering a and b in either order.
func NewRowRange(a, b Row) RowRange {
	if a.Compare(b) > 0 {
		a, b = b, a
	}
	return RowRange{begin: a, end: b}
}

// RowOrRange returns a Row when a and b are the same row and a RowRange
// otherwise.
func RowOrRange(a, b Row) Selection {
	if a.Compare(b) == 0 {
		return a
	}
	return NewRowRange(a, b)
}

// Begin returns the top row.
func (r RowRange) Begin() Row {
	return r.begin
}

// End returns the bottom row.
func (r RowRange) End() Row {
	return r.end
}

// Count returns the number of rows in the range.
func (r RowRange) Count() int {
	return r.end.value - r.begin.value + 1
}

// Contains returns true if row lies within the range.
func (r RowRange) Contains(row Row) bool {
	return row.value >= r.begin.value && row.value <= r.end.value
}

// Kind implements Selection.
func (RowRange) Kind() Kind {
	return KindRowRange
}

// String returns text such as "3:9".
func (r RowRange) String() string {
	return r.begin.String() + ":" + r.end.String()
}

// CellRange is a rectangular range; Begin is the top-left cell and End the
// bottom-right cell.
type CellRange struct {
	columns ColumnRange
	rows    RowRange
}

// NewCellRange creates the smallest range covering cells a and b.
func NewCellRange(a, b Cell) CellRange {
	return CellRange{
		columns: NewColumnRange(a.column, b.column),
		rows:    NewRowRange(a.row, b.row),
	}
}

// CellRangeFrom combines a column span and a row span.
func CellRangeFrom(columns ColumnRange, rows RowRange) CellRange {
	return CellRange{columns: columns, rows: rows}
}

// CellOrRange returns a Cell when a and b are the same cell and a CellRange
// otherwise.
func CellOrRange(a, b Cell) Selection {
	if a.column.Compare(b.column) == 0 && a.row.Compare(b.row) == 0 {
		return a
	}
	return NewCellRange(a, b)
}

// Begin returns the top-left cell.
func (r CellRange) Begin() Cell {
	return Cell{column: r.columns.begin, row: r.rows.begin}
}

// End returns the bottom-right cell.
func (r CellRange) End() Cell {
	return Cell{column: r.columns.end, row: r.rows.end}
}

// Columns returns the column span.
func (r CellRange) Columns() ColumnRange {
	return r.columns
}

// Rows returns the row span.
func (r CellRange) Rows() RowRange {
	return r.rows
}

// Contains returns true if cell lies within the range.
func (r CellRange) Contains(cell Cell) bool {
	return r.columns.Contains(cell.column) && r.rows.Contains(cell.row)
}

// Kind implements Selection.
func (CellRange) Kind() Kind {
	return KindCellRange
}

// String returns text such as "B3:D9".
func (r CellRange) String() string {
	return r.Begin().String() + ":" + r.End().String()
}
