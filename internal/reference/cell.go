package reference

// Cell is a single cell reference.
type Cell struct {
	column Column
	row    Row
}

// NewCell combines column and row.
func NewCell(column Column, row Row) Cell {
	return Cell{column: column, row: row}
}

// Column returns the cell's column.
func (c Cell) Column() Column {
	return c.column
}

// Row returns the cell's row.
func (c Cell) Row() Row {
	return c.row
}

// SetColumn returns a copy with the column replaced.
func (c Cell) SetColumn(column Column) Cell {
	c.column = column
	return c
}

// SetRow returns a copy with the row replaced.
func (c Cell) SetRow(row Row) Cell {
	c.row = row
	return c
}

// ToRelative drops both absolute markers.
func (c Cell) ToRelative() Cell {
	return Cell{column: c.column.ToRelative(), row: c.row.ToRelative()}
}

// Kind implements Selection.
func (Cell) Kind() Kind {
	return KindCell
}

// String returns the A1 text of the cell.
func (c Cell) String() string {
	return c.column.String() + c.row.String()
}
