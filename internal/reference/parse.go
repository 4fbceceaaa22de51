package reference

import (
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/dshills/sheetview/internal/parse"
)

// ParseColumn parses text such as "B" or "$B".
func ParseColumn(text string) (Column, error) {
	c, pos, err := scanColumn(text, 0)
	if err != nil {
		return Column{}, err
	}
	if err := expectEnd(text, pos); err != nil {
		return Column{}, err
	}
	return c, nil
}

// ParseRow parses text such as "7" or "$7".
func ParseRow(text string) (Row, error) {
	r, pos, err := scanRow(text, 0)
	if err != nil {
		return Row{}, err
	}
	if err := expectEnd(text, pos); err != nil {
		return Row{}, err
	}
	return r, nil
}

// ParseCell parses text such as "B7" or "$B$7".
func ParseCell(text string) (Cell, error) {
	c, pos, err := scanCell(text, 0)
	if err != nil {
		return Cell{}, err
	}
	if err := expectEnd(text, pos); err != nil {
		return Cell{}, err
	}
	return c, nil
}

// ParseCellRange parses "B3:D9". A lone cell such as "B3" yields a range
// of one cell.
func ParseCellRange(text string) (CellRange, error) {
	begin, pos, err := scanCell(text, 0)
	if err != nil {
		return CellRange{}, err
	}
	end := begin
	if pos < len(text) && text[pos] == ':' {
		end, pos, err = scanCell(text, pos+1)
		if err != nil {
			return CellRange{}, err
		}
	}
	if err := expectEnd(text, pos); err != nil {
		return CellRange{}, err
	}
	return NewCellRange(begin, end), nil
}

// ParseColumnRange parses "B:D". A lone column yields a range of one.
func ParseColumnRange(text string) (ColumnRange, error) {
	begin, pos, err := scanColumn(text, 0)
	if err != nil {
		return ColumnRange{}, err
	}
	end := begin
	if pos < len(text) && text[pos] == ':' {
		end, pos, err = scanColumn(text, pos+1)
		if err != nil {
			return ColumnRange{}, err
		}
	}
	if err := expectEnd(text, pos); err != nil {
		return ColumnRange{}, err
	}
	return NewColumnRange(begin, end), nil
}

// ParseRowRange parses "3:9". A lone row yields a range of one.
func ParseRowRange(text string) (RowRange, error) {
	begin, pos, err := scanRow(text, 0)
	if err != nil {
		return RowRange{}, err
	}
	end := begin
	if pos < len(text) && text[pos] == ':' {
		end, pos, err = scanRow(text, pos+1)
		if err != nil {
			return RowRange{}, err
		}
	}
	if err := expectEnd(text, pos); err != nil {
		return RowRange{}, err
	}
	return NewRowRange(begin, end), nil
}

// ParseLabel parses a label name.
func ParseLabel(text string) (Label, error) {
	if err := checkLabel(text); err != nil {
		return Label{}, parse.Errorf(text, labelErrorOffset(text), "%s", err.Error())
	}
	return Label{name: text}, nil
}

// ParseSelection parses any selection, detecting the variant from the
// text. Text containing ':' is a range whose variant follows its first
// endpoint; otherwise a cell, column or row is tried before a label.
func ParseSelection(text string) (Selection, error) {
	sel, err := parseReference(text)
	if err == nil {
		return sel, nil
	}
	if !isCellLike(text) {
		if label, labelErr := ParseLabel(text); labelErr == nil {
			return label, nil
		}
	}
	return nil, err
}

// MustParseSelection is like ParseSelection but panics on error.
func MustParseSelection(text string) Selection {
	s, err := ParseSelection(text)
	if err != nil {
		panic(err)
	}
	return s
}

// MustParseCell is like ParseCell but panics on error.
func MustParseCell(text string) Cell {
	c, err := ParseCell(text)
	if err != nil {
		panic(err)
	}
	return c
}

// MustParseColumn is like ParseColumn but panics on error.
func MustParseColumn(text string) Column {
	c, err := ParseColumn(text)
	if err != nil {
		panic(err)
	}
	return c
}

// MustParseRow is like ParseRow but panics on error.
func MustParseRow(text string) Row {
	r, err := ParseRow(text)
	if err != nil {
		panic(err)
	}
	return r
}

// parseReference parses the non-label selections.
func parseReference(text string) (Selection, error) {
	begin, pos, err := scanEndpoint(text, 0)
	if err != nil {
		return nil, err
	}
	if pos == len(text) {
		return begin, nil
	}
	if text[pos] != ':' {
		return nil, parse.Errorf(text, pos, "expected ':' or end of reference")
	}
	pos++

	switch b := begin.(type) {
	case Cell:
		end, next, err := scanCell(text, pos)
		if err != nil {
			return nil, err
		}
		if err := expectEnd(text, next); err != nil {
			return nil, err
		}
		return NewCellRange(b, end), nil
	case Column:
		end, next, err := scanColumn(text, pos)
		if err != nil {
			return nil, err
		}
		if err := expectEnd(text, next); err != nil {
			return nil, err
		}
		return NewColumnRange(b, end), nil
	case Row:
		end, next, err := scanRow(text, pos)
		if err != nil {
			return nil, err
		}
		if err := expectEnd(text, next); err != nil {
			return nil, err
		}
		return NewRowRange(b, end), nil
	default:
		panic("reference: unexpected endpoint")
	}
}

// scanEndpoint scans a cell, column or row starting at pos.
func scanEndpoint(text string, pos int) (Selection, int, error) {
	p := pos
	if p < len(text) && text[p] == '$' {
		p++
	}
	if p < len(text) && isDigit(text[p]) {
		return scanRowSelection(text, pos)
	}
	column, next, err := scanColumn(text, pos)
	if err != nil {
		return nil, next, err
	}
	p = next
	if p < len(text) && text[p] == '$' {
		p++
	}
	if p < len(text) && isDigit(text[p]) {
		row, end, err := scanRow(text, next)
		if err != nil {
			return nil, end, err
		}
		return Cell{column: column, row: row}, end, nil
	}
	return column, next, nil
}

func scanRowSelection(text string, pos int) (Selection, int, error) {
	r, next, err := scanRow(text, pos)
	if err != nil {
		return nil, next, err
	}
	return r, next, nil
}

func scanCell(text string, pos int) (Cell, int, error) {
	column, next, err := scanColumn(text, pos)
	if err != nil {
		return Cell{}, next, err
	}
	row, next, err := scanRow(text, next)
	if err != nil {
		return Cell{}, next, err
	}
	return Cell{column: column, row: row}, next, nil
}

func scanColumn(text string, pos int) (Column, int, error) {
	absolute := false
	if pos < len(text) && text[pos] == '$' {
		absolute = true
		pos++
	}
	start := pos
	for pos < len(text) && isLetter(text[pos]) {
		pos++
	}
	if pos == start {
		return Column{}, pos, parse.Errorf(text, pos, "expected column")
	}
	n, err := excelize.ColumnNameToNumber(text[start:pos])
	if err != nil {
		return Column{}, start, parse.Errorf(text, start, "column %s out of range", text[start:pos])
	}
	return Column{value: n - 1, absolute: absolute}, pos, nil
}

func scanRow(text string, pos int) (Row, int, error) {
	absolute := false
	if pos < len(text) && text[pos] == '$' {
		absolute = true
		pos++
	}
	start := pos
	for pos < len(text) && isDigit(text[pos]) {
		pos++
	}
	if pos == start {
		return Row{}, pos, parse.Errorf(text, pos, "expected row")
	}
	if text[start] == '0' {
		return Row{}, start, parse.Errorf(text, start, "row must start with 1-9")
	}
	n, err := strconv.Atoi(text[start:pos])
	if err != nil || n > MaxRow+1 {
		return Row{}, start, parse.Errorf(text, start, "row %s out of range", text[start:pos])
	}
	return Row{value: n - 1, absolute: absolute}, pos, nil
}

func expectEnd(text string, pos int) error {
	if pos < len(text) {
		return parse.Errorf(text, pos, "unexpected character")
	}
	return nil
}

// isCellLike matches letters followed by digits, such as "A0" or "ZZZZ1",
// which are invalid cells rather than labels.
func isCellLike(text string) bool {
	i := 0
	for i < len(text) && isLetter(text[i]) {
		i++
	}
	if i == 0 || i == len(text) {
		return false
	}
	for ; i < len(text); i++ {
		if !isDigit(text[i]) {
			return false
		}
	}
	return true
}

func labelErrorOffset(text string) int {
	for i := 0; i < len(text); i++ {
		c := text[i]
		if isLetter(c) || c == '_' || (i > 0 && (isDigit(c) || c == '.')) {
			continue
		}
		return i
	}
	return len(text)
}
