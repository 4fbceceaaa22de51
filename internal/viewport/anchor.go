package viewport

import (
	"fmt"
	"strings"

	"github.com/dshills/sheetview/internal/parse"
	"github.com/dshills/sheetview/internal/reference"
)

// Anchor identifies the fixed corner or edge of a range selection. The end
// opposite the anchor is the one that moves when the selection is extended.
type Anchor uint8

const (
	// AnchorNone is the only legal anchor of single cells, columns and rows.
	AnchorNone Anchor = iota
	// AnchorTopLeft fixes the top-left corner of a cell range.
	AnchorTopLeft
	// AnchorTopRight fixes the top-right corner of a cell range.
	AnchorTopRight
	// AnchorBottomLeft fixes the bottom-left corner of a cell range.
	AnchorBottomLeft
	// AnchorBottomRight fixes the bottom-right corner of a cell range.
	AnchorBottomRight
	// AnchorTop fixes the top row of a row range.
	AnchorTop
	// AnchorBottom fixes the bottom row of a row range.
	AnchorBottom
	// AnchorLeft fixes the leftmost column of a column range.
	AnchorLeft
	// AnchorRight fixes the rightmost column of a column range.
	AnchorRight
)

// anchorNames holds the symbolic names; index order matches the constants.
var anchorNames = [...]string{
	AnchorNone:        "NONE",
	AnchorTopLeft:     "TOP_LEFT",
	AnchorTopRight:    "TOP_RIGHT",
	AnchorBottomLeft:  "BOTTOM_LEFT",
	AnchorBottomRight: "BOTTOM_RIGHT",
	AnchorTop:         "TOP",
	AnchorBottom:      "BOTTOM",
	AnchorLeft:        "LEFT",
	AnchorRight:       "RIGHT",
}

// Anchors returns every anchor in declaration order.
func Anchors() []Anchor {
	return []Anchor{
		AnchorNone,
		AnchorTopLeft,
		AnchorTopRight,
		AnchorBottomLeft,
		AnchorBottomRight,
		AnchorTop,
		AnchorBottom,
		AnchorLeft,
		AnchorRight,
	}
}

// Name returns the symbolic name, e.g. "TOP_LEFT".
func (a Anchor) Name() string {
	if int(a) < len(anchorNames) {
		return anchorNames[a]
	}
	return fmt.Sprintf("Anchor(%d)", uint8(a))
}

// String implements fmt.Stringer.
func (a Anchor) String() string {
	return a.Name()
}

// KebabText returns the lower-case dashed name, e.g. "top-left".
func (a Anchor) KebabText() string {
	return strings.ReplaceAll(strings.ToLower(a.Name()), "_", "-")
}

// ParseAnchor parses kebab text such as "bottom-right".
func ParseAnchor(text string) (Anchor, error) {
	for _, a := range Anchors() {
		if a.KebabText() == text {
			return a, nil
		}
	}
	return AnchorNone, parse.Errorf(text, commonPrefix(text), "unknown anchor")
}

// commonPrefix returns the length of the longest prefix text shares with any
// anchor's kebab text, which is where parsing went wrong.
func commonPrefix(text string) int {
	best := 0
	for _, a := range Anchors() {
		k := a.KebabText()
		n := 0
		for n < len(k) && n < len(text) && k[n] == text[n] {
			n++
		}
		if n > best {
			best = n
		}
	}
	return best
}

// Opposite reflects the anchor across both axes.
func (a Anchor) Opposite() Anchor {
	switch a {
	case AnchorNone:
		return AnchorNone
	case AnchorTopLeft:
		return AnchorBottomRight
	case AnchorTopRight:
		return AnchorBottomLeft
	case AnchorBottomLeft:
		return AnchorTopRight
	case AnchorBottomRight:
		return AnchorTopLeft
	case AnchorTop:
		return AnchorBottom
	case AnchorBottom:
		return AnchorTop
	case AnchorLeft:
		return AnchorRight
	case AnchorRight:
		return AnchorLeft
	default:
		panic(fmt.Sprintf("viewport: unknown anchor %d", uint8(a)))
	}
}

// HasColumnAxis returns true when the anchor names a left or right side.
func (a Anchor) HasColumnAxis() bool {
	switch a {
	case AnchorTopLeft, AnchorTopRight, AnchorBottomLeft, AnchorBottomRight, AnchorLeft, AnchorRight:
		return true
	default:
		return false
	}
}

// HasRowAxis returns true when the anchor names a top or bottom side.
func (a Anchor) HasRowAxis() bool {
	switch a {
	case AnchorTopLeft, AnchorTopRight, AnchorBottomLeft, AnchorBottomRight, AnchorTop, AnchorBottom:
		return true
	default:
		return false
	}
}

// IsLeft returns true for LEFT, TOP_LEFT and BOTTOM_LEFT.
func (a Anchor) IsLeft() bool {
	return a == AnchorLeft || a == AnchorTopLeft || a == AnchorBottomLeft
}

// IsRight returns true for RIGHT, TOP_RIGHT and BOTTOM_RIGHT.
func (a Anchor) IsRight() bool {
	return a == AnchorRight || a == AnchorTopRight || a == AnchorBottomRight
}

// IsTop returns true for TOP, TOP_LEFT and TOP_RIGHT.
func (a Anchor) IsTop() bool {
	return a == AnchorTop || a == AnchorTopLeft || a == AnchorTopRight
}

// IsBottom returns true for BOTTOM, BOTTOM_LEFT and BOTTOM_RIGHT.
func (a Anchor) IsBottom() bool {
	return a == AnchorBottom || a == AnchorBottomLeft || a == AnchorBottomRight
}

// SetLeft replaces the column side with LEFT. Panics for anchors without a
// column side.
func (a Anchor) SetLeft() Anchor {
	return a.setColumnSide("LEFT")
}

// SetRight replaces the column side with RIGHT. Panics for anchors without
// a column side.
func (a Anchor) SetRight() Anchor {
	return a.setColumnSide("RIGHT")
}

// SetTop replaces the row side with TOP. Panics for anchors without a row
// side.
func (a Anchor) SetTop() Anchor {
	return a.setRowSide("TOP")
}

// SetBottom replaces the row side with BOTTOM. Panics for anchors without a
// row side.
func (a Anchor) SetBottom() Anchor {
	return a.setRowSide("BOTTOM")
}

func (a Anchor) setColumnSide(side string) Anchor {
	if !a.HasColumnAxis() {
		panic("viewport: anchor " + a.Name() + " has no left/right side")
	}
	name := strings.Replace(strings.Replace(a.Name(), "LEFT", side, 1), "RIGHT", side, 1)
	return mustAnchorNamed(name)
}

func (a Anchor) setRowSide(side string) Anchor {
	if !a.HasRowAxis() {
		panic("viewport: anchor " + a.Name() + " has no top/bottom side")
	}
	name := strings.Replace(strings.Replace(a.Name(), "TOP", side, 1), "BOTTOM", side, 1)
	return mustAnchorNamed(name)
}

func mustAnchorNamed(name string) Anchor {
	for i, n := range anchorNames {
		if n == name {
			return Anchor(i)
		}
	}
	panic("viewport: no anchor named " + name)
}

// ToColumnOrColumnRangeAnchor projects the anchor onto the column axis:
// NONE stays NONE, anything with a left side becomes LEFT and anything with
// a right side becomes RIGHT. TOP and BOTTOM panic.
func (a Anchor) ToColumnOrColumnRangeAnchor() Anchor {
	switch {
	case a == AnchorNone:
		return AnchorNone
	case a.IsLeft():
		return AnchorLeft
	case a.IsRight():
		return AnchorRight
	default:
		panic("viewport: anchor " + a.Name() + " cannot be projected onto columns")
	}
}

// ToRowOrRowRangeAnchor projects the anchor onto the row axis: NONE stays
// NONE, anything with a top side becomes TOP and anything with a bottom side
// becomes BOTTOM. LEFT and RIGHT panic.
func (a Anchor) ToRowOrRowRangeAnchor() Anchor {
	switch {
	case a == AnchorNone:
		return AnchorNone
	case a.IsTop():
		return AnchorTop
	case a.IsBottom():
		return AnchorBottom
	default:
		panic("viewport: anchor " + a.Name() + " cannot be projected onto rows")
	}
}

// CombineAnchors joins a column anchor (LEFT or RIGHT) and a row anchor
// (TOP or BOTTOM) into a corner. Any other combination is a defect.
func CombineAnchors(column, row Anchor) Anchor {
	switch {
	case column == AnchorLeft && row == AnchorTop:
		return AnchorTopLeft
	case column == AnchorRight && row == AnchorTop:
		return AnchorTopRight
	case column == AnchorLeft && row == AnchorBottom:
		return AnchorBottomLeft
	case column == AnchorRight && row == AnchorBottom:
		return AnchorBottomRight
	default:
		panic(fmt.Sprintf("viewport: cannot combine %s and %s", column, row))
	}
}

// Column picks the begin of r for left anchors and the end for right
// anchors. NONE and anchors without a column side panic.
func (a Anchor) Column(r reference.ColumnRange) reference.Column {
	switch {
	case a.IsLeft():
		return r.Begin()
	case a.IsRight():
		return r.End()
	default:
		panic("viewport: anchor " + a.Name() + " does not pick a column")
	}
}

// Row picks the begin of r for top anchors and the end for bottom anchors.
// NONE and anchors without a row side panic.
func (a Anchor) Row(r reference.RowRange) reference.Row {
	switch {
	case a.IsTop():
		return r.Begin()
	case a.IsBottom():
		return r.End()
	default:
		panic("viewport: anchor " + a.Name() + " does not pick a row")
	}
}

// Cell picks the corner of r named by a corner anchor.
func (a Anchor) Cell(r reference.CellRange) reference.Cell {
	return reference.NewCell(a.Column(r.Columns()), a.Row(r.Rows()))
}

// Selection projects s onto the single cell, column or row the anchor
// names. Single cells, columns and rows project to themselves. Labels
// panic.
func (a Anchor) Selection(s reference.Selection) reference.Selection {
	switch v := s.(type) {
	case reference.Cell, reference.Column, reference.Row:
		return v
	case reference.CellRange:
		return a.Cell(v)
	case reference.ColumnRange:
		return a.Column(v)
	case reference.RowRange:
		return a.Row(v)
	case reference.Label:
		panic("viewport: label " + v.String() + " cannot be anchored")
	default:
		panic(fmt.Sprintf("viewport: unknown selection %T", s))
	}
}

// DefaultAnchor returns the anchor a selection gets when none is given.
func DefaultAnchor(s reference.Selection) Anchor {
	switch s.Kind() {
	case reference.KindCell, reference.KindColumn, reference.KindRow:
		return AnchorNone
	case reference.KindColumnRange:
		return AnchorRight
	case reference.KindRowRange:
		return AnchorBottom
	case reference.KindCellRange:
		return AnchorBottomRight
	case reference.KindLabel:
		panic("viewport: label " + s.String() + " cannot be anchored")
	default:
		panic(fmt.Sprintf("viewport: unknown selection kind %s", s.Kind()))
	}
}

// IsValidFor reports whether a is a legal anchor for s.
func (a Anchor) IsValidFor(s reference.Selection) bool {
	switch s.Kind() {
	case reference.KindCell, reference.KindColumn, reference.KindRow:
		return a == AnchorNone
	case reference.KindColumnRange:
		return a == AnchorNone || a == AnchorLeft || a == AnchorRight
	case reference.KindRowRange:
		return a == AnchorNone || a == AnchorTop || a == AnchorBottom
	case reference.KindCellRange:
		switch a {
		case AnchorNone, AnchorTopLeft, AnchorTopRight, AnchorBottomLeft, AnchorBottomRight:
			return true
		}
		return false
	default:
		return false
	}
}
