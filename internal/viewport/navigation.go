package viewport

import (
	"fmt"
	"strconv"

	"github.com/dshills/sheetview/internal/parse"
	"github.com/dshills/sheetview/internal/reference"
)

// NavigationKind identifies a navigation variant.
type NavigationKind uint8

// Navigation kinds. Step kinds move by one visible unit, pixel kinds by a
// pixel magnitude, and click kinds carry a target reference.
const (
	NavigationMoveLeft NavigationKind = iota
	NavigationMoveRight
	NavigationMoveUp
	NavigationMoveDown
	NavigationExtendLeft
	NavigationExtendRight
	NavigationExtendUp
	NavigationExtendDown
	NavigationScrollLeft
	NavigationScrollRight
	NavigationScrollUp
	NavigationScrollDown
	NavigationExtendScrollLeft
	NavigationExtendScrollRight
	NavigationExtendScrollUp
	NavigationExtendScrollDown
	NavigationSelectCell
	NavigationSelectColumn
	NavigationSelectRow
	NavigationExtendCell
	NavigationExtendColumn
	NavigationExtendRow
)

var navigationKindNames = [...]string{
	NavigationMoveLeft:          "MoveLeft",
	NavigationMoveRight:         "MoveRight",
	NavigationMoveUp:            "MoveUp",
	NavigationMoveDown:          "MoveDown",
	NavigationExtendLeft:        "ExtendLeft",
	NavigationExtendRight:       "ExtendRight",
	NavigationExtendUp:          "ExtendUp",
	NavigationExtendDown:        "ExtendDown",
	NavigationScrollLeft:        "ScrollLeft",
	NavigationScrollRight:       "ScrollRight",
	NavigationScrollUp:          "ScrollUp",
	NavigationScrollDown:        "ScrollDown",
	NavigationExtendScrollLeft:  "ExtendScrollLeft",
	NavigationExtendScrollRight: "ExtendScrollRight",
	NavigationExtendScrollUp:    "ExtendScrollUp",
	NavigationExtendScrollDown:  "ExtendScrollDown",
	NavigationSelectCell:        "SelectCell",
	NavigationSelectColumn:      "SelectColumn",
	NavigationSelectRow:         "SelectRow",
	NavigationExtendCell:        "ExtendCell",
	NavigationExtendColumn:      "ExtendColumn",
	NavigationExtendRow:         "ExtendRow",
}

// String returns the kind name.
func (k NavigationKind) String() string {
	if int(k) < len(navigationKindNames) {
		return navigationKindNames[k]
	}
	return "NavigationKind(" + strconv.Itoa(int(k)) + ")"
}

// direction is the axis and sign of a step or pixel navigation.
type direction uint8

const (
	directionLeft direction = iota
	directionRight
	directionUp
	directionDown
)

var directionWords = [...]string{
	directionLeft:  "left",
	directionRight: "right",
	directionUp:    "up",
	directionDown:  "down",
}

func (d direction) horizontal() bool {
	return d == directionLeft || d == directionRight
}

// unit is the step suffix: "column" for horizontal moves, "row" otherwise.
func (d direction) unit() string {
	if d.horizontal() {
		return "column"
	}
	return "row"
}

type category uint8

const (
	categoryStep category = iota
	categoryPixels
	categoryClick
)

func (k NavigationKind) category() category {
	switch {
	case k <= NavigationExtendDown:
		return categoryStep
	case k <= NavigationExtendScrollDown:
		return categoryPixels
	default:
		return categoryClick
	}
}

// direction is only meaningful for step and pixel kinds.
func (k NavigationKind) direction() direction {
	return direction(k % 4)
}

// extends reports whether the kind grows the selection rather than moving
// it.
func (k NavigationKind) extends() bool {
	switch k {
	case NavigationExtendLeft, NavigationExtendRight, NavigationExtendUp, NavigationExtendDown,
		NavigationExtendScrollLeft, NavigationExtendScrollRight, NavigationExtendScrollUp, NavigationExtendScrollDown,
		NavigationExtendCell, NavigationExtendColumn, NavigationExtendRow:
		return true
	}
	return false
}

// stepKind returns the step or pixel kind for dir.
func stepKind(base NavigationKind, dir direction) NavigationKind {
	return base + NavigationKind(dir)
}

// Navigation is a single queued input: a step, a pixel scroll, or a click.
// Navigation is an immutable value type and is comparable with ==.
type Navigation struct {
	kind   NavigationKind
	pixels int
	target reference.Selection
}

// MoveLeft moves the selection one visible column left.
func MoveLeft() Navigation { return Navigation{kind: NavigationMoveLeft} }

// MoveRight moves the selection one visible column right.
func MoveRight() Navigation { return Navigation{kind: NavigationMoveRight} }

// MoveUp moves the selection one visible row up.
func MoveUp() Navigation { return Navigation{kind: NavigationMoveUp} }

// MoveDown moves the selection one visible row down.
func MoveDown() Navigation { return Navigation{kind: NavigationMoveDown} }

// ExtendLeft grows or shrinks the selection by one visible column on its
// active side.
func ExtendLeft() Navigation { return Navigation{kind: NavigationExtendLeft} }

// ExtendRight is the rightward ExtendLeft.
func ExtendRight() Navigation { return Navigation{kind: NavigationExtendRight} }

// ExtendUp is the upward ExtendLeft.
func ExtendUp() Navigation { return Navigation{kind: NavigationExtendUp} }

// ExtendDown is the downward ExtendLeft.
func ExtendDown() Navigation { return Navigation{kind: NavigationExtendDown} }

// ScrollLeft scrolls the home left by pixels.
func ScrollLeft(pixels int) (Navigation, error) {
	return newPixels(NavigationScrollLeft, pixels)
}

// ScrollRight scrolls the home right by pixels.
func ScrollRight(pixels int) (Navigation, error) {
	return newPixels(NavigationScrollRight, pixels)
}

// ScrollUp scrolls the home up by pixels.
func ScrollUp(pixels int) (Navigation, error) {
	return newPixels(NavigationScrollUp, pixels)
}

// ScrollDown scrolls the home down by pixels.
func ScrollDown(pixels int) (Navigation, error) {
	return newPixels(NavigationScrollDown, pixels)
}

// ExtendScrollLeft scrolls left by pixels and extends the selection by the
// same distance.
func ExtendScrollLeft(pixels int) (Navigation, error) {
	return newPixels(NavigationExtendScrollLeft, pixels)
}

// ExtendScrollRight is the rightward ExtendScrollLeft.
func ExtendScrollRight(pixels int) (Navigation, error) {
	return newPixels(NavigationExtendScrollRight, pixels)
}

// ExtendScrollUp is the upward ExtendScrollLeft.
func ExtendScrollUp(pixels int) (Navigation, error) {
	return newPixels(NavigationExtendScrollUp, pixels)
}

// ExtendScrollDown is the downward ExtendScrollLeft.
func ExtendScrollDown(pixels int) (Navigation, error) {
	return newPixels(NavigationExtendScrollDown, pixels)
}

func newPixels(kind NavigationKind, pixels int) (Navigation, error) {
	if pixels <= 0 {
		return Navigation{}, fmt.Errorf("%s %d: %w", kind, pixels, ErrInvalidPixels)
	}
	return Navigation{kind: kind, pixels: pixels}, nil
}

// SelectCell replaces the selection with cell.
func SelectCell(cell reference.Cell) Navigation {
	return Navigation{kind: NavigationSelectCell, target: cell}
}

// SelectColumn replaces the selection with column.
func SelectColumn(column reference.Column) Navigation {
	return Navigation{kind: NavigationSelectColumn, target: column}
}

// SelectRow replaces the selection with row.
func SelectRow(row reference.Row) Navigation {
	return Navigation{kind: NavigationSelectRow, target: row}
}

// ExtendCell extends the selection from its anchor to cell.
func ExtendCell(cell reference.Cell) Navigation {
	return Navigation{kind: NavigationExtendCell, target: cell}
}

// ExtendColumn extends the selection from its anchor column to column.
func ExtendColumn(column reference.Column) Navigation {
	return Navigation{kind: NavigationExtendColumn, target: column}
}

// ExtendRow extends the selection from its anchor row to row.
func ExtendRow(row reference.Row) Navigation {
	return Navigation{kind: NavigationExtendRow, target: row}
}

// Kind returns the variant.
func (n Navigation) Kind() NavigationKind {
	return n.kind
}

// Pixels returns the pixel magnitude of scroll kinds and zero otherwise.
func (n Navigation) Pixels() int {
	return n.pixels
}

// Target returns the click target, or nil for step and pixel kinds.
func (n Navigation) Target() reference.Selection {
	return n.target
}

// IsOpposite reports whether n and other cancel each other. Only step
// moves and step extends on the same axis in opposite directions cancel.
func (n Navigation) IsOpposite(other Navigation) bool {
	switch n.kind {
	case NavigationMoveLeft:
		return other.kind == NavigationMoveRight
	case NavigationMoveRight:
		return other.kind == NavigationMoveLeft
	case NavigationMoveUp:
		return other.kind == NavigationMoveDown
	case NavigationMoveDown:
		return other.kind == NavigationMoveUp
	case NavigationExtendLeft:
		return other.kind == NavigationExtendRight
	case NavigationExtendRight:
		return other.kind == NavigationExtendLeft
	case NavigationExtendUp:
		return other.kind == NavigationExtendDown
	case NavigationExtendDown:
		return other.kind == NavigationExtendUp
	case NavigationScrollLeft, NavigationScrollRight, NavigationScrollUp, NavigationScrollDown,
		NavigationExtendScrollLeft, NavigationExtendScrollRight, NavigationExtendScrollUp, NavigationExtendScrollDown,
		NavigationSelectCell, NavigationSelectColumn, NavigationSelectRow,
		NavigationExtendCell, NavigationExtendColumn, NavigationExtendRow:
		return false
	default:
		panic("viewport: unknown navigation " + n.kind.String())
	}
}

// IsClearPrevious reports whether n makes every earlier navigation in a
// list irrelevant. Only the select kinds do.
func (n Navigation) IsClearPrevious() bool {
	switch n.kind {
	case NavigationSelectCell, NavigationSelectColumn, NavigationSelectRow:
		return true
	}
	return false
}

// Text returns the canonical text form, e.g. "extend-left column",
// "down 40px" or "select cell B3".
func (n Navigation) Text() string {
	prefix := ""
	if n.kind.extends() {
		prefix = "extend-"
	}
	switch n.kind.category() {
	case categoryStep:
		dir := n.kind.direction()
		return prefix + directionWords[dir] + " " + dir.unit()
	case categoryPixels:
		return prefix + directionWords[n.kind.direction()] + " " + strconv.Itoa(n.pixels) + "px"
	case categoryClick:
		verb := "select "
		if n.kind.extends() {
			verb = "extend "
		}
		return verb + kindWord(n.target.Kind()) + " " + n.target.String()
	default:
		panic("viewport: unknown navigation " + n.kind.String())
	}
}

// String implements fmt.Stringer.
func (n Navigation) String() string {
	return n.Text()
}

func kindWord(k reference.Kind) string {
	switch k {
	case reference.KindCell:
		return "cell"
	case reference.KindColumn:
		return "column"
	case reference.KindRow:
		return "row"
	default:
		panic("viewport: no click target of kind " + k.String())
	}
}

// ParseNavigation parses one navigation in the form produced by Text. A
// bare direction such as "left" is accepted as a step.
func ParseNavigation(text string) (Navigation, error) {
	s := parse.NewScanner(text)
	switch {
	case s.Consume("select "):
		return parseClick(s, false)
	case s.Consume("extend-"):
		return parseDirectional(s, true)
	case s.Consume("extend "):
		return parseClick(s, true)
	default:
		return parseDirectional(s, false)
	}
}

func parseDirectional(s *parse.Scanner, extend bool) (Navigation, error) {
	dir, ok := scanDirection(s)
	if !ok {
		return Navigation{}, s.Errorf("expected left, right, up or down")
	}

	stepBase, pixelBase := NavigationMoveLeft, NavigationScrollLeft
	if extend {
		stepBase, pixelBase = NavigationExtendLeft, NavigationExtendScrollLeft
	}
	if s.Done() {
		return Navigation{kind: stepKind(stepBase, dir)}, nil
	}
	if err := s.Expect(" "); err != nil {
		return Navigation{}, err
	}
	if s.Consume(dir.unit()) {
		if !s.Done() {
			return Navigation{}, s.Errorf("unexpected character")
		}
		return Navigation{kind: stepKind(stepBase, dir)}, nil
	}

	start := s.Pos()
	digits := s.Digits()
	if digits == "" {
		return Navigation{}, s.Errorf("expected %q or pixels", dir.unit())
	}
	pixels, err := strconv.Atoi(digits)
	if err != nil || pixels <= 0 {
		return Navigation{}, parse.Errorf(s.Input(), start, "pixels must be a positive number")
	}
	if err := s.Expect("px"); err != nil {
		return Navigation{}, err
	}
	if !s.Done() {
		return Navigation{}, s.Errorf("unexpected character")
	}
	return Navigation{kind: stepKind(pixelBase, dir), pixels: pixels}, nil
}

func scanDirection(s *parse.Scanner) (direction, bool) {
	for d, word := range directionWords {
		if s.Consume(word) {
			return direction(d), true
		}
	}
	return 0, false
}

func parseClick(s *parse.Scanner, extend bool) (Navigation, error) {
	switch {
	case s.Consume("cell "):
		start := s.Pos()
		cell, err := reference.ParseCell(s.Rest())
		if err != nil {
			return Navigation{}, parse.Remap(err, s.Input(), start)
		}
		if extend {
			return ExtendCell(cell), nil
		}
		return SelectCell(cell), nil
	case s.Consume("column "):
		start := s.Pos()
		column, err := reference.ParseColumn(s.Rest())
		if err != nil {
			return Navigation{}, parse.Remap(err, s.Input(), start)
		}
		if extend {
			return ExtendColumn(column), nil
		}
		return SelectColumn(column), nil
	case s.Consume("row "):
		start := s.Pos()
		row, err := reference.ParseRow(s.Rest())
		if err != nil {
			return Navigation{}, parse.Remap(err, s.Input(), start)
		}
		if extend {
			return ExtendRow(row), nil
		}
		return SelectRow(row), nil
	default:
		return Navigation{}, s.Errorf("expected cell, column or row")
	}
}
