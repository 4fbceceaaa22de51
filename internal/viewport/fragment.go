package viewport

import (
	"strconv"
	"strings"

	"github.com/dshills/sheetview/internal/parse"
	"github.com/dshills/sheetview/internal/reference"
)

// URLFragment encodes the viewport as
//
//	/home/<cell>/width/<w>/height/<h>
//	[/includeFrozenColumnsRows/true]
//	[/selection/<selection>[/<anchor>]]
//	[/navigations/<list>]
//
// The anchor is omitted when it is NONE.
func (v Viewport) URLFragment() string {
	var b strings.Builder
	b.WriteString("/home/")
	b.WriteString(v.rectangle.Home().String())
	b.WriteString("/width/")
	b.WriteString(strconv.Itoa(v.rectangle.Width()))
	b.WriteString("/height/")
	b.WriteString(strconv.Itoa(v.rectangle.Height()))
	if v.includeFrozenColumnsRows {
		b.WriteString("/includeFrozenColumnsRows/true")
	}
	if !v.selection.IsZero() {
		b.WriteString("/selection/")
		b.WriteString(v.selection.Selection().String())
		if anchor := v.selection.Anchor(); anchor != AnchorNone {
			b.WriteString("/")
			b.WriteString(anchor.KebabText())
		}
	}
	if !v.navigations.IsEmpty() {
		b.WriteString("/navigations/")
		b.WriteString(v.navigations.Text())
	}
	return b.String()
}

// ParseURLFragment decodes the form written by URLFragment. Error offsets
// refer to text.
func ParseURLFragment(text string) (Viewport, error) {
	s := parse.NewScanner(text)

	if err := s.Expect("/home/"); err != nil {
		return Viewport{}, err
	}
	start := s.Pos()
	home, err := reference.ParseCell(s.Until('/'))
	if err != nil {
		return Viewport{}, parse.Remap(err, text, start)
	}
	if err := s.Expect("/width/"); err != nil {
		return Viewport{}, err
	}
	width, err := scanSize(s)
	if err != nil {
		return Viewport{}, err
	}
	if err := s.Expect("/height/"); err != nil {
		return Viewport{}, err
	}
	height, err := scanSize(s)
	if err != nil {
		return Viewport{}, err
	}
	rect, err := NewRectangle(home, width, height)
	if err != nil {
		return Viewport{}, err
	}
	v := New(rect)

	if s.Consume("/includeFrozenColumnsRows/") {
		switch {
		case s.Consume("true"):
			v = v.SetIncludeFrozenColumnsRows(true)
		case s.Consume("false"):
		default:
			return Viewport{}, s.Errorf("expected true or false")
		}
	}

	if s.Consume("/selection/") {
		selection, err := scanAnchoredSelection(s)
		if err != nil {
			return Viewport{}, err
		}
		v = v.SetAnchoredSelection(selection)
	}

	if s.Consume("/navigations/") {
		start := s.Pos()
		navigations, err := ParseNavigationList(s.Rest())
		if err != nil {
			return Viewport{}, parse.Remap(err, text, start)
		}
		s.Consume(s.Rest())
		v = v.SetNavigations(navigations)
	}

	if !s.Done() {
		return Viewport{}, s.Errorf("unexpected character")
	}
	return v, nil
}

// scanAnchoredSelection reads "<selection>[/<anchor>]".
func scanAnchoredSelection(s *parse.Scanner) (AnchoredSelection, error) {
	text := s.Input()
	start := s.Pos()
	selection, err := reference.ParseSelection(s.Until('/'))
	if err != nil {
		return AnchoredSelection{}, parse.Remap(err, text, start)
	}
	if selection.Kind() == reference.KindLabel {
		return AnchoredSelection{}, parse.Errorf(text, start, "%s", ErrLabelNotAllowed)
	}

	anchor := AnchorNone
	anchorStart := start
	if !strings.HasPrefix(s.Rest(), "/navigations/") && s.Consume("/") {
		anchorStart = s.Pos()
		anchor, err = ParseAnchor(s.Until('/'))
		if err != nil {
			return AnchoredSelection{}, parse.Remap(err, text, anchorStart)
		}
	}
	a, err := NewAnchoredSelection(selection, anchor)
	if err != nil {
		return AnchoredSelection{}, parse.Errorf(text, anchorStart, "%s", err)
	}
	return a, nil
}
