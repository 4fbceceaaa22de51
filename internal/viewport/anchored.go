package viewport

import (
	"fmt"

	"github.com/dshills/sheetview/internal/reference"
)

// AnchoredSelection pairs a selection with its anchor.
// AnchoredSelection is an immutable value type and is comparable with ==.
type AnchoredSelection struct {
	selection reference.Selection
	anchor    Anchor
}

// NewAnchoredSelection validates that anchor is legal for selection.
func NewAnchoredSelection(selection reference.Selection, anchor Anchor) (AnchoredSelection, error) {
	if selection == nil {
		return AnchoredSelection{}, fmt.Errorf("nil selection: %w", ErrInvalidAnchor)
	}
	if selection.Kind() == reference.KindLabel {
		return AnchoredSelection{}, fmt.Errorf("%s: %w", selection, ErrLabelNotAllowed)
	}
	if !anchor.IsValidFor(selection) {
		return AnchoredSelection{}, fmt.Errorf("%s %s: %w", selection.Kind(), anchor.KebabText(), ErrInvalidAnchor)
	}
	return AnchoredSelection{selection: selection, anchor: anchor}, nil
}

// Anchored pairs selection with its default anchor. Labels panic.
func Anchored(selection reference.Selection) AnchoredSelection {
	return AnchoredSelection{selection: selection, anchor: DefaultAnchor(selection)}
}

// mustAnchored is NewAnchoredSelection for combinations the caller has
// already proven legal.
func mustAnchored(selection reference.Selection, anchor Anchor) AnchoredSelection {
	a, err := NewAnchoredSelection(selection, anchor)
	if err != nil {
		panic(err)
	}
	return a
}

// Selection returns the selection.
func (a AnchoredSelection) Selection() reference.Selection {
	return a.selection
}

// Anchor returns the anchor.
func (a AnchoredSelection) Anchor() Anchor {
	return a.anchor
}

// IsZero returns true for the zero value, which holds no selection.
func (a AnchoredSelection) IsZero() bool {
	return a.selection == nil
}

// SetSelection replaces the selection. The anchor is kept when the new
// selection has the same variant and reset to the new variant's default
// otherwise.
func (a AnchoredSelection) SetSelection(selection reference.Selection) AnchoredSelection {
	if a.selection == selection {
		return a
	}
	if a.selection != nil && a.selection.Kind() == selection.Kind() {
		return mustAnchored(selection, a.anchor)
	}
	return Anchored(selection)
}

// SetAnchor replaces the anchor, validating it against the selection.
func (a AnchoredSelection) SetAnchor(anchor Anchor) (AnchoredSelection, error) {
	if a.anchor == anchor {
		return a, nil
	}
	return NewAnchoredSelection(a.selection, anchor)
}

// effectiveAnchor treats a range anchored at NONE as anchored at its
// default.
func (a AnchoredSelection) effectiveAnchor() Anchor {
	if a.anchor == AnchorNone {
		return DefaultAnchor(a.selection)
	}
	return a.anchor
}

// Opposite returns the active end of the selection: the cell, column or
// row opposite the anchor. Singles return themselves.
func (a AnchoredSelection) Opposite() reference.Selection {
	return a.effectiveAnchor().Opposite().Selection(a.selection)
}

// String returns the selection followed by the kebab anchor, or just the
// selection when the anchor is NONE.
func (a AnchoredSelection) String() string {
	if a.selection == nil {
		return ""
	}
	if a.anchor == AnchorNone {
		return a.selection.String()
	}
	return a.selection.String() + " " + a.anchor.KebabText()
}
