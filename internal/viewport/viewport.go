package viewport

import "github.com/dshills/sheetview/internal/reference"

// Viewport is the visible window of a sheet: its rectangle, whether frozen
// columns and rows are drawn, the current selection, and any navigations
// waiting to be applied.
//
// Viewport is an immutable value type. Setters return a modified copy, or
// the receiver itself when nothing changes.
type Viewport struct {
	rectangle                Rectangle
	includeFrozenColumnsRows bool
	selection                AnchoredSelection
	navigations              NavigationList
}

// New creates a viewport with no selection and no navigations.
func New(rectangle Rectangle) Viewport {
	return Viewport{rectangle: rectangle}
}

// Rectangle returns the pixel frame.
func (v Viewport) Rectangle() Rectangle {
	return v.rectangle
}

// Home returns the top-left cell of the scrolling area.
func (v Viewport) Home() reference.Cell {
	return v.rectangle.Home()
}

// IncludeFrozenColumnsRows reports whether frozen panes are drawn.
func (v Viewport) IncludeFrozenColumnsRows() bool {
	return v.includeFrozenColumnsRows
}

// AnchoredSelection returns the selection, if any.
func (v Viewport) AnchoredSelection() (AnchoredSelection, bool) {
	return v.selection, !v.selection.IsZero()
}

// Navigations returns the queued navigations.
func (v Viewport) Navigations() NavigationList {
	return v.navigations
}

// SetRectangle replaces the pixel frame.
func (v Viewport) SetRectangle(rectangle Rectangle) Viewport {
	if v.rectangle == rectangle {
		return v
	}
	v.rectangle = rectangle
	return v
}

// SetHome moves the rectangle to a new home cell.
func (v Viewport) SetHome(home reference.Cell) Viewport {
	return v.SetRectangle(v.rectangle.SetHome(home))
}

// SetIncludeFrozenColumnsRows sets whether frozen panes are drawn.
func (v Viewport) SetIncludeFrozenColumnsRows(include bool) Viewport {
	if v.includeFrozenColumnsRows == include {
		return v
	}
	v.includeFrozenColumnsRows = include
	return v
}

// SetAnchoredSelection replaces the selection. The zero AnchoredSelection
// clears it.
func (v Viewport) SetAnchoredSelection(selection AnchoredSelection) Viewport {
	if v.selection == selection {
		return v
	}
	v.selection = selection
	return v
}

// ClearAnchoredSelection removes the selection.
func (v Viewport) ClearAnchoredSelection() Viewport {
	return v.SetAnchoredSelection(AnchoredSelection{})
}

// SetNavigations replaces the queued navigations.
func (v Viewport) SetNavigations(navigations NavigationList) Viewport {
	if v.navigations.Equal(navigations) {
		return v
	}
	v.navigations = navigations
	return v
}

// Navigate compacts the queued navigations, applies them in order, and
// returns the result with an empty queue.
func (v Viewport) Navigate(ctx Context) Viewport {
	pending := v.navigations.Compact()
	v = v.SetNavigations(EmptyNavigationList)
	for _, n := range pending.navigations {
		v = n.Update(v, ctx)
	}
	return v
}

// Equal reports whether two viewports hold the same state.
func (v Viewport) Equal(other Viewport) bool {
	return v.rectangle == other.rectangle &&
		v.includeFrozenColumnsRows == other.includeFrozenColumnsRows &&
		v.selection == other.selection &&
		v.navigations.Equal(other.navigations)
}

// String returns the URL fragment.
func (v Viewport) String() string {
	return v.URLFragment()
}

// selectionOrHome returns the selection, or the home cell when nothing is
// selected.
func (v Viewport) selectionOrHome() AnchoredSelection {
	if v.selection.IsZero() {
		return Anchored(v.rectangle.Home())
	}
	return v.selection
}
