// Package viewport tracks the visible window of a sheet and the selection
// inside it.
//
// A Viewport is a Rectangle (home cell plus pixel width and height), an
// optional AnchoredSelection and a queue of Navigations. Navigations are
// keyboard steps, pixel scrolls and mouse clicks:
//
//	v := viewport.New(viewport.MustRectangle(home, 800, 600))
//	v = v.SetNavigations(viewport.NewNavigationList(viewport.MoveRight(), viewport.ExtendDown()))
//	v = v.Navigate(sheet)
//
// All geometry comes from a Context, which answers hidden column and row
// queries, unit sizes, moves that skip hidden units, pixel walks and the
// set of rendered windows.
//
// # Anchors
//
// The anchor of a range is the fixed end that stays put while the
// selection is extended; the opposite end is the active end. Single cells,
// columns and rows have the NONE anchor.
//
// # Text forms
//
// Navigations, navigation lists, anchors and whole viewports have text
// forms that round trip. ParseURLFragment reads the form written by
// Viewport.URLFragment, reporting the byte offset of any syntax error as a
// *parse.Error.
package viewport
