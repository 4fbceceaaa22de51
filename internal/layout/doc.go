// Package layout provides Sheet, an in-memory description of column
// widths, row heights, hidden units and frozen panes that implements
// viewport.Context.
package layout
