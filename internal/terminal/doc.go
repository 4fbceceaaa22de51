// Package terminal is the tcell front end for a viewport.
//
// The screen shows a header row of column names, a gutter of row numbers,
// the cells the viewport windows cover and a status line holding the URL
// fragment. Sheet pixels map to terminal cells through the configured
// pixels per character and pixels per line.
//
// Key map:
//
//	arrows              move the selection
//	shift+arrows        extend the selection
//	PgUp/PgDn           scroll one window height
//	shift+PgUp/PgDn     scroll and extend
//	Home/End            scroll one window width left or right
//	click               select a cell, column or row header
//	shift+click         extend to the clicked cell, column or row
//	wheel               scroll
//	q, Esc, Ctrl-C      quit
package terminal
