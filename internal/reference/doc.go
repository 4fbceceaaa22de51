// Package reference provides the already-parsed spreadsheet reference types
// consumed by the viewport engine.
//
// References are zero-based, immutable value types:
//
//   - Column and Row address a single column or row and may be absolute
//     (written with a leading '$').
//   - Cell combines a Column and a Row.
//   - ColumnRange, RowRange and CellRange are inclusive spans whose begin
//     is never after their end.
//   - Label names a reference indirectly; it cannot carry an anchor.
//
// All seven variants implement the sealed Selection interface. Code that
// needs per-variant behavior switches on the concrete type; every switch
// ends in a panic for unknown variants so a new variant cannot be missed
// silently.
//
// Text uses A1 notation: "B", "$B", "7", "B7", "$B$7", "B:D", "3:9",
// "B3:D9". Column letters are converted with excelize so limits match the
// xlsx format: 16384 columns (A..XFD) and 1048576 rows.
package reference
