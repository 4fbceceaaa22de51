// Package config provides the sheetview settings.
//
// Settings come from three layers, later layers winning:
//
//	1. Built-in defaults
//	2. The TOML file (sheetview.toml)
//	3. SHEETVIEW_<TABLE>_<KEY> environment variables
//
// A file looks like:
//
//	[sheet]
//	default_column_width = 64
//	default_row_height = 20
//	frozen_columns = 1
//	hidden_columns = ["C", "F:H"]
//	hidden_rows = ["10:12"]
//
//	[sheet.column_widths]
//	B = 120
//
//	[viewport]
//	home = "A1"
//	width = 800
//	height = 480
//	include_frozen = true
//	selection = "B2:D4"
//	anchor = "top-left"
//
//	[terminal]
//	pixels_per_char = 8
//	pixels_per_line = 20
//	selection_color = "#2d5aa0"
//
// The watcher sub-package reports file changes for live reload.
package config
