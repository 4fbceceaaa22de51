package config

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/sheetview/internal/config/loader"
	"github.com/dshills/sheetview/internal/layout"
	"github.com/dshills/sheetview/internal/reference"
	"github.com/dshills/sheetview/internal/viewport"
)

// EnvPrefix starts every environment override.
const EnvPrefix = "SHEETVIEW_"

// Config holds all settings.
type Config struct {
	Sheet    SheetConfig    `toml:"sheet"`
	Viewport ViewportConfig `toml:"viewport"`
	Terminal TerminalConfig `toml:"terminal"`
}

// SheetConfig describes the sheet geometry used when no workbook is open.
type SheetConfig struct {
	DefaultColumnWidth int            `toml:"default_column_width"`
	DefaultRowHeight   int            `toml:"default_row_height"`
	FrozenColumns      int            `toml:"frozen_columns"`
	FrozenRows         int            `toml:"frozen_rows"`
	HiddenColumns      []string       `toml:"hidden_columns"`
	HiddenRows         []string       `toml:"hidden_rows"`
	ColumnWidths       map[string]int `toml:"column_widths"`
	RowHeights         map[string]int `toml:"row_heights"`
}

// ViewportConfig describes the initial viewport.
type ViewportConfig struct {
	Home          string `toml:"home"`
	Width         int    `toml:"width"`
	Height        int    `toml:"height"`
	IncludeFrozen bool   `toml:"include_frozen"`
	Selection     string `toml:"selection"`
	Anchor        string `toml:"anchor"`
}

// TerminalConfig controls the terminal front end.
type TerminalConfig struct {
	// PixelsPerChar is the sheet width of one terminal column.
	PixelsPerChar int `toml:"pixels_per_char"`
	// PixelsPerLine is the sheet height of one terminal line.
	PixelsPerLine int `toml:"pixels_per_line"`
	// ScrollPixels is the distance of one mouse wheel notch.
	ScrollPixels   int    `toml:"scroll_pixels"`
	HeaderColor    string `toml:"header_color"`
	SelectionColor string `toml:"selection_color"`
	TextColor      string `toml:"text_color"`
	Background     string `toml:"background"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Sheet: SheetConfig{
			DefaultColumnWidth: layout.DefaultColumnWidth,
			DefaultRowHeight:   layout.DefaultRowHeight,
			ColumnWidths:       map[string]int{},
			RowHeights:         map[string]int{},
		},
		Viewport: ViewportConfig{
			Home:   "A1",
			Width:  800,
			Height: 480,
		},
		Terminal: TerminalConfig{
			PixelsPerChar:  8,
			PixelsPerLine:  20,
			ScrollPixels:   60,
			HeaderColor:    "#3a3a3a",
			SelectionColor: "#2d5aa0",
			TextColor:      "#e0e0e0",
			Background:     "#1c1c1c",
		},
	}
}

// Load layers the file at path and the process environment over the
// defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	return LoadFrom(loader.NewTOMLLoader(path), loader.NewEnvLoader(EnvPrefix))
}

// LoadFrom layers each source over the defaults in order and validates the
// result.
func LoadFrom(sources ...loader.Loader) (*Config, error) {
	var merged map[string]any
	for _, src := range sources {
		m, err := src.Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, m)
	}

	cfg := Default()
	if len(merged) > 0 {
		data, err := toml.Marshal(merged)
		if err != nil {
			return nil, fmt.Errorf("encoding merged config: %w", err)
		}
		if err := decodeStrict(data, cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeStrict(data []byte, cfg *Config) error {
	d := toml.NewDecoder(bytes.NewReader(data))
	d.DisallowUnknownFields()
	if err := d.Decode(cfg); err != nil {
		var sme *toml.StrictMissingError
		if errors.As(err, &sme) {
			return &loader.ParseError{Path: "<merged>", Message: "unknown setting: " + sme.String(), Err: err}
		}
		return &loader.ParseError{Path: "<merged>", Message: err.Error(), Err: err}
	}
	return nil
}

// Validate checks every setting and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error
	positive := func(path string, v int) {
		if v <= 0 {
			errs = append(errs, invalid(path, v, "must be positive"))
		}
	}

	positive("sheet.default_column_width", c.Sheet.DefaultColumnWidth)
	positive("sheet.default_row_height", c.Sheet.DefaultRowHeight)
	if c.Sheet.FrozenColumns < 0 || c.Sheet.FrozenColumns > reference.MaxColumn {
		errs = append(errs, invalid("sheet.frozen_columns", c.Sheet.FrozenColumns, "out of range"))
	}
	if c.Sheet.FrozenRows < 0 || c.Sheet.FrozenRows > reference.MaxRow {
		errs = append(errs, invalid("sheet.frozen_rows", c.Sheet.FrozenRows, "out of range"))
	}
	for i, text := range c.Sheet.HiddenColumns {
		if _, err := reference.ParseColumnRange(text); err != nil {
			errs = append(errs, invalid(fmt.Sprintf("sheet.hidden_columns[%d]", i), text, "%v", err))
		}
	}
	for i, text := range c.Sheet.HiddenRows {
		if _, err := reference.ParseRowRange(text); err != nil {
			errs = append(errs, invalid(fmt.Sprintf("sheet.hidden_rows[%d]", i), text, "%v", err))
		}
	}
	for text, px := range c.Sheet.ColumnWidths {
		if _, err := reference.ParseColumn(text); err != nil {
			errs = append(errs, invalid("sheet.column_widths."+text, text, "%v", err))
		}
		positive("sheet.column_widths."+text, px)
	}
	for text, px := range c.Sheet.RowHeights {
		if _, err := reference.ParseRow(text); err != nil {
			errs = append(errs, invalid("sheet.row_heights."+text, text, "%v", err))
		}
		positive("sheet.row_heights."+text, px)
	}

	if _, err := c.Viewport.Build(); err != nil {
		errs = append(errs, err)
	}

	positive("terminal.pixels_per_char", c.Terminal.PixelsPerChar)
	positive("terminal.pixels_per_line", c.Terminal.PixelsPerLine)
	positive("terminal.scroll_pixels", c.Terminal.ScrollPixels)
	for path, hex := range map[string]string{
		"terminal.header_color":    c.Terminal.HeaderColor,
		"terminal.selection_color": c.Terminal.SelectionColor,
		"terminal.text_color":      c.Terminal.TextColor,
		"terminal.background":      c.Terminal.Background,
	} {
		if _, err := colorful.Hex(hex); err != nil {
			errs = append(errs, invalid(path, hex, "not a #rrggbb color"))
		}
	}

	return errors.Join(errs...)
}

// Layout builds the sheet geometry.
func (s SheetConfig) Layout() (*layout.Sheet, error) {
	b := layout.NewBuilder().
		DefaultColumnWidth(s.DefaultColumnWidth).
		DefaultRowHeight(s.DefaultRowHeight).
		FreezeColumns(s.FrozenColumns).
		FreezeRows(s.FrozenRows)

	for _, text := range s.HiddenColumns {
		r, err := reference.ParseColumnRange(text)
		if err != nil {
			return nil, invalid("sheet.hidden_columns", text, "%v", err)
		}
		for i := r.Begin().Value(); i <= r.End().Value(); i++ {
			b.HideColumns(reference.MustColumn(i))
		}
	}
	for _, text := range s.HiddenRows {
		r, err := reference.ParseRowRange(text)
		if err != nil {
			return nil, invalid("sheet.hidden_rows", text, "%v", err)
		}
		for i := r.Begin().Value(); i <= r.End().Value(); i++ {
			b.HideRows(reference.MustRow(i))
		}
	}
	for text, px := range s.ColumnWidths {
		c, err := reference.ParseColumn(text)
		if err != nil {
			return nil, invalid("sheet.column_widths."+text, text, "%v", err)
		}
		b.ColumnWidth(c, px)
	}
	for text, px := range s.RowHeights {
		r, err := reference.ParseRow(text)
		if err != nil {
			return nil, invalid("sheet.row_heights."+text, text, "%v", err)
		}
		b.RowHeight(r, px)
	}
	return b.Build()
}

// Build creates the initial viewport.
func (v ViewportConfig) Build() (viewport.Viewport, error) {
	home, err := reference.ParseCell(v.Home)
	if err != nil {
		return viewport.Viewport{}, invalid("viewport.home", v.Home, "%v", err)
	}
	rect, err := viewport.NewRectangle(home, v.Width, v.Height)
	if err != nil {
		return viewport.Viewport{}, invalid("viewport.size", strconv.Itoa(v.Width)+"x"+strconv.Itoa(v.Height), "%v", err)
	}
	vp := viewport.New(rect).SetIncludeFrozenColumnsRows(v.IncludeFrozen)
	if v.Selection == "" {
		if v.Anchor != "" {
			return viewport.Viewport{}, invalid("viewport.anchor", v.Anchor, "anchor without selection")
		}
		return vp, nil
	}

	sel, err := reference.ParseSelection(v.Selection)
	if err != nil {
		return viewport.Viewport{}, invalid("viewport.selection", v.Selection, "%v", err)
	}
	if sel.Kind() == reference.KindLabel {
		return viewport.Viewport{}, invalid("viewport.selection", v.Selection, "%v", viewport.ErrLabelNotAllowed)
	}
	anchor := viewport.DefaultAnchor(sel)
	if v.Anchor != "" {
		if anchor, err = viewport.ParseAnchor(v.Anchor); err != nil {
			return viewport.Viewport{}, invalid("viewport.anchor", v.Anchor, "%v", err)
		}
	}
	a, err := viewport.NewAnchoredSelection(sel, anchor)
	if err != nil {
		return viewport.Viewport{}, invalid("viewport.anchor", v.Anchor, "%v", err)
	}
	return vp.SetAnchoredSelection(a), nil
}
