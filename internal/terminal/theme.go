package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/sheetview/internal/config"
)

// Theme holds the styles used to draw the sheet.
type Theme struct {
	Cell           tcell.Style
	Header         tcell.Style
	Selected       tcell.Style
	SelectedHeader tcell.Style
	Status         tcell.Style
}

// NewTheme builds a theme from #rrggbb colours. Text on the selection is
// switched to black or white for contrast, and the header of a selected
// column or row blends the two backgrounds.
func NewTheme(cfg config.TerminalConfig) (Theme, error) {
	bg, err := hex("background", cfg.Background)
	if err != nil {
		return Theme{}, err
	}
	text, err := hex("text_color", cfg.TextColor)
	if err != nil {
		return Theme{}, err
	}
	header, err := hex("header_color", cfg.HeaderColor)
	if err != nil {
		return Theme{}, err
	}
	selection, err := hex("selection_color", cfg.SelectionColor)
	if err != nil {
		return Theme{}, err
	}

	selectedText := contrast(selection)
	blended := header.BlendLab(selection, 0.5).Clamped()

	return Theme{
		Cell:           tcell.StyleDefault.Background(rgb(bg)).Foreground(rgb(text)),
		Header:         tcell.StyleDefault.Background(rgb(header)).Foreground(rgb(text)),
		Selected:       tcell.StyleDefault.Background(rgb(selection)).Foreground(rgb(selectedText)),
		SelectedHeader: tcell.StyleDefault.Background(rgb(blended)).Foreground(rgb(contrast(blended))).Bold(true),
		Status:         tcell.StyleDefault.Background(rgb(header)).Foreground(rgb(text)).Reverse(true),
	}, nil
}

func hex(name, value string) (colorful.Color, error) {
	c, err := colorful.Hex(value)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("terminal.%s: %w", name, err)
	}
	return c, nil
}

// contrast picks black or white text for the background c.
func contrast(c colorful.Color) colorful.Color {
	l, _, _ := c.Lab()
	if l > 0.6 {
		return colorful.Color{}
	}
	return colorful.Color{R: 1, G: 1, B: 1}
}

func rgb(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
