package terminal

import (
	"context"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/sheetview/internal/config"
	"github.com/dshills/sheetview/internal/reference"
	"github.com/dshills/sheetview/internal/viewport"
)

// TextSource supplies the text shown in a cell.
type TextSource interface {
	CellText(cell reference.Cell) string
}

// NoText is a TextSource of empty cells.
type NoText struct{}

// CellText implements TextSource.
func (NoText) CellText(reference.Cell) string { return "" }

// App runs the event loop for one viewport.
type App struct {
	screen tcell.Screen
	logger *slog.Logger

	sheet  viewport.Context
	text   TextSource
	vp     viewport.Viewport
	scale  Scale
	wheel  int
	theme  Theme
	frame  frame
	mouse  tcell.ButtonMask
	status string
}

// reloadEvent carries new settings through the screen's event queue so
// they are applied between input events.
type reloadEvent struct {
	tcell.EventTime
	sheet viewport.Context
	cfg   config.TerminalConfig
}

// New creates an app drawing on screen, which must already be
// initialised. Frozen panes are always drawn.
func New(screen tcell.Screen, sheet viewport.Context, text TextSource, vp viewport.Viewport, cfg config.TerminalConfig, logger *slog.Logger) (*App, error) {
	theme, err := NewTheme(cfg)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if text == nil {
		text = NoText{}
	}
	a := &App{
		screen: screen,
		logger: logger,
		sheet:  sheet,
		text:   text,
		vp:     vp.SetIncludeFrozenColumnsRows(true),
		scale:  Scale{PixelsPerChar: cfg.PixelsPerChar, PixelsPerLine: cfg.PixelsPerLine},
		wheel:  cfg.ScrollPixels,
		theme:  theme,
	}
	a.resize()
	return a, nil
}

// Viewport returns the current viewport.
func (a *App) Viewport() viewport.Viewport {
	return a.vp
}

// Reload queues new settings. A nil sheet keeps the current one.
func (a *App) Reload(sheet viewport.Context, cfg config.TerminalConfig) error {
	ev := &reloadEvent{sheet: sheet, cfg: cfg}
	ev.SetEventNow()
	return a.screen.PostEvent(ev)
}

// Run draws and handles events until the user quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	a.Draw()
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok && ctx.Err() != nil {
			return ctx.Err()
		}
		if !a.HandleEvent(ev) {
			return nil
		}
		a.Draw()
	}
}

// HandleEvent applies one event and reports whether the loop continues.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if isQuit(e) {
			return false
		}
		if n, ok := keyNavigation(e, a.vp.Rectangle()); ok {
			a.navigate(n)
		}
	case *tcell.EventMouse:
		n, ok := mouseNavigation(e, a.mouse, a.frame, a.wheel)
		a.mouse = e.Buttons()
		if ok {
			a.navigate(n)
		}
	case *tcell.EventResize:
		a.screen.Sync()
		a.resize()
	case *reloadEvent:
		a.reload(e)
	}
	return true
}

func (a *App) navigate(n viewport.Navigation) {
	a.vp = a.vp.SetNavigations(a.vp.Navigations().Append(n)).Navigate(a.sheet)
	a.refresh()
	a.logger.Debug("navigate", "navigation", n.Text(), "fragment", a.status)
}

func (a *App) reload(e *reloadEvent) {
	theme, err := NewTheme(e.cfg)
	if err != nil {
		a.logger.Warn("config reload rejected", "error", err)
		return
	}
	a.theme = theme
	a.scale = Scale{PixelsPerChar: e.cfg.PixelsPerChar, PixelsPerLine: e.cfg.PixelsPerLine}
	a.wheel = e.cfg.ScrollPixels
	if e.sheet != nil {
		a.sheet = e.sheet
	}
	a.resize()
	a.logger.Info("config reloaded")
}

func (a *App) resize() {
	w, h := a.screen.Size()
	a.vp = a.vp.SetRectangle(a.scale.Rectangle(a.vp.Rectangle(), w, h))
	a.refresh()
}

func (a *App) refresh() {
	a.frame = newFrame(a.sheet.Windows(a.vp.Rectangle(), true), a.sheet, a.scale)
	a.status = a.vp.URLFragment()
}

// Draw paints the whole screen.
func (a *App) Draw() {
	s := a.screen
	s.Clear()
	w, h := s.Size()
	bottom := h - 1

	var sel reference.Selection
	if as, ok := a.vp.AnchoredSelection(); ok {
		sel = as.Selection()
	}

	fill(s, 0, 0, gutterWidth, 1, a.theme.Header)
	for _, c := range a.frame.columns {
		style := a.theme.Header
		if columnSelected(sel, c.column) {
			style = a.theme.SelectedHeader
		}
		fill(s, c.x, 0, c.width, 1, style)
		printCentered(s, c.x, 0, c.width, c.column.ToRelative().String(), style)
	}

	for _, r := range a.frame.rows {
		if r.y >= bottom {
			break
		}
		height := min(r.height, bottom-r.y)
		style := a.theme.Header
		if rowSelected(sel, r.row) {
			style = a.theme.SelectedHeader
		}
		fill(s, 0, r.y, gutterWidth, height, style)
		putText(s, 0, r.y, gutterWidth-1, r.row.ToRelative().String(), style)

		for _, c := range a.frame.columns {
			if c.x >= w {
				break
			}
			cell := reference.NewCell(c.column, r.row)
			style := a.theme.Cell
			if selected(sel, cell) {
				style = a.theme.Selected
			}
			fill(s, c.x, r.y, c.width, height, style)
			putText(s, c.x, r.y, c.width-1, a.text.CellText(cell), style)
		}
	}

	fill(s, 0, bottom, w, 1, a.theme.Status)
	putText(s, 0, bottom, w, a.status, a.theme.Status)
	s.Show()
}

func fill(s tcell.Screen, x, y, width, height int, style tcell.Style) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			s.SetContent(x+dx, y+dy, ' ', nil, style)
		}
	}
}

// putText writes text from (x, y), truncated to width display columns.
func putText(s tcell.Screen, x, y, width int, text string, style tcell.Style) {
	if width <= 0 {
		return
	}
	text = runewidth.Truncate(text, width, "…")
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func printCentered(s tcell.Screen, x, y, width int, text string, style tcell.Style) {
	pad := max(0, (width-runewidth.StringWidth(text))/2)
	putText(s, x+pad, y, width-pad, text, style)
}
