package terminal

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/sheetview/internal/config"
	"github.com/dshills/sheetview/internal/layout"
	"github.com/dshills/sheetview/internal/reference"
	"github.com/dshills/sheetview/internal/viewport"
)

type mapText map[string]string

func (m mapText) CellText(cell reference.Cell) string {
	return m[cell.ToRelative().String()]
}

// newApp draws a sheet of 64x20 pixel cells at 8 pixels per character and
// 20 per line, so every column is 8 characters wide and every row one line.
// The screen leaves room for columns A:E and rows 1:10.
func newApp(t *testing.T, sheet *layout.Sheet, text TextSource) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(gutterWidth+40, 12)

	vp, err := config.Default().Viewport.Build()
	require.NoError(t, err)
	app, err := New(screen, sheet, text, vp, config.Default().Terminal, nil)
	require.NoError(t, err)
	return app, screen
}

func key(k tcell.Key, mod tcell.ModMask) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, mod)
}

func selection(t *testing.T, app *App) string {
	t.Helper()
	a, ok := app.Viewport().AnchoredSelection()
	if !ok {
		return ""
	}
	return a.Selection().String()
}

func TestNewFitsViewportToScreen(t *testing.T) {
	app, _ := newApp(t, layout.NewBuilder().MustBuild(), nil)
	assert.Equal(t, "/home/A1/width/320/height/200/includeFrozenColumnsRows/true", app.Viewport().URLFragment())
	require.Len(t, app.frame.columns, 5)
	require.Len(t, app.frame.rows, 10)
	assert.Equal(t, "E", app.frame.columns[4].column.String())
	assert.Equal(t, gutterWidth+32, app.frame.columns[4].x)
}

func TestFrameHit(t *testing.T) {
	app, _ := newApp(t, layout.NewBuilder().MustBuild(), nil)
	f := app.frame

	tests := []struct {
		x, y int
		want string
	}{
		{gutterWidth, 0, "A"},
		{gutterWidth + 9, 0, "B"},
		{0, 3, "3"},
		{gutterWidth + 12, 2, "B2"},
		{0, 0, ""},
		{gutterWidth + 40, 1, ""},
		{gutterWidth, 11, ""},
	}
	for _, tt := range tests {
		got, ok := f.hit(tt.x, tt.y)
		if tt.want == "" {
			assert.False(t, ok, "(%d,%d)", tt.x, tt.y)
			continue
		}
		require.True(t, ok, "(%d,%d)", tt.x, tt.y)
		assert.Equal(t, tt.want, got.String())
	}
}

func TestFrameSkipsHiddenAndFrozenFirst(t *testing.T) {
	sheet := layout.NewBuilder().
		FreezeColumns(1).
		HideColumns(reference.MustParseColumn("C")).
		MustBuild()
	rect := viewport.MustRectangle(reference.MustParseCell("B1"), 192, 40)
	f := newFrame(sheet.Windows(rect, true), sheet, Scale{PixelsPerChar: 8, PixelsPerLine: 20})

	var names []string
	for _, c := range f.columns {
		names = append(names, c.column.String())
	}
	assert.Equal(t, []string{"A", "B", "D"}, names)
	assert.Len(t, f.rows, 2)
}

func TestKeysNavigate(t *testing.T) {
	app, _ := newApp(t, layout.NewBuilder().MustBuild(), nil)

	assert.True(t, app.HandleEvent(key(tcell.KeyRight, tcell.ModNone)))
	assert.Equal(t, "B1", selection(t, app))

	app.HandleEvent(key(tcell.KeyDown, tcell.ModShift))
	assert.Equal(t, "B1:B2", selection(t, app))

	app.HandleEvent(key(tcell.KeyLeft, tcell.ModNone))
	assert.Equal(t, "A", selection(t, app)[:1])
}

func TestPageDownScrollsOneWindow(t *testing.T) {
	sheet := layout.NewBuilder().MustBuild()
	app, _ := newApp(t, sheet, nil)

	want, ok := sheet.DownPixels(reference.MustParseRow("1"), 200)
	require.True(t, ok)

	app.HandleEvent(key(tcell.KeyPgDn, tcell.ModNone))
	assert.Equal(t, want.String(), app.Viewport().Home().Row().String())
	assert.Equal(t, "", selection(t, app))
}

func TestMouseClicks(t *testing.T) {
	app, _ := newApp(t, layout.NewBuilder().MustBuild(), nil)

	app.HandleEvent(tcell.NewEventMouse(gutterWidth+9, 2, tcell.Button1, tcell.ModNone))
	assert.Equal(t, "B2", selection(t, app))

	// Holding the button is not a second click.
	app.HandleEvent(tcell.NewEventMouse(gutterWidth+17, 3, tcell.Button1, tcell.ModShift))
	assert.Equal(t, "B2", selection(t, app))
	app.HandleEvent(tcell.NewEventMouse(gutterWidth+17, 3, tcell.ButtonNone, tcell.ModNone))

	app.HandleEvent(tcell.NewEventMouse(gutterWidth+17, 3, tcell.Button1, tcell.ModShift))
	assert.Equal(t, "B2:C3", selection(t, app))
	app.HandleEvent(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))

	app.HandleEvent(tcell.NewEventMouse(gutterWidth+25, 0, tcell.Button1, tcell.ModNone))
	assert.Equal(t, "D", selection(t, app))
	app.HandleEvent(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))

	app.HandleEvent(tcell.NewEventMouse(1, 4, tcell.Button1, tcell.ModNone))
	assert.Equal(t, "4", selection(t, app))
}

func TestMouseWheelScrolls(t *testing.T) {
	sheet := layout.NewBuilder().MustBuild()
	app, _ := newApp(t, sheet, nil)

	want, ok := sheet.DownPixels(reference.MustParseRow("1"), config.Default().Terminal.ScrollPixels)
	require.True(t, ok)

	app.HandleEvent(tcell.NewEventMouse(gutterWidth, 2, tcell.WheelDown, tcell.ModNone))
	assert.Equal(t, want.String(), app.Viewport().Home().Row().String())
}

func TestQuitKeys(t *testing.T) {
	app, _ := newApp(t, layout.NewBuilder().MustBuild(), nil)
	assert.False(t, app.HandleEvent(key(tcell.KeyEscape, tcell.ModNone)))
	assert.False(t, app.HandleEvent(key(tcell.KeyCtrlC, tcell.ModCtrl)))
	assert.False(t, app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.True(t, app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
}

func TestDraw(t *testing.T) {
	text := mapText{"A1": "Quarterly report", "B2": "42"}
	app, screen := newApp(t, layout.NewBuilder().MustBuild(), text)
	app.HandleEvent(tcell.NewEventMouse(gutterWidth+9, 2, tcell.Button1, tcell.ModNone))
	app.Draw()

	cells, width, height := screen.GetContents()
	require.Equal(t, gutterWidth+40, width)
	row := func(y int) string {
		var out []rune
		for x := 0; x < width; x++ {
			r := cells[y*width+x].Runes
			if len(r) == 0 {
				out = append(out, ' ')
				continue
			}
			out = append(out, r[0])
		}
		return string(out)
	}

	assert.Contains(t, row(0), "   A    ")
	assert.Equal(t, "1", row(1)[:1])
	assert.Contains(t, row(1), "Quarte…")
	assert.Contains(t, row(2), "42")
	assert.Contains(t, app.status, "/selection/B2")
	assert.Equal(t, "/home/A1/width/320", row(height-1)[:18])

	_, _, style, _ := screen.GetContent(gutterWidth+9, 2)
	assert.Equal(t, app.theme.Selected, style)
}

func TestReload(t *testing.T) {
	app, screen := newApp(t, layout.NewBuilder().MustBuild(), nil)

	cfg := config.Default().Terminal
	cfg.PixelsPerChar = 16
	wide := layout.NewBuilder().DefaultColumnWidth(128).MustBuild()
	require.NoError(t, app.Reload(wide, cfg))

	ev := screen.PollEvent()
	for {
		if _, ok := ev.(*reloadEvent); ok {
			break
		}
		ev = screen.PollEvent()
	}
	app.HandleEvent(ev)
	assert.Equal(t, 640, app.Viewport().Rectangle().Width())
	assert.Len(t, app.frame.columns, 5)
}

func TestReloadRejectsBadColours(t *testing.T) {
	app, _ := newApp(t, layout.NewBuilder().MustBuild(), nil)
	before := app.theme

	cfg := config.Default().Terminal
	cfg.SelectionColor = "blue"
	app.reload(&reloadEvent{cfg: cfg})
	assert.Equal(t, before, app.theme)
}

func TestRunStopsOnContext(t *testing.T) {
	app, _ := newApp(t, layout.NewBuilder().MustBuild(), nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}
}

func TestThemeContrast(t *testing.T) {
	cfg := config.Default().Terminal
	cfg.SelectionColor = "#ffffff"
	theme, err := NewTheme(cfg)
	require.NoError(t, err)
	fg, _, _ := theme.Selected.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), fg)

	cfg.SelectionColor = "#000080"
	theme, err = NewTheme(cfg)
	require.NoError(t, err)
	fg, _, _ = theme.Selected.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 255, 255), fg)

	cfg.HeaderColor = "nope"
	_, err = NewTheme(cfg)
	assert.ErrorContains(t, err, "terminal.header_color")
}
