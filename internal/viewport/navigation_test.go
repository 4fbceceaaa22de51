package viewport_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/sheetview/internal/layout"
	"github.com/dshills/sheetview/internal/parse"
	"github.com/dshills/sheetview/internal/reference"
	"github.com/dshills/sheetview/internal/viewport"
)

// grid is 50x25 pixel cells, so a 200x100 rectangle renders four columns
// and four rows.
func grid(configure ...func(*layout.Builder)) *layout.Sheet {
	b := layout.NewBuilder().DefaultColumnWidth(50).DefaultRowHeight(25)
	for _, c := range configure {
		c(b)
	}
	return b.MustBuild()
}

func hideColumns(columns ...string) func(*layout.Builder) {
	return func(b *layout.Builder) {
		for _, c := range columns {
			b.HideColumns(reference.MustParseColumn(c))
		}
	}
}

func hideRows(rows ...string) func(*layout.Builder) {
	return func(b *layout.Builder) {
		for _, r := range rows {
			b.HideRows(reference.MustParseRow(r))
		}
	}
}

func view(home string, selection string, anchor viewport.Anchor) viewport.Viewport {
	v := viewport.New(viewport.MustRectangle(reference.MustParseCell(home), 200, 100))
	if selection == "" {
		return v
	}
	a, err := viewport.NewAnchoredSelection(reference.MustParseSelection(selection), anchor)
	if err != nil {
		panic(err)
	}
	return v.SetAnchoredSelection(a)
}

func selectionText(t *testing.T, v viewport.Viewport) string {
	t.Helper()
	a, ok := v.AnchoredSelection()
	if !ok {
		return ""
	}
	return a.String()
}

func mustPixels(n viewport.Navigation, err error) viewport.Navigation {
	if err != nil {
		panic(err)
	}
	return n
}

func TestUpdateSteps(t *testing.T) {
	tests := []struct {
		name       string
		sheet      *layout.Sheet
		start      viewport.Viewport
		navigation viewport.Navigation
		home       string
		selection  string
	}{
		{"move right inside window", grid(), view("A1", "B2", viewport.AnchorNone), viewport.MoveRight(), "A1", "C2"},
		{"move right without selection starts at home", grid(), view("C3", "", viewport.AnchorNone), viewport.MoveRight(), "C3", "D3"},
		{"move right scrolls", grid(), view("A1", "D2", viewport.AnchorNone), viewport.MoveRight(), "B1", "E2"},
		{"move left scrolls", grid(), view("C3", "C3", viewport.AnchorNone), viewport.MoveLeft(), "B3", "B3"},
		{"move down scrolls", grid(), view("A1", "A4", viewport.AnchorNone), viewport.MoveDown(), "A2", "A5"},
		{"move up at top stays", grid(), view("A1", "A1", viewport.AnchorNone), viewport.MoveUp(), "A1", "A1"},
		{"move skips hidden", grid(hideColumns("C")), view("A1", "B2", viewport.AnchorNone), viewport.MoveRight(), "A1", "D2"},
		{"move with everything hidden clears", grid(hideColumns("A", "B", "C")), view("D1", "C2", viewport.AnchorNone), viewport.MoveLeft(), "D1", ""},
		{"move collapses range to active end", grid(), view("A1", "B2:C3", viewport.AnchorTopLeft), viewport.MoveRight(), "A1", "D3"},
		{"move column", grid(), view("A1", "B", viewport.AnchorNone), viewport.MoveRight(), "A1", "C"},
		{"horizontal move keeps rows", grid(), view("A1", "3:4", viewport.AnchorTop), viewport.MoveRight(), "A1", "3:4 top"},
		{"vertical move keeps columns", grid(), view("A1", "B", viewport.AnchorNone), viewport.MoveDown(), "A1", "B"},
		{"move row", grid(hideRows("3")), view("A1", "2", viewport.AnchorNone), viewport.MoveDown(), "A1", "4"},
		{"extend cell", grid(), view("A1", "B2", viewport.AnchorNone), viewport.ExtendRight(), "A1", "B2:C2 bottom-left"},
		{"extend cell left", grid(), view("A1", "B2", viewport.AnchorNone), viewport.ExtendLeft(), "A1", "A2:B2 bottom-right"},
		{"extend range down", grid(), view("A1", "B2:C2", viewport.AnchorBottomLeft), viewport.ExtendDown(), "A1", "B2:C3 top-left"},
		{"extend shrinks back to cell", grid(), view("A1", "B2:C2", viewport.AnchorBottomLeft), viewport.ExtendLeft(), "A1", "B2"},
		{"extend range shrinks toward anchor", grid(), view("A1", "B2:C3", viewport.AnchorTopRight), viewport.ExtendRight(), "A1", "C2:C3 top-right"},
		{"extend range past anchor", grid(), view("A1", "C2:C3", viewport.AnchorTopRight), viewport.ExtendRight(), "A1", "C2:D3 top-left"},
		{"extend range scrolls", grid(), view("A1", "B2:D2", viewport.AnchorBottomLeft), viewport.ExtendRight(), "B1", "B2:E2 bottom-left"},
		{"extend column", grid(), view("A1", "B", viewport.AnchorNone), viewport.ExtendRight(), "A1", "B:C left"},
		{"extend column range", grid(), view("A1", "B:D", viewport.AnchorRight), viewport.ExtendRight(), "A1", "C:D right"},
		{"extend row", grid(), view("A1", "2", viewport.AnchorNone), viewport.ExtendUp(), "A1", "1:2 bottom"},
		{"horizontal extend keeps rows", grid(), view("A1", "2:3", viewport.AnchorBottom), viewport.ExtendLeft(), "A1", "2:3 bottom"},
		{"extend from cell on hidden row clears", grid(hideRows("1")), view("A1", "", viewport.AnchorNone), viewport.ExtendRight(), "A1", ""},
		{"extend from cell on hidden column clears", grid(hideColumns("A")), view("A1", "", viewport.AnchorNone), viewport.ExtendDown(), "A1", ""},
		{"move from cell on hidden row clears", grid(hideRows("1")), view("A1", "", viewport.AnchorNone), viewport.MoveRight(), "A1", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.navigation.Update(tt.start, tt.sheet)
			assert.Equal(t, tt.home, got.Home().String())
			assert.Equal(t, tt.selection, selectionText(t, got))
		})
	}
}

func TestUpdatePixels(t *testing.T) {
	tests := []struct {
		name       string
		sheet      *layout.Sheet
		start      viewport.Viewport
		navigation viewport.Navigation
		home       string
		selection  string
	}{
		{"scroll right moves home and selection", grid(), view("A1", "B2", viewport.AnchorNone), mustPixels(viewport.ScrollRight(60)), "C1", "D2"},
		{"scroll without selection", grid(), view("A1", "", viewport.AnchorNone), mustPixels(viewport.ScrollDown(30)), "A3", ""},
		{"scroll left at boundary", grid(), view("A1", "A1", viewport.AnchorNone), mustPixels(viewport.ScrollLeft(10)), "A1", "A1"},
		{"scroll from hidden home clears", grid(hideColumns("A")), view("A1", "B2", viewport.AnchorNone), mustPixels(viewport.ScrollLeft(10)), "A1", ""},
		{"extend scroll", grid(), view("A1", "B2", viewport.AnchorNone), mustPixels(viewport.ExtendScrollDown(30)), "A3", "B2:B4 top-right"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.navigation.Update(tt.start, tt.sheet)
			assert.Equal(t, tt.home, got.Home().String())
			assert.Equal(t, tt.selection, selectionText(t, got))
		})
	}
}

func TestUpdateClicks(t *testing.T) {
	cell := reference.MustParseCell
	column := reference.MustParseColumn
	row := reference.MustParseRow

	tests := []struct {
		name       string
		sheet      *layout.Sheet
		start      viewport.Viewport
		navigation viewport.Navigation
		selection  string
	}{
		{"select cell outside window", grid(), view("A1", "B2", viewport.AnchorNone), viewport.SelectCell(cell("Z100")), "Z100"},
		{"select hidden cell", grid(hideRows("5")), view("A1", "B2", viewport.AnchorNone), viewport.SelectCell(cell("C5")), ""},
		{"select column", grid(), view("A1", "B2:C3", viewport.AnchorTopLeft), viewport.SelectColumn(column("D")), "D"},
		{"select row", grid(), view("A1", "", viewport.AnchorNone), viewport.SelectRow(row("7")), "7"},
		{"extend cell from cell", grid(), view("A1", "B2", viewport.AnchorNone), viewport.ExtendCell(cell("D4")), "B2:D4 top-left"},
		{"extend cell from range keeps anchor corner", grid(), view("A1", "B2:D4", viewport.AnchorTopLeft), viewport.ExtendCell(cell("A1")), "A1:B2 bottom-right"},
		{"extend cell onto anchor", grid(), view("A1", "B2:D4", viewport.AnchorTopLeft), viewport.ExtendCell(cell("B2")), "B2"},
		{"extend cell along one axis", grid(), view("A1", "B2:D4", viewport.AnchorBottomRight), viewport.ExtendCell(cell("D1")), "D1:D4 bottom-right"},
		{"extend cell from column replaces", grid(), view("A1", "B", viewport.AnchorNone), viewport.ExtendCell(cell("C3")), "C3"},
		{"extend column from cell", grid(), view("A1", "B2", viewport.AnchorNone), viewport.ExtendColumn(column("D")), "B:D left"},
		{"extend column from range", grid(), view("A1", "B:D", viewport.AnchorRight), viewport.ExtendColumn(column("F")), "D:F left"},
		{"extend column from row replaces", grid(), view("A1", "3", viewport.AnchorNone), viewport.ExtendColumn(column("F")), "F"},
		{"extend row from cell range", grid(), view("A1", "B2:C5", viewport.AnchorBottomLeft), viewport.ExtendRow(row("1")), "1:5 bottom"},
		{"extend hidden row", grid(hideRows("9")), view("A1", "2", viewport.AnchorNone), viewport.ExtendRow(row("9")), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.navigation.Update(tt.start, tt.sheet)
			assert.Equal(t, "A1", got.Home().String(), "clicks never scroll")
			assert.Equal(t, tt.selection, selectionText(t, got))
		})
	}
}

func TestPixelConstructorsRejectNonPositive(t *testing.T) {
	for _, f := range []func(int) (viewport.Navigation, error){
		viewport.ScrollLeft, viewport.ScrollRight, viewport.ScrollUp, viewport.ScrollDown,
		viewport.ExtendScrollLeft, viewport.ExtendScrollRight, viewport.ExtendScrollUp, viewport.ExtendScrollDown,
	} {
		_, err := f(0)
		assert.ErrorIs(t, err, viewport.ErrInvalidPixels)
		_, err = f(-3)
		assert.ErrorIs(t, err, viewport.ErrInvalidPixels)
	}
}

func TestIsOpposite(t *testing.T) {
	pairs := [][2]viewport.Navigation{
		{viewport.MoveLeft(), viewport.MoveRight()},
		{viewport.MoveUp(), viewport.MoveDown()},
		{viewport.ExtendLeft(), viewport.ExtendRight()},
		{viewport.ExtendUp(), viewport.ExtendDown()},
	}
	for _, p := range pairs {
		assert.True(t, p[0].IsOpposite(p[1]), p[0].Text())
		assert.True(t, p[1].IsOpposite(p[0]), p[1].Text())
	}

	assert.False(t, viewport.MoveLeft().IsOpposite(viewport.ExtendRight()))
	assert.False(t, viewport.MoveLeft().IsOpposite(viewport.MoveUp()))
	assert.False(t, viewport.MoveLeft().IsOpposite(viewport.MoveLeft()))
	left := mustPixels(viewport.ScrollLeft(10))
	right := mustPixels(viewport.ScrollRight(10))
	assert.False(t, left.IsOpposite(right))
	assert.False(t, viewport.SelectCell(reference.MustParseCell("A1")).IsOpposite(viewport.SelectCell(reference.MustParseCell("A1"))))
}

func TestIsClearPrevious(t *testing.T) {
	assert.True(t, viewport.SelectCell(reference.MustParseCell("A1")).IsClearPrevious())
	assert.True(t, viewport.SelectColumn(reference.MustParseColumn("A")).IsClearPrevious())
	assert.True(t, viewport.SelectRow(reference.MustParseRow("1")).IsClearPrevious())
	assert.False(t, viewport.ExtendCell(reference.MustParseCell("A1")).IsClearPrevious())
	assert.False(t, viewport.MoveLeft().IsClearPrevious())
}

func TestNavigationText(t *testing.T) {
	tests := []struct {
		navigation viewport.Navigation
		text       string
	}{
		{viewport.MoveLeft(), "left column"},
		{viewport.MoveDown(), "down row"},
		{viewport.ExtendRight(), "extend-right column"},
		{viewport.ExtendUp(), "extend-up row"},
		{mustPixels(viewport.ScrollUp(40)), "up 40px"},
		{mustPixels(viewport.ExtendScrollLeft(5)), "extend-left 5px"},
		{viewport.SelectCell(reference.MustParseCell("B3")), "select cell B3"},
		{viewport.SelectColumn(reference.MustParseColumn("$C")), "select column $C"},
		{viewport.ExtendRow(reference.MustParseRow("7")), "extend row 7"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.text, tt.navigation.Text())

			got, err := viewport.ParseNavigation(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.navigation, got)
		})
	}
}

func TestParseNavigationShortForms(t *testing.T) {
	tests := map[string]viewport.Navigation{
		"left":        viewport.MoveLeft(),
		"right":       viewport.MoveRight(),
		"up":          viewport.MoveUp(),
		"down":        viewport.MoveDown(),
		"extend-left": viewport.ExtendLeft(),
		"extend-down": viewport.ExtendDown(),
	}
	for text, want := range tests {
		got, err := viewport.ParseNavigation(text)
		require.NoError(t, err, text)
		assert.Equal(t, want, got, text)
	}
}

func TestParseNavigationErrors(t *testing.T) {
	tests := []struct {
		text   string
		offset int
	}{
		{"", 0},
		{"sideways", 0},
		{"left row", 5},
		{"up column", 3},
		{"leftcolumn", 4},
		{"left 0px", 5},
		{"left 10", 7},
		{"left 10pixels", 8},
		{"left column!", 11},
		{"select cell A0", 13},
		{"select sheet A1", 7},
		{"extend column 1", 14},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := viewport.ParseNavigation(tt.text)
			var pe *parse.Error
			require.True(t, errors.As(err, &pe), "%v", err)
			assert.Equal(t, tt.offset, pe.Offset)
			assert.ErrorIs(t, err, parse.ErrSyntax)
		})
	}
}
