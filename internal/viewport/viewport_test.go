package viewport_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/sheetview/internal/parse"
	"github.com/dshills/sheetview/internal/reference"
	"github.com/dshills/sheetview/internal/viewport"
)

func TestViewportSetters(t *testing.T) {
	v := view("A1", "B2", viewport.AnchorNone)

	assert.True(t, v.Equal(v.SetHome(reference.MustParseCell("$A$1"))))
	assert.True(t, v.Equal(v.SetIncludeFrozenColumnsRows(false)))
	assert.True(t, v.Equal(v.SetNavigations(viewport.EmptyNavigationList)))

	moved := v.SetHome(reference.MustParseCell("C3"))
	assert.Equal(t, "C3", moved.Home().String())
	assert.Equal(t, "A1", v.Home().String(), "receiver is unchanged")
	assert.False(t, v.Equal(moved))

	cleared := v.ClearAnchoredSelection()
	_, ok := cleared.AnchoredSelection()
	assert.False(t, ok)
	_, ok = v.AnchoredSelection()
	assert.True(t, ok)
}

func TestViewportNavigate(t *testing.T) {
	tests := []struct {
		name        string
		start       viewport.Viewport
		navigations string
		home        string
		selection   string
	}{
		{"fold in order", view("A1", "B2", viewport.AnchorNone), "right,down,extend-right", "A1", "C3:D3 bottom-left"},
		{"compacted first", view("A1", "B2", viewport.AnchorNone), "right,left,down", "A1", "B3"},
		{"select clears earlier", view("A1", "B2", viewport.AnchorNone), "right,right,right,right,select cell D4,left", "A1", "C4"},
		{"scroll into view", view("A1", "B2", viewport.AnchorNone), "down,down,down", "A2", "B5"},
		{"nothing queued", view("A1", "B2", viewport.AnchorNone), "", "A1", "B2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := tt.start.SetNavigations(list(t, tt.navigations))
			got := start.Navigate(grid())

			assert.Equal(t, tt.home, got.Home().String())
			assert.Equal(t, tt.selection, selectionText(t, got))
			assert.True(t, got.Navigations().IsEmpty())
		})
	}
}

func TestURLFragment(t *testing.T) {
	a, err := viewport.NewAnchoredSelection(reference.MustParseSelection("B2:C3"), viewport.AnchorTopLeft)
	require.NoError(t, err)
	v := viewport.New(viewport.MustRectangle(reference.MustParseCell("$B$2"), 200, 100)).
		SetIncludeFrozenColumnsRows(true).
		SetAnchoredSelection(a).
		SetNavigations(list(t, "left,select cell A1"))

	want := "/home/B2/width/200/height/100/includeFrozenColumnsRows/true/selection/B2:C3/top-left/navigations/left column,select cell A1"
	assert.Equal(t, want, v.URLFragment())
	assert.Equal(t, want, v.String())
}

func TestURLFragmentRoundTrip(t *testing.T) {
	fragments := []string{
		"/home/A1/width/200/height/100",
		"/home/C3/width/640/height/480/includeFrozenColumnsRows/true",
		"/home/A1/width/200/height/100/selection/B2",
		"/home/A1/width/200/height/100/selection/$B$2",
		"/home/A1/width/200/height/100/selection/B:D",
		"/home/A1/width/200/height/100/selection/B:D/left",
		"/home/A1/width/200/height/100/selection/2:9/top",
		"/home/A1/width/200/height/100/selection/B2:D4/bottom-right",
		"/home/A1/width/200/height/100/selection/B2:D4/navigations/up 40px,extend-down row",
		"/home/A1/width/200/height/100/navigations/select row 3",
	}
	for _, text := range fragments {
		t.Run(text, func(t *testing.T) {
			v, err := viewport.ParseURLFragment(text)
			require.NoError(t, err)
			assert.Equal(t, text, v.URLFragment())

			again, err := viewport.ParseURLFragment(v.URLFragment())
			require.NoError(t, err)
			assert.True(t, v.Equal(again))
		})
	}
}

func TestParseURLFragmentFalseFrozen(t *testing.T) {
	v, err := viewport.ParseURLFragment("/home/A1/width/10/height/10/includeFrozenColumnsRows/false")
	require.NoError(t, err)
	assert.False(t, v.IncludeFrozenColumnsRows())
}

func TestParseURLFragmentErrors(t *testing.T) {
	tests := []struct {
		text string
		at   string // error offset is the first occurrence of at
	}{
		{"/house/A1/width/10/height/10", "use"},
		{"/home/A0/width/10/height/10", "0/"},
		{"/home/A1/width/0/height/10", "0/height"},
		{"/home/A1/width/10/height/", ""},
		{"/home/A1/width/10/height/10/includeFrozenColumnsRows/yes", "yes"},
		{"/home/A1/width/10/height/10/selection/Totals", "Totals"},
		{"/home/A1/width/10/height/10/selection/B2/left", "left"},
		{"/home/A1/width/10/height/10/selection/B2:C3/sideways", "sideways"},
		{"/home/A1/width/10/height/10/selection/B2:C3/top-left/extra", "/extra"},
		{"/home/A1/width/10/height/10/navigations/left,bogus", "bogus"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := viewport.ParseURLFragment(tt.text)
			var pe *parse.Error
			require.True(t, errors.As(err, &pe), "%v", err)
			want := len(tt.text)
			if tt.at != "" {
				want = strings.Index(tt.text, tt.at)
			}
			assert.Equal(t, want, pe.Offset)
			assert.Equal(t, tt.text, pe.Input)
		})
	}
}
