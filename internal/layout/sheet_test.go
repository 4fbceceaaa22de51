package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/sheetview/internal/reference"
	"github.com/dshills/sheetview/internal/viewport"
)

func col(text string) reference.Column { return reference.MustParseColumn(text) }
func row(text string) reference.Row    { return reference.MustParseRow(text) }

func TestBuilderRejectsInvalidSizes(t *testing.T) {
	_, err := NewBuilder().DefaultColumnWidth(0).Build()
	require.ErrorIs(t, err, ErrInvalidLayout)

	_, err = NewBuilder().RowHeight(row("3"), -1).Build()
	require.ErrorIs(t, err, ErrInvalidLayout)

	_, err = NewBuilder().FreezeColumns(-1).Build()
	require.ErrorIs(t, err, ErrInvalidLayout)
}

func TestBuilderIsolation(t *testing.T) {
	b := NewBuilder()
	s := b.MustBuild()
	b.HideColumns(col("A"))

	assert.False(t, s.IsColumnHidden(col("A")))
	assert.True(t, b.MustBuild().IsColumnHidden(col("A")))
}

func TestSizes(t *testing.T) {
	s := NewBuilder().
		DefaultColumnWidth(50).
		DefaultRowHeight(25).
		ColumnWidth(col("B"), 80).
		RowHeight(row("2"), 40).
		MustBuild()

	assert.Equal(t, 50, s.ColumnWidth(col("A")))
	assert.Equal(t, 80, s.ColumnWidth(col("$B")))
	assert.Equal(t, 25, s.RowHeight(row("1")))
	assert.Equal(t, 40, s.RowHeight(row("2")))
}

func TestMoves(t *testing.T) {
	s := NewBuilder().HideColumns(col("B"), col("C")).HideRows(row("1")).MustBuild()

	tests := []struct {
		name string
		got  func() (string, bool)
		want string
		ok   bool
	}{
		{"right skips hidden", colResult(s.MoveRight, "A"), "D", true},
		{"left skips hidden", colResult(s.MoveLeft, "D"), "A", true},
		{"left at boundary", colResult(s.MoveLeft, "A"), "A", true},
		{"right at boundary", colResult(s.MoveRight, "XFD"), "XFD", true},
		{"up onto hidden boundary from visible", rowResult(s.MoveUp, "2"), "2", true},
		{"up from hidden start", rowResult(s.MoveUp, "1"), "", false},
		{"down skips hidden", rowResult(s.MoveDown, "1"), "2", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.got()
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestMoveEverythingHidden(t *testing.T) {
	s := NewBuilder().HideColumns(col("A"), col("B"), col("C")).MustBuild()

	_, ok := s.MoveLeft(col("C"))
	assert.False(t, ok)

	got, ok := s.MoveRight(col("C"))
	require.True(t, ok)
	assert.Equal(t, "D", got.String())
}

func TestPixelWalk(t *testing.T) {
	s := NewBuilder().DefaultColumnWidth(50).DefaultRowHeight(20).MustBuild()

	tests := []struct {
		name   string
		move   func(reference.Column, int) (reference.Column, bool)
		start  string
		pixels int
		want   string
	}{
		{"overshoot accepted", s.RightPixels, "A", 60, "C"},
		{"exact width lands one further", s.RightPixels, "A", 50, "C"},
		{"under one width", s.RightPixels, "A", 49, "B"},
		{"zero moves one", s.RightPixels, "A", 0, "B"},
		{"left", s.LeftPixels, "E", 60, "C"},
		{"left stops at boundary", s.LeftPixels, "C", 1000, "A"},
		{"left from first column", s.LeftPixels, "A", 10, "A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.move(col(tt.start), tt.pixels)
			require.True(t, ok)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestPixelWalkHiddenAreFree(t *testing.T) {
	s := NewBuilder().DefaultRowHeight(20).HideRows(row("2"), row("3")).MustBuild()

	got, ok := s.DownPixels(row("1"), 10)
	require.True(t, ok)
	assert.Equal(t, "4", got.String())

	got, ok = s.UpPixels(row("4"), 10)
	require.True(t, ok)
	assert.Equal(t, "1", got.String())
}

func TestPixelWalkNegativePanics(t *testing.T) {
	s := NewBuilder().MustBuild()
	assert.Panics(t, func() { s.RightPixels(col("A"), -1) })
}

func TestWindows(t *testing.T) {
	s := NewBuilder().DefaultColumnWidth(50).DefaultRowHeight(25).MustBuild()

	w := s.Windows(viewport.MustRectangle(reference.MustParseCell("A1"), 200, 100), true)
	assert.Equal(t, "A1:D4", w.String())

	w = s.Windows(viewport.MustRectangle(reference.MustParseCell("C3"), 120, 60), false)
	assert.Equal(t, "C3:D4", w.String())
}

func TestWindowsAlwaysShowOneUnit(t *testing.T) {
	s := NewBuilder().DefaultColumnWidth(500).DefaultRowHeight(25).MustBuild()

	w := s.Windows(viewport.MustRectangle(reference.MustParseCell("B2"), 100, 25), false)
	assert.Equal(t, "B2", w.Ranges()[0].Begin().String())
	assert.Equal(t, "B2:B2", w.String())
}

func TestWindowsSkipHidden(t *testing.T) {
	s := NewBuilder().DefaultColumnWidth(50).DefaultRowHeight(25).HideColumns(col("B")).MustBuild()

	w := s.Windows(viewport.MustRectangle(reference.MustParseCell("A1"), 100, 25), false)
	assert.Equal(t, "A1:C1", w.String())
}

func TestWindowsFrozen(t *testing.T) {
	s := NewBuilder().
		DefaultColumnWidth(50).
		DefaultRowHeight(25).
		FreezeColumns(1).
		FreezeRows(1).
		MustBuild()
	rect := viewport.MustRectangle(reference.MustParseCell("E10"), 150, 75)

	w := s.Windows(rect, true)
	assert.Equal(t, "A1:A1,E1:F1,A10:A11,E10:F11", w.String())
	assert.True(t, w.ContainsCell(reference.MustParseCell("A11")))
	assert.False(t, w.ContainsCell(reference.MustParseCell("B2")))

	w = s.Windows(rect, false)
	assert.Equal(t, "E10:G12", w.String())
}

func colResult(move func(reference.Column) (reference.Column, bool), start string) func() (string, bool) {
	return func() (string, bool) {
		c, ok := move(col(start))
		return c.String(), ok
	}
}

func rowResult(move func(reference.Row) (reference.Row, bool), start string) func() (string, bool) {
	return func() (string, bool) {
		r, ok := move(row(start))
		return r.String(), ok
	}
}
