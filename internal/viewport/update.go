package viewport

import (
	"fmt"

	"github.com/dshills/sheetview/internal/reference"
)

type columnMover func(reference.Column) (reference.Column, bool)

type rowMover func(reference.Row) (reference.Row, bool)

// Update applies n to v and returns the new viewport.
//
// Steps derive the new selection from the current one, or from the home
// cell when nothing is selected, then scroll the active end into view.
// Pixel scrolls move the home first and re-project the selection by the
// same distance. Clicks replace the selection and leave the home alone.
func (n Navigation) Update(v Viewport, ctx Context) Viewport {
	switch n.kind.category() {
	case categoryStep:
		current := v.selectionOrHome()
		next, ok := n.UpdateSelection(current.Selection(), current.Anchor(), ctx)
		if !ok {
			return v.ClearAnchoredSelection()
		}
		return n.rehome(v, next, ctx)
	case categoryPixels:
		home, ok := n.UpdateHome(v.Rectangle(), AnchoredSelection{}, ctx)
		if !ok {
			return v.ClearAnchoredSelection()
		}
		v = v.SetHome(home)
		current, has := v.AnchoredSelection()
		if !has {
			return v
		}
		next, ok := n.UpdateSelection(current.Selection(), current.Anchor(), ctx)
		if !ok {
			return v.ClearAnchoredSelection()
		}
		return v.SetAnchoredSelection(next)
	case categoryClick:
		current := v.selectionOrHome()
		next, ok := n.UpdateSelection(current.Selection(), current.Anchor(), ctx)
		if !ok {
			return v.ClearAnchoredSelection()
		}
		return v.SetAnchoredSelection(next)
	default:
		panic("viewport: unknown navigation " + n.kind.String())
	}
}

// rehome keeps the home when the active end of selection is rendered and
// scrolls it into view otherwise. Frozen columns and rows always count as
// rendered here.
func (n Navigation) rehome(v Viewport, selection AnchoredSelection, ctx Context) Viewport {
	rect := v.Rectangle()
	if ctx.Windows(rect, true).Contains(selection.Opposite()) {
		return v.SetAnchoredSelection(selection)
	}
	home, ok := n.UpdateHome(rect, selection, ctx)
	if !ok {
		return v.ClearAnchoredSelection()
	}
	return v.SetHome(home).SetAnchoredSelection(selection)
}

// UpdateSelection derives the selection that results from applying n to
// selection anchored at anchor. False means the result is no selection.
func (n Navigation) UpdateSelection(selection reference.Selection, anchor Anchor, ctx Context) (AnchoredSelection, bool) {
	current := mustAnchored(selection, anchor)
	switch n.kind {
	case NavigationMoveLeft, NavigationMoveRight, NavigationMoveUp, NavigationMoveDown,
		NavigationScrollLeft, NavigationScrollRight, NavigationScrollUp, NavigationScrollDown:
		if n.kind.direction().horizontal() {
			return moveHorizontal(current, n.columnMover(ctx), ctx)
		}
		return moveVertical(current, n.rowMover(ctx), ctx)
	case NavigationExtendLeft, NavigationExtendRight, NavigationExtendUp, NavigationExtendDown,
		NavigationExtendScrollLeft, NavigationExtendScrollRight, NavigationExtendScrollUp, NavigationExtendScrollDown:
		if n.kind.direction().horizontal() {
			return extendHorizontal(current, n.columnMover(ctx), ctx)
		}
		return extendVertical(current, n.rowMover(ctx), ctx)
	case NavigationSelectCell, NavigationSelectColumn, NavigationSelectRow:
		if n.targetHidden(ctx) {
			return AnchoredSelection{}, false
		}
		return Anchored(n.target), true
	case NavigationExtendCell:
		if n.targetHidden(ctx) {
			return AnchoredSelection{}, false
		}
		return extendToCell(current, n.target.(reference.Cell)), true
	case NavigationExtendColumn:
		if n.targetHidden(ctx) {
			return AnchoredSelection{}, false
		}
		return extendToColumn(current, n.target.(reference.Column)), true
	case NavigationExtendRow:
		if n.targetHidden(ctx) {
			return AnchoredSelection{}, false
		}
		return extendToRow(current, n.target.(reference.Row)), true
	default:
		panic("viewport: unknown navigation " + n.kind.String())
	}
}

// UpdateHome returns the home cell after n. Steps scroll the active end of
// selection into view, pixel kinds move the home by their magnitude, and
// clicks keep the home. False means no home could be found.
func (n Navigation) UpdateHome(rect Rectangle, selection AnchoredSelection, ctx Context) (reference.Cell, bool) {
	home := rect.Home()
	switch n.kind {
	case NavigationMoveLeft, NavigationMoveRight, NavigationMoveUp, NavigationMoveDown,
		NavigationExtendLeft, NavigationExtendRight, NavigationExtendUp, NavigationExtendDown:
		return scrollIntoView(rect, selection.Opposite(), ctx)
	case NavigationScrollLeft, NavigationScrollRight, NavigationScrollUp, NavigationScrollDown,
		NavigationExtendScrollLeft, NavigationExtendScrollRight, NavigationExtendScrollUp, NavigationExtendScrollDown:
		if n.kind.direction().horizontal() {
			column, ok := n.columnMover(ctx)(home.Column())
			return home.SetColumn(column), ok
		}
		row, ok := n.rowMover(ctx)(home.Row())
		return home.SetRow(row), ok
	case NavigationSelectCell, NavigationSelectColumn, NavigationSelectRow,
		NavigationExtendCell, NavigationExtendColumn, NavigationExtendRow:
		return home, true
	default:
		panic("viewport: unknown navigation " + n.kind.String())
	}
}

func (n Navigation) targetHidden(ctx Context) bool {
	return reference.IsHidden(n.target, ctx.IsColumnHidden, ctx.IsRowHidden)
}

func (n Navigation) columnMover(ctx Context) columnMover {
	pixels := n.kind.category() == categoryPixels
	switch {
	case n.kind.direction() == directionLeft && pixels:
		return func(c reference.Column) (reference.Column, bool) { return ctx.LeftPixels(c, n.pixels) }
	case n.kind.direction() == directionLeft:
		return ctx.MoveLeft
	case n.kind.direction() == directionRight && pixels:
		return func(c reference.Column) (reference.Column, bool) { return ctx.RightPixels(c, n.pixels) }
	case n.kind.direction() == directionRight:
		return ctx.MoveRight
	default:
		panic("viewport: " + n.kind.String() + " does not move columns")
	}
}

func (n Navigation) rowMover(ctx Context) rowMover {
	pixels := n.kind.category() == categoryPixels
	switch {
	case n.kind.direction() == directionUp && pixels:
		return func(r reference.Row) (reference.Row, bool) { return ctx.UpPixels(r, n.pixels) }
	case n.kind.direction() == directionUp:
		return ctx.MoveUp
	case n.kind.direction() == directionDown && pixels:
		return func(r reference.Row) (reference.Row, bool) { return ctx.DownPixels(r, n.pixels) }
	case n.kind.direction() == directionDown:
		return ctx.MoveDown
	default:
		panic("viewport: " + n.kind.String() + " does not move rows")
	}
}

// moveHorizontal collapses the selection onto its active end moved by one
// column mover step. Row selections are unchanged.
func moveHorizontal(current AnchoredSelection, move columnMover, ctx Context) (AnchoredSelection, bool) {
	switch active := current.Opposite().(type) {
	case reference.Cell:
		column, ok := move(active.Column())
		if !ok || ctx.IsRowHidden(active.Row()) {
			return AnchoredSelection{}, false
		}
		return Anchored(active.SetColumn(column)), true
	case reference.Column:
		column, ok := move(active)
		if !ok {
			return AnchoredSelection{}, false
		}
		return Anchored(column), true
	case reference.Row:
		return current, true
	default:
		panic(fmt.Sprintf("viewport: cannot move %T", active))
	}
}

// moveVertical is the row-axis moveHorizontal.
func moveVertical(current AnchoredSelection, move rowMover, ctx Context) (AnchoredSelection, bool) {
	switch active := current.Opposite().(type) {
	case reference.Cell:
		row, ok := move(active.Row())
		if !ok || ctx.IsColumnHidden(active.Column()) {
			return AnchoredSelection{}, false
		}
		return Anchored(active.SetRow(row)), true
	case reference.Row:
		row, ok := move(active)
		if !ok {
			return AnchoredSelection{}, false
		}
		return Anchored(row), true
	case reference.Column:
		return current, true
	default:
		panic(fmt.Sprintf("viewport: cannot move %T", active))
	}
}

// extendHorizontal keeps the anchored column fixed and moves the active
// column. Row selections are unchanged.
func extendHorizontal(current AnchoredSelection, move columnMover, ctx Context) (AnchoredSelection, bool) {
	switch sel := current.Selection().(type) {
	case reference.Cell:
		column, ok := move(sel.Column())
		if !ok || ctx.IsRowHidden(sel.Row()) {
			return AnchoredSelection{}, false
		}
		columns := reference.NewColumnRange(sel.Column(), column)
		side := columnSide(sel.Column(), column, AnchorRight)
		return cellRangeSelection(columns, reference.NewRowRange(sel.Row(), sel.Row()), side, AnchorBottom), true
	case reference.CellRange:
		anchor := current.effectiveAnchor()
		columnAnchor := anchor.ToColumnOrColumnRangeAnchor()
		fixed := columnAnchor.Column(sel.Columns())
		column, ok := move(columnAnchor.Opposite().Column(sel.Columns()))
		if !ok {
			return AnchoredSelection{}, false
		}
		columns := reference.NewColumnRange(fixed, column)
		side := columnSide(fixed, column, columnAnchor)
		return cellRangeSelection(columns, sel.Rows(), side, anchor.ToRowOrRowRangeAnchor()), true
	case reference.Column:
		column, ok := move(sel)
		if !ok {
			return AnchoredSelection{}, false
		}
		return columnSelection(sel, column, AnchorRight), true
	case reference.ColumnRange:
		anchor := current.effectiveAnchor()
		fixed := anchor.Column(sel)
		column, ok := move(anchor.Opposite().Column(sel))
		if !ok {
			return AnchoredSelection{}, false
		}
		return columnSelection(fixed, column, anchor), true
	case reference.Row, reference.RowRange:
		return current, true
	default:
		panic(fmt.Sprintf("viewport: cannot extend %T", sel))
	}
}

// extendVertical is the row-axis extendHorizontal.
func extendVertical(current AnchoredSelection, move rowMover, ctx Context) (AnchoredSelection, bool) {
	switch sel := current.Selection().(type) {
	case reference.Cell:
		row, ok := move(sel.Row())
		if !ok || ctx.IsColumnHidden(sel.Column()) {
			return AnchoredSelection{}, false
		}
		rows := reference.NewRowRange(sel.Row(), row)
		side := rowSide(sel.Row(), row, AnchorBottom)
		return cellRangeSelection(reference.NewColumnRange(sel.Column(), sel.Column()), rows, AnchorRight, side), true
	case reference.CellRange:
		anchor := current.effectiveAnchor()
		rowAnchor := anchor.ToRowOrRowRangeAnchor()
		fixed := rowAnchor.Row(sel.Rows())
		row, ok := move(rowAnchor.Opposite().Row(sel.Rows()))
		if !ok {
			return AnchoredSelection{}, false
		}
		rows := reference.NewRowRange(fixed, row)
		side := rowSide(fixed, row, rowAnchor)
		return cellRangeSelection(sel.Columns(), rows, anchor.ToColumnOrColumnRangeAnchor(), side), true
	case reference.Row:
		row, ok := move(sel)
		if !ok {
			return AnchoredSelection{}, false
		}
		return rowSelection(sel, row, AnchorBottom), true
	case reference.RowRange:
		anchor := current.effectiveAnchor()
		fixed := anchor.Row(sel)
		row, ok := move(anchor.Opposite().Row(sel))
		if !ok {
			return AnchoredSelection{}, false
		}
		return rowSelection(fixed, row, anchor), true
	case reference.Column, reference.ColumnRange:
		return current, true
	default:
		panic(fmt.Sprintf("viewport: cannot extend %T", sel))
	}
}

// extendToCell stretches a cell or cell range from its anchored corner to
// target, one axis at a time. Column and row selections are replaced.
func extendToCell(current AnchoredSelection, target reference.Cell) AnchoredSelection {
	var fixed reference.Cell
	columnHint, rowHint := AnchorRight, AnchorBottom
	switch sel := current.Selection().(type) {
	case reference.Cell:
		fixed = sel
	case reference.CellRange:
		anchor := current.effectiveAnchor()
		fixed = anchor.Cell(sel)
		columnHint, rowHint = anchor.ToColumnOrColumnRangeAnchor(), anchor.ToRowOrRowRangeAnchor()
	default:
		return Anchored(target)
	}
	return cellRangeSelection(
		reference.NewColumnRange(fixed.Column(), target.Column()),
		reference.NewRowRange(fixed.Row(), target.Row()),
		columnSide(fixed.Column(), target.Column(), columnHint),
		rowSide(fixed.Row(), target.Row(), rowHint),
	)
}

// extendToColumn stretches from the anchored column to target. Row
// selections are replaced.
func extendToColumn(current AnchoredSelection, target reference.Column) AnchoredSelection {
	var fixed reference.Column
	hint := AnchorRight
	switch sel := current.Selection().(type) {
	case reference.Column:
		fixed = sel
	case reference.ColumnRange:
		hint = current.effectiveAnchor()
		fixed = hint.Column(sel)
	case reference.Cell:
		fixed = sel.Column()
	case reference.CellRange:
		hint = current.effectiveAnchor().ToColumnOrColumnRangeAnchor()
		fixed = hint.Column(sel.Columns())
	default:
		return Anchored(target)
	}
	return columnSelection(fixed, target, hint)
}

// extendToRow stretches from the anchored row to target. Column selections
// are replaced.
func extendToRow(current AnchoredSelection, target reference.Row) AnchoredSelection {
	var fixed reference.Row
	hint := AnchorBottom
	switch sel := current.Selection().(type) {
	case reference.Row:
		fixed = sel
	case reference.RowRange:
		hint = current.effectiveAnchor()
		fixed = hint.Row(sel)
	case reference.Cell:
		fixed = sel.Row()
	case reference.CellRange:
		hint = current.effectiveAnchor().ToRowOrRowRangeAnchor()
		fixed = hint.Row(sel.Rows())
	default:
		return Anchored(target)
	}
	return rowSelection(fixed, target, hint)
}

// columnSide anchors the fixed column: LEFT when the active column is to
// its right, RIGHT when it is to its left, and hint when they coincide.
func columnSide(fixed, active reference.Column, hint Anchor) Anchor {
	switch fixed.Compare(active) {
	case -1:
		return AnchorLeft
	case 1:
		return AnchorRight
	default:
		return hint
	}
}

func rowSide(fixed, active reference.Row, hint Anchor) Anchor {
	switch fixed.Compare(active) {
	case -1:
		return AnchorTop
	case 1:
		return AnchorBottom
	default:
		return hint
	}
}

func columnSelection(fixed, active reference.Column, hint Anchor) AnchoredSelection {
	if fixed.Compare(active) == 0 {
		return Anchored(fixed)
	}
	return mustAnchored(reference.NewColumnRange(fixed, active), columnSide(fixed, active, hint))
}

func rowSelection(fixed, active reference.Row, hint Anchor) AnchoredSelection {
	if fixed.Compare(active) == 0 {
		return Anchored(fixed)
	}
	return mustAnchored(reference.NewRowRange(fixed, active), rowSide(fixed, active, hint))
}

// cellRangeSelection recombines per-axis results. A one by one range
// collapses to its cell.
func cellRangeSelection(columns reference.ColumnRange, rows reference.RowRange, columnAnchor, rowAnchor Anchor) AnchoredSelection {
	if columns.Count() == 1 && rows.Count() == 1 {
		return Anchored(reference.NewCell(columns.Begin(), rows.Begin()))
	}
	return mustAnchored(reference.CellRangeFrom(columns, rows), CombineAnchors(columnAnchor, rowAnchor))
}

// scrollIntoView returns a home that renders active, keeping the current
// home on any axis that already shows it.
func scrollIntoView(rect Rectangle, active reference.Selection, ctx Context) (reference.Cell, bool) {
	home := rect.Home()
	switch v := active.(type) {
	case reference.Cell:
		column, ok := scrollColumnIntoView(rect, v.Column(), ctx)
		if !ok {
			return home, false
		}
		rect = rect.SetHome(home.SetColumn(column))
		row, ok := scrollRowIntoView(rect, v.Row(), ctx)
		if !ok {
			return home, false
		}
		return reference.NewCell(column, row), true
	case reference.Column:
		column, ok := scrollColumnIntoView(rect, v, ctx)
		return home.SetColumn(column), ok
	case reference.Row:
		row, ok := scrollRowIntoView(rect, v, ctx)
		return home.SetRow(row), ok
	default:
		panic(fmt.Sprintf("viewport: cannot scroll to %T", active))
	}
}

// scrollColumnIntoView picks the home column. A target left of the home
// becomes the home; a target to the right is reached by walking the home
// left from the target for as long as the target stays rendered.
func scrollColumnIntoView(rect Rectangle, target reference.Column, ctx Context) (reference.Column, bool) {
	if ctx.IsColumnHidden(target) {
		return reference.Column{}, false
	}
	home := rect.Home()
	if ctx.Windows(rect, true).ContainsColumn(target) {
		return home.Column(), true
	}
	if target.Compare(home.Column()) < 0 {
		return target, true
	}
	column := target
	for {
		previous, ok := ctx.MoveLeft(column)
		if !ok || previous.Compare(column) >= 0 {
			return column, true
		}
		if !ctx.Windows(rect.SetHome(home.SetColumn(previous)), true).ContainsColumn(target) {
			return column, true
		}
		column = previous
	}
}

func scrollRowIntoView(rect Rectangle, target reference.Row, ctx Context) (reference.Row, bool) {
	if ctx.IsRowHidden(target) {
		return reference.Row{}, false
	}
	home := rect.Home()
	if ctx.Windows(rect, true).ContainsRow(target) {
		return home.Row(), true
	}
	if target.Compare(home.Row()) < 0 {
		return target, true
	}
	row := target
	for {
		previous, ok := ctx.MoveUp(row)
		if !ok || previous.Compare(row) >= 0 {
			return row, true
		}
		if !ctx.Windows(rect.SetHome(home.SetRow(previous)), true).ContainsRow(target) {
			return row, true
		}
		row = previous
	}
}
