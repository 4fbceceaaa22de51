package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/sheetview/internal/reference"
	"github.com/dshills/sheetview/internal/viewport"
)

// keyNavigation maps a key press to a navigation. page is the viewport
// size used by the paging keys.
func keyNavigation(ev *tcell.EventKey, page viewport.Rectangle) (viewport.Navigation, bool) {
	shift := ev.Modifiers()&tcell.ModShift != 0

	step := func(move, extend func() viewport.Navigation) (viewport.Navigation, bool) {
		if shift {
			return extend(), true
		}
		return move(), true
	}
	scroll := func(px int, move, extend func(int) (viewport.Navigation, error)) (viewport.Navigation, bool) {
		f := move
		if shift {
			f = extend
		}
		n, err := f(px)
		return n, err == nil
	}

	switch ev.Key() {
	case tcell.KeyLeft:
		return step(viewport.MoveLeft, viewport.ExtendLeft)
	case tcell.KeyRight:
		return step(viewport.MoveRight, viewport.ExtendRight)
	case tcell.KeyUp:
		return step(viewport.MoveUp, viewport.ExtendUp)
	case tcell.KeyDown:
		return step(viewport.MoveDown, viewport.ExtendDown)
	case tcell.KeyPgUp:
		return scroll(page.Height(), viewport.ScrollUp, viewport.ExtendScrollUp)
	case tcell.KeyPgDn:
		return scroll(page.Height(), viewport.ScrollDown, viewport.ExtendScrollDown)
	case tcell.KeyHome:
		return scroll(page.Width(), viewport.ScrollLeft, viewport.ExtendScrollLeft)
	case tcell.KeyEnd:
		return scroll(page.Width(), viewport.ScrollRight, viewport.ExtendScrollRight)
	}
	return viewport.Navigation{}, false
}

// isQuit reports whether ev ends the session.
func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// mouseNavigation maps a mouse event to a navigation. Only presses of the
// primary button count as clicks; previous holds the button state of the
// last mouse event.
func mouseNavigation(ev *tcell.EventMouse, previous tcell.ButtonMask, f frame, wheel int) (viewport.Navigation, bool) {
	buttons := ev.Buttons()
	shift := ev.Modifiers()&tcell.ModShift != 0

	var (
		n   viewport.Navigation
		err error
	)
	switch {
	case buttons&tcell.WheelUp != 0:
		n, err = viewport.ScrollUp(wheel)
	case buttons&tcell.WheelDown != 0:
		n, err = viewport.ScrollDown(wheel)
	case buttons&tcell.WheelLeft != 0:
		n, err = viewport.ScrollLeft(wheel)
	case buttons&tcell.WheelRight != 0:
		n, err = viewport.ScrollRight(wheel)
	case buttons&tcell.Button1 != 0 && previous&tcell.Button1 == 0:
		target, ok := f.hit(ev.Position())
		if !ok {
			return viewport.Navigation{}, false
		}
		return click(target, shift), true
	default:
		return viewport.Navigation{}, false
	}
	return n, err == nil
}

func click(target reference.Selection, extend bool) viewport.Navigation {
	switch t := target.(type) {
	case reference.Cell:
		if extend {
			return viewport.ExtendCell(t)
		}
		return viewport.SelectCell(t)
	case reference.Column:
		if extend {
			return viewport.ExtendColumn(t)
		}
		return viewport.SelectColumn(t)
	case reference.Row:
		if extend {
			return viewport.ExtendRow(t)
		}
		return viewport.SelectRow(t)
	default:
		panic("terminal: click target must be a cell, column or row")
	}
}
