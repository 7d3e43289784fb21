package editor

import "github.com/gdamore/tcell/v2"

type keyCode int

const (
	keyNone keyCode = iota
	keyRune
	keyUp
	keyDown
	keyLeft
	keyRight
	keyHome
	keyEnd
	keyPageUp
	keyPageDown
	keyBackspace
	keyDelete
	keyEnter
	keyQuit
	keySave
	keyCutLine
	keyPaste
)

// Key is the decoded form the session dispatches on. Code keyNone means
// a key the editor does not bind; it still counts as activity.
type Key struct {
	Code keyCode
	Rune rune
}

// decodeKey flattens a tcell key event into the session's key space.
func decodeKey(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyCtrlQ:
		return Key{Code: keyQuit}
	case tcell.KeyCtrlS:
		return Key{Code: keySave}
	case tcell.KeyCtrlK:
		return Key{Code: keyCutLine}
	case tcell.KeyCtrlU:
		return Key{Code: keyPaste}
	case tcell.KeyUp:
		return Key{Code: keyUp}
	case tcell.KeyDown:
		return Key{Code: keyDown}
	case tcell.KeyLeft:
		return Key{Code: keyLeft}
	case tcell.KeyRight:
		return Key{Code: keyRight}
	case tcell.KeyHome:
		return Key{Code: keyHome}
	case tcell.KeyEnd:
		return Key{Code: keyEnd}
	case tcell.KeyPgUp:
		return Key{Code: keyPageUp}
	case tcell.KeyPgDn:
		return Key{Code: keyPageDown}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Key{Code: keyBackspace}
	case tcell.KeyDelete:
		return Key{Code: keyDelete}
	case tcell.KeyEnter:
		return Key{Code: keyEnter}
	case tcell.KeyTab:
		return Key{Code: keyRune, Rune: '\t'}
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0 {
			return Key{Code: keyRune, Rune: ev.Rune()}
		}
	}
	return Key{Code: keyNone}
}

// applyKey runs one dispatch cycle of the session state machine. The
// returned error is non-nil only when a bounds error escapes a clamped
// path, which means an invariant broke; the run loop aborts on it.
func (e *Editor) applyKey(k Key) error {
	if k.Code != keyQuit {
		e.quitRemaining = e.cfg.QuitConfirmations
	}

	switch k.Code {
	case keyQuit:
		if e.dirty == 0 {
			e.quit = true
			return nil
		}
		e.quitRemaining--
		if e.quitRemaining <= 0 {
			e.quit = true
			return nil
		}
		e.setMessage("WARNING! File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitRemaining)

	case keyUp:
		e.view.Move(MoveUp, e.buf)
	case keyDown:
		e.view.Move(MoveDown, e.buf)
	case keyLeft:
		e.view.Move(MoveLeft, e.buf)
	case keyRight:
		e.view.Move(MoveRight, e.buf)
	case keyHome:
		e.view.Move(MoveHome, e.buf)
	case keyEnd:
		e.view.Move(MoveEnd, e.buf)
	case keyPageUp:
		e.view.Page(MoveUp, e.buf)
	case keyPageDown:
		e.view.Page(MoveDown, e.buf)

	case keyRune:
		return e.insertRune(k.Rune)
	case keyEnter:
		return e.insertNewline()
	case keyBackspace:
		return e.deleteBackward()
	case keyDelete:
		return e.deleteForward()

	case keySave:
		e.save()
	case keyCutLine:
		return e.cutLine()
	case keyPaste:
		return e.paste()
	}
	return nil
}
