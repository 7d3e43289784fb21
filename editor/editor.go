package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/jankowiakdawid/pound/buffer"
	"github.com/jankowiakdawid/pound/clipboardx"
	"github.com/jankowiakdawid/pound/config"
)

const Version = "0.1.0"

// Editor is the session coordinator: one buffer, one view, one key
// event in, one frame out. All state mutation happens on the Run loop;
// the input reader and file watcher only post events into it.
type Editor struct {
	screen tcell.Screen
	cfg    *config.Config
	files  FileStore

	buf  *buffer.Buffer
	view View

	dirty         int // mutations since last save; 0 means clean
	quitRemaining int // quit presses left before a dirty quit is honored
	quit          bool

	statusMsg  string
	statusTime time.Time

	watcher  *fileWatcher
	lastSave time.Time
}

func New(cfg *config.Config) *Editor {
	return &Editor{
		cfg:           cfg,
		files:         osFileStore{},
		buf:           buffer.NewBuffer(cfg.TabStop),
		quitRemaining: cfg.QuitConfirmations,
	}
}

// Open loads path into the buffer. A missing file becomes an empty
// buffer that will be created on first save; any other read error is
// fatal, since there is no session to recover into yet.
func (e *Editor) Open(path string) error {
	text, err := e.files.ReadText(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			e.buf.Path = path
			return nil
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	e.buf.Load(text)
	e.buf.Path = path
	return nil
}

// Run drives the session until quit. The screen is restored on every
// exit path, including panics, via the deferred Fini.
func (e *Editor) Run(path string) error {
	if path != "" {
		if err := e.Open(path); err != nil {
			return err
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	screen.SetStyle(e.cfg.GetTheme().BaseStyle())
	screen.Clear()
	e.screen = screen

	if e.buf.Path != "" {
		if w, err := newFileWatcher(screen, e.buf.Path); err == nil {
			e.watcher = w
			defer w.Close()
		}
	}

	e.setMessage("HELP: Ctrl-S = save | Ctrl-K = cut line | Ctrl-U = paste | Ctrl-Q = quit")

	e.render()
	for !e.quit {
		ev := screen.PollEvent()
		if ev == nil {
			break
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if err := e.applyKey(decodeKey(ev)); err != nil {
				return err
			}
		case *tcell.EventResize:
			screen.Sync()
		case *fileWatchEvent:
			e.noteExternalChange()
		default:
			// Not an input for the session; no state change, no frame.
			continue
		}
		if e.quit {
			break
		}
		e.render()
	}
	return nil
}

// markMutated records one unsaved mutation. Any edit also cancels a
// pending quit countdown, which applyKey already handled by resetting
// the counter for every non-quit key.
func (e *Editor) markMutated() {
	e.dirty++
}

func (e *Editor) insertRune(ch rune) error {
	if e.view.Cursor.Line == e.buf.RowCount() {
		e.buf.AppendRow(nil)
	}
	if err := e.buf.InsertRune(e.view.Cursor.Line, e.view.Cursor.Col, ch); err != nil {
		return err
	}
	e.view.Cursor.Col++
	e.markMutated()
	return nil
}

func (e *Editor) insertNewline() error {
	c := &e.view.Cursor
	if c.Line == e.buf.RowCount() {
		e.buf.AppendRow(nil)
	} else if err := e.buf.SplitRow(c.Line, c.Col); err != nil {
		return err
	}
	c.Line++
	c.Col = 0
	e.markMutated()
	return nil
}

func (e *Editor) deleteBackward() error {
	c := &e.view.Cursor
	if c.Line == e.buf.RowCount() {
		return nil
	}
	switch {
	case c.Col > 0:
		if err := e.buf.DeleteRune(c.Line, c.Col-1); err != nil {
			return err
		}
		c.Col--
	case c.Line > 0:
		joinCol := e.buf.RowLen(c.Line - 1)
		if err := e.buf.JoinRow(c.Line); err != nil {
			return err
		}
		c.Line--
		c.Col = joinCol
	default:
		return nil
	}
	e.markMutated()
	return nil
}

// deleteForward is Backspace shifted right by one: delete under the
// cursor, or join the next row when the cursor sits at the row's end.
func (e *Editor) deleteForward() error {
	c := e.view.Cursor
	if c.Line >= e.buf.RowCount() {
		return nil
	}
	if c.Col < e.buf.RowLen(c.Line) {
		if err := e.buf.DeleteRune(c.Line, c.Col); err != nil {
			return err
		}
	} else if c.Line < e.buf.RowCount()-1 {
		if err := e.buf.JoinRow(c.Line + 1); err != nil {
			return err
		}
	} else {
		return nil
	}
	e.markMutated()
	return nil
}

func (e *Editor) cutLine() error {
	c := &e.view.Cursor
	if c.Line >= e.buf.RowCount() {
		return nil
	}
	text, err := e.buf.CutRow(c.Line)
	if err != nil {
		return err
	}
	clipboardx.Write(text)
	if c.Line > e.buf.RowCount() {
		c.Line = e.buf.RowCount()
	}
	if max := e.buf.RowLen(c.Line); c.Col > max {
		c.Col = max
	}
	e.markMutated()
	e.setMessage("Cut line to clipboard")
	return nil
}

func (e *Editor) paste() error {
	text := clipboardx.Read()
	if text == "" {
		e.setMessage("Clipboard is empty")
		return nil
	}
	c := &e.view.Cursor
	if c.Line == e.buf.RowCount() {
		e.buf.AppendRow(nil)
	}
	pos, err := e.buf.InsertText(c.Line, c.Col, text)
	if err != nil {
		return err
	}
	*c = pos
	e.markMutated()
	return nil
}

// save serializes the buffer through the file store. Failures stay in
// the session as status messages; the buffer is left untouched.
func (e *Editor) save() {
	if e.buf.Path == "" {
		e.setMessage("Can't save: %v", ErrNoFileName)
		return
	}
	content := e.buf.Contents()
	if e.buf.RowCount() > 0 {
		if e.buf.LineEnding == "CRLF" {
			content += "\r\n"
		} else {
			content += "\n"
		}
	}
	n, err := e.files.WriteText(e.buf.Path, content)
	if err != nil {
		e.setMessage("Can't save! I/O error: %v", err)
		return
	}
	e.dirty = 0
	e.buf.ExternallyModified = false
	e.lastSave = time.Now()
	e.setMessage("%d bytes written to disk", n)
}

func (e *Editor) setMessage(format string, args ...any) {
	e.statusMsg = fmt.Sprintf(format, args...)
	e.statusTime = time.Now()
}

// message returns the live status message, lazily clearing it once it
// is older than the configured timeout.
func (e *Editor) message() string {
	if e.statusMsg != "" && time.Since(e.statusTime) > e.cfg.MessageTimeout() {
		e.statusMsg = ""
	}
	return e.statusMsg
}

// noteExternalChange reacts to the watcher reporting a write to the
// open file. Writes within a short window of our own save are the save
// itself echoing back.
func (e *Editor) noteExternalChange() {
	if time.Since(e.lastSave) < 500*time.Millisecond {
		return
	}
	e.buf.ExternallyModified = true
	e.setMessage("WARNING! %s changed on disk. Saving will overwrite it.", e.buf.Path)
}
