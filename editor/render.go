package editor

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/jankowiakdawid/pound/ui"
)

// render produces one complete frame: text rows, status bar, message
// bar, cursor. Cells accumulate in the screen's back buffer and Show
// flushes them in a single batched write, so a partial frame is never
// visible on the terminal.
func (e *Editor) render() {
	theme := e.cfg.GetTheme()
	base := theme.BaseStyle()

	e.screen.HideCursor()

	w, h := e.screen.Size()
	textRows := h - 2 // bottom two rows are the status and message bars
	if textRows < 0 {
		textRows = 0
	}
	e.view.Cols = w
	e.view.Rows = textRows
	e.view.Scroll(e.buf)

	for y := 0; y < textRows; y++ {
		e.drawRow(y, w, base)
	}

	if h >= 2 {
		statusBar := ui.StatusBar{
			Filename:    e.buf.Path,
			Dirty:       e.dirty > 0,
			DiskChanged: e.buf.ExternallyModified,
			Line:        e.view.Cursor.Line,
			Total:       e.buf.RowCount(),
			Theme:       theme,
		}
		statusBar.Render(e.screen, 0, h-2, w)

		messageBar := ui.MessageBar{Message: e.message(), Theme: theme}
		messageBar.Render(e.screen, 0, h-1, w)
	}

	cy := e.view.Cursor.Line - e.view.RowOff
	cx := e.view.RenderX(e.buf) - e.view.ColOff
	if cx >= 0 && cx < w && cy >= 0 && cy < textRows {
		e.screen.ShowCursor(cx, cy)
	}

	e.screen.Show()
}

// drawRow paints one text row: buffer content sliced by the column
// offset, a welcome banner on the empty buffer's middle row, or a tilde
// filler past the end of the buffer. Every cell is written, which is
// what erases the previous frame's content.
func (e *Editor) drawRow(y, width int, style tcell.Style) {
	fileRow := y + e.view.RowOff

	text := ""
	if fileRow < e.buf.RowCount() {
		rendered, err := e.buf.Rendered(fileRow)
		if err == nil {
			// ColOff counts rendered columns, which are runes here.
			runes := []rune(rendered)
			if e.view.ColOff < len(runes) {
				text = string(runes[e.view.ColOff:])
			}
		}
	} else if e.buf.RowCount() == 0 && y == e.view.Rows/2 {
		text = e.welcomeRow(width)
	} else {
		text = "~"
	}

	x := 0
	for _, ch := range text {
		if x >= width {
			break
		}
		e.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	for ; x < width; x++ {
		e.screen.SetContent(x, y, ' ', nil, style)
	}
}

func (e *Editor) welcomeRow(width int) string {
	welcome := fmt.Sprintf("Pound editor -- version %s", Version)
	welcome = runewidth.Truncate(welcome, width, "")
	padding := (width - runewidth.StringWidth(welcome)) / 2
	if padding <= 0 {
		return welcome
	}
	row := "~"
	for i := 1; i < padding; i++ {
		row += " "
	}
	return row + welcome
}
