package editor

import "github.com/jankowiakdawid/pound/buffer"

type Direction int

const (
	MoveUp Direction = iota
	MoveDown
	MoveLeft
	MoveRight
	MoveHome
	MoveEnd
)

// View owns the logical cursor and the scroll offsets that define the
// visible window into the buffer. Rows and Cols describe the text area
// (screen minus the two bar lines) and are refreshed from the terminal
// geometry before every frame.
type View struct {
	Cursor buffer.Cursor
	RowOff int
	ColOff int
	Rows   int
	Cols   int
}

// Move applies one cursor movement, clamped to the buffer. Left at the
// start of a row wraps to the end of the previous row; Right past the
// end wraps to the start of the next. The cursor row may come to rest
// one past the last row.
func (v *View) Move(d Direction, b *buffer.Buffer) {
	c := &v.Cursor
	switch d {
	case MoveLeft:
		if c.Col > 0 {
			c.Col--
		} else if c.Line > 0 {
			c.Line--
			c.Col = b.RowLen(c.Line)
		}
	case MoveRight:
		if c.Line < b.RowCount() {
			if c.Col < b.RowLen(c.Line) {
				c.Col++
			} else {
				c.Line++
				c.Col = 0
			}
		}
	case MoveUp:
		if c.Line > 0 {
			c.Line--
		}
	case MoveDown:
		if c.Line < b.RowCount() {
			c.Line++
		}
	case MoveHome:
		c.Col = 0
	case MoveEnd:
		if c.Line < b.RowCount() {
			c.Col = b.RowLen(c.Line)
		}
	}

	// Snap the column onto the (possibly shorter) row we landed on.
	if max := b.RowLen(c.Line); c.Col > max {
		c.Col = max
	}
}

// Page jumps the cursor to the viewport edge, then steps one screen of
// single-row moves. The edge jump happens before the per-row clamps, so
// on a buffer shorter than one screen the first row is clamped twice;
// that mirrors repeated single moves exactly.
func (v *View) Page(d Direction, b *buffer.Buffer) {
	switch d {
	case MoveUp:
		v.Cursor.Line = v.RowOff
	case MoveDown:
		v.Cursor.Line = v.RowOff + v.Rows - 1
		if v.Cursor.Line > b.RowCount() {
			v.Cursor.Line = b.RowCount()
		}
	default:
		return
	}
	for i := 0; i < v.Rows; i++ {
		v.Move(d, b)
	}
}

// RenderX maps the cursor's raw column to its tab-expanded column.
func (v *View) RenderX(b *buffer.Buffer) int {
	raw, err := b.Raw(v.Cursor.Line)
	if err != nil {
		return 0
	}
	return buffer.RenderWidth(raw, v.Cursor.Col, b.TabStop)
}

// Scroll adjusts the offsets so the cursor is inside the visible
// window: shrink the offset first, then grow it, on both axes. After
// this call rowOff <= line < rowOff+Rows and the render-column
// equivalent both hold.
func (v *View) Scroll(b *buffer.Buffer) {
	rx := v.RenderX(b)

	if v.Cursor.Line < v.RowOff {
		v.RowOff = v.Cursor.Line
	}
	if v.Rows > 0 && v.Cursor.Line >= v.RowOff+v.Rows {
		v.RowOff = v.Cursor.Line - v.Rows + 1
	}
	if rx < v.ColOff {
		v.ColOff = rx
	}
	if v.Cols > 0 && rx >= v.ColOff+v.Cols {
		v.ColOff = rx - v.Cols + 1
	}
}
