package buffer

import (
	"errors"
	"strings"
)

// ErrOutOfRange reports a row or column index outside the buffer's
// current bounds. The dispatch layer always clamps before calling, so
// seeing this error means an invariant broke upstream.
var ErrOutOfRange = errors.New("buffer: index out of range")

// Buffer owns the ordered sequence of rows and their render caches.
// A freshly created buffer has zero rows; loading an empty file keeps
// it that way.
type Buffer struct {
	rows []Row

	Path               string
	TabStop            int
	LineEnding         string // "LF" or "CRLF", detected on load, preserved on save
	ExternallyModified bool   // file changed on disk while the buffer was open
}

func NewBuffer(tabStop int) *Buffer {
	if tabStop < 1 {
		tabStop = 1
	}
	return &Buffer{TabStop: tabStop, LineEnding: "LF"}
}

// Load replaces the buffer content with text, one row per line.
// CRLF line endings are detected, remembered, and normalized away; a
// single trailing line break is not treated as an extra empty row.
func (b *Buffer) Load(text string) {
	b.LineEnding = "LF"
	if strings.Contains(text, "\r\n") {
		b.LineEnding = "CRLF"
		text = strings.ReplaceAll(text, "\r\n", "\n")
	}
	text = strings.TrimSuffix(text, "\n")

	b.rows = b.rows[:0]
	if text == "" {
		return
	}
	for _, line := range strings.Split(text, "\n") {
		b.rows = append(b.rows, newRow([]rune(line), b.TabStop))
	}
}

func (b *Buffer) RowCount() int {
	return len(b.rows)
}

// RowLen returns the rune length of row at, or 0 when at is past the
// last row. Cursor clamping relies on the permissive out-of-range case.
func (b *Buffer) RowLen(at int) int {
	if at < 0 || at >= len(b.rows) {
		return 0
	}
	return len(b.rows[at].raw)
}

func (b *Buffer) Raw(at int) ([]rune, error) {
	if at < 0 || at >= len(b.rows) {
		return nil, ErrOutOfRange
	}
	return b.rows[at].raw, nil
}

func (b *Buffer) Rendered(at int) (string, error) {
	if at < 0 || at >= len(b.rows) {
		return "", ErrOutOfRange
	}
	return b.rows[at].rendered, nil
}

// InsertRune inserts ch into row at rune column col and rebuilds that
// row's render cache.
func (b *Buffer) InsertRune(row, col int, ch rune) error {
	if row < 0 || row >= len(b.rows) {
		return ErrOutOfRange
	}
	r := &b.rows[row]
	if col < 0 || col > len(r.raw) {
		return ErrOutOfRange
	}
	r.raw = append(r.raw, 0)
	copy(r.raw[col+1:], r.raw[col:])
	r.raw[col] = ch
	r.updateRender(b.TabStop)
	return nil
}

// DeleteRune removes the rune at (row, col) and rebuilds the cache.
func (b *Buffer) DeleteRune(row, col int) error {
	if row < 0 || row >= len(b.rows) {
		return ErrOutOfRange
	}
	r := &b.rows[row]
	if col < 0 || col >= len(r.raw) {
		return ErrOutOfRange
	}
	r.raw = append(r.raw[:col], r.raw[col+1:]...)
	r.updateRender(b.TabStop)
	return nil
}

// AppendRow adds a new row with the given raw content at the end.
func (b *Buffer) AppendRow(raw []rune) {
	b.rows = append(b.rows, newRow(raw, b.TabStop))
}

// SplitRow truncates row at col and inserts the cut-off remainder as a
// new row directly below it.
func (b *Buffer) SplitRow(row, col int) error {
	if row < 0 || row >= len(b.rows) {
		return ErrOutOfRange
	}
	r := &b.rows[row]
	if col < 0 || col > len(r.raw) {
		return ErrOutOfRange
	}
	rest := make([]rune, len(r.raw)-col)
	copy(rest, r.raw[col:])
	r.raw = r.raw[:col]
	r.updateRender(b.TabStop)

	b.rows = append(b.rows, Row{})
	copy(b.rows[row+2:], b.rows[row+1:])
	b.rows[row+1] = newRow(rest, b.TabStop)
	return nil
}

// JoinRow removes row at and appends its raw content to the row above,
// rebuilding the merged row's cache. Joining row 0 is out of range.
func (b *Buffer) JoinRow(at int) error {
	if at < 1 || at >= len(b.rows) {
		return ErrOutOfRange
	}
	prev := &b.rows[at-1]
	prev.raw = append(prev.raw, b.rows[at].raw...)
	prev.updateRender(b.TabStop)
	b.rows = append(b.rows[:at], b.rows[at+1:]...)
	return nil
}

// CutRow removes row at and returns its raw content as a string.
func (b *Buffer) CutRow(at int) (string, error) {
	if at < 0 || at >= len(b.rows) {
		return "", ErrOutOfRange
	}
	text := string(b.rows[at].raw)
	b.rows = append(b.rows[:at], b.rows[at+1:]...)
	return text, nil
}

// InsertText inserts possibly multi-line text at (row, col) and returns
// the position just past the inserted text. Line breaks in text split
// the row the same way SplitRow does.
func (b *Buffer) InsertText(row, col int, text string) (Cursor, error) {
	if row < 0 || row >= len(b.rows) {
		return Cursor{}, ErrOutOfRange
	}
	r := &b.rows[row]
	if col < 0 || col > len(r.raw) {
		return Cursor{}, ErrOutOfRange
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if len(lines) == 1 {
		ins := []rune(text)
		raw := make([]rune, 0, len(r.raw)+len(ins))
		raw = append(raw, r.raw[:col]...)
		raw = append(raw, ins...)
		raw = append(raw, r.raw[col:]...)
		r.raw = raw
		r.updateRender(b.TabStop)
		return Cursor{Line: row, Col: col + len(ins)}, nil
	}

	rest := make([]rune, len(r.raw)-col)
	copy(rest, r.raw[col:])
	r.raw = append(r.raw[:col], []rune(lines[0])...)
	r.updateRender(b.TabStop)

	tail := make([]Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		tail = append(tail, newRow([]rune(line), b.TabStop))
	}
	last := &tail[len(tail)-1]
	endCol := len(last.raw)
	last.raw = append(last.raw, rest...)
	last.updateRender(b.TabStop)

	after := make([]Row, len(b.rows)-row-1)
	copy(after, b.rows[row+1:])
	b.rows = append(b.rows[:row+1], tail...)
	b.rows = append(b.rows, after...)
	return Cursor{Line: row + len(lines) - 1, Col: endCol}, nil
}

// Contents serializes the buffer: raw rows joined with the buffer's
// line ending, no trailing break.
func (b *Buffer) Contents() string {
	eol := "\n"
	if b.LineEnding == "CRLF" {
		eol = "\r\n"
	}
	var sb strings.Builder
	for i, r := range b.rows {
		if i > 0 {
			sb.WriteString(eol)
		}
		sb.WriteString(string(r.raw))
	}
	return sb.String()
}
