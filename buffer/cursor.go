package buffer

// Cursor is a logical position in a buffer. Col indexes raw runes, not
// rendered columns; Line may equal the row count when the cursor sits
// past the last row (empty buffer, or appending at the end).
type Cursor struct {
	Line, Col int
}

func (c Cursor) Equal(other Cursor) bool {
	return c.Line == other.Line && c.Col == other.Col
}
