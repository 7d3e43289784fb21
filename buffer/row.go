package buffer

import "strings"

// Row is one line of text. raw holds the logical content as Unicode
// scalars; rendered is the tab-expanded display form, kept in sync with
// raw after every mutation. The cache is always rebuilt from scratch
// rather than patched, so it can never drift from raw.
type Row struct {
	raw      []rune
	rendered string
}

func newRow(raw []rune, tabStop int) Row {
	r := Row{raw: raw}
	r.updateRender(tabStop)
	return r
}

// updateRender recomputes the rendered cache. A tab emits spaces up to
// the next multiple of tabStop (always at least one); every other rune
// occupies exactly one rendered column.
func (r *Row) updateRender(tabStop int) {
	var sb strings.Builder
	col := 0
	for _, ch := range r.raw {
		if ch == '\t' {
			sb.WriteByte(' ')
			col++
			for col%tabStop != 0 {
				sb.WriteByte(' ')
				col++
			}
		} else {
			sb.WriteRune(ch)
			col++
		}
	}
	r.rendered = sb.String()
}

// RenderWidth returns the rendered column that raw column upto maps to,
// running the same expansion as updateRender over the prefix raw[:upto].
func RenderWidth(raw []rune, upto, tabStop int) int {
	if upto > len(raw) {
		upto = len(raw)
	}
	col := 0
	for _, ch := range raw[:upto] {
		if ch == '\t' {
			col++
			for col%tabStop != 0 {
				col++
			}
		} else {
			col++
		}
	}
	return col
}
