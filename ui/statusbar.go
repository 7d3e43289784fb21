package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/jankowiakdawid/pound/config"
)

// StatusBar is the reverse-video bar above the message line: file name
// and row count on the left, cursor position on the right.
type StatusBar struct {
	Filename    string
	Dirty       bool
	DiskChanged bool
	Line        int // 0-based cursor row
	Total       int // buffer row count
	Theme       *config.ColorScheme
}

func (s *StatusBar) Render(screen tcell.Screen, x, y, width int) {
	theme := s.Theme
	if theme == nil {
		theme = config.Themes["default"]
	}
	style := theme.BarStyle()

	for cx := x; cx < x+width; cx++ {
		screen.SetContent(cx, y, ' ', nil, style)
	}

	name := s.Filename
	if name == "" {
		name = "[No Name]"
	}
	left := fmt.Sprintf("%.20s - %d lines", name, s.Total)
	if s.Dirty {
		left += " (modified)"
	}
	if s.DiskChanged {
		left += " (disk changed)"
	}
	left = runewidth.Truncate(left, width, "")

	col := x
	for _, ch := range left {
		screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}

	right := fmt.Sprintf("%d/%d", s.Line+1, s.Total)
	rightW := runewidth.StringWidth(right)
	start := x + width - rightW
	if start > col+1 {
		for _, ch := range right {
			screen.SetContent(start, y, ch, nil, style)
			start += runewidth.RuneWidth(ch)
		}
	}
}

// MessageBar is the bottom line showing the transient status message.
// Expiry is the session's concern; the bar renders whatever it is given.
type MessageBar struct {
	Message string
	Theme   *config.ColorScheme
}

func (m *MessageBar) Render(screen tcell.Screen, x, y, width int) {
	theme := m.Theme
	if theme == nil {
		theme = config.Themes["default"]
	}
	style := theme.BaseStyle()

	for cx := x; cx < x+width; cx++ {
		screen.SetContent(cx, y, ' ', nil, style)
	}

	msg := runewidth.Truncate(m.Message, width, "")
	col := x
	for _, ch := range msg {
		screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}
