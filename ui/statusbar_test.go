package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func rowText(t *testing.T, screen tcell.SimulationScreen, y, width int) string {
	t.Helper()
	var sb strings.Builder
	for x := 0; x < width; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(ch)
	}
	return sb.String()
}

func TestStatusBarShowsNameCountAndPosition(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init failed: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(40, 2)

	sb := &StatusBar{Filename: "notes.txt", Dirty: true, Line: 2, Total: 7}
	sb.Render(screen, 0, 0, 40)
	screen.Show()

	row := rowText(t, screen, 0, 40)
	if !strings.Contains(row, "notes.txt - 7 lines (modified)") {
		t.Fatalf("status bar missing left section: %q", row)
	}
	if !strings.HasSuffix(strings.TrimRight(row, " "), "3/7") {
		t.Fatalf("status bar missing right-aligned position: %q", row)
	}
}

func TestStatusBarUsesPlaceholderForUnnamedBuffer(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init failed: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(40, 2)

	sb := &StatusBar{Line: 0, Total: 0}
	sb.Render(screen, 0, 0, 40)
	screen.Show()

	if row := rowText(t, screen, 0, 40); !strings.Contains(row, "[No Name]") {
		t.Fatalf("expected [No Name] placeholder, got %q", row)
	}
}

func TestMessageBarClipsToWidth(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init failed: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(10, 2)

	mb := &MessageBar{Message: "a very long status message"}
	mb.Render(screen, 0, 0, 10)
	screen.Show()

	if row := rowText(t, screen, 0, 10); row != "a very lon" {
		t.Fatalf("message not clipped to width: %q", row)
	}
}
