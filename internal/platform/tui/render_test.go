package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/bug-crossing/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColor(0, 0, "SCORE", core.ColorBrightGreen)
	s.DrawTextColor(6, 0, "~~", core.ColorBlue)
	s.DrawText(0, 1, "plain")

	out := RenderScreen(s)
	lines := strings.Split(ansi.Strip(out), "\n")

	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "SCORE ~~    " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "plain       " {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}
