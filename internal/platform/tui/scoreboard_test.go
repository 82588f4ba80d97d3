package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestScoreboardModelLoadsScores(t *testing.T) {
	store := openStore(t)
	store.SaveScore("crossing", "alice", 3)
	store.SaveScore("crossing", "bob", 8)
	store.SaveScore("other", "carol", 99)

	m := NewScoreboardModel(store, "crossing", "Bug Crossing", 80, 24)

	if len(m.scores) != 2 {
		t.Fatalf("loaded %d scores, want 2", len(m.scores))
	}
	rows := m.table.Rows()
	if rows[0][1] != "bob" || rows[0][2] != "8" {
		t.Errorf("first row = %v, want bob with 8", rows[0])
	}

	view := ansi.Strip(m.View())
	for _, want := range []string{"HIGH SCORES - Bug Crossing", "2 games", "best 8", "alice"} {
		if !strings.Contains(view, want) {
			t.Errorf("view does not contain %q", want)
		}
	}
	if strings.Contains(view, "carol") {
		t.Error("scores of other games should not be shown")
	}
}

func TestScoreboardModelRefresh(t *testing.T) {
	store := openStore(t)
	m := NewScoreboardModel(store, "crossing", "Bug Crossing", 80, 24)

	if !strings.Contains(ansi.Strip(m.View()), "No scores recorded yet.") {
		t.Error("expected empty message")
	}

	store.SaveScore("crossing", "alice", 4)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = next.(ScoreboardModel)

	if len(m.scores) != 1 {
		t.Errorf("after refresh loaded %d scores, want 1", len(m.scores))
	}
}

func TestScoreboardModelWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "crossing", "Bug Crossing", 60, 20)

	if !strings.Contains(ansi.Strip(m.View()), "unavailable") {
		t.Error("expected unavailable message")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if cmd == nil || m.View() != "" {
		t.Error("esc should quit")
	}
}
