package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

type fakeRuns struct {
	top, recent []storage.Run
	err         error
}

func (f fakeRuns) TopRuns(int) ([]storage.Run, error)    { return f.top, f.err }
func (f fakeRuns) RecentRuns(int) ([]storage.Run, error) { return f.recent, f.err }
func (f fakeRuns) Stats() (*storage.RunStats, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &storage.RunStats{Runs: len(f.top), Best: f.top[0].Score, AvgScore: 12.5}, nil
}

func TestHistoryModelViews(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	src := fakeRuns{
		top:    []storage.Run{{Score: 20, Ticks: 900, CreatedAt: at}, {Score: 5, Ticks: 300, CreatedAt: at}},
		recent: []storage.Run{{Score: 5, Ticks: 300, CreatedAt: at}},
	}

	m := NewHistoryModel(src, 80, 24)
	if len(m.table.Rows()) != 2 {
		t.Fatalf("best view rows = %d, want 2", len(m.table.Rows()))
	}
	if got := m.table.Rows()[0][1]; got != "20" {
		t.Errorf("first row score = %q, want 20", got)
	}
	if !strings.Contains(m.View(), "best 20") {
		t.Error("View() should show aggregate stats")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	if m.view != viewRecent {
		t.Fatal("tab should switch to the recent view")
	}
	if len(m.table.Rows()) != 1 {
		t.Errorf("recent view rows = %d, want 1", len(m.table.Rows()))
	}
}

func TestHistoryModelEmptyAndError(t *testing.T) {
	m := NewHistoryModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty source should show the empty message")
	}

	m = NewHistoryModel(fakeRuns{err: errors.New("disk on fire")}, 80, 24)
	if !strings.Contains(m.View(), "disk on fire") {
		t.Error("load errors should be shown")
	}
}

func TestHistoryModelQuit(t *testing.T) {
	m := NewHistoryModel(nil, 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil || next.(HistoryModel).View() != "" {
		t.Error("q should quit with an empty view")
	}
}
