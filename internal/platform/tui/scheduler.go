// Package tui runs the game in a terminal with Bubble Tea.
// It handles the terminal UI loop, input mapping and frame rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/loop"
)

// timerMsg is delivered when a scheduled callback becomes due.
type timerMsg struct {
	id uint64
}

// teaScheduler implements loop.Scheduler on top of tea.Tick, so every
// callback runs on the Bubble Tea goroutine inside Update.
//
// AfterFunc only records the callback; the tick commands are collected
// with drain and returned from Update.
type teaScheduler struct {
	nextID  uint64
	pending map[uint64]func()
	queued  []tea.Cmd
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{pending: make(map[uint64]func())}
}

func (s *teaScheduler) AfterFunc(d time.Duration, fn func()) loop.Timer {
	s.nextID++
	id := s.nextID
	s.pending[id] = fn
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{id: id}
	}))
	return teaTimer{s: s, id: id}
}

// fire runs the callback for id unless it was stopped.
func (s *teaScheduler) fire(id uint64) bool {
	fn, ok := s.pending[id]
	if !ok {
		return false
	}
	delete(s.pending, id)
	fn()
	return true
}

// drain returns the tick commands queued since the last call.
func (s *teaScheduler) drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

// Pending returns the number of callbacks that have not fired or been stopped.
func (s *teaScheduler) Pending() int {
	return len(s.pending)
}

type teaTimer struct {
	s  *teaScheduler
	id uint64
}

// Stop cancels the callback. The tick message still arrives and is ignored.
func (t teaTimer) Stop() bool {
	if _, ok := t.s.pending[t.id]; !ok {
		return false
	}
	delete(t.s.pending, t.id)
	return true
}
