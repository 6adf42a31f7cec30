package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps everything in process memory. Used by the simulator
// and whenever persistence is disabled.
type MemoryStore struct {
	mu   sync.Mutex
	high int
	runs []Run
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) HighScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.high, nil
}

func (m *MemoryStore) SetHighScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.high = score
	return nil
}

func (m *MemoryStore) SaveRun(score, ticks int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, Run{
		ID:        uuid.NewString(),
		Score:     score,
		Ticks:     ticks,
		CreatedAt: time.Now(),
	})
	return nil
}

// Runs returns a copy of the recorded runs in insertion order.
func (m *MemoryStore) Runs() []Run {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Run, len(m.runs))
	copy(out, m.runs)
	return out
}

func (m *MemoryStore) Close() error { return nil }
