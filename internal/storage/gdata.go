package storage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quasilyte/gdata/v2"
)

const (
	gdataObject = "flappy"
	gdataProp   = "high_score"
)

// GdataStore keeps the high score in the platform's per-user data directory.
// It does not record run history.
type GdataStore struct {
	m *gdata.Manager
}

// OpenGdata opens the data manager for the given application name.
func OpenGdata(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open gdata: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("storage: gdata is not available on this platform")
	}
	return &GdataStore{m: m}, nil
}

// HighScore returns the stored high score, or 0 if none was saved.
func (g *GdataStore) HighScore() (int, error) {
	if !g.m.ObjectPropExists(gdataObject, gdataProp) {
		return 0, nil
	}
	data, err := g.m.LoadObjectProp(gdataObject, gdataProp)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load high score: %w", err)
	}
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("storage: malformed high score %q: %w", data, err)
	}
	return score, nil
}

// SetHighScore persists the high score as decimal text.
func (g *GdataStore) SetHighScore(score int) error {
	if err := g.m.SaveObjectProp(gdataObject, gdataProp, []byte(strconv.Itoa(score))); err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// Close is a no-op; gdata writes are not buffered.
func (g *GdataStore) Close() error { return nil }
