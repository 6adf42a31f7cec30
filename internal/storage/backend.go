package storage

import (
	"errors"
	"fmt"
)

// Backend kinds accepted by OpenBackend.
const (
	KindSQLite = "sqlite"
	KindGdata  = "gdata"
	KindMemory = "memory"
)

// ErrUnknownBackend is returned for an unrecognised backend kind.
var ErrUnknownBackend = errors.New("storage: unknown backend")

// Backend persists the high score.
type Backend interface {
	HighScore() (int, error)
	SetHighScore(score int) error
	Close() error
}

// RunSaver is implemented by backends that keep a run history.
type RunSaver interface {
	SaveRun(score, ticks int) error
}

// OpenBackend opens the backend of the given kind. dbPath is used by the
// SQLite backend, appName by gdata.
func OpenBackend(kind, dbPath, appName string) (Backend, error) {
	switch kind {
	case KindSQLite, "":
		s, err := Open(dbPath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case KindGdata:
		g, err := OpenGdata(appName)
		if err != nil {
			return nil, err
		}
		return g, nil
	case KindMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, kind)
	}
}

var (
	_ Backend  = (*Store)(nil)
	_ Backend  = (*GdataStore)(nil)
	_ Backend  = (*MemoryStore)(nil)
	_ RunSaver = (*Store)(nil)
	_ RunSaver = (*MemoryStore)(nil)
)
