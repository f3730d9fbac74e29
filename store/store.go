package store

import (
	"github.com/pkg/errors"
	"gitlab.com/chronicle/chronicle"
)

// New creates the KeyValueStore selected by cfg.Backend. Init is left to
// the caller.
func New(cfg *chronicle.Config) (chronicle.KeyValueStore, error) {
	switch cfg.Backend {
	case chronicle.BackendBadger, "":
		return newBadgerStore(cfg.DataPath)
	case chronicle.BackendMemory:
		return NewMemoryStore(0), nil
	case chronicle.BackendLocalStorage:
		return newLocalStorage()
	}
	return nil, errors.Errorf("unknown backend %q", cfg.Backend)
}
