package storage

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/Kuadribal/touchblob/internal/pet"
)

// Store is a flat string key-value store. Get reports false for a key that
// was never written.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Close() error
}

// Keys written by the app.
const (
	KeyState = "state"
	KeyColor = "color"
)

// File names inside a blob directory.
const (
	DirName         = ".touchblob"
	ConfigFile      = "blob.toml"
	TOMLStoreFile   = "store.toml"
	SQLiteStoreFile = "store.db"
	LogFile         = "touchblob.log"
	SpritesFile     = "sprites.toml"
)

// Open opens the store configured for the blob directory dir.
func Open(dir string, backend pet.StoreBackend, logger *slog.Logger) (Store, error) {
	switch backend {
	case pet.StoreSQLite:
		return OpenSQLite(filepath.Join(dir, SQLiteStoreFile))
	case pet.StoreTOML, "":
		return OpenFileStore(filepath.Join(dir, TOMLStoreFile), logger)
	}
	return nil, fmt.Errorf("unknown store backend %q", backend)
}

// MemoryStore keeps everything in a map.
type MemoryStore struct {
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.data[key] = value
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}
