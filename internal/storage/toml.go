package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Kuadribal/touchblob/internal/pet"
	"github.com/pelletier/go-toml/v2"
)

const (
	ConfigVersion          = "1.0"
	DefaultWidth           = 640.0
	DefaultHeight          = 480.0
	DefaultFrameSpeedMS    = 150
	DefaultDecayIntervalMS = 10000
	DefaultVolume          = 0.5
	DefaultWellbeing       = "average"
)

func DefaultConfig() pet.Config {
	return pet.Config{
		Version:         ConfigVersion,
		Name:            pet.DefaultName,
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		FrameSpeedMS:    DefaultFrameSpeedMS,
		DecayIntervalMS: DefaultDecayIntervalMS,
		Store:           pet.StoreTOML,
		Volume:          DefaultVolume,
		Wellbeing:       DefaultWellbeing,
		Sprites:         SpritesFile,
	}
}

// LoadConfig reads blob.toml over the defaults. A missing file is not an
// error; fields the file leaves out keep their default values.
func LoadConfig(path string) (pet.Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.FrameSpeedMS <= 0 {
		cfg.FrameSpeedMS = DefaultFrameSpeedMS
	}
	if cfg.DecayIntervalMS <= 0 {
		cfg.DecayIntervalMS = DefaultDecayIntervalMS
	}
	return cfg, nil
}

func WriteConfig(path string, cfg pet.Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// InitDir creates baseDir/.touchblob with a default config and sprite set.
// Files that already exist are left alone.
func InitDir(baseDir string) (string, error) {
	dir := filepath.Join(baseDir, DirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create blob directory: %w", err)
	}

	configPath := filepath.Join(dir, ConfigFile)
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		if err := WriteConfig(configPath, DefaultConfig()); err != nil {
			return "", err
		}
	}

	spritesPath := filepath.Join(dir, SpritesFile)
	if _, err := os.Stat(spritesPath); errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(spritesPath, []byte(DefaultSprites), 0644); err != nil {
			return "", fmt.Errorf("failed to write sprites file: %w", err)
		}
	}

	return dir, nil
}

// FileStore keeps every key as a string in one TOML document. The whole
// file is rewritten on each Set.
type FileStore struct {
	path string
	data map[string]string
}

// OpenFileStore loads the store at path. A file that does not parse is
// moved aside to path.bad and the store starts empty.
func OpenFileStore(path string, logger *slog.Logger) (*FileStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &FileStore{path: path, data: make(map[string]string)}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	if err := toml.Unmarshal(raw, &s.data); err != nil {
		s.data = make(map[string]string)
		bad := path + ".bad"
		logger.Warn("store file is corrupt, starting fresh", "path", path, "moved_to", bad, "err", err)
		if err := os.Rename(path, bad); err != nil {
			logger.Warn("failed to move corrupt store file aside", "err", err)
		}
	}
	return s, nil
}

func (s *FileStore) Get(key string) (string, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *FileStore) Set(key, value string) error {
	prev, had := s.data[key]
	s.data[key] = value

	if err := s.flush(); err != nil {
		if had {
			s.data[key] = prev
		} else {
			delete(s.data, key)
		}
		return err
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) flush() error {
	data, err := toml.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}
