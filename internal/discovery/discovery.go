package discovery

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Kuadribal/touchblob/internal/storage"
)

// FindBlobDir walks up from startDir looking for a .touchblob directory.
func FindBlobDir(startDir string) (string, bool, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, storage.DirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, true, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", false, nil
}

func GlobalBlobDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, storage.DirName), nil
}

// ResolveBlobDir returns the nearest .touchblob above startDir, falling
// back to the one in the home directory. The returned directory may not
// exist yet.
func ResolveBlobDir(startDir string) (string, error) {
	dir, found, err := FindBlobDir(startDir)
	if err != nil {
		return "", err
	}
	if found {
		return dir, nil
	}
	return GlobalBlobDir()
}

func ConfigPath(blobDir string) string {
	return filepath.Join(blobDir, storage.ConfigFile)
}
