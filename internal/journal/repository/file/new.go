// Package file stores each key as its own file under a data directory.
// Writes go to a temp file that is renamed over the target, so readers see
// either the old or the new value.
package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"

	"timetracker/internal/journal/repository"
	pkgLog "timetracker/pkg/log"
)

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

type implRepository struct {
	root string
	l    pkgLog.Logger
}

// New creates a repository rooted at dir, creating it if needed.
func New(dir string, l pkgLog.Logger) (repository.BlobRepository, error) {
	if dir == "" {
		return nil, errors.New("empty dir")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &implRepository{root: dir, l: l}, nil
}

// ResolveDataDir returns the directory used for journal data.
// Order: TIMETRACKER_DATA_DIR env override, then OS-specific default.
func ResolveDataDir() (string, error) {
	if custom := os.Getenv("TIMETRACKER_DATA_DIR"); custom != "" {
		return custom, nil
	}

	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("APPDATA"); appdata != "" {
			return filepath.Join(appdata, "timetracker"), nil
		}
		return "", errors.New("APPDATA not set")
	case "darwin":
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			return filepath.Join(home, "Library", "Application Support", "timetracker"), nil
		}
		return "", errors.New("home directory not found")
	default:
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			return filepath.Join(home, ".local", "share", "timetracker"), nil
		}
		return "", errors.New("home directory not found")
	}
}

func (r *implRepository) path(key string) (string, error) {
	if !keyPattern.MatchString(key) {
		return "", repository.ErrInvalidKey
	}
	return filepath.Join(r.root, key), nil
}
