// Package storage opens the blob repository selected in config.
package storage

import (
	"fmt"
	"path/filepath"

	"timetracker/config"
	"timetracker/internal/journal/repository"
	"timetracker/internal/journal/repository/file"
	"timetracker/internal/journal/repository/sqlite"
	pkgLog "timetracker/pkg/log"
)

const sqliteFileName = "journal.db"

// Open returns the repository for cfg. An empty cfg.Path resolves to the OS
// data directory; for sqlite a directory path gets journal.db appended.
func Open(cfg config.StorageConfig, l pkgLog.Logger) (repository.BlobRepository, error) {
	path := cfg.Path
	if path == "" {
		dir, err := file.ResolveDataDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve data directory: %w", err)
		}
		path = dir
		if cfg.Driver == config.StorageDriverSQLite {
			path = filepath.Join(dir, sqliteFileName)
		}
	}

	switch cfg.Driver {
	case config.StorageDriverSQLite:
		if filepath.Ext(path) == "" {
			path = filepath.Join(path, sqliteFileName)
		}
		return sqlite.New(path, l)
	case config.StorageDriverFile:
		return file.New(path, l)
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}
