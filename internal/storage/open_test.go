package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"timetracker/config"
	"timetracker/internal/journal/repository"
	"timetracker/internal/storage"
	"timetracker/pkg/log"
)

func TestOpenDrivers(t *testing.T) {
	tests := []struct {
		name     string
		cfg      func(dir string) config.StorageConfig
		wantFile string
	}{
		{
			name:     "sqlite directory",
			cfg:      func(dir string) config.StorageConfig { return config.StorageConfig{Driver: "sqlite", Path: dir} },
			wantFile: "journal.db",
		},
		{
			name: "sqlite file",
			cfg: func(dir string) config.StorageConfig {
				return config.StorageConfig{Driver: "sqlite", Path: filepath.Join(dir, "custom.sqlite")}
			},
			wantFile: "custom.sqlite",
		},
		{
			name:     "file",
			cfg:      func(dir string) config.StorageConfig { return config.StorageConfig{Driver: "file", Path: dir} },
			wantFile: repository.KeyPassphraseSet,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			repo, err := storage.Open(tt.cfg(dir), log.NewNop())
			if err != nil {
				t.Fatal(err)
			}
			defer repo.Close()

			if err := repo.Put(context.Background(), repository.KeyPassphraseSet, "true"); err != nil {
				t.Fatal(err)
			}
			if _, err := os.Stat(filepath.Join(dir, tt.wantFile)); err != nil {
				t.Errorf("expected %s in %s: %v", tt.wantFile, dir, err)
			}
		})
	}
}

func TestOpenDefaultsToDataDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TIMETRACKER_DATA_DIR", dir)

	repo, err := storage.Open(config.StorageConfig{Driver: "sqlite"}, log.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	repo.Close()
	if _, err := os.Stat(filepath.Join(dir, "journal.db")); err != nil {
		t.Errorf("expected journal.db in data dir: %v", err)
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := storage.Open(config.StorageConfig{Driver: "postgres", Path: t.TempDir()}, log.NewNop()); err == nil {
		t.Error("expected error")
	}
}
