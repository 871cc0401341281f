package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"timetracker/internal/journal/repository"
	"timetracker/internal/journal/repository/sqlite"
	"timetracker/pkg/log"
)

func TestSQLiteRepository(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "nested", "journal.db")

	repo, err := sqlite.New(dbPath, log.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer repo.Close()

	t.Run("missing key", func(t *testing.T) {
		_, ok, err := repo.Get(ctx, repository.KeyEncryptedData)
		if err != nil || ok {
			t.Fatalf("expected unset key, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("put then overwrite", func(t *testing.T) {
		if err := repo.Put(ctx, repository.KeyEncryptedData, "first"); err != nil {
			t.Fatalf("Put: %v", err)
		}
		if err := repo.Put(ctx, repository.KeyEncryptedData, "second"); err != nil {
			t.Fatalf("Put: %v", err)
		}
		v, ok, err := repo.Get(ctx, repository.KeyEncryptedData)
		if err != nil || !ok || v != "second" {
			t.Fatalf("expected second, got %q ok=%v err=%v", v, ok, err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := repo.Delete(ctx, repository.KeyEncryptedData); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, ok, _ := repo.Get(ctx, repository.KeyEncryptedData); ok {
			t.Fatal("expected key to be gone")
		}
	})

	t.Run("empty key", func(t *testing.T) {
		if err := repo.Put(ctx, "", "x"); !errors.Is(err, repository.ErrInvalidKey) {
			t.Fatalf("expected ErrInvalidKey, got %v", err)
		}
	})
}

func TestSQLiteRepositoryPersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "journal.db")

	repo, err := sqlite.New(dbPath, log.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := repo.Put(ctx, repository.KeyPassphraseSet, "true"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	repo.Close()

	reopened, err := sqlite.New(dbPath, log.NewNop())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	v, ok, err := reopened.Get(ctx, repository.KeyPassphraseSet)
	if err != nil || !ok || v != "true" {
		t.Fatalf("expected persisted flag, got %q ok=%v err=%v", v, ok, err)
	}
}
