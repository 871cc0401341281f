package file_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"timetracker/internal/journal/repository"
	"timetracker/internal/journal/repository/file"
	"timetracker/pkg/log"
)

func TestFileRepository(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	repo, err := file.New(dir, log.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, ok, err := repo.Get(ctx, repository.KeyEncryptedData); ok || err != nil {
		t.Fatalf("expected unset key, got ok=%v err=%v", ok, err)
	}

	if err := repo.Put(ctx, repository.KeyEncryptedData, "blob-1"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := repo.Put(ctx, repository.KeyEncryptedData, "blob-2"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	v, ok, err := repo.Get(ctx, repository.KeyEncryptedData)
	if err != nil || !ok || v != "blob-2" {
		t.Fatalf("expected blob-2, got %q ok=%v err=%v", v, ok, err)
	}

	// No temp files left behind.
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("expected exactly one file, got %d", len(entries))
	}

	if err := repo.Delete(ctx, repository.KeyEncryptedData); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, repository.KeyEncryptedData); err != nil {
		t.Fatalf("second Delete should be a no-op, got %v", err)
	}
}

func TestFileRepositoryRejectsPathKeys(t *testing.T) {
	repo, _ := file.New(t.TempDir(), log.NewNop())
	for _, key := range []string{"", "../escape", "a/b"} {
		if err := repo.Put(context.Background(), key, "x"); !errors.Is(err, repository.ErrInvalidKey) {
			t.Errorf("key %q: expected ErrInvalidKey, got %v", key, err)
		}
	}
}

func TestResolveDataDirOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "custom")
	t.Setenv("TIMETRACKER_DATA_DIR", want)
	got, err := file.ResolveDataDir()
	if err != nil || got != want {
		t.Fatalf("expected %q, got %q (%v)", want, got, err)
	}
}

func TestNewEmptyDir(t *testing.T) {
	if _, err := file.New("", log.NewNop()); err == nil {
		t.Fatal("expected error for empty dir")
	}
}
