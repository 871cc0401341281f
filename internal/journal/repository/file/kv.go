package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"timetracker/internal/journal/repository"
)

func (r *implRepository) Get(ctx context.Context, key string) (string, bool, error) {
	path, err := r.path(key)
	if err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		r.l.Errorf(ctx, "file.Get %s: %v", key, err)
		return "", false, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}
	return string(data), true, nil
}

func (r *implRepository) Put(ctx context.Context, key, value string) error {
	path, err := r.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToPut, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		r.l.Errorf(ctx, "file.Put %s: %v", key, err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToPut, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", repository.ErrFailedToPut, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		r.l.Errorf(ctx, "file.Put %s rename: %v", key, err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToPut, err)
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context, key string) error {
	path, err := r.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		r.l.Errorf(ctx, "file.Delete %s: %v", key, err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToDelete, err)
	}
	return nil
}

func (r *implRepository) Close() error { return nil }
