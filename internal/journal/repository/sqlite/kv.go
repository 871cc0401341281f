package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"timetracker/internal/journal/repository"
)

func (r *implRepository) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, repository.ErrInvalidKey
	}

	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "sqlite.Get %s: %v", key, err)
		return "", false, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}
	return value, true, nil
}

func (r *implRepository) Put(ctx context.Context, key, value string) error {
	if key == "" {
		return repository.ErrInvalidKey
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		r.l.Errorf(ctx, "sqlite.Put %s: %v", key, err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToPut, err)
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context, key string) error {
	if key == "" {
		return repository.ErrInvalidKey
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		r.l.Errorf(ctx, "sqlite.Delete %s: %v", key, err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToDelete, err)
	}
	return nil
}

func (r *implRepository) Close() error {
	return r.db.Close()
}
