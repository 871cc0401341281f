package repository

import "context"

// Persisted keys. The names are kept stable for existing installs.
const (
	KeyEncryptedData = "timeTrackerEncryptedData"
	KeyPassphraseSet = "timeTrackerPasswordSet"
)

// BlobRepository is a tiny key/value store holding whole values. Every Put
// replaces the previous value for the key in a single write.
type BlobRepository interface {
	// Get returns the value and true, or "" and false when the key is unset.
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
