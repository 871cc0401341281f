package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"timetracker/internal/journal"
	"timetracker/internal/model"
)

const backupFilePrefix = "timetracker-backup-"

// ExportBlob seals the whole journal with the active passphrase.
func (s *Store) ExportBlob() (string, error) {
	if !s.IsUnlocked() {
		return "", journal.ErrLocked
	}
	if s.unreadable {
		return "", journal.ErrUnreadable
	}
	return sealSnapshot(s.snapshot(), s.passphrase)
}

// ImportBlob opens blob with passphrase and reconciles it into the journal.
// Decoding happens before any mutation, so failures leave state untouched.
func (s *Store) ImportBlob(ctx context.Context, blob, passphrase string, mode journal.Mode) (model.Snapshot, error) {
	if !s.IsUnlocked() {
		return model.Snapshot{}, journal.ErrLocked
	}
	blob = strings.TrimSpace(blob)
	if blob == "" {
		return model.Snapshot{}, journal.ErrEmptyBlob
	}
	if passphrase == "" {
		passphrase = s.passphrase
	}

	incoming, err := openSnapshot(blob, passphrase)
	if err != nil {
		return model.Snapshot{}, err
	}
	if err := s.Reconcile(ctx, incoming, mode); err != nil {
		return model.Snapshot{}, err
	}
	return incoming, nil
}

// CreateBackup wraps the sealed journal in a versioned, timestamped envelope.
func (s *Store) CreateBackup() (model.Backup, error) {
	blob, err := s.ExportBlob()
	if err != nil {
		return model.Backup{}, err
	}
	return model.Backup{
		Version:   model.BackupVersion,
		Timestamp: s.now().UTC(),
		Data:      blob,
	}, nil
}

// MarshalBackup renders a backup the way it is written to disk.
func MarshalBackup(b model.Backup) ([]byte, error) {
	return json.MarshalIndent(b, "", "  ")
}

// BackupFileName is the suggested file name for a backup taken at t.
func BackupFileName(t time.Time) string {
	return backupFilePrefix + t.Format("2006-01-02") + ".json"
}

// ParseBackup decodes a backup file. A missing data field is malformed.
func ParseBackup(raw []byte) (model.Backup, error) {
	var b model.Backup
	if err := json.Unmarshal(raw, &b); err != nil {
		return model.Backup{}, fmt.Errorf("%w: backup is not valid JSON: %v", journal.ErrMalformedData, err)
	}
	if strings.TrimSpace(b.Data) == "" {
		return model.Backup{}, fmt.Errorf("%w: backup has no data", journal.ErrMalformedData)
	}
	return b, nil
}

// RestoreBackup parses raw and imports its sealed data.
func (s *Store) RestoreBackup(ctx context.Context, raw []byte, passphrase string, mode journal.Mode) (model.Snapshot, error) {
	b, err := ParseBackup(raw)
	if err != nil {
		return model.Snapshot{}, err
	}
	if b.Version != model.BackupVersion {
		s.l.Warnf(ctx, "store.RestoreBackup: unexpected backup version %q, restoring anyway", b.Version)
	}
	return s.ImportBlob(ctx, b.Data, passphrase, mode)
}
