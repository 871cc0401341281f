// Package store owns the journal's task and review collections and keeps the
// encrypted blob in the repository in step with them.
//
// Lifecycle: New → Setup/Unlock (which Load) → mutate* (each mutation Saves).
// After a Load that could not read the stored journal nothing is saved until
// a readable Unlock, a Reset or a replace-mode Reconcile.
// A Store is not safe for concurrent use; callers serialise access.
package store

import (
	"context"
	"time"

	"timetracker/internal/journal"
	"timetracker/internal/journal/repository"
	"timetracker/internal/model"
	pkgLog "timetracker/pkg/log"
)

// Store is the single owner of the journal collections.
type Store struct {
	repo repository.BlobRepository
	l    pkgLog.Logger
	now  func() time.Time

	passphrase string
	unreadable bool
	tasks      []model.Task
	reviews    []model.DailyReview
	lastID     int64
}

// Option configures a Store.
type Option func(*Store)

// WithNow overrides the clock used for ids and timestamps.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a locked, empty Store.
func New(repo repository.BlobRepository, l pkgLog.Logger, opts ...Option) *Store {
	s := &Store{
		repo:    repo,
		l:       l,
		now:     time.Now,
		tasks:   []model.Task{},
		reviews: []model.DailyReview{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IsUnlocked reports whether a passphrase is active.
func (s *Store) IsUnlocked() bool {
	return s.passphrase != ""
}

// IsUnreadable reports whether the last Load failed to read the stored
// journal. Saving is refused while it holds.
func (s *Store) IsUnreadable() bool {
	return s.unreadable
}

// IsInitialised reports whether a passphrase has ever been set up.
func (s *Store) IsInitialised(ctx context.Context) (bool, error) {
	v, ok, err := s.repo.Get(ctx, repository.KeyPassphraseSet)
	if err != nil {
		return false, err
	}
	return ok && v == "true", nil
}

// Setup sets the first passphrase, records that one exists, and loads.
func (s *Store) Setup(ctx context.Context, passphrase, confirm string) (journal.LoadStatus, error) {
	if len([]rune(passphrase)) < journal.MinPassphraseLength {
		return "", journal.ErrPassphraseTooShort
	}
	if passphrase != confirm {
		return "", journal.ErrPassphraseMismatch
	}
	initialised, err := s.IsInitialised(ctx)
	if err != nil {
		return "", err
	}
	if initialised {
		return "", journal.ErrInitialised
	}
	if err := s.repo.Put(ctx, repository.KeyPassphraseSet, "true"); err != nil {
		return "", err
	}
	s.passphrase = passphrase
	return s.Load(ctx), nil
}

// Unlock activates passphrase and loads the stored journal with it.
func (s *Store) Unlock(ctx context.Context, passphrase string) (journal.LoadStatus, error) {
	if passphrase == "" {
		return "", journal.ErrEmptyPassphrase
	}
	s.passphrase = passphrase
	return s.Load(ctx), nil
}

// Lock forgets the passphrase and the in-memory collections.
func (s *Store) Lock() {
	s.passphrase = ""
	s.unreadable = false
	s.tasks = []model.Task{}
	s.reviews = []model.DailyReview{}
}

// Reset discards the stored journal and forgets that a passphrase was set
// up, so Setup can run again.
func (s *Store) Reset(ctx context.Context) error {
	s.Lock()
	if err := s.repo.Delete(ctx, repository.KeyEncryptedData); err != nil {
		return err
	}
	return s.repo.Delete(ctx, repository.KeyPassphraseSet)
}

// Load replaces the in-memory collections with the stored journal.
// Unreadable state is not fatal: it is logged and the journal starts empty.
func (s *Store) Load(ctx context.Context) journal.LoadStatus {
	s.tasks = []model.Task{}
	s.reviews = []model.DailyReview{}
	s.unreadable = false

	if s.passphrase == "" {
		return journal.LoadEmpty
	}

	blob, ok, err := s.repo.Get(ctx, repository.KeyEncryptedData)
	if err != nil {
		s.l.Warnf(ctx, "store.Load: read failed, starting empty: %v", err)
		s.unreadable = true
		return journal.LoadFailed
	}
	if !ok {
		return journal.LoadEmpty
	}

	snap, err := openSnapshot(blob, s.passphrase)
	if err != nil {
		s.l.Warnf(ctx, "store.Load: stored journal unreadable, starting empty: %v", err)
		s.unreadable = true
		return journal.LoadFailed
	}

	s.tasks = snap.Tasks
	s.reviews = snap.DailyReviews
	s.l.Infof(ctx, "store.Load: %d tasks, %d reviews", len(s.tasks), len(s.reviews))
	return journal.LoadOK
}

// Save seals the current snapshot and writes it in one Put.
// It does nothing while the store is locked and fails with ErrUnreadable
// while the stored journal could not be read.
func (s *Store) Save(ctx context.Context) error {
	if s.passphrase == "" {
		return nil
	}
	if s.unreadable {
		return journal.ErrUnreadable
	}
	blob, err := sealSnapshot(s.snapshot(), s.passphrase)
	if err != nil {
		return err
	}
	return s.repo.Put(ctx, repository.KeyEncryptedData, blob)
}

// Snapshot returns a deep copy of the current journal.
func (s *Store) Snapshot() model.Snapshot {
	return s.snapshot().Clone()
}

func (s *Store) snapshot() model.Snapshot {
	return model.Snapshot{Tasks: s.tasks, DailyReviews: s.reviews}
}

// mutate runs fn and saves. If either step fails the collections are
// restored, so callers never observe a half-applied change.
func (s *Store) mutate(ctx context.Context, fn func() error) error {
	prev := s.snapshot().Clone()
	prevID := s.lastID
	prevUnreadable := s.unreadable

	restore := func() {
		s.tasks = prev.Tasks
		s.reviews = prev.DailyReviews
		s.lastID = prevID
		s.unreadable = prevUnreadable
	}

	if err := fn(); err != nil {
		restore()
		return err
	}
	if err := s.Save(ctx); err != nil {
		restore()
		s.l.Errorf(ctx, "store.Save: %v", err)
		return err
	}
	return nil
}
