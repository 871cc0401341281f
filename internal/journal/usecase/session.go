package usecase

import (
	"context"

	"timetracker/internal/journal"
)

// Status reports whether the journal is set up and unlocked.
func (uc *implUseCase) Status(ctx context.Context) (journal.StatusOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	initialised, err := uc.store.IsInitialised(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "journal.Status: %v", err)
		return journal.StatusOutput{}, err
	}
	out := journal.StatusOutput{
		Initialised: initialised,
		Unlocked:    uc.store.IsUnlocked(),
		Unreadable:  uc.store.IsUnreadable(),
	}
	if out.Unlocked {
		snap := uc.store.Snapshot()
		out.TaskCount = len(snap.Tasks)
		out.ReviewCount = len(snap.DailyReviews)
	}
	return out, nil
}

// Setup sets the first passphrase and opens the journal.
func (uc *implUseCase) Setup(ctx context.Context, input journal.SetupInput) (journal.UnlockOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	status, err := uc.store.Setup(ctx, input.Passphrase, input.Confirm)
	if err != nil {
		return journal.UnlockOutput{}, err
	}
	uc.l.Infof(ctx, "journal.Setup: load=%s", status)
	return journal.UnlockOutput{Load: status}, nil
}

// Unlock opens the journal with passphrase. A passphrase that cannot read
// the stored journal still unlocks; the result reports LoadFailed and every
// write fails with ErrUnreadable until the journal is reset or replaced.
func (uc *implUseCase) Unlock(ctx context.Context, passphrase string) (journal.UnlockOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	status, err := uc.store.Unlock(ctx, passphrase)
	if err != nil {
		return journal.UnlockOutput{}, err
	}
	if status == journal.LoadFailed {
		uc.l.Warnf(ctx, "journal.Unlock: stored journal unreadable, writes blocked")
	} else {
		uc.l.Infof(ctx, "journal.Unlock: load=%s", status)
	}
	return journal.UnlockOutput{Load: status}, nil
}

// Lock forgets the passphrase and clears the in-memory journal.
func (uc *implUseCase) Lock(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.store.Lock()
	uc.l.Info(ctx, "journal.Lock: locked")
	return nil
}

// Reset discards the stored journal so a new passphrase can be set up.
func (uc *implUseCase) Reset(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.store.Reset(ctx); err != nil {
		uc.l.Errorf(ctx, "journal.Reset: %v", err)
		return err
	}
	uc.l.Warn(ctx, "journal.Reset: stored journal discarded")
	return nil
}

// requireUnlocked must be called with uc.mu held.
func (uc *implUseCase) requireUnlocked() error {
	if !uc.store.IsUnlocked() {
		return journal.ErrLocked
	}
	return nil
}
