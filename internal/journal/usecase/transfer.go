package usecase

import (
	"context"

	"timetracker/internal/journal"
	"timetracker/internal/journal/store"
	"timetracker/internal/model"
)

func (uc *implUseCase) ExportBlob(ctx context.Context) (string, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	blob, err := uc.store.ExportBlob()
	if err != nil {
		return "", err
	}
	uc.l.Infof(ctx, "journal.ExportBlob: %d bytes", len(blob))
	return blob, nil
}

// ImportBlob opens a pasted blob and reconciles it into the journal.
// An empty input.Passphrase uses the active one.
func (uc *implUseCase) ImportBlob(ctx context.Context, input journal.ImportInput) (journal.ImportOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	in, err := uc.store.ImportBlob(ctx, input.Blob, input.Passphrase, input.Mode)
	if err != nil {
		uc.l.Warnf(ctx, "journal.ImportBlob: %v", err)
		return journal.ImportOutput{}, err
	}
	return uc.imported(ctx, "ImportBlob", in, input.Mode), nil
}

func (uc *implUseCase) CreateBackup(ctx context.Context) (journal.BackupOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	b, err := uc.store.CreateBackup()
	if err != nil {
		return journal.BackupOutput{}, err
	}
	content, err := store.MarshalBackup(b)
	if err != nil {
		return journal.BackupOutput{}, err
	}
	return journal.BackupOutput{
		Backup:   b,
		FileName: store.BackupFileName(uc.clock.Now()),
		Content:  content,
	}, nil
}

func (uc *implUseCase) RestoreBackup(ctx context.Context, input journal.RestoreInput) (journal.ImportOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	in, err := uc.store.RestoreBackup(ctx, input.Backup, input.Passphrase, input.Mode)
	if err != nil {
		uc.l.Warnf(ctx, "journal.RestoreBackup: %v", err)
		return journal.ImportOutput{}, err
	}
	return uc.imported(ctx, "RestoreBackup", in, input.Mode), nil
}

// Reconcile combines an already decoded snapshot with the journal.
func (uc *implUseCase) Reconcile(ctx context.Context, incoming model.Snapshot, mode journal.Mode) (journal.ImportOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.store.Reconcile(ctx, incoming, mode); err != nil {
		return journal.ImportOutput{}, err
	}
	return uc.imported(ctx, "Reconcile", incoming, mode), nil
}

func (uc *implUseCase) imported(ctx context.Context, op string, in model.Snapshot, mode journal.Mode) journal.ImportOutput {
	out := journal.ImportOutput{TaskCount: len(in.Tasks), ReviewCount: len(in.DailyReviews)}
	uc.l.Infof(ctx, "journal.%s: mode=%s tasks=%d reviews=%d", op, mode, out.TaskCount, out.ReviewCount)
	return out
}
