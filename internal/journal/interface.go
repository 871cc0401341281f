package journal

import (
	"context"

	"timetracker/internal/model"
)

// UseCase is the core of the tracker. Implementations serialise all calls,
// so it is safe to share between goroutines.
type UseCase interface {
	// Session
	Status(ctx context.Context) (StatusOutput, error)
	Setup(ctx context.Context, input SetupInput) (UnlockOutput, error)
	Unlock(ctx context.Context, passphrase string) (UnlockOutput, error)
	Lock(ctx context.Context) error
	Reset(ctx context.Context) error

	// Tasks
	AddTask(ctx context.Context, input AddTaskInput) (model.Task, error)
	CompleteTask(ctx context.Context, id int64) (model.Task, error)
	DeleteTask(ctx context.Context, id int64) error
	FoldElapsedSeconds(ctx context.Context, input FoldElapsedInput) (model.Task, error)
	ListTasks(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)
	Summary(ctx context.Context) (model.Summary, error)

	// Reviews and suggestions
	DraftReview(ctx context.Context) (DraftReviewOutput, error)
	RecordReview(ctx context.Context, input RecordReviewInput) (RecordReviewOutput, error)
	AcceptSuggestions(ctx context.Context, input AcceptSuggestionsInput) (AcceptSuggestionsOutput, error)

	// Transfer
	ExportBlob(ctx context.Context) (string, error)
	ImportBlob(ctx context.Context, input ImportInput) (ImportOutput, error)
	CreateBackup(ctx context.Context) (BackupOutput, error)
	RestoreBackup(ctx context.Context, input RestoreInput) (ImportOutput, error)
	Reconcile(ctx context.Context, incoming model.Snapshot, mode Mode) (ImportOutput, error)
}
