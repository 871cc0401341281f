package usecase

import (
	"context"

	"timetracker/internal/journal"
)

func (uc *implUseCase) DraftReview(ctx context.Context) (journal.DraftReviewOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.requireUnlocked(); err != nil {
		return journal.DraftReviewOutput{}, err
	}
	return uc.recorder.Draft(ctx), nil
}

// RecordReview closes out today and returns next-day suggestions.
func (uc *implUseCase) RecordReview(ctx context.Context, input journal.RecordReviewInput) (journal.RecordReviewOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.requireUnlocked(); err != nil {
		return journal.RecordReviewOutput{}, err
	}
	return uc.recorder.Record(ctx, input)
}

// AcceptSuggestions materialises the selected suggestions as tasks.
func (uc *implUseCase) AcceptSuggestions(ctx context.Context, input journal.AcceptSuggestionsInput) (journal.AcceptSuggestionsOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.requireUnlocked(); err != nil {
		return journal.AcceptSuggestionsOutput{}, err
	}
	tasks, err := uc.store.AcceptSuggestions(ctx, input.Suggestions)
	if err != nil {
		return journal.AcceptSuggestionsOutput{}, err
	}
	uc.l.Infof(ctx, "journal.AcceptSuggestions: created %d tasks", len(tasks))
	return journal.AcceptSuggestionsOutput{Tasks: tasks}, nil
}
