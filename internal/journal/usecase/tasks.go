package usecase

import (
	"context"
	"fmt"
	"strings"

	"timetracker/internal/journal"
	"timetracker/internal/journal/store"
	"timetracker/internal/model"
)

func (uc *implUseCase) AddTask(ctx context.Context, input journal.AddTaskInput) (model.Task, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.requireUnlocked(); err != nil {
		return model.Task{}, err
	}
	t, err := uc.store.AddTask(ctx, input.Name, input.EstimatedMinutes)
	if err != nil {
		return model.Task{}, err
	}
	uc.l.Infof(ctx, "journal.AddTask: id=%d estimate=%dm", t.ID, t.EstimatedMinutes)
	return t, nil
}

func (uc *implUseCase) CompleteTask(ctx context.Context, id int64) (model.Task, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.requireUnlocked(); err != nil {
		return model.Task{}, err
	}
	return uc.store.CompleteTask(ctx, id)
}

func (uc *implUseCase) DeleteTask(ctx context.Context, id int64) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.requireUnlocked(); err != nil {
		return err
	}
	return uc.store.DeleteTask(ctx, id)
}

// FoldElapsedSeconds adds a finished timer session to a task.
func (uc *implUseCase) FoldElapsedSeconds(ctx context.Context, input journal.FoldElapsedInput) (model.Task, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.requireUnlocked(); err != nil {
		return model.Task{}, err
	}
	return uc.store.FoldElapsedSeconds(ctx, input.TaskID, input.Seconds)
}

// ListTasks returns all tasks, or those created on input.Day.
func (uc *implUseCase) ListTasks(ctx context.Context, input journal.ListTasksInput) (journal.ListTasksOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.requireUnlocked(); err != nil {
		return journal.ListTasksOutput{}, err
	}

	tasks := uc.store.Tasks()
	if strings.TrimSpace(input.Day) == "" {
		return journal.ListTasksOutput{Tasks: tasks}, nil
	}

	day, err := uc.clock.ParseDay(input.Day, uc.clock.Now())
	if err != nil {
		return journal.ListTasksOutput{}, fmt.Errorf("%w: %v", journal.ErrValidation, err)
	}
	filtered := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if uc.clock.SameDay(t.CreatedAt, day) {
			filtered = append(filtered, t)
		}
	}
	return journal.ListTasksOutput{Tasks: filtered}, nil
}

// Summary counts completed tasks and tracked minutes over every task.
func (uc *implUseCase) Summary(ctx context.Context) (model.Summary, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.requireUnlocked(); err != nil {
		return model.Summary{}, err
	}
	return store.Summarize(uc.store.Tasks()), nil
}
