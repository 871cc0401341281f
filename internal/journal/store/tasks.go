package store

import (
	"context"
	"strings"

	"timetracker/internal/journal"
	"timetracker/internal/model"
)

// Tasks returns a copy of every task in insertion order.
func (s *Store) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Reviews returns a copy of the review history, oldest first.
func (s *Store) Reviews() []model.DailyReview {
	out := make([]model.DailyReview, len(s.reviews))
	copy(out, s.reviews)
	return out
}

// Summary counts completed tasks and the rounded minutes spent on all tasks.
func (s *Store) Summary() model.Summary {
	return Summarize(s.tasks)
}

// Summarize computes the list headline for tasks.
func Summarize(tasks []model.Task) model.Summary {
	sum := model.Summary{TaskCount: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			sum.CompletedCount++
		}
		sum.TotalMinutes += t.ActualMinutes()
	}
	return sum
}

// AddTask validates and appends a new task.
func (s *Store) AddTask(ctx context.Context, name string, estimatedMinutes int) (model.Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Task{}, journal.ErrEmptyTaskName
	}
	if estimatedMinutes < 0 {
		return model.Task{}, journal.ErrNegativeEstimate
	}

	var t model.Task
	err := s.mutate(ctx, func() error {
		t = model.Task{
			ID:               s.nextID(),
			Name:             name,
			EstimatedMinutes: estimatedMinutes,
			CreatedAt:        s.now(),
		}
		s.tasks = append(s.tasks, t)
		return nil
	})
	if err != nil {
		return model.Task{}, err
	}
	return t, nil
}

// CompleteTask marks a task completed. Completing twice is a no-op.
func (s *Store) CompleteTask(ctx context.Context, id int64) (model.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Task{}, journal.ErrTaskNotFound
	}
	if s.tasks[i].Completed {
		return s.tasks[i], nil
	}

	err := s.mutate(ctx, func() error {
		s.tasks[i].Completed = true
		return nil
	})
	if err != nil {
		return model.Task{}, err
	}
	return s.tasks[i], nil
}

// DeleteTask removes a task.
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	i := s.indexOf(id)
	if i < 0 {
		return journal.ErrTaskNotFound
	}
	return s.mutate(ctx, func() error {
		s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
		return nil
	})
}

// FoldElapsedSeconds adds a finished timing session to a task's total.
func (s *Store) FoldElapsedSeconds(ctx context.Context, id int64, seconds int) (model.Task, error) {
	if seconds < 0 {
		return model.Task{}, journal.ErrNegativeElapsed
	}
	i := s.indexOf(id)
	if i < 0 {
		return model.Task{}, journal.ErrTaskNotFound
	}
	if seconds == 0 {
		return s.tasks[i], nil
	}

	err := s.mutate(ctx, func() error {
		s.tasks[i].ActualSeconds += seconds
		return nil
	})
	if err != nil {
		return model.Task{}, err
	}
	return s.tasks[i], nil
}

// AcceptSuggestions turns the selected suggestions into new tasks with one save.
func (s *Store) AcceptSuggestions(ctx context.Context, selected []model.Suggestion) ([]model.Task, error) {
	if len(selected) == 0 {
		return nil, journal.ErrNothingSelected
	}

	created := make([]model.Task, 0, len(selected))
	err := s.mutate(ctx, func() error {
		now := s.now()
		for _, sg := range selected {
			t := model.Task{
				ID:               s.nextID(),
				Name:             sg.Task,
				EstimatedMinutes: sg.EstimatedMinutes,
				CreatedAt:        now,
				SuggestedBy:      model.SuggestedByAI,
				SuggestionReason: sg.Reason,
			}
			s.tasks = append(s.tasks, t)
			created = append(created, t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// AppendReview adds a review to the history and saves.
func (s *Store) AppendReview(ctx context.Context, r model.DailyReview) error {
	if r.TasksCompleted < 0 || r.TasksCompleted > r.TasksTotal {
		return journal.ErrInvalidReview
	}
	return s.mutate(ctx, func() error {
		s.reviews = append(s.reviews, r)
		return nil
	})
}

func (s *Store) indexOf(id int64) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// nextID returns a millisecond timestamp id, bumped past every id in use.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if m := maxTaskID(s.tasks) + 1; m > id {
		id = m
	}
	if s.lastID+1 > id {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func maxTaskID(tasks []model.Task) int64 {
	var m int64
	for _, t := range tasks {
		if t.ID > m {
			m = t.ID
		}
	}
	return m
}
