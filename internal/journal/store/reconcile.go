package store

import (
	"context"

	"timetracker/internal/journal"
	"timetracker/internal/model"
)

// Reconcile combines incoming with the journal and saves.
//
// While the stored journal is unreadable only ModeReplace is accepted, and
// it makes the journal writable again. An empty journal adopts incoming
// whatever the mode. Otherwise ModeReplace
// swaps the collections and ModeMerge renumbers incoming tasks to
// max(existing ids)+1+position and appends them, then appends the reviews.
func (s *Store) Reconcile(ctx context.Context, incoming model.Snapshot, mode journal.Mode) error {
	if !s.IsUnlocked() {
		return journal.ErrLocked
	}
	if s.unreadable && mode != journal.ModeReplace {
		return journal.ErrUnreadable
	}
	empty := s.snapshot().IsEmpty()
	if !empty {
		switch mode {
		case journal.ModeMerge, journal.ModeReplace:
		case journal.ModeUnset:
			return journal.ErrModeRequired
		default:
			return journal.ErrInvalidMode
		}
	}

	in := incoming.Clone()
	return s.mutate(ctx, func() error {
		if empty || mode == journal.ModeReplace {
			s.tasks = in.Tasks
			s.reviews = in.DailyReviews
			s.unreadable = false
			return nil
		}

		base := maxTaskID(s.tasks)
		for i := range in.Tasks {
			in.Tasks[i].ID = base + 1 + int64(i)
		}
		s.tasks = append(s.tasks, in.Tasks...)
		s.reviews = append(s.reviews, in.DailyReviews...)
		return nil
	})
}
