package usecase

import (
	"sync"

	"timetracker/internal/journal"
	"timetracker/internal/journal/repository"
	"timetracker/internal/journal/store"
	"timetracker/internal/review"
	"timetracker/pkg/datemath"
	pkgLog "timetracker/pkg/log"
)

var _ journal.UseCase = (*implUseCase)(nil)

type implUseCase struct {
	mu       sync.Mutex
	l        pkgLog.Logger
	store    *store.Store
	recorder review.Recorder
	clock    *datemath.Clock
}

// New creates a new journal UseCase backed by repo. The journal starts locked.
func New(l pkgLog.Logger, repo repository.BlobRepository, clock *datemath.Clock) *implUseCase {
	st := store.New(repo, l, store.WithNow(clock.Now))
	return &implUseCase{
		l:        l,
		store:    st,
		recorder: review.New(st, clock, l),
		clock:    clock,
	}
}
