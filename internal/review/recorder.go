// Package review closes out a day: it snapshots the day's tasks into a
// DailyReview, appends it to the journal and asks the suggestion engine for
// the next day's proposals.
package review

import (
	"context"
	"fmt"
	"math"
	"strings"

	"timetracker/internal/journal"
	"timetracker/internal/model"
	"timetracker/internal/suggestion"
	"timetracker/pkg/datemath"
	pkgLog "timetracker/pkg/log"
)

// Journal is the part of the store the recorder reads and appends to.
type Journal interface {
	Tasks() []model.Task
	Reviews() []model.DailyReview
	AppendReview(ctx context.Context, r model.DailyReview) error
}

type Recorder interface {
	// Record appends today's review and returns it with ranked suggestions.
	Record(ctx context.Context, input journal.RecordReviewInput) (journal.RecordReviewOutput, error)

	// Draft pre-fills the accomplishments and incomplete text from today's tasks.
	Draft(ctx context.Context) journal.DraftReviewOutput

	// TodayTasks returns the tasks created on the current calendar day.
	TodayTasks() []model.Task
}

type recorder struct {
	j     Journal
	clock *datemath.Clock
	l     pkgLog.Logger
}

func New(j Journal, clock *datemath.Clock, l pkgLog.Logger) Recorder {
	return &recorder{j: j, clock: clock, l: l}
}

func (r *recorder) TodayTasks() []model.Task {
	now := r.clock.Now()
	var today []model.Task
	for _, t := range r.j.Tasks() {
		if r.clock.SameDay(t.CreatedAt, now) {
			today = append(today, t)
		}
	}
	return today
}

func (r *recorder) Record(ctx context.Context, input journal.RecordReviewInput) (journal.RecordReviewOutput, error) {
	now := r.clock.Now()
	today := r.TodayTasks()

	rv := model.DailyReview{
		Date:            r.clock.DateString(now),
		Accomplishments: input.Accomplishments,
		Incomplete:      input.Incomplete,
		Insights:        input.Insights,
		TasksTotal:      len(today),
		CreatedAt:       now,
	}
	for _, t := range today {
		if t.Completed {
			rv.TasksCompleted++
		}
	}

	if err := r.j.AppendReview(ctx, rv); err != nil {
		r.l.Errorf(ctx, "review.Record: %v", err)
		return journal.RecordReviewOutput{}, err
	}

	suggestions := suggestion.Suggest(today, rv, r.j.Reviews())
	r.l.Infof(ctx, "review.Record: %s %d/%d done, %d suggestions",
		rv.Date, rv.TasksCompleted, rv.TasksTotal, len(suggestions))

	return journal.RecordReviewOutput{Review: rv, Suggestions: suggestions}, nil
}

func (r *recorder) Draft(ctx context.Context) journal.DraftReviewOutput {
	var done, open []string
	for _, t := range r.TodayTasks() {
		if t.Completed {
			done = append(done, completedLine(t))
		} else {
			open = append(open, incompleteLine(t))
		}
	}
	return journal.DraftReviewOutput{
		Accomplishments: strings.Join(done, "\n"),
		Incomplete:      strings.Join(open, "\n"),
	}
}

func completedLine(t model.Task) string {
	actual := t.ActualMinutes()
	return fmt.Sprintf("• %s (planned: %dm → actual: %dm, efficiency: %d%%)",
		t.Name, t.EstimatedMinutes, actual, efficiencyPercent(t.EstimatedMinutes, actual))
}

func incompleteLine(t model.Task) string {
	return fmt.Sprintf("• %s (progress: %dm worked)", t.Name, t.ActualMinutes())
}

// efficiencyPercent is planned/actual as a whole percentage, 100 when
// either side is zero.
func efficiencyPercent(estimated, actual int) int {
	if estimated <= 0 || actual <= 0 {
		return 100
	}
	return int(math.Round(float64(estimated) / float64(actual) * 100))
}
