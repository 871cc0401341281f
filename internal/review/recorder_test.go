package review_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"timetracker/internal/journal"
	"timetracker/internal/model"
	"timetracker/internal/review"
	"timetracker/pkg/datemath"
)

// mockLogger implements pkgLog.Logger and discards everything.
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockJournal struct {
	tasks     []model.Task
	reviews   []model.DailyReview
	appendErr error
}

func (m *mockJournal) Tasks() []model.Task          { return m.tasks }
func (m *mockJournal) Reviews() []model.DailyReview { return m.reviews }
func (m *mockJournal) AppendReview(_ context.Context, r model.DailyReview) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.reviews = append(m.reviews, r)
	return nil
}

var now = time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

func newClock(t *testing.T) *datemath.Clock {
	t.Helper()
	c, err := datemath.NewClock("UTC")
	if err != nil {
		t.Fatal(err)
	}
	return c.WithNow(func() time.Time { return now })
}

func fixtureTasks() []model.Task {
	yesterday := now.AddDate(0, 0, -1)
	return []model.Task{
		{ID: 1, Name: "Old", EstimatedMinutes: 30, CreatedAt: yesterday},
		{ID: 2, Name: "Draft report", EstimatedMinutes: 60, ActualSeconds: 600, CreatedAt: now.Add(-8 * time.Hour)},
		{ID: 3, Name: "Email", EstimatedMinutes: 30, ActualSeconds: 3600, Completed: true, CreatedAt: now.Add(-7 * time.Hour)},
	}
}

func TestRecordCountsTodayOnly(t *testing.T) {
	j := &mockJournal{tasks: fixtureTasks()}
	r := review.New(j, newClock(t), &mockLogger{})

	out, err := r.Record(context.Background(), journal.RecordReviewInput{
		Accomplishments: "sent email",
		Insights:        "I was running late all day",
	})
	if err != nil {
		t.Fatal(err)
	}

	rv := out.Review
	if rv.Date != "2026-03-14" || rv.TasksTotal != 2 || rv.TasksCompleted != 1 || !rv.CreatedAt.Equal(now) {
		t.Fatalf("unexpected review %+v", rv)
	}
	if len(j.reviews) != 1 {
		t.Fatal("review was not appended")
	}

	var types []model.SuggestionType
	for _, s := range out.Suggestions {
		types = append(types, s.Type)
	}
	want := []model.SuggestionType{
		model.SuggestionCarryover,
		model.SuggestionImprovement,
		model.SuggestionMeta,
		model.SuggestionRoutine,
	}
	if len(types) != len(want) {
		t.Fatalf("expected %v, got %v", want, types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("suggestion %d: got %s, want %s", i, types[i], want[i])
		}
	}
	if out.Suggestions[0].EstimatedMinutes != 50 {
		t.Errorf("carryover estimate = %d, want 50", out.Suggestions[0].EstimatedMinutes)
	}
}

func TestRecordAppendFailure(t *testing.T) {
	wantErr := errors.New("disk full")
	j := &mockJournal{tasks: fixtureTasks(), appendErr: wantErr}
	r := review.New(j, newClock(t), &mockLogger{})

	if _, err := r.Record(context.Background(), journal.RecordReviewInput{}); !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}

func TestRecordUsesHistoryForOptimization(t *testing.T) {
	j := &mockJournal{
		tasks: fixtureTasks(),
		reviews: []model.DailyReview{
			{TasksCompleted: 1, TasksTotal: 4},
			{TasksCompleted: 1, TasksTotal: 4},
		},
	}
	r := review.New(j, newClock(t), &mockLogger{})

	out, err := r.Record(context.Background(), journal.RecordReviewInput{})
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, s := range out.Suggestions {
		if s.Type == model.SuggestionOptimization {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an optimization suggestion, got %+v", out.Suggestions)
	}
}

func TestDraft(t *testing.T) {
	j := &mockJournal{tasks: append(fixtureTasks(),
		model.Task{ID: 4, Name: "Unplanned", ActualSeconds: 300, Completed: true, CreatedAt: now},
	)}
	r := review.New(j, newClock(t), &mockLogger{})

	d := r.Draft(context.Background())
	wantDone := "• Email (planned: 30m → actual: 60m, efficiency: 50%)\n" +
		"• Unplanned (planned: 0m → actual: 5m, efficiency: 100%)"
	if d.Accomplishments != wantDone {
		t.Errorf("accomplishments:\n%s\nwant:\n%s", d.Accomplishments, wantDone)
	}
	if want := "• Draft report (progress: 10m worked)"; d.Incomplete != want {
		t.Errorf("incomplete = %q, want %q", d.Incomplete, want)
	}
}

func TestDraftEmptyDay(t *testing.T) {
	r := review.New(&mockJournal{}, newClock(t), &mockLogger{})
	if d := r.Draft(context.Background()); d.Accomplishments != "" || d.Incomplete != "" {
		t.Errorf("expected empty draft, got %+v", d)
	}
}
