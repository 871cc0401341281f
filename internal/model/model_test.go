package model_test

import (
	"testing"

	"timetracker/internal/model"
)

func TestRoundMinutes(t *testing.T) {
	tests := []struct {
		seconds int
		want    int
	}{
		{0, 0},
		{-5, 0},
		{29, 0},
		{30, 1},
		{89, 1},
		{90, 2},
		{600, 10},
		{3600, 60},
	}
	for _, tt := range tests {
		if got := model.RoundMinutes(tt.seconds); got != tt.want {
			t.Errorf("RoundMinutes(%d) = %d, want %d", tt.seconds, got, tt.want)
		}
	}
}

func TestPriorityWeight(t *testing.T) {
	if model.PriorityHigh.Weight() <= model.PriorityMedium.Weight() ||
		model.PriorityMedium.Weight() <= model.PriorityLow.Weight() {
		t.Fatal("expected high > medium > low")
	}
	if model.Priority("urgent").Weight() != 0 {
		t.Error("unknown priority should weigh 0")
	}
}

func TestCompletionRate(t *testing.T) {
	if _, ok := (model.DailyReview{}).CompletionRate(); ok {
		t.Error("expected undefined rate for empty review")
	}
	rate, ok := model.DailyReview{TasksCompleted: 3, TasksTotal: 4}.CompletionRate()
	if !ok || rate != 0.75 {
		t.Errorf("expected 0.75, got %v (ok=%v)", rate, ok)
	}
}

func TestSnapshotClone(t *testing.T) {
	orig := model.Snapshot{Tasks: []model.Task{{ID: 1, Name: "a"}}}
	c := orig.Clone()
	c.Tasks[0].Name = "changed"
	if orig.Tasks[0].Name != "a" {
		t.Fatal("clone shares the source task slice")
	}
	if c.DailyReviews == nil {
		t.Error("expected non-nil reviews slice")
	}
	if !(model.Snapshot{}).IsEmpty() || orig.IsEmpty() {
		t.Error("IsEmpty mismatch")
	}
}
