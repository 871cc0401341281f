// Package suggestion derives next-day task proposals from a day's tasks and
// its review. The rules are fixed heuristics and are applied in order:
// carryover, improvement, reflection (time, focus, planning), routine,
// optimization. Results are stable-sorted by priority and capped.
package suggestion

import (
	"sort"

	"timetracker/internal/model"
)

// MaxSuggestions caps the length of the list returned by Suggest.
const MaxSuggestions = 5

// Suggest returns at most MaxSuggestions proposals ordered by non-increasing
// priority weight; equal priorities keep rule order. todayTasks are the tasks
// of the reviewed day and history must already include review.
func Suggest(todayTasks []model.Task, review model.DailyReview, history []model.DailyReview) []model.Suggestion {
	var out []model.Suggestion
	out = append(out, carryover(todayTasks)...)
	out = append(out, improvement(todayTasks)...)
	out = append(out, reflection(review.Insights)...)
	out = append(out, routine())
	if s, ok := optimization(history); ok {
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Weight() > out[j].Priority.Weight()
	})

	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}
