package suggestion

import (
	"fmt"
	"math"
	"strings"

	"timetracker/internal/model"
)

const (
	minCarryoverMinutes   = 15
	efficiencyThreshold   = 0.7
	improvementMultiplier = 1.2
	completionThreshold   = 0.7
	trendWindow           = 3
)

// carryover proposes continuing every unfinished task.
func carryover(tasks []model.Task) []model.Suggestion {
	var out []model.Suggestion
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		remaining := t.EstimatedMinutes - t.ActualMinutes()
		if remaining < minCarryoverMinutes {
			remaining = minCarryoverMinutes
		}
		out = append(out, model.Suggestion{
			Task:             t.Name + " (continued)",
			EstimatedMinutes: remaining,
			Reason:           fmt.Sprintf("Not finished yesterday. Estimated time remaining: %d min", remaining),
			Priority:         model.PriorityHigh,
			Type:             model.SuggestionCarryover,
		})
	}
	return out
}

// efficiency is estimated/actual minutes. It is 1 when either side is zero,
// so tasks with no estimate or no tracked time never count as slow.
func efficiency(t model.Task) float64 {
	actual := t.ActualMinutes()
	if t.EstimatedMinutes <= 0 || actual == 0 {
		return 1
	}
	return float64(t.EstimatedMinutes) / float64(actual)
}

// improvement proposes revisiting finished tasks that overran their estimate.
func improvement(tasks []model.Task) []model.Suggestion {
	var out []model.Suggestion
	for _, t := range tasks {
		if !t.Completed || efficiency(t) >= efficiencyThreshold {
			continue
		}
		out = append(out, model.Suggestion{
			Task:             "Review and improve: " + t.Name,
			EstimatedMinutes: int(math.Round(float64(t.ActualMinutes()) * improvementMultiplier)),
			Reason:           "Took longer than expected yesterday; look for a better approach",
			Priority:         model.PriorityMedium,
			Type:             model.SuggestionImprovement,
		})
	}
	return out
}

// reflection turns concerns named in the insights text into fixed suggestions.
func reflection(insights string) []model.Suggestion {
	text := strings.ToLower(insights)
	var out []model.Suggestion

	if containsAny(text, TimeKeywords) {
		out = append(out, model.Suggestion{
			Task:             "Improve time estimate accuracy",
			EstimatedMinutes: 30,
			Reason:           "Time management came up as something to improve",
			Priority:         model.PriorityMedium,
			Type:             model.SuggestionMeta,
		})
	}
	if containsAny(text, FocusKeywords) {
		out = append(out, model.Suggestion{
			Task:             "Set up a distraction-free work environment",
			EstimatedMinutes: 20,
			Reason:           "Focus or efficiency came up as something to improve",
			Priority:         model.PriorityMedium,
			Type:             model.SuggestionMeta,
		})
	}
	if containsAny(text, PlanningKeywords) {
		out = append(out, model.Suggestion{
			Task:             "Plan tomorrow's tasks in detail",
			EstimatedMinutes: 25,
			Reason:           "Preparation was recognised as important",
			Priority:         model.PriorityHigh,
			Type:             model.SuggestionPlanning,
		})
	}
	return out
}

func routine() model.Suggestion {
	return model.Suggestion{
		Task:             "Reflect on today and plan tomorrow",
		EstimatedMinutes: 15,
		Reason:           "Keeps the improvement loop going",
		Priority:         model.PriorityMedium,
		Type:             model.SuggestionRoutine,
	}
}

// optimization looks at the completion trend of the most recent reviews.
func optimization(history []model.DailyReview) (model.Suggestion, bool) {
	if len(history) < trendWindow {
		return model.Suggestion{}, false
	}

	var sum float64
	for _, r := range history[len(history)-trendWindow:] {
		rate, ok := r.CompletionRate()
		if !ok {
			// An empty day makes the mean undefined.
			return model.Suggestion{}, false
		}
		sum += rate
	}
	mean := sum / trendWindow
	if mean >= completionThreshold {
		return model.Suggestion{}, false
	}

	return model.Suggestion{
		Task:             "Rethink how much work to plan per day",
		EstimatedMinutes: 20,
		Reason:           fmt.Sprintf("Recent completion rate is low at %d%%", int(math.Round(mean*100))),
		Priority:         model.PriorityHigh,
		Type:             model.SuggestionOptimization,
	}, true
}
