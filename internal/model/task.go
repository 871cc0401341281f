package model

import "time"

// SuggestedByAI marks tasks created from accepted suggestions.
const SuggestedByAI = "ai"

// Task is a single tracked work item. JSON names match the blob format so
// snapshots written by older clients decode unchanged.
type Task struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	EstimatedMinutes int       `json:"estimatedMinutes"`
	ActualSeconds    int       `json:"actualSeconds"`
	Completed        bool      `json:"completed"`
	CreatedAt        time.Time `json:"createdAt"`
	SuggestedBy      string    `json:"suggestedBy,omitempty"`      // "" or SuggestedByAI
	SuggestionReason string    `json:"suggestionReason,omitempty"` // only on accepted suggestions
}

// ActualMinutes returns the tracked time rounded half-up to whole minutes.
func (t Task) ActualMinutes() int {
	return RoundMinutes(t.ActualSeconds)
}

// RoundMinutes converts non-negative seconds to minutes, rounding half up.
func RoundMinutes(seconds int) int {
	if seconds <= 0 {
		return 0
	}
	return (seconds + 30) / 60
}
