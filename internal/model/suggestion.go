package model

// Priority ranks a suggestion.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Weight is the sort weight used to order suggestions.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// SuggestionType names the rule that produced a suggestion.
type SuggestionType string

const (
	SuggestionCarryover    SuggestionType = "carryover"
	SuggestionImprovement  SuggestionType = "improvement"
	SuggestionMeta         SuggestionType = "meta"
	SuggestionPlanning     SuggestionType = "planning"
	SuggestionRoutine      SuggestionType = "routine"
	SuggestionOptimization SuggestionType = "optimization"
)

// Suggestion is a proposed next-day task. It is never persisted as-is;
// accepting it creates a Task.
type Suggestion struct {
	Task             string         `json:"task"`
	EstimatedMinutes int            `json:"estimatedMinutes"`
	Reason           string         `json:"reason"`
	Priority         Priority       `json:"priority"`
	Type             SuggestionType `json:"type"`
}
