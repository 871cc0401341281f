package model

import "time"

// DailyReview is an end-of-day reflection. Reviews are append-only.
type DailyReview struct {
	Date            string    `json:"date"` // YYYY-MM-DD, local
	Accomplishments string    `json:"accomplishments"`
	Incomplete      string    `json:"incomplete"`
	Insights        string    `json:"insights"`
	TasksCompleted  int       `json:"tasksCompleted"`
	TasksTotal      int       `json:"tasksTotal"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CompletionRate returns TasksCompleted/TasksTotal. ok is false when the
// review has no tasks and the rate is undefined.
func (r DailyReview) CompletionRate() (rate float64, ok bool) {
	if r.TasksTotal <= 0 {
		return 0, false
	}
	return float64(r.TasksCompleted) / float64(r.TasksTotal), true
}
