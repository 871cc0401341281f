package http

import (
	"encoding/json"
	"errors"
	"time"

	"timetracker/internal/journal"
	"timetracker/internal/model"
)

var (
	errInvalidID      = errors.New("task id must be a positive integer")
	errMissingBackup  = errors.New("backup is required")
	errNegativeMinute = errors.New("estimatedMinutes must not be negative")
)

// --- Request DTOs ---

type setupReq struct {
	Passphrase string `json:"passphrase" binding:"required"`
	Confirm    string `json:"confirm"    binding:"required"`
}

func (r setupReq) validate() error { return nil }

func (r setupReq) toInput() journal.SetupInput {
	return journal.SetupInput{Passphrase: r.Passphrase, Confirm: r.Confirm}
}

type unlockReq struct {
	Passphrase string `json:"passphrase" binding:"required"`
}

func (r unlockReq) validate() error { return nil }

// ---

type listTasksReq struct {
	Day string `form:"day"`
}

func (r listTasksReq) validate() error { return nil }

func (r listTasksReq) toInput() journal.ListTasksInput {
	return journal.ListTasksInput{Day: r.Day}
}

type createTaskReq struct {
	Name             string `json:"name"             binding:"required,max=500"`
	EstimatedMinutes int    `json:"estimatedMinutes"`
}

func (r createTaskReq) validate() error {
	if r.EstimatedMinutes < 0 {
		return errNegativeMinute
	}
	return nil
}

func (r createTaskReq) toInput() journal.AddTaskInput {
	return journal.AddTaskInput{Name: r.Name, EstimatedMinutes: r.EstimatedMinutes}
}

type elapsedReq struct {
	ID      int64 `json:"-"` // populated from URI param
	Seconds int   `json:"seconds" binding:"min=0"`
}

func (r elapsedReq) validate() error { return nil }

func (r elapsedReq) toInput() journal.FoldElapsedInput {
	return journal.FoldElapsedInput{TaskID: r.ID, Seconds: r.Seconds}
}

// ---

type recordReviewReq struct {
	Accomplishments string `json:"accomplishments"`
	Incomplete      string `json:"incomplete"`
	Insights        string `json:"insights"`
}

func (r recordReviewReq) validate() error { return nil }

func (r recordReviewReq) toInput() journal.RecordReviewInput {
	return journal.RecordReviewInput{
		Accomplishments: r.Accomplishments,
		Incomplete:      r.Incomplete,
		Insights:        r.Insights,
	}
}

type acceptSuggestionsReq struct {
	Suggestions []suggestionResp `json:"suggestions" binding:"required,min=1,dive"`
}

func (r acceptSuggestionsReq) validate() error { return nil }

func (r acceptSuggestionsReq) toInput() journal.AcceptSuggestionsInput {
	in := journal.AcceptSuggestionsInput{Suggestions: make([]model.Suggestion, len(r.Suggestions))}
	for i, s := range r.Suggestions {
		in.Suggestions[i] = model.Suggestion{
			Task:             s.Task,
			EstimatedMinutes: s.EstimatedMinutes,
			Reason:           s.Reason,
			Priority:         model.Priority(s.Priority),
			Type:             model.SuggestionType(s.Type),
		}
	}
	return in
}

// ---

type importReq struct {
	Blob       string `json:"blob"       binding:"required"`
	Passphrase string `json:"passphrase"`
	Mode       string `json:"mode"       binding:"omitempty,oneof=merge replace"`
}

func (r importReq) validate() error { return nil }

func (r importReq) toInput() (journal.ImportInput, error) {
	mode, err := journal.ParseMode(r.Mode)
	return journal.ImportInput{Blob: r.Blob, Passphrase: r.Passphrase, Mode: mode}, err
}

type restoreReq struct {
	Backup     json.RawMessage `json:"backup"     swaggertype:"object"`
	Passphrase string          `json:"passphrase"`
	Mode       string          `json:"mode"       binding:"omitempty,oneof=merge replace"`
}

func (r restoreReq) validate() error {
	if len(r.Backup) == 0 {
		return errMissingBackup
	}
	return nil
}

func (r restoreReq) toInput() (journal.RestoreInput, error) {
	mode, err := journal.ParseMode(r.Mode)
	return journal.RestoreInput{Backup: r.Backup, Passphrase: r.Passphrase, Mode: mode}, err
}

// --- Response DTOs ---

type statusResp struct {
	Initialised bool `json:"initialised"`
	Unlocked    bool `json:"unlocked"`
	Unreadable  bool `json:"unreadable"`
	TaskCount   int  `json:"taskCount"`
	ReviewCount int  `json:"reviewCount"`
}

func newStatusResp(out journal.StatusOutput) statusResp {
	return statusResp(out)
}

type unlockResp struct {
	Load string `json:"load"`
}

func newUnlockResp(out journal.UnlockOutput) unlockResp {
	return unlockResp{Load: string(out.Load)}
}

type taskResp struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	EstimatedMinutes int       `json:"estimatedMinutes"`
	ActualSeconds    int       `json:"actualSeconds"`
	ActualMinutes    int       `json:"actualMinutes"`
	Completed        bool      `json:"completed"`
	CreatedAt        time.Time `json:"createdAt"`
	SuggestedBy      string    `json:"suggestedBy,omitempty"`
	SuggestionReason string    `json:"suggestionReason,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:               t.ID,
		Name:             t.Name,
		EstimatedMinutes: t.EstimatedMinutes,
		ActualSeconds:    t.ActualSeconds,
		ActualMinutes:    t.ActualMinutes(),
		Completed:        t.Completed,
		CreatedAt:        t.CreatedAt,
		SuggestedBy:      t.SuggestedBy,
		SuggestionReason: t.SuggestionReason,
	}
}

func newTaskList(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type taskListResp struct {
	Tasks []taskResp `json:"tasks"`
}

type summaryResp struct {
	CompletedCount int `json:"completedCount"`
	TotalMinutes   int `json:"totalMinutes"`
	TaskCount      int `json:"taskCount"`
}

type draftResp struct {
	Accomplishments string `json:"accomplishments"`
	Incomplete      string `json:"incomplete"`
}

type suggestionResp struct {
	Task             string `json:"task"             binding:"required"`
	EstimatedMinutes int    `json:"estimatedMinutes" binding:"min=1"`
	Reason           string `json:"reason"`
	Priority         string `json:"priority"`
	Type             string `json:"type"`
}

type reviewResp struct {
	Date            string    `json:"date"`
	Accomplishments string    `json:"accomplishments"`
	Incomplete      string    `json:"incomplete"`
	Insights        string    `json:"insights"`
	TasksCompleted  int       `json:"tasksCompleted"`
	TasksTotal      int       `json:"tasksTotal"`
	CreatedAt       time.Time `json:"createdAt"`
}

type recordReviewResp struct {
	Review      reviewResp       `json:"review"`
	Suggestions []suggestionResp `json:"suggestions"`
}

func newRecordReviewResp(out journal.RecordReviewOutput) recordReviewResp {
	resp := recordReviewResp{
		Review:      reviewResp(out.Review),
		Suggestions: make([]suggestionResp, len(out.Suggestions)),
	}
	for i, s := range out.Suggestions {
		resp.Suggestions[i] = suggestionResp{
			Task:             s.Task,
			EstimatedMinutes: s.EstimatedMinutes,
			Reason:           s.Reason,
			Priority:         string(s.Priority),
			Type:             string(s.Type),
		}
	}
	return resp
}

type exportResp struct {
	Blob string `json:"blob"`
}

type importResp struct {
	TaskCount   int `json:"taskCount"`
	ReviewCount int `json:"reviewCount"`
}
