package journal

import (
	"fmt"
	"strings"

	"timetracker/internal/model"
)

// MinPassphraseLength is enforced when a passphrase is first set up.
const MinPassphraseLength = 8

// Mode selects how an incoming snapshot is combined with the journal.
type Mode int

const (
	// ModeUnset is only valid while the journal is empty.
	ModeUnset Mode = iota
	// ModeMerge renumbers incoming tasks and appends them.
	ModeMerge
	// ModeReplace discards the current journal.
	ModeReplace
)

func (m Mode) String() string {
	switch m {
	case ModeUnset:
		return "unset"
	case ModeMerge:
		return "merge"
	case ModeReplace:
		return "replace"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses "merge", "replace" or "" (unset).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return ModeUnset, nil
	case "merge":
		return ModeMerge, nil
	case "replace":
		return ModeReplace, nil
	}
	return ModeUnset, ErrInvalidMode
}

// LoadStatus reports what Load found in storage.
type LoadStatus string

const (
	LoadEmpty  LoadStatus = "empty"  // nothing stored yet
	LoadOK     LoadStatus = "ok"     // stored journal decoded
	LoadFailed LoadStatus = "failed" // stored journal unreadable; started empty
)

// --- UseCase Inputs ---

type SetupInput struct {
	Passphrase string
	Confirm    string
}

type AddTaskInput struct {
	Name             string
	EstimatedMinutes int
}

type FoldElapsedInput struct {
	TaskID  int64
	Seconds int
}

type RecordReviewInput struct {
	Accomplishments string
	Incomplete      string
	Insights        string
}

type AcceptSuggestionsInput struct {
	Suggestions []model.Suggestion
}

type ImportInput struct {
	Blob       string
	Passphrase string
	Mode       Mode
}

type RestoreInput struct {
	Backup     []byte
	Passphrase string
	Mode       Mode
}

type ListTasksInput struct {
	// Day limits the list to one calendar day; empty means all tasks.
	Day string
}

// --- UseCase Outputs ---

type StatusOutput struct {
	Initialised bool
	Unlocked    bool
	// Unreadable means the passphrase did not open the stored journal and
	// writes are refused until Reset, a readable Unlock or a replace import.
	Unreadable  bool
	TaskCount   int
	ReviewCount int
}

type UnlockOutput struct {
	Load LoadStatus
}

type ListTasksOutput struct {
	Tasks []model.Task
}

type DraftReviewOutput struct {
	Accomplishments string
	Incomplete      string
}

type RecordReviewOutput struct {
	Review      model.DailyReview
	Suggestions []model.Suggestion
}

type AcceptSuggestionsOutput struct {
	Tasks []model.Task
}

type BackupOutput struct {
	Backup   model.Backup
	FileName string
	Content  []byte
}

type ImportOutput struct {
	TaskCount   int
	ReviewCount int
}
