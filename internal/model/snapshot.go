package model

import "time"

// BackupVersion is the format tag written into new backups.
const BackupVersion = "2.0"

// Snapshot is the full journal state: the plaintext of an encrypted blob.
type Snapshot struct {
	Tasks        []Task        `json:"tasks"`
	DailyReviews []DailyReview `json:"dailyReviews"`
}

// IsEmpty reports whether the snapshot holds neither tasks nor reviews.
func (s Snapshot) IsEmpty() bool {
	return len(s.Tasks) == 0 && len(s.DailyReviews) == 0
}

// Clone returns a deep copy with non-nil slices.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Tasks:        make([]Task, len(s.Tasks)),
		DailyReviews: make([]DailyReview, len(s.DailyReviews)),
	}
	copy(out.Tasks, s.Tasks)
	copy(out.DailyReviews, s.DailyReviews)
	return out
}

// Backup is the on-disk backup envelope around a sealed snapshot.
type Backup struct {
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
	Data      string    `json:"data"`
}

// Summary is the headline of the task list.
type Summary struct {
	CompletedCount int `json:"completedCount"`
	TotalMinutes   int `json:"totalMinutes"`
	TaskCount      int `json:"taskCount"`
}
