package models

import "time"

type Task struct {
	ID        int64
	Text      string
	Completed bool
	CreatedAt time.Time
}

// Snapshot is a point-in-time copy of a task list.
// Tasks are ordered newest first.
type Snapshot struct {
	Tasks     []Task
	DraftText string
	Total     int
	Completed int
	Active    int
}

func (s Snapshot) IsEmpty() bool {
	return s.Total == 0
}
