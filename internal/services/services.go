package services

import (
	"context"
	"time"

	"github.com/adanyl0v/go-tasklist/internal/models"
)

type Op string

const (
	OpAdd            Op = "add"
	OpToggle         Op = "toggle"
	OpDelete         Op = "delete"
	OpDraft          Op = "draft"
	OpClearCompleted Op = "clear_completed"
)

// Event describes a single state change of a TaskList.
type Event struct {
	Op Op
	// Task is the added, toggled or deleted task.
	// It is zero for OpDraft and OpClearCompleted.
	Task models.Task
	// Removed is the number of tasks removed by the change.
	Removed  int
	Snapshot models.Snapshot
	// SessionID is filled in by the SessionStore.
	SessionID string
}

// Observer is called after every state change.
// It runs on the goroutine that made the change and must not block.
type Observer func(Event)

type TaskListController interface {
	// AddTask trims rawText and prepends a new active task.
	//
	// It returns false and leaves the list untouched
	// if the trimmed text is empty.
	AddTask(rawText string) (models.Task, bool)

	// ToggleTask flips the completed flag of the task with the given ID.
	// Unknown IDs are ignored.
	ToggleTask(id int64) (models.Task, bool)

	// DeleteTask removes the task with the given ID.
	// Unknown IDs are ignored.
	DeleteTask(id int64) (models.Task, bool)

	// ClearCompleted removes every completed task and
	// returns how many were removed.
	ClearCompleted() int

	SetDraft(text string) bool
	Draft() string
	SubmitDraft() (models.Task, bool)

	Task(id int64) (models.Task, bool)
	Tasks() []models.Task
	Total() int
	CompletedCount() int
	ActiveCount() int
	Snapshot() models.Snapshot

	// Subscribe registers an observer and returns
	// a function that unregisters it.
	Subscribe(observer Observer) (unsubscribe func())
}

type SessionService interface {
	// TaskList returns the list owned by the session,
	// creating an empty one on first use.
	TaskList(sessionID string) TaskListController

	// Attach is TaskList for long-lived readers such as event streams.
	// The session is not swept until detach is called, and detaching
	// counts as activity.
	Attach(sessionID string) (list TaskListController, detach func())

	// Sweep drops sessions idle for longer than the TTL
	// and returns how many were dropped.
	Sweep() int

	// Run sweeps on every tick until ctx is done.
	Run(ctx context.Context, interval time.Duration)
}
