package services

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-tasklist/internal/models"
)

type subscription struct {
	id       int
	observer Observer
}

// TaskList is an in-memory task list with a draft text.
// It is safe for concurrent use.
type TaskList struct {
	logger zerolog.Logger
	now    func() time.Time

	// notifyMu serializes mutations together with their notifications,
	// so observers see events in the order the changes were made.
	// Observers must not mutate the list they observe.
	notifyMu sync.Mutex

	mu            sync.Mutex
	tasks         []models.Task
	draftText     string
	lastID        int64
	subscriptions []subscription
	nextSubID     int
}

var _ TaskListController = (*TaskList)(nil)

type TaskListOption func(*TaskList)

// WithClock overrides the clock used for IDs and creation times.
func WithClock(now func() time.Time) TaskListOption {
	return func(l *TaskList) {
		l.now = now
	}
}

func NewTaskList(logger zerolog.Logger, opts ...TaskListOption) *TaskList {
	l := &TaskList{
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *TaskList) AddTask(rawText string) (models.Task, bool) {
	text := strings.TrimSpace(rawText)
	if text == "" {
		l.logger.Debug().Msg("ignored empty task text")
		return models.Task{}, false
	}

	l.notifyMu.Lock()
	defer l.notifyMu.Unlock()

	l.mu.Lock()
	now := l.now()
	task := models.Task{
		ID:        l.nextIDLocked(now),
		Text:      text,
		Completed: false,
		CreatedAt: now,
	}
	l.tasks = slices.Insert(l.tasks, 0, task)
	l.draftText = ""
	event := Event{Op: OpAdd, Task: task, Snapshot: l.snapshotLocked()}
	observers := l.observersLocked()
	l.mu.Unlock()

	l.logger.Debug().
		Int64("task_id", task.ID).
		Msg("added task")
	notify(observers, event)
	return task, true
}

func (l *TaskList) ToggleTask(id int64) (models.Task, bool) {
	l.notifyMu.Lock()
	defer l.notifyMu.Unlock()

	l.mu.Lock()
	i := l.indexLocked(id)
	if i < 0 {
		l.mu.Unlock()
		l.logger.Debug().
			Int64("task_id", id).
			Msg("toggle of unknown task ignored")
		return models.Task{}, false
	}
	l.tasks[i].Completed = !l.tasks[i].Completed
	task := l.tasks[i]
	event := Event{Op: OpToggle, Task: task, Snapshot: l.snapshotLocked()}
	observers := l.observersLocked()
	l.mu.Unlock()

	l.logger.Debug().
		Int64("task_id", task.ID).
		Bool("completed", task.Completed).
		Msg("toggled task")
	notify(observers, event)
	return task, true
}

func (l *TaskList) DeleteTask(id int64) (models.Task, bool) {
	l.notifyMu.Lock()
	defer l.notifyMu.Unlock()

	l.mu.Lock()
	i := l.indexLocked(id)
	if i < 0 {
		l.mu.Unlock()
		l.logger.Debug().
			Int64("task_id", id).
			Msg("delete of unknown task ignored")
		return models.Task{}, false
	}
	task := l.tasks[i]
	l.tasks = slices.Delete(l.tasks, i, i+1)
	event := Event{Op: OpDelete, Task: task, Removed: 1, Snapshot: l.snapshotLocked()}
	observers := l.observersLocked()
	l.mu.Unlock()

	l.logger.Debug().
		Int64("task_id", task.ID).
		Msg("deleted task")
	notify(observers, event)
	return task, true
}

func (l *TaskList) ClearCompleted() int {
	l.notifyMu.Lock()
	defer l.notifyMu.Unlock()

	l.mu.Lock()
	before := len(l.tasks)
	l.tasks = slices.DeleteFunc(l.tasks, func(t models.Task) bool {
		return t.Completed
	})
	removed := before - len(l.tasks)
	if removed == 0 {
		l.mu.Unlock()
		return 0
	}
	event := Event{Op: OpClearCompleted, Removed: removed, Snapshot: l.snapshotLocked()}
	observers := l.observersLocked()
	l.mu.Unlock()

	l.logger.Debug().
		Int("count", removed).
		Msg("cleared completed tasks")
	notify(observers, event)
	return removed
}

func (l *TaskList) SetDraft(text string) bool {
	l.notifyMu.Lock()
	defer l.notifyMu.Unlock()

	l.mu.Lock()
	if l.draftText == text {
		l.mu.Unlock()
		return false
	}
	l.draftText = text
	event := Event{Op: OpDraft, Snapshot: l.snapshotLocked()}
	observers := l.observersLocked()
	l.mu.Unlock()

	notify(observers, event)
	return true
}

func (l *TaskList) Draft() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.draftText
}

// SubmitDraft adds a task from the current draft text.
func (l *TaskList) SubmitDraft() (models.Task, bool) {
	return l.AddTask(l.Draft())
}

func (l *TaskList) Task(id int64) (models.Task, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.indexLocked(id)
	if i < 0 {
		return models.Task{}, false
	}
	return l.tasks[i], true
}

func (l *TaskList) Tasks() []models.Task {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.tasks)
}

func (l *TaskList) Total() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tasks)
}

func (l *TaskList) CompletedCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.completedLocked()
}

func (l *TaskList) ActiveCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tasks) - l.completedLocked()
}

func (l *TaskList) Snapshot() models.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

func (l *TaskList) Subscribe(observer Observer) func() {
	l.mu.Lock()
	id := l.nextSubID
	l.nextSubID++
	l.subscriptions = append(l.subscriptions, subscription{id: id, observer: observer})
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.subscriptions = slices.DeleteFunc(l.subscriptions, func(s subscription) bool {
			return s.id == id
		})
	}
}

// nextIDLocked derives an ID from the clock in milliseconds
// and keeps IDs strictly increasing when the clock stalls.
func (l *TaskList) nextIDLocked(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id
	return id
}

func (l *TaskList) indexLocked(id int64) int {
	return slices.IndexFunc(l.tasks, func(t models.Task) bool {
		return t.ID == id
	})
}

func (l *TaskList) completedLocked() int {
	n := 0
	for _, t := range l.tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

func (l *TaskList) snapshotLocked() models.Snapshot {
	completed := l.completedLocked()
	return models.Snapshot{
		Tasks:     slices.Clone(l.tasks),
		DraftText: l.draftText,
		Total:     len(l.tasks),
		Completed: completed,
		Active:    len(l.tasks) - completed,
	}
}

func (l *TaskList) observersLocked() []Observer {
	observers := make([]Observer, len(l.subscriptions))
	for i, s := range l.subscriptions {
		observers[i] = s.observer
	}
	return observers
}

func notify(observers []Observer, event Event) {
	for _, observer := range observers {
		observer(event)
	}
}
