package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

var (
	taskMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tasklist_mutations_total",
			Help: "Total number of task list state changes",
		},
		[]string{"op"},
	)

	tasksRemovedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tasklist_tasks_removed_total",
			Help: "Total number of tasks removed by delete or clear",
		},
	)

	sessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tasklist_sessions_active",
			Help: "Current number of in-memory sessions",
		},
	)
)

// NewMetricsObserver counts state changes by operation.
func NewMetricsObserver() Observer {
	return func(e Event) {
		taskMutationsTotal.WithLabelValues(string(e.Op)).Inc()
		if e.Removed > 0 {
			tasksRemovedTotal.Add(float64(e.Removed))
		}
	}
}

// NewLoggingObserver logs every state change except draft edits,
// which fire on each keystroke and are only traced.
func NewLoggingObserver(logger zerolog.Logger) Observer {
	return func(e Event) {
		level := zerolog.InfoLevel
		if e.Op == OpDraft {
			level = zerolog.TraceLevel
		}

		ev := logger.WithLevel(level).
			Str("op", string(e.Op)).
			Int("total", e.Snapshot.Total).
			Int("completed", e.Snapshot.Completed)
		if e.SessionID != "" {
			ev = ev.Str("session_id", e.SessionID)
		}
		if e.Task.ID != 0 {
			ev = ev.Int64("task_id", e.Task.ID)
		}
		ev.Msg("task list changed")
	}
}
