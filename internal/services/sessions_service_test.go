package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-tasklist/internal/services"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestSessionStore_IsolatesSessions(t *testing.T) {
	store := services.NewSessionStore(zerolog.Nop(), time.Hour)
	var sessions services.SessionService = store

	var a, b services.TaskListController = sessions.TaskList("a"), sessions.TaskList("b")
	a.AddTask("only in a")

	if b.Total() != 0 {
		t.Errorf("expected session b to be empty, got %d tasks", b.Total())
	}
	if sessions.TaskList("a") != a {
		t.Error("expected the same list for the same session")
	}
	if store.Len() != 2 {
		t.Errorf("expected 2 sessions, got %d", store.Len())
	}
}

func TestSessionStore_Sweep(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)}
	store := services.NewSessionStore(
		zerolog.Nop(),
		30*time.Minute,
		services.WithSessionClock(clock.Now),
	)

	store.TaskList("idle").AddTask("forgotten")
	store.TaskList("busy")

	clock.Advance(20 * time.Minute)
	store.TaskList("busy")

	clock.Advance(20 * time.Minute)
	if n := store.Sweep(); n != 1 {
		t.Fatalf("expected 1 swept session, got %d", n)
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 remaining session, got %d", store.Len())
	}
	if store.TaskList("idle").Total() != 0 {
		t.Error("expected a fresh list after the session expired")
	}
}

func TestSessionStore_ObserversReceiveSessionID(t *testing.T) {
	var events []services.Event
	store := services.NewSessionStore(
		zerolog.Nop(),
		time.Hour,
		services.WithObservers(func(e services.Event) {
			events = append(events, e)
		}),
	)

	store.TaskList("s1").AddTask("a")
	store.TaskList("s2").AddTask("b")

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].SessionID != "s1" || events[1].SessionID != "s2" {
		t.Errorf("unexpected session ids: %q, %q", events[0].SessionID, events[1].SessionID)
	}
}

func TestSessionStore_RunStopsOnCancel(t *testing.T) {
	store := services.NewSessionStore(zerolog.Nop(), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		store.Run(ctx, time.Millisecond)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestSessionStore_AttachedSessionIsNotSwept(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)}
	store := services.NewSessionStore(
		zerolog.Nop(),
		time.Minute,
		services.WithSessionClock(clock.Now),
	)

	store.TaskList("open-tab").AddTask("Buy milk")
	list, detach := store.Attach("open-tab")

	clock.Advance(2 * time.Minute)
	if n := store.Sweep(); n != 0 {
		t.Fatalf("expected attached session to be kept, swept %d", n)
	}
	if store.TaskList("open-tab") != list || list.Total() != 1 {
		t.Fatal("expected the attached list to survive the sweep")
	}

	clock.Advance(2 * time.Minute)
	detach()
	detach()
	if n := store.Sweep(); n != 0 {
		t.Fatalf("detaching must count as activity, swept %d", n)
	}

	clock.Advance(2 * time.Minute)
	if n := store.Sweep(); n != 1 {
		t.Errorf("expected the idle session to be swept after detach, swept %d", n)
	}
}
