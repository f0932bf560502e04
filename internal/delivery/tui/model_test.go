package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-tasklist/internal/services"
	"github.com/adanyl0v/go-tasklist/internal/view"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = press(t, m, runes(string(r)))
	}
	return m
}

func TestModel_AddTask(t *testing.T) {
	list := services.NewTaskList(zerolog.Nop())
	m := NewModel(list)

	m = typeText(t, m, "Buy milk")
	if list.Draft() != "Buy milk" {
		t.Errorf("expected draft to follow the input, got %q", list.Draft())
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if list.Total() != 1 {
		t.Fatalf("expected 1 task, got %d", list.Total())
	}
	if m.input.Value() != "" {
		t.Errorf("expected the input to be cleared, got %q", m.input.Value())
	}

	out := m.View()
	for _, want := range []string{"[ ] Buy milk", "0 sur 1 tâches terminées", "1 en cours • 0 terminées • 1 total"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected view to contain %q, got:\n%s", want, out)
		}
	}
}

func TestModel_LongInputIsKeptWhole(t *testing.T) {
	list := services.NewTaskList(zerolog.Nop())
	m := NewModel(list)

	text := strings.Repeat("é", 300)
	m = typeText(t, m, text)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	tasks := list.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].Text != text {
		t.Errorf("expected all %d runes to be kept, got %d", 300, len([]rune(tasks[0].Text)))
	}
}

func TestModel_BlankEnterKeepsInput(t *testing.T) {
	list := services.NewTaskList(zerolog.Nop())
	m := NewModel(list)

	m = typeText(t, m, "   ")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if list.Total() != 0 {
		t.Errorf("expected no tasks, got %d", list.Total())
	}
	if m.input.Value() != "   " {
		t.Errorf("expected the input to be kept, got %q", m.input.Value())
	}
	out := m.View()
	if !strings.Contains(out, view.EmptyTitle) || !strings.Contains(out, view.EmptyHeader) {
		t.Errorf("expected the empty state, got:\n%s", out)
	}
	if strings.Contains(out, "en cours") {
		t.Error("footer must be hidden for an empty list")
	}
}

func TestModel_ToggleAndDelete(t *testing.T) {
	list := services.NewTaskList(zerolog.Nop())
	list.AddTask("first")
	list.AddTask("second")
	m := NewModel(list)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyDown}, runes("x"))
	tasks := list.Tasks()
	if tasks[0].Completed || !tasks[1].Completed {
		t.Fatalf("expected only %q to be completed: %+v", "first", tasks)
	}
	if !strings.Contains(m.View(), "> [x] first") {
		t.Errorf("expected cursor on the completed task, got:\n%s", m.View())
	}

	m = press(t, m, runes("d"))
	if list.Total() != 1 || list.Tasks()[0].Text != "second" {
		t.Fatalf("expected only %q left: %+v", "second", list.Tasks())
	}
	if m.cursor != 0 {
		t.Errorf("expected cursor to be clamped to 0, got %d", m.cursor)
	}

	m = press(t, m, runes("x"), runes("c"))
	if list.Total() != 0 {
		t.Errorf("expected completed tasks to be cleared, got %d", list.Total())
	}
	if !strings.Contains(m.View(), view.EmptyTitle) {
		t.Errorf("expected the empty state, got:\n%s", m.View())
	}
}

func TestModel_ListKeysOnEmptyList(t *testing.T) {
	list := services.NewTaskList(zerolog.Nop())
	m := NewModel(list)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, runes("x"), runes("d"), tea.KeyMsg{Type: tea.KeyUp})
	if list.Total() != 0 || m.cursor != 0 {
		t.Errorf("expected no change, got total %d cursor %d", list.Total(), m.cursor)
	}
}

func TestModel_Quit(t *testing.T) {
	m := NewModel(services.NewTaskList(zerolog.Nop()))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestRenderItems(t *testing.T) {
	page := view.Page{
		Items: []view.Item{
			{ID: 2, Text: "b", Completed: true},
			{ID: 1, Text: "a"},
		},
	}

	got := renderItems(page, 1, true)
	want := "  [x] b\n> [ ] a\n"
	if got != want {
		t.Errorf("renderItems() = %q, want %q", got, want)
	}

	got = renderItems(page, 1, false)
	want = "  [x] b\n  [ ] a\n"
	if got != want {
		t.Errorf("renderItems() = %q, want %q", got, want)
	}
}
