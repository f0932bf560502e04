// Package tui is a terminal frontend for a single task list.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/adanyl0v/go-tasklist/internal/models"
	"github.com/adanyl0v/go-tasklist/internal/services"
	"github.com/adanyl0v/go-tasklist/internal/view"
)

type focus int

const (
	focusInput focus = iota
	focusList
)

const helpText = "enter ajouter • tab liste/saisie • ↑/↓ déplacer • espace/x basculer • d supprimer • c effacer terminées • esc quitter"

// state is shared by every copy of Model so the observer
// registered in NewModel keeps updating what View renders.
type state struct {
	snapshot models.Snapshot
}

type Model struct {
	list   services.TaskListController
	state  *state
	input  textinput.Model
	focus  focus
	cursor int
}

func NewModel(list services.TaskListController) Model {
	ti := textinput.New()
	ti.Placeholder = view.Placeholder
	ti.Width = 40
	ti.Focus()

	st := &state{snapshot: list.Snapshot()}
	list.Subscribe(func(e services.Event) {
		st.snapshot = e.Snapshot
	})

	return Model{
		list:  list,
		state: st,
		input: ti,
		focus: focusInput,
	}
}

func Run(list services.TaskListController) error {
	program := tea.NewProgram(NewModel(list), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			return m.switchFocus(), nil
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateList(msg.String()), nil
	case tea.WindowSizeMsg:
		if msg.Width > 20 {
			m.input.Width = msg.Width - 20
		}
	}
	return m, nil
}

func (m Model) switchFocus() Model {
	if m.focus == focusInput {
		m.focus = focusList
		m.input.Blur()
		m.cursor = clampCursor(m.cursor, len(m.state.snapshot.Tasks))
		return m
	}
	m.focus = focusInput
	m.input.Focus()
	return m
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		m.list.SubmitDraft()
		m.input.SetValue(m.list.Draft())
		m.input.CursorEnd()
		m.cursor = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.list.SetDraft(m.input.Value())
	return m, cmd
}

func (m Model) updateList(key string) Model {
	tasks := m.state.snapshot.Tasks
	switch key {
	case "up", "k":
		m.cursor = clampCursor(m.cursor-1, len(tasks))
	case "down", "j":
		m.cursor = clampCursor(m.cursor+1, len(tasks))
	case " ", "space", "x":
		if len(tasks) > 0 {
			m.list.ToggleTask(tasks[m.cursor].ID)
		}
	case "d":
		if len(tasks) > 0 {
			m.list.DeleteTask(tasks[m.cursor].ID)
		}
	case "c":
		m.list.ClearCompleted()
	}
	m.cursor = clampCursor(m.cursor, len(m.state.snapshot.Tasks))
	return m
}

func (m Model) View() string {
	page := view.Project(m.state.snapshot)

	var b strings.Builder
	b.WriteString(page.Title)
	b.WriteString("\n")
	b.WriteString(page.Summary)
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("  [" + page.AddLabel + "]")
	b.WriteString("\n\n")
	b.WriteString(renderItems(page, m.cursor, m.focus == focusList))
	if page.Footer != nil {
		b.WriteString("\n")
		b.WriteString(renderFooter(*page.Footer))
	}
	b.WriteString("\n\n")
	b.WriteString(helpText)
	b.WriteString("\n")
	return b.String()
}

func renderItems(page view.Page, cursor int, showCursor bool) string {
	if page.Empty {
		return page.EmptyTitle + "\n" + page.EmptyHint + "\n"
	}

	var b strings.Builder
	for i, item := range page.Items {
		pointer := " "
		if showCursor && i == cursor {
			pointer = ">"
		}
		checkbox := "[ ]"
		if item.Completed {
			checkbox = "[x]"
		}
		fmt.Fprintf(&b, "%s %s %s\n", pointer, checkbox, item.Text)
	}
	return b.String()
}

func renderFooter(f view.Footer) string {
	return f.Active + " • " + f.Completed + " • " + f.Total
}

func clampCursor(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
