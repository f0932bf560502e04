package view_test

import (
	"testing"

	"github.com/adanyl0v/go-tasklist/internal/models"
	"github.com/adanyl0v/go-tasklist/internal/view"
)

func TestProject_Empty(t *testing.T) {
	page := view.Project(models.Snapshot{DraftText: "  "})

	if !page.Empty {
		t.Error("expected empty page")
	}
	if page.Summary != view.EmptyHeader {
		t.Errorf("expected summary %q, got %q", view.EmptyHeader, page.Summary)
	}
	if page.Footer != nil {
		t.Error("footer must be hidden for an empty list")
	}
	if page.DraftText != "  " {
		t.Errorf("expected draft text to be carried, got %q", page.DraftText)
	}
	if page.CanClear {
		t.Error("nothing to clear in an empty list")
	}
}

func TestProject_Counts(t *testing.T) {
	s := models.Snapshot{
		Tasks: []models.Task{
			{ID: 3, Text: "c", Completed: true},
			{ID: 2, Text: "b"},
			{ID: 1, Text: "a"},
		},
		Total:     3,
		Completed: 1,
		Active:    2,
	}

	page := view.Project(s)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"summary", page.Summary, "1 sur 3 tâches terminées"},
		{"active", page.Footer.Active, "2 en cours"},
		{"completed", page.Footer.Completed, "1 terminées"},
		{"total", page.Footer.Total, "3 total"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, tt.got, tt.want)
		}
	}

	if len(page.Items) != 3 || page.Items[0].ID != 3 || !page.Items[0].Completed {
		t.Errorf("unexpected items: %+v", page.Items)
	}
	if !page.CanClear {
		t.Error("expected clear control with a completed task")
	}
}
