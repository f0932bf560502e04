// Package view projects a task list snapshot onto the fixed
// display strings shown by every frontend.
package view

import (
	"fmt"

	"github.com/adanyl0v/go-tasklist/internal/models"
)

const (
	Title       = "Gestionnaire de Tâches"
	EmptyHeader = "Commencez par ajouter votre première tâche !"
	Placeholder = "Ajouter une nouvelle tâche..."
	AddLabel    = "Ajouter"
	EmptyTitle  = "Aucune tâche pour le moment"
	EmptyHint   = "Ajoutez votre première tâche ci-dessus"
	ClearLabel  = "Effacer les tâches terminées"
)

type Item struct {
	ID        int64
	Text      string
	Completed bool
}

type Footer struct {
	Active    string
	Completed string
	Total     string
}

// Page is everything a frontend needs to draw the list.
type Page struct {
	Title       string
	Summary     string
	Placeholder string
	AddLabel    string
	DraftText   string

	Empty      bool
	EmptyTitle string
	EmptyHint  string
	Items      []Item

	// Footer is nil when the list is empty.
	Footer     *Footer
	CanClear   bool
	ClearLabel string
}

func Project(s models.Snapshot) Page {
	page := Page{
		Title:       Title,
		Summary:     Summary(s),
		Placeholder: Placeholder,
		AddLabel:    AddLabel,
		DraftText:   s.DraftText,
		Empty:       s.IsEmpty(),
		EmptyTitle:  EmptyTitle,
		EmptyHint:   EmptyHint,
		Items:       make([]Item, len(s.Tasks)),
		CanClear:    s.Completed > 0,
		ClearLabel:  ClearLabel,
	}
	for i, t := range s.Tasks {
		page.Items[i] = Item{ID: t.ID, Text: t.Text, Completed: t.Completed}
	}
	if !s.IsEmpty() {
		footer := FooterFor(s)
		page.Footer = &footer
	}
	return page
}

// Summary is the header line under the title.
func Summary(s models.Snapshot) string {
	if s.IsEmpty() {
		return EmptyHeader
	}
	return fmt.Sprintf("%d sur %d tâches terminées", s.Completed, s.Total)
}

func FooterFor(s models.Snapshot) Footer {
	return Footer{
		Active:    fmt.Sprintf("%d en cours", s.Active),
		Completed: fmt.Sprintf("%d terminées", s.Completed),
		Total:     fmt.Sprintf("%d total", s.Total),
	}
}
