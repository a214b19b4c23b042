package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/noteleap/noteleap/models"
)

// maxVisibleResults bounds the result window of the interactive picker.
const maxVisibleResults = 12

// RankFunc re-ranks the document list for the picker's current query.
type RankFunc func(query string) ([]models.RankedResult, error)

// Picker is the interactive switcher: a query field over a live-ranked
// result list. It owns no ranking logic; every keystroke goes back
// through the RankFunc.
type Picker struct {
	input   textinput.Model
	rank    RankFunc
	results []models.RankedResult
	cursor  int
	err     error

	// Selected is the document chosen with Enter, nil when the picker
	// was dismissed.
	Selected *models.RankedResult
}

// NewPicker builds a picker over the given ranking function. The
// initial result list is ranked with an empty query.
func NewPicker(rank RankFunc) *Picker {
	input := textinput.New()
	input.Placeholder = "Jump to…"
	input.Prompt = "› "
	input.Focus()

	p := &Picker{input: input, rank: rank}
	p.refresh()
	return p
}

// Init implements tea.Model.
func (p *Picker) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			p.Selected = nil
			return p, tea.Quit
		case tea.KeyEnter:
			if p.cursor < len(p.results) {
				chosen := p.results[p.cursor]
				p.Selected = &chosen
			}
			return p, tea.Quit
		case tea.KeyUp, tea.KeyCtrlP:
			if p.cursor > 0 {
				p.cursor--
			}
			return p, nil
		case tea.KeyDown, tea.KeyCtrlN:
			if p.cursor < len(p.results)-1 && p.cursor < maxVisibleResults-1 {
				p.cursor++
			}
			return p, nil
		}
	}

	var cmd tea.Cmd
	before := p.input.Value()
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != before {
		p.refresh()
	}
	return p, cmd
}

// View implements tea.Model.
func (p *Picker) View() string {
	var sb strings.Builder
	sb.WriteString(StyleInputBox.Render(p.input.View()))
	sb.WriteString("\n")

	if p.err != nil {
		sb.WriteString(StyleError.Render(fmt.Sprintf("error: %v", p.err)))
		sb.WriteString("\n")
		return sb.String()
	}
	if len(p.results) == 0 {
		sb.WriteString(StyleSubtle.Render("  no matches"))
		sb.WriteString("\n")
		return sb.String()
	}

	visible := p.results
	if len(visible) > maxVisibleResults {
		visible = visible[:maxVisibleResults]
	}
	for i, r := range visible {
		line := fmt.Sprintf("%s %s  %s", CategoryLabel(r.Category), r.Document.Name, StyleSubtle.Render(r.Document.ID))
		if i == p.cursor {
			sb.WriteString(StyleSelected.Render("> "))
			sb.WriteString(line)
		} else {
			sb.WriteString("  ")
			sb.WriteString(line)
		}
		sb.WriteString("\n")
	}
	sb.WriteString(StyleSubtle.Render(fmt.Sprintf("  %d documents · ↑/↓ select · enter open · esc cancel", len(p.results))))
	sb.WriteString("\n")
	return sb.String()
}

func (p *Picker) refresh() {
	results, err := p.rank(p.input.Value())
	p.err = err
	p.results = results
	if p.cursor >= len(results) {
		p.cursor = 0
	}
}
