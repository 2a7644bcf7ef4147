// Package tui implements the interactive action-item review screen.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Jpcostan/pulse/internal/model"
	"github.com/Jpcostan/pulse/internal/service"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Done   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle include"),
		),
		Done: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle done"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C6FF0")).MarginBottom(1)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C6FF0")).Bold(true)
	includedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))
	excludedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	dueStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE66D"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).MarginTop(1)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
)

type savedMsg struct {
	err error
}

// Model is the bubbletea model for reviewing detected action items.
type Model struct {
	store  service.Storage
	err    error
	items  []model.ActionItem
	keys   keyMap
	cursor int
}

// New creates a review model over the given action items.
func New(store service.Storage, items []model.ActionItem) Model {
	return Model{
		store: store,
		items: items,
		keys:  defaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Toggle):
			if len(m.items) == 0 {
				return m, nil
			}
			item := &m.items[m.cursor]
			item.Included = !item.Included
			return m, m.saveInclusion(item.ID, item.Included)

		case key.Matches(msg, m.keys.Done):
			if len(m.items) == 0 {
				return m, nil
			}
			item := &m.items[m.cursor]
			item.Done = !item.Done
			return m, m.saveDone(item.ID, item.Done)
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Review action items"))
	b.WriteString("\n")

	if len(m.items) == 0 {
		b.WriteString(excludedStyle.Render("Nothing to review."))
		b.WriteString("\n")
	}

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		marker := excludedStyle.Render("[ ]")
		if item.Included {
			marker = includedStyle.Render("[x]")
		}
		if item.Done {
			marker = includedStyle.Render("[✓]")
		}

		line := fmt.Sprintf("%s%s %s", cursor, marker, item.Title)
		if item.DueDate != nil {
			line += dueStyle.Render(" · " + item.DueDate.Format("Jan 2 15:04"))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errStyle.Render("save failed: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓ move · space include · d done · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) saveInclusion(id string, included bool) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		return savedMsg{err: store.UpdateActionItemInclusion(context.Background(), id, included)}
	}
}

func (m Model) saveDone(id string, done bool) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		return savedMsg{err: store.UpdateActionItemDone(context.Background(), id, done)}
	}
}

// Run starts the review TUI and blocks until the user quits.
func Run(store service.Storage, items []model.ActionItem) error {
	p := tea.NewProgram(New(store, items))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("review ui failed: %w", err)
	}
	return nil
}
