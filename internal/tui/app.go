// Package tui renders the task list in the terminal. It reads through the
// store's derived views and mutates only through store operations; the
// visible rows are the product of the status filter and sort key composed
// over the collection.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskmasterhq/taskmaster/internal/tasks"
)

type mode int

const (
	modeList mode = iota
	modeAdd
)

// Model is the root bubbletea model.
type Model struct {
	store  *tasks.Store
	query  tasks.Query
	rows   []tasks.Task
	cursor int
	mode   mode
	form   addForm
	width  int
	height int
}

// NewModel creates the list view over store.
func NewModel(store *tasks.Store) Model {
	m := Model{
		store: store,
		query: tasks.DefaultQuery(),
	}
	m.refresh()
	return m
}

// Run starts the TUI and blocks until the user quits.
func Run(store *tasks.Store) error {
	_, err := tea.NewProgram(NewModel(store), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh recomputes the visible rows from the current collection and
// controls. Called after every control change and every mutation.
func (m *Model) refresh() {
	m.rows = m.query.Apply(m.store.All())
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.mode == modeAdd {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "j", "down":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "f", "tab":
		m.query.Status = nextFilter(m.query.Status)
		m.refresh()
	case "s":
		if m.query.Sort == tasks.SortCreated {
			m.query.Sort = tasks.SortTitle
			m.query.Order = tasks.OrderAsc
		} else {
			m.query.Sort = tasks.SortCreated
			m.query.Order = tasks.OrderDesc
		}
		m.refresh()
	case "o":
		if m.query.Order == tasks.OrderAsc {
			m.query.Order = tasks.OrderDesc
		} else {
			m.query.Order = tasks.OrderAsc
		}
		m.refresh()
	case " ":
		if t, ok := m.selected(); ok {
			m.store.SetStatus(t.ID, nextStatus(t.Status))
			m.refresh()
		}
	case "d":
		if t, ok := m.selected(); ok {
			m.store.Delete(t.ID)
			m.refresh()
		}
	case "a":
		m.mode = modeAdd
		m.form = newAddForm()
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		return m, nil
	case "tab", "shift+tab":
		m.form.next()
		return m, nil
	case "enter":
		in, ok := m.form.submit()
		if !ok {
			return m, nil
		}
		m.store.Add(in)
		m.mode = modeList
		m.refresh()
		return m, nil
	}
	cmd := m.form.update(msg)
	return m, cmd
}

func (m Model) selected() (tasks.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return tasks.Task{}, false
	}
	return m.rows[m.cursor], true
}

func (m Model) View() string {
	if m.mode == modeAdd {
		return m.form.view()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("taskmaster"))
	b.WriteString("  ")
	b.WriteString(barStyle.Render(fmt.Sprintf(
		"filter: %s · sort: %s %s · %d task(s)",
		m.query.Status, m.query.Sort, m.query.Order, len(m.rows),
	)))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(mutedStyle.Render("  nothing here — press a to add a task"))
		b.WriteString("\n")
	}

	for i, t := range m.rows {
		line := fmt.Sprintf("%s %-12s %-10s %s",
			statusGlyph(t.Status), t.Status, t.DueDate, t.Title)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		} else {
			line = statusStyle(t.Status).Render(line)
		}
		b.WriteString("  " + line + "\n")
	}

	if msg := m.store.Err(); msg != "" {
		b.WriteString("\n" + errStyle.Render(msg) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(
		"a add · space status · d delete · f filter · s sort · o order · q quit"))
	return b.String()
}

func statusGlyph(s tasks.Status) string {
	switch s {
	case tasks.StatusCompleted:
		return "✓"
	case tasks.StatusInProgress:
		return "…"
	default:
		return "·"
	}
}

func statusStyle(s tasks.Status) lipgloss.Style {
	switch s {
	case tasks.StatusCompleted:
		return completedStyle
	case tasks.StatusInProgress:
		return inProgressStyle
	default:
		return pendingStyle
	}
}

func nextFilter(f tasks.StatusFilter) tasks.StatusFilter {
	switch f {
	case tasks.FilterAll:
		return tasks.StatusFilter(tasks.StatusPending)
	case tasks.StatusFilter(tasks.StatusPending):
		return tasks.StatusFilter(tasks.StatusInProgress)
	case tasks.StatusFilter(tasks.StatusInProgress):
		return tasks.StatusFilter(tasks.StatusCompleted)
	default:
		return tasks.FilterAll
	}
}

func nextStatus(s tasks.Status) tasks.Status {
	switch s {
	case tasks.StatusPending:
		return tasks.StatusInProgress
	case tasks.StatusInProgress:
		return tasks.StatusCompleted
	default:
		return tasks.StatusPending
	}
}
