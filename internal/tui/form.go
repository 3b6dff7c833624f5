package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskmasterhq/taskmaster/internal/tasks"
)

const (
	fieldTitle = iota
	fieldDescription
	fieldDueDate
	fieldCount
)

// addForm collects the creation payload. It enforces the required fields
// (non-empty title and due date) before anything reaches the store.
type addForm struct {
	inputs  [fieldCount]textinput.Model
	focus   int
	problem string
}

func newAddForm() addForm {
	var f addForm

	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 120
	title.Focus()

	desc := textinput.New()
	desc.Placeholder = "Description (optional)"
	desc.CharLimit = 500

	due := textinput.New()
	due.Placeholder = "Due date (YYYY-MM-DD)"
	due.CharLimit = 10

	f.inputs[fieldTitle] = title
	f.inputs[fieldDescription] = desc
	f.inputs[fieldDueDate] = due
	return f
}

// submit validates and returns the creation payload. ok is false while the
// form is incomplete.
func (f *addForm) submit() (tasks.AddInput, bool) {
	title := strings.TrimSpace(f.inputs[fieldTitle].Value())
	due := strings.TrimSpace(f.inputs[fieldDueDate].Value())

	if title == "" {
		f.problem = "title is required"
		return tasks.AddInput{}, false
	}
	if due == "" {
		f.problem = "due date is required"
		return tasks.AddInput{}, false
	}

	return tasks.AddInput{
		Title:       title,
		Description: strings.TrimSpace(f.inputs[fieldDescription].Value()),
		DueDate:     due,
	}, true
}

func (f *addForm) next() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % fieldCount
	f.inputs[f.focus].Focus()
}

func (f *addForm) update(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, fieldCount)
	for i := range f.inputs {
		var cmd tea.Cmd
		f.inputs[i], cmd = f.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (f *addForm) view() string {
	var b strings.Builder
	b.WriteString("New task\n\n")
	for i := range f.inputs {
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}
	if f.problem != "" {
		b.WriteString("\n" + errStyle.Render(f.problem))
	}
	b.WriteString("\n" + mutedStyle.Render("enter save · tab next field · esc cancel"))
	return formStyle.Render(b.String())
}
