package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Action is what the user chose when the picker exited.
type Action uint8

const (
	ActionCancel Action = iota
	ActionPreview
	ActionFix
)

// Choices holds every toggle the picker exposes.
type Choices struct {
	Backup          bool
	Validate        bool
	RemoveNegatives bool
}

type pickerModel struct {
	files    []string
	included []bool
	choices  Choices
	cursor   int
	action   Action
	width    int
}

var (
	pickerTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	pickerCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	pickerOnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	pickerOffStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	pickerHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// NewPickerModel returns the file/option selection screen. Every file
// starts included; defaults mirror the CLI flags.
func NewPickerModel(files []string, defaults Choices) tea.Model {
	included := make([]bool, len(files))
	for i := range included {
		included[i] = true
	}
	return &pickerModel{
		files:    files,
		included: included,
		choices:  defaults,
		width:    80,
	}
}

func (m *pickerModel) Init() tea.Cmd {
	return nil
}

func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.action = ActionCancel
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.files)-1 {
				m.cursor++
			}
		case " ":
			if len(m.included) > 0 {
				m.included[m.cursor] = !m.included[m.cursor]
			}
		case "b":
			m.choices.Backup = !m.choices.Backup
		case "v":
			m.choices.Validate = !m.choices.Validate
		case "n":
			m.choices.RemoveNegatives = !m.choices.RemoveNegatives
		case "p":
			if m.anyIncluded() {
				m.action = ActionPreview
				return m, tea.Quit
			}
		case "enter", "f":
			if m.anyIncluded() {
				m.action = ActionFix
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m *pickerModel) View() string {
	var b strings.Builder
	b.WriteString(pickerTitleStyle.Render("t4fix — T4 XML cleanup"))
	b.WriteString("\n\n")

	nameWidth := m.width - 8
	if nameWidth < 20 {
		nameWidth = 20
	}
	for i, file := range m.files {
		cursor := "  "
		if i == m.cursor {
			cursor = pickerCursorStyle.Render("> ")
		}
		mark := "[ ]"
		if m.included[i] {
			mark = pickerOnStyle.Render("[x]")
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, mark, truncate(file, nameWidth))
	}

	b.WriteString("\n")
	b.WriteString(toggleLine("b", "backup originals", m.choices.Backup))
	b.WriteString(toggleLine("v", "validate against schema", m.choices.Validate))
	b.WriteString(toggleLine("n", "also remove negative amounts", m.choices.RemoveNegatives))

	b.WriteString("\n")
	b.WriteString(pickerHelpStyle.Render("space toggle file · p preview · enter fix · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *pickerModel) anyIncluded() bool {
	for _, in := range m.included {
		if in {
			return true
		}
	}
	return false
}

// Outcome reports the chosen action, options, and included files after
// the program has finished.
func (m *pickerModel) Outcome() (Action, Choices, []string) {
	files := make([]string, 0, len(m.files))
	for i, file := range m.files {
		if m.included[i] {
			files = append(files, file)
		}
	}
	return m.action, m.choices, files
}

// PickerOutcome extracts the outcome from the final model returned by
// tea.Program.Run.
func PickerOutcome(m tea.Model) (Action, Choices, []string) {
	picker, ok := m.(*pickerModel)
	if !ok {
		return ActionCancel, Choices{}, nil
	}
	return picker.Outcome()
}

func toggleLine(key, label string, on bool) string {
	mark := pickerOffStyle.Render("[ ]")
	if on {
		mark = pickerOnStyle.Render("[x]")
	}
	return fmt.Sprintf("  %s %s %s\n", mark, pickerCursorStyle.Render(key), label)
}
