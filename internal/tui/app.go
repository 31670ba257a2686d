package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/pdxmph/todo-tui/internal/config"
	"github.com/pdxmph/todo-tui/internal/logging"
	"github.com/pdxmph/todo-tui/internal/todo"
	"github.com/sirupsen/logrus"
)

// Service is the task list as seen by the UI
type Service interface {
	todo.Controller
	Tasks() ([]todo.Task, error)
}

// Model represents the main application state
type Model struct {
	svc      Service
	log      logrus.FieldLogger
	tasks    []todo.Task
	selected todo.Selection
	width    int
	height   int
	title    string
	err      error

	// Add dialog
	addMode         bool
	addInput        textarea.Model
	addCategories   todo.CategorySet
	addFocus        int // focusText or 1 + index into todo.Categories
	resetCategories bool

	// Message box
	messageMode  bool
	messageTitle string
	messageText  string
}

// Add dialog focus positions
const (
	focusText = iota
	focusWork
	focusHousework
	focusElse
	focusCount
)

// Message box titles
const (
	titleInputError     = "Input Error"
	titleSelectionError = "Selection Error"
	titleError          = "Error"
	titleInfo           = "Info"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#38db7d"))

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#4CAF50")).
			Foreground(lipgloss.Color("230"))

	completedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	focusedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	warningBorder = lipgloss.Color("#f44336")
	infoBorder    = lipgloss.Color("63")
)

// New creates a new application model
func New(svc Service, ui config.UIConfig, log logrus.FieldLogger) (*Model, error) {
	tasks, err := svc.Tasks()
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	if log == nil {
		log = logging.Logger
	}

	title := ui.Title
	if title == "" {
		title = "To-do List"
	}

	// Setup task input
	ta := textarea.New()
	ta.Placeholder = "Enter your task..."
	ta.SetHeight(3)
	ta.SetWidth(40)
	ta.CharLimit = 200
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(false)

	return &Model{
		svc:             svc,
		log:             log,
		tasks:           tasks,
		selected:        todo.NoSelection,
		title:           title,
		addInput:        ta,
		resetCategories: ui.ResetCategories,
	}, nil
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Any key dismisses the message box
		if m.messageMode {
			m.messageMode = false
			m.messageTitle = ""
			m.messageText = ""
			return m, nil
		}

		if m.addMode {
			return m.updateAddMode(msg)
		}

		// Normal mode handling
		switch msg.String() {
		case "q":
			return m, tea.Quit

		case "j", "down":
			if i, ok := m.selected.Index(); !ok {
				if len(m.tasks) > 0 {
					m.selected = todo.Select(0)
				}
			} else if i < len(m.tasks)-1 {
				m.selected = todo.Select(i + 1)
			}

		case "k", "up":
			if i, ok := m.selected.Index(); !ok {
				if len(m.tasks) > 0 {
					m.selected = todo.Select(len(m.tasks) - 1)
				}
			} else if i > 0 {
				m.selected = todo.Select(i - 1)
			}

		case "esc":
			m.selected = todo.NoSelection

		case "a":
			// Open the add dialog
			m.addMode = true
			m.addFocus = focusText
			m.addInput.Reset()
			if m.resetCategories {
				m.addCategories = 0
			}
			if m.width > 0 {
				m.addInput.SetWidth(min(60, m.width-10))
			}
			cmd := m.addInput.Focus()
			return m, cmd

		case "d", "delete":
			if err := m.svc.OnDelete(m.selected); err != nil {
				m.showError(err, "delete")
				return m, nil
			}
			m.reload()

		case "c", "enter":
			res, err := m.svc.OnMarkComplete(m.selected)
			if err != nil {
				m.showError(err, "mark")
				return m, nil
			}
			if res == todo.AlreadyCompleted {
				m.showMessage(titleInfo, "Task is already marked as completed")
			}
			m.reload()
		}
	}

	return m, nil
}

// updateAddMode handles keys while the add dialog is open
func (m Model) updateAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeAddDialog()
		return m, nil

	case "ctrl+s":
		return m.submitAdd()

	case "tab":
		cmd := m.setAddFocus((m.addFocus + 1) % focusCount)
		return m, cmd

	case "shift+tab":
		cmd := m.setAddFocus((m.addFocus + focusCount - 1) % focusCount)
		return m, cmd

	case "enter":
		if m.addFocus == focusText {
			return m.submitAdd()
		}
		m.addCategories = m.addCategories.Toggle(todo.Categories[m.addFocus-1])
		return m, nil

	case " ", "x":
		if m.addFocus != focusText {
			m.addCategories = m.addCategories.Toggle(todo.Categories[m.addFocus-1])
			return m, nil
		}
	}

	if m.addFocus != focusText {
		return m, nil
	}

	// Pass other keys to the task input
	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return m, cmd
}

// submitAdd hands the dialog contents to the service
func (m Model) submitAdd() (tea.Model, tea.Cmd) {
	if err := m.svc.OnAdd(m.addInput.Value(), m.addCategories); err != nil {
		// Keep the dialog and its contents under the message
		m.showError(err, "add")
		return m, nil
	}
	m.closeAddDialog()
	m.reload()
	return m, nil
}

// setAddFocus moves focus between the text box and the checkboxes
func (m *Model) setAddFocus(focus int) tea.Cmd {
	m.addFocus = focus
	if focus == focusText {
		return m.addInput.Focus()
	}
	m.addInput.Blur()
	return nil
}

func (m *Model) closeAddDialog() {
	m.addMode = false
	m.addFocus = focusText
	m.addInput.Blur()
	m.addInput.Reset()
}

// reload refreshes the task list from the service
func (m *Model) reload() {
	tasks, err := m.svc.Tasks()
	if err != nil {
		m.log.WithError(err).Error("reloading tasks")
		m.err = err
		return
	}
	m.tasks = tasks
	m.selected = m.ensureValidSelection()
}

// ensureValidSelection keeps the selection within bounds
func (m Model) ensureValidSelection() todo.Selection {
	i, ok := m.selected.Index()
	if !ok || len(m.tasks) == 0 {
		return todo.NoSelection
	}
	if i >= len(m.tasks) {
		return todo.Select(len(m.tasks) - 1)
	}
	return m.selected
}

// showError opens a message box titled by the error's class
func (m *Model) showError(err error, action string) {
	switch todo.Classify(err) {
	case todo.KindInput:
		m.showMessage(titleInputError, sentence(err.Error()))
	case todo.KindSelection:
		m.showMessage(titleSelectionError, fmt.Sprintf("Please select a task to %s!", action))
	default:
		m.log.WithError(err).WithField("action", action).Error("operation failed")
		m.showMessage(titleError, fmt.Sprintf("Failed to %s the task: %v", action, err))
	}
}

func (m *Model) showMessage(title, text string) {
	m.messageMode = true
	m.messageTitle = title
	m.messageText = text
}

// sentence capitalizes the first letter of msg
func sentence(msg string) string {
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

// View renders the UI
func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err)
	}

	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Overlay message box, on top of everything
	if m.messageMode {
		return m.renderMessage()
	}

	// Overlay add dialog if in add mode
	if m.addMode {
		return m.renderAddDialog()
	}

	header := titleStyle.Render(m.title)
	listHeight := max(m.height-4, 3)
	list := borderStyle.Width(m.width - 2).Height(listHeight - 2).Render(m.renderList(m.width-4, listHeight-2))

	return lipgloss.JoinVertical(lipgloss.Left, header, list, m.renderHelp())
}

// renderList renders the task list
func (m Model) renderList(width, height int) string {
	if len(m.tasks) == 0 {
		return "No tasks yet. Press a to add one."
	}

	// Calculate visible range
	startIdx := 0
	if i, ok := m.selected.Index(); ok && i >= height {
		startIdx = i - height + 1
	}

	var lines []string
	for i := startIdx; i < len(m.tasks) && i < startIdx+height; i++ {
		t := m.tasks[i]
		line := "  " + t.String()
		if width > 3 {
			line = truncate.StringWithTail(line, uint(width), "…")
		}

		if sel, ok := m.selected.Index(); ok && sel == i {
			line = selectedStyle.Render(line)
		} else if t.Completed {
			line = completedStyle.Render(line)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// renderHelp renders the help line
func (m Model) renderHelp() string {
	completed := 0
	for _, t := range m.tasks {
		if t.Completed {
			completed++
		}
	}

	noun := "tasks"
	if len(m.tasks) == 1 {
		noun = "task"
	}

	return fmt.Sprintf(" %d %s, %d completed • a: add • d: delete • c: complete • j/k: select • esc: deselect • q: quit",
		len(m.tasks), noun, completed)
}

// renderAddDialog renders the add task overlay
func (m Model) renderAddDialog() string {
	var lines []string
	lines = append(lines, "Enter your task:")
	lines = append(lines, "")
	lines = append(lines, m.addInput.View())
	lines = append(lines, "")
	lines = append(lines, "Select task category:")
	lines = append(lines, "")

	var boxes []string
	for i, c := range todo.Categories {
		mark := "[ ]"
		if m.addCategories.Has(c) {
			mark = "[x]"
		}
		box := mark + " " + c.String()
		if m.addFocus == i+1 {
			box = focusedStyle.Render(box)
		}
		boxes = append(boxes, box)
	}
	lines = append(lines, strings.Join(boxes, "   "))
	lines = append(lines, "")
	lines = append(lines, "Tab: next • Space: toggle • Enter/Ctrl+S: add task • Esc: cancel")

	content := strings.Join(lines, "\n")
	box := borderStyle.
		Padding(1).
		Render(content)

	return m.center(box)
}

// renderMessage renders the message box overlay
func (m Model) renderMessage() string {
	width := 50
	border := warningBorder
	if m.messageTitle == titleInfo {
		border = infoBorder
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Bold(true).Render(m.messageTitle),
		"",
		lipgloss.NewStyle().Width(width-4).Align(lipgloss.Center).Render(m.messageText),
		"",
		dismissHint,
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width).
		Render(content)

	return m.center(box)
}

const dismissHint = "press any key"

// center places box in the middle of the screen
func (m Model) center(box string) string {
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(box)
}
