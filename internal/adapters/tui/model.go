// Package tui is the terminal render target: a bubbletea program with the
// create form on top and the item table (or its message) below.
package tui

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen11/todo-frontend/internal/app"
	"github.com/jsamuelsen11/todo-frontend/internal/platform/logging"
	"github.com/jsamuelsen11/todo-frontend/internal/ports"
)

const (
	fieldTitle = iota
	fieldDescription
	fieldCount
)

// DefaultOpTimeout bounds each load or submit started from the terminal.
const DefaultOpTimeout = 30 * time.Second

// loadedMsg reports that a Load finished. The view itself is read back from
// the controller so a late, stale response cannot overwrite a newer one.
type loadedMsg struct{}

// submittedMsg reports that a Submit finished.
type submittedMsg struct{ err error }

// Option configures a Model.
type Option func(*Model)

// WithOpTimeout overrides DefaultOpTimeout.
func WithOpTimeout(d time.Duration) Option {
	return func(m *Model) { m.timeout = d }
}

// WithLogger sets the logger. Logs must not go to the terminal the program
// draws on.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) { m.logger = logging.OrDiscard(logger) }
}

// Model is the bubbletea model for the todo screen.
type Model struct {
	todos   ports.TodoView
	timeout time.Duration
	logger  *slog.Logger

	inputs  []textinput.Model
	focus   int
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	view ports.View
	busy bool
}

// New builds the model. The first load starts from Init.
func New(todos ports.TodoView, opts ...Option) Model {
	m := Model{
		todos:   todos,
		timeout: DefaultOpTimeout,
		logger:  logging.Discard(),
		inputs:  make([]textinput.Model, fieldCount),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:    help.New(),
		keys:    defaultKeyMap(),
		view:    todos.Snapshot(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	title := textinput.New()
	title.Placeholder = "What needs doing"
	title.CharLimit = 200
	title.Prompt = "> "
	title.Focus()
	m.inputs[fieldTitle] = title

	desc := textinput.New()
	desc.Placeholder = "Details"
	desc.CharLimit = 500
	desc.Prompt = "> "
	m.inputs[fieldDescription] = desc

	return m
}

// Init starts the cursor blink, the spinner, and the first load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.load())
}

// Update handles key presses and the results of load and submit commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case loadedMsg:
		m.view = m.todos.Snapshot()
		return m, nil

	case submittedMsg:
		m.busy = false
		m.view = m.todos.Snapshot()
		if msg.err == nil {
			for i := range m.inputs {
				m.inputs[i].Reset()
			}
			cmd := m.focusField(fieldTitle)
			return m, cmd
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	// The form is disabled until the submit in flight finishes.
	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		cmd := m.focusField((m.focus + 1) % fieldCount)
		return m, cmd
	case key.Matches(msg, m.keys.Prev):
		cmd := m.focusField((m.focus + fieldCount - 1) % fieldCount)
		return m, cmd
	case key.Matches(msg, m.keys.Refresh):
		return m, m.load()
	case key.Matches(msg, m.keys.Submit):
		m.busy = true
		return m, m.submit(m.inputs[fieldTitle].Value(), m.inputs[fieldDescription].Value())
	}

	return m.updateFocused(msg)
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) focusField(i int) tea.Cmd {
	m.focus = i
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == i {
			cmd = m.inputs[j].Focus()
			continue
		}
		m.inputs[j].Blur()
	}
	return cmd
}

func (m Model) load() tea.Cmd {
	todos, timeout := m.todos, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		todos.Load(ctx)
		return loadedMsg{}
	}
}

func (m Model) submit(title, description string) tea.Cmd {
	todos, timeout, logger := m.todos, m.timeout, m.logger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		_, err := todos.Submit(ctx, title, description)
		if err != nil && !errors.Is(err, app.ErrSubmitInFlight) {
			logger.Warn("create failed", slog.Any("error", err))
		}
		return submittedMsg{err: err}
	}
}

// View draws the screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("📝 TODO manager"))
	b.WriteString("\n\n")

	labels := [fieldCount]string{fieldTitle: "Title", fieldDescription: "Description"}
	for i, in := range m.inputs {
		label := labelStyle
		if i == m.focus {
			label = focusedStyle
		}
		b.WriteString(label.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.busy {
		b.WriteString(m.spinner.View() + " " + mutedStyle.Render("Adding…"))
	} else {
		b.WriteString(buttonStyle.Render("Add"))
	}
	b.WriteString("\n")

	if m.view.Notice != "" {
		b.WriteString("\n" + errorStyle.Render(m.view.Notice) + "\n")
	}

	list := RenderView(m.view)
	return lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.Render(b.String()),
		list,
		m.help.View(m.keys),
	)
}

// Run starts the program on the alternate screen and blocks until the user
// quits.
func Run(ctx context.Context, todos ports.TodoView, opts ...Option) error {
	p := tea.NewProgram(New(todos, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
