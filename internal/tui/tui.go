// Package tui is a small interactive shell over the connection facade: a
// SQL input box, a scrollable results pane, and a status bar.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbx-go/dbx/internal/app"
	"github.com/dbx-go/dbx/internal/render"
)

const queryTimeout = 30 * time.Second

var (
	colorPrimary = lipgloss.Color("75")
	colorMuted   = lipgloss.Color("243")
	colorError   = lipgloss.Color("203")

	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	styleStatus = lipgloss.NewStyle().Foreground(colorMuted)
	styleError  = lipgloss.NewStyle().Foreground(colorError)
	styleInput  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted)
)

type resultMsg struct {
	output  string
	summary string
}

type errMsg struct {
	err error
}

// Model is the shell's bubbletea model.
type Model struct {
	db      *app.DB
	input   textarea.Model
	results viewport.Model

	status     string
	err        error
	running    bool
	inputFocus bool
	width      int
	height     int
}

// New creates the shell for an open connection.
func New(db *app.DB) Model {
	ta := textarea.New()
	ta.Placeholder = "SQL, or \\t <pattern>, \\c <pattern>, \\refresh"
	ta.ShowLineNumbers = false
	ta.Prompt = "│ "
	ta.SetHeight(3)
	ta.Focus()

	return Model{
		db:         db,
		input:      ta,
		results:    viewport.New(0, 0),
		inputFocus: true,
		status:     "ctrl+r run · tab switch pane · ctrl+c quit",
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(msg.Width - 4)
		m.results.Width = msg.Width
		m.results.Height = msg.Height - m.input.Height() - 5
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.inputFocus = !m.inputFocus
			if m.inputFocus {
				m.input.Focus()
			} else {
				m.input.Blur()
			}
			return m, nil
		case "ctrl+r":
			query := strings.TrimSpace(m.input.Value())
			if query == "" || m.running {
				return m, nil
			}
			m.running = true
			m.err = nil
			m.status = "running..."
			return m, m.run(query)
		}

	case resultMsg:
		m.running = false
		m.err = nil
		m.results.SetContent(msg.output)
		m.results.GotoTop()
		m.status = msg.summary
		return m, nil

	case errMsg:
		m.running = false
		m.err = msg.err
		m.status = "error"
		return m, nil
	}

	var cmd tea.Cmd
	if m.inputFocus {
		m.input, cmd = m.input.Update(msg)
	} else {
		m.results, cmd = m.results.Update(msg)
	}
	return m, cmd
}

// View renders the shell.
func (m Model) View() string {
	title := styleTitle.Render(fmt.Sprintf("dbx · %s · %s",
		m.db.Dialect(), m.db.Profile().DisplayString()))

	body := m.results.View()
	if m.err != nil {
		body = styleError.Render(m.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		styleInput.Render(m.input.View()),
		body,
		styleStatus.Render(m.status),
	)
}

// run executes either a meta command or a SQL statement off the UI loop.
func (m Model) run(query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		defer cancel()

		if strings.HasPrefix(query, "\\") {
			return m.runMeta(ctx, query)
		}

		res, err := m.db.Query(ctx, query)
		if err != nil {
			return errMsg{err: err}
		}
		return resultMsg{output: render.Table(res), summary: render.Summary(res)}
	}
}

func (m Model) runMeta(ctx context.Context, query string) tea.Msg {
	cmd, arg, _ := strings.Cut(query, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "\\t", "\\tables":
		if arg == "" {
			arg = "*"
		}
		var b strings.Builder
		tables := m.db.FindTables(arg)
		for _, t := range tables {
			cols := make([]string, 0, len(t.Columns()))
			for _, c := range t.Columns() {
				cols = append(cols, c.Name)
			}
			fmt.Fprintf(&b, "%s  (%s)\n", t.QualifiedName(), strings.Join(cols, ", "))
		}
		return resultMsg{output: b.String(), summary: fmt.Sprintf("%d tables", len(tables))}

	case "\\c", "\\columns":
		if arg == "" {
			arg = "*"
		}
		var b strings.Builder
		columns := m.db.FindColumns(arg)
		for _, c := range columns {
			fmt.Fprintf(&b, "%s  %s\n", c.QualifiedName(), c.DataType)
		}
		return resultMsg{output: b.String(), summary: fmt.Sprintf("%d columns", len(columns))}

	case "\\refresh":
		if err := m.db.RefreshSchema(ctx, false); err != nil {
			return errMsg{err: err}
		}
		return resultMsg{output: "", summary: "schema refreshed"}

	case "\\head":
		t, err := m.db.Table(arg)
		if err != nil {
			return errMsg{err: err}
		}
		res, err := t.Head(ctx, 0)
		if err != nil {
			return errMsg{err: err}
		}
		return resultMsg{output: render.Table(res), summary: render.Summary(res)}
	}

	return errMsg{err: fmt.Errorf("unknown command %q", cmd)}
}
