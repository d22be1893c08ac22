package tui

import (
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spacesedan/sentireport/internal/render"
	"github.com/spacesedan/sentireport/internal/report"
)

type focus int

const (
	focusInput focus = iota
	focusReport
)

const helpText = "ctrl+s generate • tab switch focus • a/p/n/u filter • t theme • q quit"

var filterKeys = map[string]report.Filter{
	"a": report.FilterAll,
	"p": report.FilterPositive,
	"n": report.FilterNegative,
	"u": report.FilterNeutral,
}

// Model is the interactive front end over a report.Session.
type Model struct {
	session *report.Session
	healthy *atomic.Bool

	textarea textarea.Model
	spinner  spinner.Model
	viewport viewport.Model

	theme  render.Theme
	focus  focus
	width  int
	height int
	ready  bool
}

// NewModel builds the UI. healthy may be nil when no health monitor runs.
func NewModel(session *report.Session, theme render.Theme, healthy *atomic.Bool) *Model {
	ta := textarea.New()
	ta.Placeholder = render.IDLE_LABEL
	ta.ShowLineNumbers = false
	ta.SetHeight(6)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		session:  session,
		healthy:  healthy,
		textarea: ta,
		spinner:  sp,
		viewport: viewport.New(80, 20),
		theme:    theme,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.textarea.SetWidth(max(20, msg.Width-4))
		m.viewport.Width = msg.Width
		m.viewport.Height = max(5, msg.Height-m.textarea.Height()-6)
		m.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+s":
			return m, m.submit()
		case "tab":
			m.toggleFocus()
			return m, nil
		}

		if m.focus == focusReport {
			switch key := msg.String(); key {
			case "q", "esc":
				return m, tea.Quit
			case "t":
				m.theme = m.theme.Toggle()
			default:
				if f, ok := filterKeys[key]; ok {
					m.session.SetFilter(f)
				} else {
					var cmd tea.Cmd
					m.viewport, cmd = m.viewport.Update(msg)
					cmds = append(cmds, cmd)
				}
			}
		} else {
			var cmd tea.Cmd
			m.textarea, cmd = m.textarea.Update(msg)
			cmds = append(cmds, cmd)
		}

	case reportResolvedMsg:
		slog.Debug("[TUI] Request resolved", slog.String("status", msg.state.Status().String()))
		if msg.state.Status() == report.StatusSucceeded {
			m.focus = focusReport
			m.textarea.Blur()
		}

	case submitRejectedMsg:
		slog.Debug("[TUI] Submission rejected", slog.String("error", msg.err.Error()))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	default:
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) submit() tea.Cmd {
	if m.session.State().IsPending() {
		return nil
	}
	return submitCommand(m.session, m.textarea.Value())
}

func (m *Model) toggleFocus() {
	if m.focus == focusInput {
		m.focus = focusReport
		m.textarea.Blur()
		return
	}
	m.focus = focusInput
	m.textarea.Focus()
}

func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	v := m.session.View()
	r := render.New(m.theme, m.width)

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(m.textarea.View())
	b.WriteString("\n")

	if v.State.IsPending() {
		b.WriteString(m.spinner.View() + " " + r.Status(v.State))
	} else if status := r.Status(v.State); status != "" && v.State.Status() != report.StatusIdle {
		b.WriteString(status)
	}
	b.WriteString("\n")

	if v.HasReport {
		m.viewport.SetContent(lipgloss.JoinVertical(lipgloss.Left,
			r.FilterBar(v.Filter),
			r.Chart(v.Chart),
			r.Verdict(v.FinalVerdict, v.DetailedVerdict),
			r.Items(v.Items),
		))
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Muted).Render(helpText))
	return b.String()
}

func (m *Model) header() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Primary).Render(render.TITLE)
	badges := []string{lipgloss.NewStyle().Foreground(m.theme.Muted).Render(m.theme.Name + " mode")}
	if m.healthy != nil {
		if m.healthy.Load() {
			badges = append(badges, lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Render("● service up"))
		} else {
			badges = append(badges, lipgloss.NewStyle().Foreground(m.theme.Error).Render("● service down"))
		}
	}
	return title + "  " + strings.Join(badges, "  ")
}

// Run starts the full-screen program and blocks until it exits.
func Run(session *report.Session, theme render.Theme, healthy *atomic.Bool) error {
	p := tea.NewProgram(NewModel(session, theme, healthy), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
