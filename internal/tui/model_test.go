package tui

import (
	"context"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spacesedan/sentireport/internal/models"
	"github.com/spacesedan/sentireport/internal/render"
	"github.com/spacesedan/sentireport/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnalyzer struct {
	statements chan string
	release    chan struct{}
}

func (s *stubAnalyzer) GenerateReport(ctx context.Context, statement string) (models.Report, error) {
	s.statements <- statement
	if s.release != nil {
		<-s.release
	}
	return models.NewReport([]models.SentimentItem{
		{Heading: "Sentence 1", CombinedText: "I love this.", Sentiment: models.Positive, Polarity: 0.6},
		{Heading: "Sentence 2", CombinedText: "I hate that.", Sentiment: models.Negative, Polarity: -0.5},
	}, "Neutral", "1 of 2 segments are Neutral."), nil
}

func newTestModel(t *testing.T, a *stubAnalyzer) (*Model, *report.Session) {
	t.Helper()
	session := report.NewSession(a)
	m := NewModel(session, render.DarkTheme, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 60})
	return m, session
}

func typeText(m *Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func TestModel_SubmitAndFilter(t *testing.T) {
	a := &stubAnalyzer{statements: make(chan string, 1)}
	m, session := newTestModel(t, a)

	typeText(m, "I love this. I hate that.")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	msg := cmd()
	resolved, ok := msg.(reportResolvedMsg)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, "I love this. I hate that.", <-a.statements)
	assert.Equal(t, report.StatusSucceeded, resolved.state.Status())

	m.Update(resolved)
	assert.Equal(t, focusReport, m.focus)
	assert.Contains(t, m.View(), "Final Verdict: Neutral")

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	assert.Equal(t, report.FilterNegative, session.Filter())
	view := m.View()
	assert.Contains(t, view, "I hate that.")
	assert.NotContains(t, view, "Polarity: 0.6")

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	assert.Equal(t, render.LightTheme.Name, m.theme.Name)
}

func TestModel_SubmitWhilePendingDoesNothing(t *testing.T) {
	a := &stubAnalyzer{statements: make(chan string, 2), release: make(chan struct{})}
	m, session := newTestModel(t, a)

	typeText(m, "first")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.True(t, session.State().IsPending())
	assert.Contains(t, m.View(), render.PENDING_LABEL)

	_, again := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, again)

	close(a.release)
	m.Update(cmd())
	assert.Equal(t, report.StatusSucceeded, session.State().Status())
	assert.Len(t, a.statements, 1)
}

func TestModel_FilterKeysTypeIntoInputWhenFocused(t *testing.T) {
	m, session := newTestModel(t, &stubAnalyzer{statements: make(chan string, 1)})

	typeText(m, "n")
	assert.Equal(t, report.FilterAll, session.Filter())
	assert.Equal(t, "n", m.textarea.Value())

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	assert.Equal(t, report.FilterPositive, session.Filter())
}

func TestModel_HealthBadge(t *testing.T) {
	healthy := &atomic.Bool{}
	m := NewModel(report.NewSession(&stubAnalyzer{}), render.DarkTheme, healthy)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Contains(t, m.View(), "service down")
	healthy.Store(true)
	assert.Contains(t, m.View(), "service up")
}
