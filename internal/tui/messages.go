package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spacesedan/sentireport/internal/report"
)

type reportResolvedMsg struct {
	state report.RequestState
}

type submitRejectedMsg struct {
	err error
}

// submitCommand hands text to the session and waits for the request to
// resolve off the UI goroutine.
func submitCommand(session *report.Session, text string) tea.Cmd {
	done, err := session.Submit(context.Background(), text)
	if err != nil {
		return func() tea.Msg { return submitRejectedMsg{err: err} }
	}
	return func() tea.Msg {
		return reportResolvedMsg{state: <-done}
	}
}
