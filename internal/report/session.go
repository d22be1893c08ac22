package report

import (
	"context"
	"log/slog"
	"sync"

	"github.com/spacesedan/sentireport/internal/models"
)

// Session is what a renderer talks to: the coordinator plus the active
// filter. The filter is independent of the request lifecycle and survives
// new submissions.
type Session struct {
	coordinator *Coordinator

	mu     sync.RWMutex
	filter Filter
}

func NewSession(analyzer Analyzer) *Session {
	return &Session{
		coordinator: NewCoordinator(analyzer),
		filter:      FilterAll,
	}
}

func (s *Session) Submit(ctx context.Context, text string) (<-chan RequestState, error) {
	return s.coordinator.Submit(ctx, text)
}

func (s *Session) State() RequestState {
	return s.coordinator.State()
}

func (s *Session) Filter() Filter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

func (s *Session) SetFilter(f Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.filter != f {
		slog.Debug("[Session] Filter changed",
			slog.String("from", s.filter.String()),
			slog.String("to", f.String()))
	}
	s.filter = f
}

// View derives a fresh view-model from the current state and filter.
func (s *Session) View() View {
	last, ok := s.coordinator.LastReport()
	return BuildView(s.State(), s.Filter(), last, ok)
}

// View is the read-only value a renderer draws from.
type View struct {
	State           RequestState
	Filter          Filter
	HasReport       bool
	Counts          SentimentCounts
	Items           []models.SentimentItem
	FinalVerdict    string
	DetailedVerdict string
	Chart           Chart
}

// BuildView shows the report carried by a Succeeded state, falling back to
// the last good report while Pending or Failed.
func BuildView(state RequestState, filter Filter, last models.Report, hasLast bool) View {
	r, ok := state.Report()
	if !ok && hasLast {
		r, ok = last, true
	}

	items := r.Items()
	counts := CountBySentiment(items)
	return View{
		State:           state,
		Filter:          filter,
		HasReport:       ok && len(items) > 0,
		Counts:          counts,
		Items:           FilterItems(items, filter),
		FinalVerdict:    r.FinalVerdict(),
		DetailedVerdict: r.DetailedVerdict(),
		Chart:           ChartData(counts),
	}
}
