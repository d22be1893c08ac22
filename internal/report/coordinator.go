package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/spacesedan/sentireport/internal/models"
)

// ErrSubmissionPending is returned by Submit while a request is in flight.
var ErrSubmissionPending = errors.New("a sentiment report request is already pending")

// Analyzer produces a report for a statement. *clients.AnalysisClient
// satisfies it.
type Analyzer interface {
	GenerateReport(ctx context.Context, statement string) (models.Report, error)
}

// Coordinator owns the request lifecycle. It allows at most one request in
// flight and is the only writer of its RequestState.
type Coordinator struct {
	analyzer Analyzer
	state    atomic.Pointer[RequestState]
	last     atomic.Pointer[models.Report]
}

func NewCoordinator(analyzer Analyzer) *Coordinator {
	c := &Coordinator{analyzer: analyzer}
	idle := Idle()
	c.state.Store(&idle)
	return c
}

// Submit moves the coordinator to Pending and issues one request in the
// background. The returned channel yields the terminal state and is then
// closed. While Pending, Submit does nothing and returns ErrSubmissionPending.
//
// Cancellation of ctx is not propagated to the request: once accepted a
// submission always runs to a success or a failure.
func (c *Coordinator) Submit(ctx context.Context, text string) (<-chan RequestState, error) {
	pending := Pending()
	for {
		cur := c.state.Load()
		if cur.IsPending() {
			slog.Debug("[Coordinator] Submission ignored, request already pending")
			return nil, ErrSubmissionPending
		}
		if c.state.CompareAndSwap(cur, &pending) {
			break
		}
	}

	done := make(chan RequestState, 1)
	go c.run(context.WithoutCancel(ctx), text, done)
	return done, nil
}

// State returns a snapshot of the current request state.
func (c *Coordinator) State() RequestState {
	return *c.state.Load()
}

// LastReport returns the most recent successful report, which survives later
// failures.
func (c *Coordinator) LastReport() (models.Report, bool) {
	r := c.last.Load()
	if r == nil {
		return models.Report{}, false
	}
	return *r, true
}

func (c *Coordinator) run(ctx context.Context, text string, done chan<- RequestState) {
	start := time.Now()
	next := c.resolve(ctx, text)

	if r, ok := next.Report(); ok {
		c.last.Store(&r)
		slog.Info("[Coordinator] Report received",
			slog.Int("items", r.Len()),
			slog.Duration("elapsed", time.Since(start)))
	} else {
		slog.Warn("[Coordinator] Report request failed",
			slog.String("error", next.ErrorMessage()),
			slog.Duration("elapsed", time.Since(start)))
	}

	c.state.Store(&next)
	done <- next
	close(done)
}

// resolve performs the outbound call and turns every outcome, including a
// panicking analyzer, into a terminal state.
func (c *Coordinator) resolve(ctx context.Context, text string) (next RequestState) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("[Coordinator] Analyzer panicked", slog.Any("panic", r))
			next = Failed(failureMessage(fmt.Errorf("unexpected failure: %v", r)))
		}
	}()

	r, err := c.analyzer.GenerateReport(ctx, text)
	if err != nil {
		return Failed(failureMessage(err))
	}
	return Succeeded(r)
}

func failureMessage(err error) string {
	return "Failed to generate sentiment report: " + err.Error()
}
