package report

import "github.com/spacesedan/sentireport/internal/models"

type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// RequestState is one of Idle, Pending, Succeeded(report) or Failed(message).
// Values are never modified after construction; a transition replaces the
// whole value.
type RequestState struct {
	status  Status
	report  models.Report
	message string
}

func Idle() RequestState {
	return RequestState{status: StatusIdle}
}

func Pending() RequestState {
	return RequestState{status: StatusPending}
}

func Succeeded(r models.Report) RequestState {
	return RequestState{status: StatusSucceeded, report: r}
}

func Failed(message string) RequestState {
	return RequestState{status: StatusFailed, message: message}
}

func (s RequestState) Status() Status {
	return s.status
}

// Report returns the report carried by a Succeeded state.
func (s RequestState) Report() (models.Report, bool) {
	if s.status != StatusSucceeded {
		return models.Report{}, false
	}
	return s.report, true
}

// ErrorMessage returns the message carried by a Failed state, or "".
func (s RequestState) ErrorMessage() string {
	return s.message
}

func (s RequestState) IsPending() bool {
	return s.status == StatusPending
}
