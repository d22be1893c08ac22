package clients

import "fmt"

// TransportError covers network failures and non-2xx responses.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("HTTP error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ValidationError is returned when a 2xx response carries a payload that
// cannot be turned into a report.
type ValidationError struct {
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sentiment report data is invalid: %s: %v", e.Reason, e.Err)
	}
	return "sentiment report data is invalid: " + e.Reason
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
