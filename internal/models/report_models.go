package models

import (
	"encoding/json"
	"slices"
)

type ReportRequest struct {
	Statement string `json:"statement"`
}

// ReportResponse is the raw body returned by the analysis service. Data is
// kept raw so a missing or non-array payload can be told apart from an empty one.
type ReportResponse struct {
	Data            json.RawMessage `json:"data"`
	Verdict         string          `json:"verdict"`
	DetailedVerdict string          `json:"detailed_verdict"`
}

// Report is the normalized result of one submission. It is immutable: the
// item slice is copied on the way in and on the way out.
type Report struct {
	items           []SentimentItem
	finalVerdict    string
	detailedVerdict string
}

func NewReport(items []SentimentItem, finalVerdict, detailedVerdict string) Report {
	return Report{
		items:           slices.Clone(items),
		finalVerdict:    finalVerdict,
		detailedVerdict: detailedVerdict,
	}
}

func (r Report) Items() []SentimentItem {
	return slices.Clone(r.items)
}

func (r Report) Len() int {
	return len(r.items)
}

func (r Report) FinalVerdict() string {
	return r.finalVerdict
}

func (r Report) DetailedVerdict() string {
	return r.detailedVerdict
}
