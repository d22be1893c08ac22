package models

import (
	"fmt"
	"strings"
)

// Sentiment is the label the analysis service assigns to a segment.
type Sentiment string

const (
	Positive Sentiment = "Positive"
	Negative Sentiment = "Negative"
	Neutral  Sentiment = "Neutral"
)

// Sentiments lists every label in chart order.
var Sentiments = [...]Sentiment{Positive, Negative, Neutral}

func (s Sentiment) Valid() bool {
	switch s {
	case Positive, Negative, Neutral:
		return true
	}
	return false
}

func (s Sentiment) String() string {
	return string(s)
}

// ParseSentiment accepts a label in any letter case.
func ParseSentiment(raw string) (Sentiment, error) {
	for _, s := range Sentiments {
		if strings.EqualFold(raw, string(s)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown sentiment %q", raw)
}

// SentimentItem is one analyzed segment of the submitted statement.
type SentimentItem struct {
	Heading      string    `json:"heading"`
	CombinedText string    `json:"combined_text"`
	Sentiment    Sentiment `json:"sentiment"`
	Polarity     float64   `json:"polarity"`
	Subjectivity float64   `json:"subjectivity"`
}
