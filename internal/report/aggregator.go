package report

import (
	"fmt"
	"strings"

	"github.com/spacesedan/sentireport/internal/models"
)

// Filter selects which items of a report are listed.
type Filter string

const (
	FilterAll      Filter = "All"
	FilterPositive Filter = Filter(models.Positive)
	FilterNegative Filter = Filter(models.Negative)
	FilterNeutral  Filter = Filter(models.Neutral)
)

// Filters lists every filter in display order.
var Filters = [...]Filter{FilterAll, FilterPositive, FilterNegative, FilterNeutral}

func ParseFilter(raw string) (Filter, error) {
	for _, f := range Filters {
		if strings.EqualFold(raw, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid filter: %s (must be one of: all, positive, negative, neutral)", raw)
}

func (f Filter) String() string {
	return string(f)
}

// SentimentCounts holds a count for every sentiment; there is no missing key.
type SentimentCounts struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

func (c SentimentCounts) Get(s models.Sentiment) int {
	switch s {
	case models.Positive:
		return c.Positive
	case models.Negative:
		return c.Negative
	case models.Neutral:
		return c.Neutral
	}
	return 0
}

func (c SentimentCounts) Total() int {
	return c.Positive + c.Negative + c.Neutral
}

// Values returns the counts in models.Sentiments order.
func (c SentimentCounts) Values() [3]int {
	return [3]int{c.Positive, c.Negative, c.Neutral}
}

func CountBySentiment(items []models.SentimentItem) SentimentCounts {
	var c SentimentCounts
	for _, item := range items {
		switch item.Sentiment {
		case models.Positive:
			c.Positive++
		case models.Negative:
			c.Negative++
		case models.Neutral:
			c.Neutral++
		}
	}
	return c
}

// FilterItems returns the items matching filter in their original order. The
// result is always a new slice.
func FilterItems(items []models.SentimentItem, filter Filter) []models.SentimentItem {
	out := make([]models.SentimentItem, 0, len(items))
	for _, item := range items {
		if filter == FilterAll || Filter(item.Sentiment) == filter {
			out = append(out, item)
		}
	}
	return out
}
