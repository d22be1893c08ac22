package sentiment

import (
	"html"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
	"github.com/spacesedan/sentireport/internal/models"
)

const (
	POSITIVE_THRESHOLD = 0.05
	NEGATIVE_THRESHOLD = -0.05
)

var (
	analyzer = govader.NewSentimentIntensityAnalyzer()

	linkPattern     = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern      = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern      = regexp.MustCompile(`<[^>]*>`)
	sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]*`)
)

// Segment is the local analysis of one sentence.
type Segment struct {
	Text         string
	Sentiment    models.Sentiment
	Polarity     float64
	Subjectivity float64
}

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	input = urlPattern.ReplaceAllString(input, "")

	return input
}

func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(RemoveLinks(input)), blackfriday.WithNoExtensions())
	plain := html.UnescapeString(tagPattern.ReplaceAllString(string(output), " "))

	return strings.Join(strings.Fields(plain), " ")
}

// SplitSentences breaks plain text on terminal punctuation, dropping blanks.
func SplitSentences(text string) []string {
	var sentences []string
	for _, s := range sentencePattern.FindAllString(text, -1) {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

func AnalyzeWithVADER(text string) Segment {
	scores := analyzer.PolarityScores(text)
	score := scores.Compound

	var label models.Sentiment
	if score >= POSITIVE_THRESHOLD {
		label = models.Positive
	} else if score <= NEGATIVE_THRESHOLD {
		label = models.Negative
	} else {
		label = models.Neutral
	}

	return Segment{
		Text:         text,
		Sentiment:    label,
		Polarity:     score,
		Subjectivity: clamp01(1 - scores.Neutral),
	}
}

// AnalyzeStatement converts markdown to text and scores every sentence.
func AnalyzeStatement(statement string) []Segment {
	sentences := SplitSentences(ConvertMarkdownToText(statement))
	segments := make([]Segment, 0, len(sentences))
	for _, s := range sentences {
		segments = append(segments, AnalyzeWithVADER(s))
	}
	return segments
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
