package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spacesedan/sentireport/internal/models"
	"github.com/spacesedan/sentireport/internal/report"
)

const (
	TITLE         = "Sentiment Analysis"
	PENDING_LABEL = "Generating Report..."
	IDLE_LABEL    = "Enter the text for sentiment analysis"

	maxBarWidth = 30
)

// Renderer draws report views as terminal text.
type Renderer struct {
	Theme Theme
	Width int
}

func New(theme Theme, width int) Renderer {
	return Renderer{Theme: theme, Width: width}
}

// Render draws the whole view: title, request status, and the report
// section when there is a report to show.
func (r Renderer) Render(v report.View) string {
	sections := []string{r.title()}
	if status := r.Status(v.State); status != "" {
		sections = append(sections, status)
	}
	if v.HasReport {
		sections = append(sections,
			r.FilterBar(v.Filter),
			r.Chart(v.Chart),
			r.Verdict(v.FinalVerdict, v.DetailedVerdict),
			r.Items(v.Items),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (r Renderer) title() string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(r.Theme.Primary).
		MarginBottom(1).
		Render(TITLE)
}

// Status returns the loading, error or idle line for a request state.
func (r Renderer) Status(s report.RequestState) string {
	switch s.Status() {
	case report.StatusPending:
		return lipgloss.NewStyle().Foreground(r.Theme.Primary).Render(PENDING_LABEL)
	case report.StatusFailed:
		return lipgloss.NewStyle().Foreground(r.Theme.Error).Bold(true).Render(s.ErrorMessage())
	case report.StatusIdle:
		return lipgloss.NewStyle().Foreground(r.Theme.Muted).Render(IDLE_LABEL)
	default:
		return ""
	}
}

func (r Renderer) FilterBar(active report.Filter) string {
	buttons := make([]string, 0, len(report.Filters))
	for _, f := range report.Filters {
		style := lipgloss.NewStyle().Padding(0, 1).Foreground(r.Theme.Muted)
		label := f.String()
		if f == active {
			style = style.Bold(true).Foreground(r.Theme.Text).Background(r.Theme.Highlight)
			label = "[" + label + "]"
		}
		buttons = append(buttons, style.Render(label))
	}
	return lipgloss.NewStyle().MarginTop(1).Render(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
}

// Chart draws one horizontal bar per sentiment, scaled to the largest count.
func (r Renderer) Chart(c report.Chart) string {
	maxCount := 0
	for _, n := range c.Data {
		maxCount = max(maxCount, n)
	}

	labelWidth := 0
	for _, l := range c.Labels {
		labelWidth = max(labelWidth, lipgloss.Width(l))
	}

	rows := []string{lipgloss.NewStyle().Foreground(r.Theme.Muted).Render(c.Label)}
	for i, label := range c.Labels {
		n := c.Data[i]
		width := 0
		if maxCount > 0 {
			width = n * r.barWidth() / maxCount
		}
		if n > 0 && width == 0 {
			width = 1
		}
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Colors[i])).Render(strings.Repeat("█", width))
		rows = append(rows, fmt.Sprintf("%-*s %s %d", labelWidth, label, bar, n))
	}

	return lipgloss.NewStyle().
		MarginTop(1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(r.Theme.Border).
		Padding(0, 1).
		Render(strings.Join(rows, "\n"))
}

func (r Renderer) Verdict(final, detailed string) string {
	heading := lipgloss.NewStyle().Bold(true).Foreground(r.Theme.Text).Render("Final Verdict: " + final)
	if detailed == "" {
		return lipgloss.NewStyle().MarginTop(1).Render(heading)
	}
	body := lipgloss.NewStyle().Foreground(r.Theme.Muted).Width(r.textWidth()).Render(detailed)
	return lipgloss.NewStyle().MarginTop(1).Render(heading + "\n" + body)
}

// Items lists the filtered segments in report order.
func (r Renderer) Items(items []models.SentimentItem) string {
	header := lipgloss.NewStyle().Bold(true).Foreground(r.Theme.Primary).Render("Sentiment Report")
	if len(items) == 0 {
		return lipgloss.NewStyle().MarginTop(1).Render(header + "\n" +
			lipgloss.NewStyle().Foreground(r.Theme.Muted).Render("No segments match this filter."))
	}

	blocks := make([]string, 0, len(items))
	for _, it := range items {
		blocks = append(blocks, r.item(it))
	}
	return lipgloss.NewStyle().MarginTop(1).Render(header + "\n" + strings.Join(blocks, "\n"))
}

func (r Renderer) item(it models.SentimentItem) string {
	label := lipgloss.NewStyle().Foreground(lipgloss.Color(report.SentimentColor(it.Sentiment))).Render(it.Sentiment.String())
	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(it.Heading),
		lipgloss.NewStyle().Width(r.textWidth()).Render(it.CombinedText),
		"Sentiment: " + label,
		fmt.Sprintf("Polarity: %g", it.Polarity),
		fmt.Sprintf("Subjectivity: %g", it.Subjectivity),
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(r.Theme.Border).
		PaddingLeft(1).
		Render(strings.Join(lines, "\n"))
}

func (r Renderer) barWidth() int {
	if r.Width <= 0 {
		return maxBarWidth
	}
	return max(1, min(maxBarWidth, r.Width-24))
}

func (r Renderer) textWidth() int {
	if r.Width <= 0 {
		return 80
	}
	return max(20, r.Width-4)
}
