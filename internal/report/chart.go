package report

import "github.com/spacesedan/sentireport/internal/models"

const CHART_DATASET_LABEL = "Sentiments Count"

var chartColors = map[models.Sentiment]string{
	models.Positive: "#4CAF50",
	models.Negative: "#F44336",
	models.Neutral:  "#FFC107",
}

// Chart is the dataset handed to bar and pie charts.
type Chart struct {
	Labels []string `json:"labels"`
	Label  string   `json:"label"`
	Data   []int    `json:"data"`
	Colors []string `json:"background_color"`
}

func ChartData(counts SentimentCounts) Chart {
	chart := Chart{
		Label:  CHART_DATASET_LABEL,
		Labels: make([]string, 0, len(models.Sentiments)),
		Data:   make([]int, 0, len(models.Sentiments)),
		Colors: make([]string, 0, len(models.Sentiments)),
	}
	for _, s := range models.Sentiments {
		chart.Labels = append(chart.Labels, s.String())
		chart.Data = append(chart.Data, counts.Get(s))
		chart.Colors = append(chart.Colors, chartColors[s])
	}
	return chart
}

func SentimentColor(s models.Sentiment) string {
	return chartColors[s]
}
