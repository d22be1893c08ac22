package stub

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spacesedan/sentireport/internal/models"
	"github.com/spacesedan/sentireport/internal/report"
	"github.com/spacesedan/sentireport/internal/sentiment"
)

const (
	REPORT_PATH = "/generate_report"
	HEALTH_PATH = "/health"

	maxStatementBytes = 1 << 20
)

// NewHandler serves a local stand-in for the remote analysis service using
// the same wire format.
func NewHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(REPORT_PATH, handleGenerateReport)
	mux.HandleFunc(HEALTH_PATH, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// ReportBody mirrors the success payload of the remote service.
type ReportBody struct {
	Data            []models.SentimentItem `json:"data"`
	Verdict         string                 `json:"verdict"`
	DetailedVerdict string                 `json:"detailed_verdict"`
}

func handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req models.ReportRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxStatementBytes)).Decode(&req); err != nil {
		slog.Warn("[StubAnalyzer] Rejected request body",
			slog.String("error", err.Error()))
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	body := BuildReport(req.Statement)
	slog.Info("[StubAnalyzer] Generated report",
		slog.String("request_id", r.Header.Get("X-Request-ID")),
		slog.Int("items", len(body.Data)),
		slog.String("verdict", body.Verdict))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("[StubAnalyzer] Failed to write response",
			slog.String("error", err.Error()))
	}
}

// BuildReport scores every sentence of statement and derives the verdicts.
func BuildReport(statement string) ReportBody {
	segments := sentiment.AnalyzeStatement(statement)
	items := make([]models.SentimentItem, 0, len(segments))
	for i, seg := range segments {
		items = append(items, models.SentimentItem{
			Heading:      fmt.Sprintf("Sentence %d", i+1),
			CombinedText: seg.Text,
			Sentiment:    seg.Sentiment,
			Polarity:     seg.Polarity,
			Subjectivity: seg.Subjectivity,
		})
	}

	counts := report.CountBySentiment(items)
	verdict := majority(counts)
	return ReportBody{
		Data:    items,
		Verdict: string(verdict),
		DetailedVerdict: fmt.Sprintf("%d of %d segments are %s (%d positive, %d negative, %d neutral).",
			counts.Get(verdict), counts.Total(), verdict, counts.Positive, counts.Negative, counts.Neutral),
	}
}

// majority picks the most frequent label; ties and empty input are Neutral.
func majority(c report.SentimentCounts) models.Sentiment {
	switch {
	case c.Positive > c.Negative && c.Positive > c.Neutral:
		return models.Positive
	case c.Negative > c.Positive && c.Negative > c.Neutral:
		return models.Negative
	default:
		return models.Neutral
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": msg})
}
