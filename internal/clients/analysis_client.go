package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/spacesedan/sentireport/internal/models"
)

// AnalysisClient talks to the remote analysis service. It makes exactly one
// attempt per call; retrying is left to the caller.
type AnalysisClient struct {
	Client   *http.Client
	Endpoint string
}

func NewAnalysisClient(endpoint string, timeout time.Duration) *AnalysisClient {
	slog.Info("[AnalysisClient] Initializing Client",
		slog.String("endpoint", endpoint),
		slog.Duration("timeout", timeout))

	return &AnalysisClient{
		Client: &http.Client{
			Timeout: timeout,
		},
		Endpoint: endpoint,
	}
}

// GenerateReport posts the statement and normalizes the response into a
// Report. Failures come back as *TransportError or *ValidationError.
func (a *AnalysisClient) GenerateReport(ctx context.Context, statement string) (models.Report, error) {
	requestID := uuid.NewString()
	slog.Info("[AnalysisClient] Requesting sentiment report",
		slog.String("request_id", requestID),
		slog.Int("statement_length", len(statement)))
	start := time.Now()

	var resp models.ReportResponse
	if err := a.postJSON(ctx, requestID, models.ReportRequest{Statement: statement}, &resp); err != nil {
		slog.Error("[AnalysisClient] Sentiment report request failed",
			slog.String("request_id", requestID),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()))
		return models.Report{}, err
	}

	items, err := decodeItems(resp.Data)
	if err != nil {
		slog.Error("[AnalysisClient] Sentiment report payload rejected",
			slog.String("request_id", requestID),
			slog.String("error", err.Error()))
		return models.Report{}, err
	}

	slog.Info("[AnalysisClient] Sentiment report request successful",
		slog.String("request_id", requestID),
		slog.Int("items", len(items)),
		slog.Duration("elapsed", time.Since(start)))

	return models.NewReport(items, resp.Verdict, resp.DetailedVerdict), nil
}

// AnalyzerHealthCheck reports whether healthURL answers with a 2xx status.
func (a *AnalysisClient) AnalyzerHealthCheck(ctx context.Context, healthURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, healthURL, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := a.Client.Do(req)
	if err != nil {
		slog.Debug("[AnalysisClient] Health check failed",
			slog.String("error", err.Error()))
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func decodeItems(raw json.RawMessage) ([]models.SentimentItem, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, &ValidationError{Reason: "data field is missing"}
	}
	if trimmed[0] != '[' {
		return nil, &ValidationError{Reason: "data field is not an array"}
	}

	var items []models.SentimentItem
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, &ValidationError{Reason: "data items are malformed", Err: err}
	}

	for i := range items {
		s, err := models.ParseSentiment(string(items[i].Sentiment))
		if err != nil {
			return nil, &ValidationError{Reason: fmt.Sprintf("item %d", i), Err: err}
		}
		items[i].Sentiment = s
	}

	return items, nil
}

// helper function for posting data to the analysis service
func (a *AnalysisClient) postJSON(ctx context.Context, requestID string, input interface{}, output interface{}) error {
	body, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to marshal input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.Endpoint, bytes.NewReader(body))
	if err != nil {
		return &TransportError{Err: fmt.Errorf("failed to build request: %w", err)}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", USER_AGENT)
	req.Header.Set(REQUEST_ID_HEADER, requestID)

	resp, err := a.Client.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("[AnalysisClient] Non-success status from analysis service",
			slog.String("endpoint", a.Endpoint),
			slog.Int("status_code", resp.StatusCode),
			getPreview(respBody))
		return &TransportError{StatusCode: resp.StatusCode}
	}

	if err := json.Unmarshal(respBody, output); err != nil {
		slog.Error("[AnalysisClient] Failed to unmarshal response",
			slog.String("endpoint", a.Endpoint),
			slog.String("error", err.Error()),
			getPreview(respBody),
			slog.Int("raw_response_length", len(respBody)))

		return &ValidationError{Reason: "response is not valid JSON", Err: err}
	}

	return nil
}

func getPreview(respBody []byte) slog.Attr {
	raw := string(respBody)
	if len(raw) > MAX_PREVIEW_LENGTH {
		raw = raw[:MAX_PREVIEW_LENGTH]
	}
	return slog.String("raw_response", raw)
}
