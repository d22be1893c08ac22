package clients

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/spacesedan/sentireport/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *AnalysisClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewAnalysisClient(srv.URL+"/generate_report", 5*time.Second)
}

func respondJSON(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}
}

func TestGenerateReport_Success(t *testing.T) {
	type captured struct {
		method  string
		path    string
		headers http.Header
		body    models.ReportRequest
	}
	requests := make(chan captured, 1)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		c := captured{method: r.Method, path: r.URL.Path, headers: r.Header.Clone()}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&c.body))
		requests <- c

		respondJSON(`{
			"data": [{"heading":"s1","combined_text":"I love this","sentiment":"Positive","polarity":0.8,"subjectivity":0.6}],
			"verdict": "Positive",
			"detailed_verdict": "Mostly positive."
		}`)(w, r)
	})

	report, err := client.GenerateReport(context.Background(), "I love this")
	require.NoError(t, err)

	got := <-requests
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/generate_report", got.path)
	assert.Equal(t, "I love this", got.body.Statement)
	assert.Equal(t, "application/json", got.headers.Get("Content-Type"))
	assert.Equal(t, USER_AGENT, got.headers.Get("User-Agent"))
	_, err = uuid.Parse(got.headers.Get(REQUEST_ID_HEADER))
	assert.NoError(t, err, "request id header must be a uuid")

	want := []models.SentimentItem{{
		Heading:      "s1",
		CombinedText: "I love this",
		Sentiment:    models.Positive,
		Polarity:     0.8,
		Subjectivity: 0.6,
	}}
	if diff := cmp.Diff(want, report.Items()); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Positive", report.FinalVerdict())
	assert.Equal(t, "Mostly positive.", report.DetailedVerdict())
}

func TestGenerateReport_EmptyStatementIsSent(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		var req models.ReportRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "", req.Statement)
		respondJSON(`{"data": [], "verdict": "", "detailed_verdict": ""}`)(w, r)
	})

	report, err := client.GenerateReport(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, 0, report.Len())
}

func TestGenerateReport_NormalizesSentimentCase(t *testing.T) {
	client := newTestClient(t, respondJSON(`{"data":[{"heading":"h","combined_text":"t","sentiment":"negative","polarity":-0.4,"subjectivity":0.2}],"verdict":"Negative","detailed_verdict":""}`))

	report, err := client.GenerateReport(context.Background(), "t")
	require.NoError(t, err)
	assert.Equal(t, models.Negative, report.Items()[0].Sentiment)
}

func TestGenerateReport_Failures(t *testing.T) {
	tests := []struct {
		name          string
		handler       http.HandlerFunc
		wantTransport bool
		wantStatus    int
		wantMsg       string
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			wantTransport: true,
			wantStatus:    http.StatusInternalServerError,
			wantMsg:       "status 500",
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
			wantTransport: true,
			wantStatus:    http.StatusNotFound,
			wantMsg:       "status 404",
		},
		{
			name:    "data is not an array",
			handler: respondJSON(`{"data": "not-an-array", "verdict": "x", "detailed_verdict": "y"}`),
			wantMsg: "data field is not an array",
		},
		{
			name:    "data missing",
			handler: respondJSON(`{"verdict": "x", "detailed_verdict": "y"}`),
			wantMsg: "data field is missing",
		},
		{
			name:    "data null",
			handler: respondJSON(`{"data": null, "verdict": "x", "detailed_verdict": "y"}`),
			wantMsg: "data field is missing",
		},
		{
			name:    "body is not json",
			handler: respondJSON(`<html>oops</html>`),
			wantMsg: "response is not valid JSON",
		},
		{
			name:    "item polarity has wrong type",
			handler: respondJSON(`{"data":[{"heading":"h","combined_text":"t","sentiment":"Positive","polarity":"high","subjectivity":0}]}`),
			wantMsg: "data items are malformed",
		},
		{
			name:    "unknown sentiment label",
			handler: respondJSON(`{"data":[{"heading":"h","combined_text":"t","sentiment":"Positive"},{"heading":"h2","combined_text":"t2","sentiment":"Mixed"}]}`),
			wantMsg: `item 1: unknown sentiment "Mixed"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)

			_, err := client.GenerateReport(context.Background(), "text")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)

			var transportErr *TransportError
			var validationErr *ValidationError
			if tt.wantTransport {
				require.True(t, errors.As(err, &transportErr), "want TransportError, got %T", err)
				assert.Equal(t, tt.wantStatus, transportErr.StatusCode)
			} else {
				require.True(t, errors.As(err, &validationErr), "want ValidationError, got %T", err)
			}
		})
	}
}

func TestGenerateReport_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	client := NewAnalysisClient(endpoint, time.Second)
	_, err := client.GenerateReport(context.Background(), "text")

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Zero(t, transportErr.StatusCode)
	assert.Contains(t, err.Error(), "request failed")
}

func TestAnalyzerHealthCheck(t *testing.T) {
	var healthy atomic.Bool
	healthy.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !healthy.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = io.WriteString(w, "ok")
	}))
	defer srv.Close()

	client := NewAnalysisClient(srv.URL, time.Second)
	assert.True(t, client.AnalyzerHealthCheck(context.Background(), srv.URL+"/health"))

	healthy.Store(false)
	assert.False(t, client.AnalyzerHealthCheck(context.Background(), srv.URL+"/health"))

	assert.False(t, client.AnalyzerHealthCheck(context.Background(), "://bad"))
}
