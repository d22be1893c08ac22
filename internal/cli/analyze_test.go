package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spacesedan/sentireport/internal/stub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	themeName, filterName, jsonOutput = "", "all", false

	cmd := NewRootCommand("test", "abc123")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func useService(t *testing.T, handler http.Handler) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	t.Setenv("APP_ENV", "test")
	t.Setenv("ANALYZER_URL", srv.URL+stub.REPORT_PATH)
	t.Setenv("LOG_LEVEL", "error")
}

func TestAnalyze_JSONOutput(t *testing.T) {
	useService(t, stub.NewHandler())

	out, err := runCLI(t, "", "analyze", "--json", "--filter", "negative", "I love this. I hate that.")
	require.NoError(t, err)

	var got jsonView
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "succeeded", got.Status)
	assert.Equal(t, "Negative", got.Filter)
	assert.Equal(t, 1, got.Counts.Positive)
	assert.Equal(t, 1, got.Counts.Negative)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "I hate that.", got.Items[0].CombinedText)
	assert.Equal(t, []int{1, 1, 0}, got.Chart.Data)
}

func TestAnalyze_ReadsStdin(t *testing.T) {
	useService(t, stub.NewHandler())

	out, err := runCLI(t, "I love this.\n", "analyze")
	require.NoError(t, err)
	assert.Contains(t, out, "Final Verdict: Positive")
	assert.Contains(t, out, "I love this.")
}

func TestAnalyze_ServiceFailure(t *testing.T) {
	useService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	out, err := runCLI(t, "", "analyze", "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Contains(t, out, "HTTP error: status 500")
}

func TestAnalyze_InvalidFilter(t *testing.T) {
	useService(t, stub.NewHandler())

	_, err := runCLI(t, "", "analyze", "--filter", "mixed", "text")
	assert.ErrorContains(t, err, "invalid filter: mixed")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sentireport test (abc123)")
}
