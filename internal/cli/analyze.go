package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spacesedan/sentireport/internal/clients"
	"github.com/spacesedan/sentireport/internal/models"
	"github.com/spacesedan/sentireport/internal/render"
	"github.com/spacesedan/sentireport/internal/report"
	"github.com/spf13/cobra"
)

func newAnalyzeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Generate a sentiment report for text",
		Long: `Generate a sentiment report for the given text, or for stdin when no
text argument is given, and print it.`,
		Example: `  sentireport analyze "I love this. The ending was weak."
  cat review.md | sentireport analyze --filter negative
  sentireport analyze --json "Great service"`,
		RunE: runAnalyze,
	}

	cmd.Flags().StringVarP(&filterName, "filter", "f", "all", "segments to list (all, positive, negative, neutral)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the view as JSON instead of styled text")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	closeLog, err := initLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	filter, err := report.ParseFilter(filterName)
	if err != nil {
		return err
	}
	theme, err := render.ThemeByName(cfg.Theme)
	if err != nil {
		return err
	}

	text, err := readStatement(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	session := report.NewSession(clients.NewAnalysisClient(cfg.Analyzer.URL, cfg.Analyzer.Timeout))
	session.SetFilter(filter)

	v, err := generate(cmd.Context(), session, text)
	if err != nil {
		return err
	}

	if jsonOutput {
		if err := writeJSON(cmd.OutOrStdout(), v); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), render.New(theme, 0).Render(v))
	}

	if v.State.Status() == report.StatusFailed {
		return errors.New(v.State.ErrorMessage())
	}
	return nil
}

// generate submits text and blocks until the request resolves.
func generate(ctx context.Context, session *report.Session, text string) (report.View, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	done, err := session.Submit(ctx, text)
	if err != nil {
		return report.View{}, err
	}
	<-done
	return session.View(), nil
}

func readStatement(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read statement from stdin: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

type jsonView struct {
	Status          string                 `json:"status"`
	Error           string                 `json:"error,omitempty"`
	Filter          string                 `json:"filter"`
	Counts          report.SentimentCounts `json:"counts"`
	Chart           report.Chart           `json:"chart"`
	FinalVerdict    string                 `json:"verdict,omitempty"`
	DetailedVerdict string                 `json:"detailed_verdict,omitempty"`
	Items           []models.SentimentItem `json:"items"`
}

func writeJSON(w io.Writer, v report.View) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonView{
		Status:          v.State.Status().String(),
		Error:           v.State.ErrorMessage(),
		Filter:          v.Filter.String(),
		Counts:          v.Counts,
		Chart:           v.Chart,
		FinalVerdict:    v.FinalVerdict,
		DetailedVerdict: v.DetailedVerdict,
		Items:           v.Items,
	})
}
