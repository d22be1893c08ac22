package cli

import (
	"context"
	"os"
	"sync/atomic"

	"github.com/spacesedan/sentireport/internal/clients"
	"github.com/spacesedan/sentireport/internal/monitoring"
	"github.com/spacesedan/sentireport/internal/render"
	"github.com/spacesedan/sentireport/internal/report"
	"github.com/spacesedan/sentireport/internal/tui"
	"github.com/spf13/cobra"
)

func newTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive sentiment report explorer",
		Long: `Open a full-screen editor for text, generate reports with ctrl+s and
switch between sentiment filters and themes.

Logs go to LOG_FILE when it is set and are discarded otherwise.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Log.File == "" {
				cfg.Log.File = os.DevNull
			}
			closeLog, err := initLogging(cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			theme, err := render.ThemeByName(cfg.Theme)
			if err != nil {
				return err
			}

			client := clients.NewAnalysisClient(cfg.Analyzer.URL, cfg.Analyzer.Timeout)
			session := report.NewSession(client)

			var healthy *atomic.Bool
			if cfg.Analyzer.HealthURL != "" && cfg.Analyzer.HealthInterval > 0 {
				ctx, cancel := context.WithCancel(context.Background())
				defer cancel()

				healthy = &atomic.Bool{}
				healthy.Store(true)
				go monitoring.MonitorAnalyzerHealth(ctx, healthy, cfg.Analyzer.HealthInterval, func(ctx context.Context) bool {
					return client.AnalyzerHealthCheck(ctx, cfg.Analyzer.HealthURL)
				})
			}

			return tui.Run(session, theme, healthy)
		},
	}
}
