package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spacesedan/sentireport/config"
	"github.com/spacesedan/sentireport/internal/logging"
	"github.com/spf13/cobra"
)

var (
	themeName  string
	filterName string
	jsonOutput bool
)

// NewRootCommand creates the root command
func NewRootCommand(version, commit string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sentireport",
		Short: "Sentiment report generator",
		Long: `sentireport sends text to a sentiment analysis service and shows the
per-segment breakdown, sentiment counts and the service's verdict.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "color theme (dark, light); defaults to THEME")

	rootCmd.AddCommand(newAnalyzeCommand())
	rootCmd.AddCommand(newTUICommand())
	rootCmd.AddCommand(newVersionCommand(version, commit))

	return rootCmd
}

// loadConfig applies the env file for APP_ENV and reads the environment.
func loadConfig() (config.Config, error) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)

	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if themeName != "" {
		cfg.Theme = themeName
	}
	return cfg, nil
}

// initLogging sends logs to LOG_FILE when set, otherwise to stderr so they
// stay out of rendered output.
func initLogging(cfg config.Config) (func() error, error) {
	if cfg.Log.File == "" {
		logging.SetOutput(os.Stderr, cfg.Log.Level)
		return func() error { return nil }, nil
	}

	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logging.SetOutput(f, cfg.Log.Level)
	return f.Close, nil
}

func newVersionCommand(version, commit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			if version == "" {
				version = "development"
			}
			if commit == "" {
				commit = "local-build"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sentireport %s (%s)\n", version, commit)
			fmt.Fprintf(cmd.OutOrStdout(), "Go version: %s\n", runtime.Version())
		},
	}
}
