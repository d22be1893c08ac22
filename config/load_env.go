package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/subosito/gotenv"
)

const ENV_DIR = "config/envs"

// LoadEnv applies config/envs/.env.<env>, falling back to a .env file in the
// working directory. Variables already present in the process environment
// win. It returns the file that was applied, or "" when none was found.
func LoadEnv(env string) string {
	return loadEnvFrom(ENV_DIR, env)
}

func loadEnvFrom(dir, env string) string {
	candidates := []string{filepath.Join(dir, ".env."+env), ".env"}
	for _, file := range candidates {
		err := gotenv.Load(file)
		if err == nil {
			slog.Debug("[Config] Loaded env file", slog.String("file", file))
			return file
		}
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("[Config] Failed to load env file",
				slog.String("file", file),
				slog.String("error", err.Error()))
		}
	}

	slog.Warn("No .env file found, using OS environment",
		slog.String("env", env))
	return ""
}
