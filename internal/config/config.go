// Package config resolves startup settings from the command line, the
// environment and optional .env files.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read at startup.
const (
	EnvDataPath = "TRUQU_DATA_PATH"
	EnvDebug    = "TRUQU_DEBUG"
)

// ErrNoDataPath is returned when neither an argument nor TRUQU_DATA_PATH
// names the dataset file.
var ErrNoDataPath = errors.New("no dataset path: pass it as the first argument or set " + EnvDataPath)

// Config holds everything the server needs before it can start.
type Config struct {
	// DataPath is the JSON document to load.
	DataPath string
	// Debug turns on debug-level logging.
	Debug bool
}

// Load builds a Config. The first positional argument wins over
// TRUQU_DATA_PATH. envFiles are loaded with godotenv before the environment
// is read; missing files are ignored, malformed ones are an error, and
// variables already set are kept. TRUQU_DEBUG accepts the values of
// strconv.ParseBool.
// With no envFiles, ".env" in the working directory is tried.
func Load(args []string, envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg := &Config{
		DataPath: os.Getenv(EnvDataPath),
	}
	if len(args) > 0 && args[0] != "" {
		cfg.DataPath = args[0]
	}
	if cfg.DataPath == "" {
		return nil, ErrNoDataPath
	}

	if v := os.Getenv(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvDebug, v, err)
		}
		cfg.Debug = debug
	}

	return cfg, nil
}
