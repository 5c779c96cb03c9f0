package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// unsetEnv removes key for the duration of the test. t.Setenv can only set,
// and godotenv never overrides a variable that exists, even when empty.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unsetenv %s: %v", key, err)
	}
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

// noEnvFile returns a path that does not exist, so Load skips .env lookup
// in the working directory.
func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_ArgumentWins(t *testing.T) {
	t.Setenv(EnvDataPath, "/from/env.json")

	cfg, err := Load([]string{"/from/arg.json"}, noEnvFile(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataPath != "/from/arg.json" {
		t.Errorf("DataPath = %s, want /from/arg.json", cfg.DataPath)
	}
}

func TestLoad_FallsBackToEnv(t *testing.T) {
	t.Setenv(EnvDataPath, "/from/env.json")

	cfg, err := Load(nil, noEnvFile(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataPath != "/from/env.json" {
		t.Errorf("DataPath = %s, want /from/env.json", cfg.DataPath)
	}
}

func TestLoad_NoPath(t *testing.T) {
	unsetEnv(t, EnvDataPath)

	_, err := Load(nil, noEnvFile(t))
	if !errors.Is(err, ErrNoDataPath) {
		t.Errorf("err = %v, want ErrNoDataPath", err)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	unsetEnv(t, EnvDataPath)
	unsetEnv(t, EnvDebug)

	envFile := filepath.Join(t.TempDir(), ".env")
	content := EnvDataPath + "=/from/dotenv.json\n" + EnvDebug + "=true\n"
	if err := os.WriteFile(envFile, []byte(content), 0o644); err != nil {
		t.Fatalf("writing .env: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Unsetenv(EnvDataPath)
		_ = os.Unsetenv(EnvDebug)
	})

	cfg, err := Load(nil, envFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataPath != "/from/dotenv.json" {
		t.Errorf("DataPath = %s, want /from/dotenv.json", cfg.DataPath)
	}
	if !cfg.Debug {
		t.Error("Debug should be true")
	}
}

func TestLoad_EnvFileDoesNotOverride(t *testing.T) {
	t.Setenv(EnvDataPath, "/already/set.json")

	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte(EnvDataPath+"=/from/dotenv.json\n"), 0o644); err != nil {
		t.Fatalf("writing .env: %v", err)
	}

	cfg, err := Load(nil, envFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataPath != "/already/set.json" {
		t.Errorf("DataPath = %s, want /already/set.json", cfg.DataPath)
	}
}

func TestLoad_DebugFlagParsing(t *testing.T) {
	t.Setenv(EnvDataPath, "/x.json")

	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"1", true},
		{"false", false},
		{"0", false},
	}
	for _, tt := range tests {
		t.Setenv(EnvDebug, tt.value)
		cfg, err := Load(nil, noEnvFile(t))
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Debug != tt.want {
			t.Errorf("%s=%q: Debug = %v, want %v", EnvDebug, tt.value, cfg.Debug, tt.want)
		}
	}
}

func TestLoad_InvalidDebugValue(t *testing.T) {
	t.Setenv(EnvDataPath, "/x.json")
	t.Setenv(EnvDebug, "yes")

	_, err := Load(nil, noEnvFile(t))
	if err == nil {
		t.Fatal("expected error for unrecognised debug value")
	}
	if !strings.Contains(err.Error(), EnvDebug) {
		t.Errorf("error %q should name %s", err, EnvDebug)
	}
}

func TestLoad_MalformedEnvFile(t *testing.T) {
	unsetEnv(t, EnvDataPath)

	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte(EnvDataPath+"='/unterminated.json\n"), 0o600); err != nil {
		t.Fatalf("writing env file: %v", err)
	}

	_, err := Load(nil, envFile)
	if err == nil {
		t.Fatal("expected error for malformed env file")
	}
	if errors.Is(err, ErrNoDataPath) {
		t.Errorf("err = %v, want the env file error, not ErrNoDataPath", err)
	}
	if !strings.Contains(err.Error(), envFile) {
		t.Errorf("error %q should name %s", err, envFile)
	}
}
