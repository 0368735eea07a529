package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestLoad(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		name          string
		file          string
		env           map[string]string
		expected      Settings
		expectedError string
	}{
		{
			name: "Defaults",
			expected: Settings{
				FontDirs:       []string{"/usr/share/musicard/fonts", "./fonts"},
				OutputDir:      "/tmp/musicard",
				BackgroundMode: "flat",
				FetchTimeout:   10 * time.Second,
			},
		},
		{
			name: "Environment Overrides",
			env: map[string]string{
				EnvFontDirs:       "/opt/fonts" + string(os.PathListSeparator) + "/srv/fonts",
				EnvOutputDir:      "/var/cards",
				EnvBackgroundMode: "BLUR",
				EnvFetchTimeout:   "3s",
				EnvOnUpdate:       "notify-send -i %s Musicard",
			},
			expected: Settings{
				FontDirs:       []string{"/opt/fonts", "/srv/fonts"},
				OutputDir:      "/var/cards",
				BackgroundMode: "blur",
				FetchTimeout:   3 * time.Second,
				OnUpdate:       "notify-send -i %s Musicard",
			},
		},
		{
			name: "File Then Environment",
			file: "outputDir: /from/file\nbackgroundMode: blur\nfontDirs: [/file/fonts]\nonUpdate: eww update\n",
			env:  map[string]string{EnvOutputDir: "/from/env"},
			expected: Settings{
				FontDirs:       []string{"/file/fonts"},
				OutputDir:      "/from/env",
				BackgroundMode: "blur",
				FetchTimeout:   10 * time.Second,
				OnUpdate:       "eww update",
			},
		},
		{
			name: "Home Expansion",
			env:  map[string]string{EnvOutputDir: "~/cards"},
			expected: Settings{
				FontDirs:       []string{"/usr/share/musicard/fonts", "./fonts"},
				OutputDir:      filepath.Join(home, "cards"),
				BackgroundMode: "flat",
				FetchTimeout:   10 * time.Second,
			},
		},
		{
			name:          "Invalid Timeout",
			env:           map[string]string{EnvFetchTimeout: "soon"},
			expectedError: "invalid MUSICARD_FETCH_TIMEOUT",
		},
		{
			name:          "Unknown Mode",
			env:           map[string]string{EnvBackgroundMode: "sepia"},
			expectedError: "unknown background mode",
		},
		{
			name:          "Malformed File",
			file:          "fontDirs: {not: [a list\n",
			expectedError: "failed to parse config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := ""
			if tt.file != "" {
				path = filepath.Join(t.TempDir(), "config.yaml")
				if err := os.WriteFile(path, []byte(tt.file), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			got, err := Load(path, env(tt.env))

			if tt.expectedError != "" {
				if err == nil || !strings.Contains(err.Error(), tt.expectedError) {
					t.Fatalf("expected error containing %q, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), env(nil))
	if err == nil || !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("expected read error, got %v", err)
	}
}

func TestNewAppConfig(t *testing.T) {
	t.Setenv(EnvConfigFile, "")
	t.Setenv(EnvFontDirs, "/a"+string(os.PathListSeparator)+"/b")
	t.Setenv(EnvOutputDir, "/out")
	t.Setenv(EnvBackgroundMode, "")
	t.Setenv(EnvFetchTimeout, "")
	t.Setenv(EnvOnUpdate, "")

	cfg, err := NewAppConfig(zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if dirs := cfg.GetFontDirs(); !reflect.DeepEqual(dirs, []string{"/a", "/b"}) {
		t.Errorf("unexpected font dirs %v", dirs)
	}
	if cfg.GetOutputDir() != "/out" {
		t.Errorf("unexpected output dir %s", cfg.GetOutputDir())
	}
	if cfg.GetBackgroundMode() != "flat" || cfg.GetFetchTimeout() != 10*time.Second {
		t.Errorf("unexpected defaults %s / %s", cfg.GetBackgroundMode(), cfg.GetFetchTimeout())
	}

	// Callers cannot mutate the configured roots
	cfg.GetFontDirs()[0] = "/mutated"
	if cfg.GetFontDirs()[0] != "/a" {
		t.Error("GetFontDirs should return a copy")
	}
}
