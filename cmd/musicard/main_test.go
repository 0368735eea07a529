package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/genricoloni/musicard/internal/card"
	"github.com/genricoloni/musicard/internal/config"
	"github.com/genricoloni/musicard/internal/domain"
	"github.com/genricoloni/musicard/internal/fonts/fontstest"
	"go.uber.org/fx"
)

// TestAppGraphValidity verifies that the dependency graphs are resolvable.
// This test will fail if you forget an fx.Provide for a required interface.
func TestAppGraphValidity(t *testing.T) {
	tests := []struct {
		name string
		opts fx.Option
	}{
		{"Render", fx.Options(loggerOptions(false), AppOptions)},
		{"Watch", fx.Options(loggerOptions(false), AppOptions, WatchOptions)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := fx.ValidateApp(tt.opts); err != nil {
				t.Errorf("Dependency graph is not valid: %v", err)
			}
		})
	}
}

// TestNewLogger specifically verifies the logger configuration
func TestNewLogger(t *testing.T) {
	for _, debug := range []bool{false, true} {
		logger, err := newLogger(debug)
		if err != nil {
			t.Fatalf("Failed to create logger: %v", err)
		}
		if logger == nil {
			t.Fatal("Logger should not be nil")
		}
		logger.Info("Test logger initialization")
	}
}

func setTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvConfigFile, "")
	t.Setenv(config.EnvFontDirs, fontstest.WriteDir(t))
	t.Setenv(config.EnvOutputDir, t.TempDir())
	t.Setenv(config.EnvBackgroundMode, "")
	t.Setenv(config.EnvFetchTimeout, "")
	t.Setenv(config.EnvOnUpdate, "")
}

// TestEndToEndRenderGraph builds the real graph and renders through it
func TestEndToEndRenderGraph(t *testing.T) {
	setTestEnv(t)

	var renderer domain.CardRenderer
	app := fx.New(AppOptions, loggerOptions(false), fx.Populate(&renderer))
	if err := app.Err(); err != nil {
		t.Fatalf("App failed to build: %v", err)
	}

	if err := app.Start(t.Context()); err != nil {
		t.Fatalf("App failed to start: %v", err)
	}
	data, err := renderer.Render(t.Context(), domain.CardOptions{Name: "Graph"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("expected PNG output")
	}
	if err := app.Stop(t.Context()); err != nil {
		t.Fatalf("App failed to stop: %v", err)
	}
}

func TestEndToEndGraph_MissingFonts(t *testing.T) {
	setTestEnv(t)
	t.Setenv(config.EnvFontDirs, t.TempDir())

	var renderer domain.CardRenderer
	app := fx.New(AppOptions, loggerOptions(false), fx.Populate(&renderer))
	if app.Err() == nil {
		t.Fatal("expected startup to fail without fonts")
	}
}

func TestRenderCommand(t *testing.T) {
	setTestEnv(t)
	dir := t.TempDir()
	out := filepath.Join(dir, "card.png")
	optionsPath := filepath.Join(dir, "card.yaml")
	if err := os.WriteFile(optionsPath, []byte("name: From File\nprogress: 75\nnameColor: \"#00FF00\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCmd()
	cmd.SetArgs([]string{"render", "--options", optionsPath, "--progress", "40", "--out", out})
	cmd.SetErr(new(bytes.Buffer))

	if err := cmd.Execute(); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("card not written: %v", err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if cfg.Width != card.CanvasWidth || cfg.Height != card.CanvasHeight {
		t.Errorf("expected %dx%d, got %dx%d", card.CanvasWidth, card.CanvasHeight, cfg.Width, cfg.Height)
	}
}

func TestRenderCommand_ThumbnailFailure(t *testing.T) {
	setTestEnv(t)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"render", "--thumbnail", "/nonexistent/cover.png", "--out", filepath.Join(t.TempDir(), "x.png")})
	cmd.SetErr(new(bytes.Buffer))

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for an unreadable thumbnail")
	}
}

func TestCardFile_FlagsOverrideFile(t *testing.T) {
	file := cardFile{Name: "File", Author: "By File", Progress: domain.Float(75)}
	flags := cardFile{Name: "Flag", Author: "ignored", progressValue: 40}
	changed := map[string]bool{"name": true, "progress": true}

	file.override(flags, func(name string) bool { return changed[name] })
	opts := file.options()

	if opts.Name != "Flag" {
		t.Errorf("expected flag name, got %q", opts.Name)
	}
	if opts.Author != "By File" {
		t.Errorf("unset flags must not override, got %q", opts.Author)
	}
	if opts.Progress == nil || *opts.Progress != 40 {
		t.Errorf("expected progress 40, got %v", opts.Progress)
	}
	if !opts.ThumbnailImage.IsZero() {
		t.Error("expected absent thumbnail")
	}
}
