package executor

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"

	"github.com/genricoloni/musicard/internal/domain/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestExecutor(t *testing.T, command string) (*HookExecutor, error) {
	t.Helper()
	ctrl := gomock.NewController(t)
	cfg := mocks.NewMockConfig(ctrl)
	cfg.EXPECT().GetOnUpdate().Return(command)
	return NewHookExecutor(zap.NewNop(), cfg)
}

func TestNewHookExecutor(t *testing.T) {
	tests := []struct {
		name          string
		command       string
		expectEnabled bool
		expectedError string
	}{
		{name: "Disabled", command: ""},
		{name: "Whitespace Only", command: "   "},
		{name: "Missing Binary", command: "definitely-not-a-musicard-binary %s", expectedError: "not found"},
	}
	if runtime.GOOS != "windows" {
		tests = append(tests, struct {
			name          string
			command       string
			expectEnabled bool
			expectedError string
		}{name: "Binary On Path", command: "true %s", expectEnabled: true})
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := newTestExecutor(t, tt.command)

			if tt.expectedError != "" {
				if err == nil || !strings.Contains(err.Error(), tt.expectedError) {
					t.Fatalf("expected error containing %q, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if e.Enabled() != tt.expectEnabled {
				t.Errorf("expected enabled=%v", tt.expectEnabled)
			}
		})
	}
}

func TestHookExecutor_ArgsFor(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{"Placeholder", []string{"-i", "%s", "Now playing"}, []string{"-i", "/tmp/c.png", "Now playing"}},
		{"Embedded Placeholder", []string{"update", "card=%s"}, []string{"update", "card=/tmp/c.png"}},
		{"Appended", []string{"--reload"}, []string{"--reload", "/tmp/c.png"}},
		{"No Args", nil, []string{"/tmp/c.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &HookExecutor{binary: "x", args: tt.args}
			if got := e.argsFor("/tmp/c.png"); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestHookExecutor_Publish(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}

	dir := t.TempDir()
	marker := filepath.Join(dir, "published")

	e, err := newTestExecutor(t, "sh")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The configured command line is split on spaces, so set a quoted script directly
	e.args = []string{"-c", `cp "$0" "$1"`, "%s", marker}

	card := filepath.Join(dir, "now_playing.png")
	if err := os.WriteFile(card, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := e.Publish(context.Background(), card); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if data, err := os.ReadFile(marker); err != nil || string(data) != "png" {
		t.Errorf("command did not receive the card path: %q, %v", data, err)
	}
}

func TestHookExecutor_PublishFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses false")
	}

	e, err := newTestExecutor(t, "false")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := e.Publish(context.Background(), "/tmp/card.png"); err == nil || !strings.Contains(err.Error(), "on-update command failed") {
		t.Errorf("expected command failure, got %v", err)
	}
}

func TestHookExecutor_DisabledPublishIsNoop(t *testing.T) {
	e, err := newTestExecutor(t, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := e.Publish(context.Background(), "/tmp/card.png"); err != nil {
		t.Errorf("expected no-op, got %v", err)
	}
}
