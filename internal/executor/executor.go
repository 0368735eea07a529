package executor

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/genricoloni/musicard/internal/domain"
	"go.uber.org/zap"
)

const (
	pathPlaceholder = "%s"
	hookTimeout     = 10 * time.Second
)

// HookExecutor runs the user's on-update command with the path of each new card.
// A "%s" argument is replaced by the path; without one the path is appended.
type HookExecutor struct {
	logger  *zap.Logger
	binary  string
	args    []string
	timeout time.Duration
}

// NewHookExecutor parses the configured command. An empty command yields a no-op executor.
func NewHookExecutor(logger *zap.Logger, cfg domain.Config) (*HookExecutor, error) {
	e := &HookExecutor{logger: logger, timeout: hookTimeout}

	fields := strings.Fields(cfg.GetOnUpdate())
	if len(fields) == 0 {
		return e, nil
	}

	binary, err := exec.LookPath(fields[0])
	if err != nil {
		return nil, fmt.Errorf("on-update command %q not found: %w", fields[0], err)
	}
	e.binary = binary
	e.args = fields[1:]

	logger.Info("On-update command configured", zap.String("binary", binary))
	return e, nil
}

// Enabled reports whether a command is configured
func (e *HookExecutor) Enabled() bool {
	return e.binary != ""
}

// Publish runs the command for cardPath and waits for it to exit
func (e *HookExecutor) Publish(ctx context.Context, cardPath string) error {
	if !e.Enabled() {
		return nil
	}

	args := e.argsFor(cardPath)
	e.logger.Debug("Running on-update command",
		zap.String("command", e.binary),
		zap.Strings("args", args))

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	output, err := exec.CommandContext(ctx, e.binary, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("on-update command failed: %w (output: %s)", err, strings.TrimSpace(string(output)))
	}
	return nil
}

func (e *HookExecutor) argsFor(cardPath string) []string {
	args := make([]string, 0, len(e.args)+1)
	substituted := false
	for _, arg := range e.args {
		if strings.Contains(arg, pathPlaceholder) {
			arg = strings.ReplaceAll(arg, pathPlaceholder, cardPath)
			substituted = true
		}
		args = append(args, arg)
	}
	if !substituted {
		args = append(args, cardPath)
	}
	return args
}
