// Shell command reporter: runs an external command, trims its stdout,
// and applies an optional transform before publishing.
package sensor

import (
	"context"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// Runner executes an external command and returns its captured stdout.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner is the production Runner backed by os/exec.
type ExecRunner struct{}

// Run executes the command and returns its stdout.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Transform post-processes a trimmed command output. The second return
// is false when the output cannot be converted; the sensor then produces
// no value for the cycle.
type Transform func(string) (string, bool)

// CommandReporter produces a sensor value from a shell command's output.
// A spawn failure or an unparsable output yields no value, never an
// error; the sensor stays registered for the next cycle.
type CommandReporter struct {
	runner    Runner
	command   string
	args      []string
	transform Transform
	logger    *zap.Logger
}

// NewCommandReporter creates a reporter that runs command with args
// through the given runner. transform may be nil for raw trimmed output.
func NewCommandReporter(runner Runner, logger *zap.Logger, command string, args []string, transform Transform) *CommandReporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CommandReporter{
		runner:    runner,
		command:   command,
		args:      args,
		transform: transform,
		logger:    logger,
	}
}

// ProduceValue runs the command and returns its transformed output.
func (r *CommandReporter) ProduceValue(ctx context.Context) (string, bool) {
	out, err := r.runner.Run(ctx, r.command, r.args...)
	if err != nil {
		r.logger.Debug("Command failed",
			zap.String("command", r.command),
			zap.Error(err))
		return "", false
	}
	trimmed := strings.TrimSpace(out)
	if r.transform == nil {
		return trimmed, true
	}
	value, ok := r.transform(trimmed)
	if !ok {
		r.logger.Debug("Command output not parsable",
			zap.String("command", r.command))
	}
	return value, ok
}
