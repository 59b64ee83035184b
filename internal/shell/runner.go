// Package shell runs external programs with a deadline and classifies their failures.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/ultinotes/internal/logging"
)

const waitDelay = 500 * time.Millisecond

// Result holds the captured output of a finished command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Runner executes a program and returns its output.
// A zero timeout means the caller's context is the only deadline.
type Runner interface {
	Run(ctx context.Context, timeout time.Duration, name string, args ...string) (*Result, error)
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context, timeout time.Duration, name string, args ...string) (*Result, error)

// Run calls f.
func (f RunnerFunc) Run(ctx context.Context, timeout time.Duration, name string, args ...string) (*Result, error) {
	return f(ctx, timeout, name, args...)
}

// Executor runs commands via os/exec.
type Executor struct {
	logger *zap.Logger

	// Discard drops stdout/stderr instead of buffering them.
	Discard bool
}

// NewExecutor creates an Executor that logs through logger.
func NewExecutor(logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{logger: logger}
}

// Run executes name with args. Non-zero exit yields a *CommandError,
// hitting the deadline yields a *TimeoutError. Output is returned in both cases.
func (e *Executor) Run(ctx context.Context, timeout time.Duration, name string, args ...string) (*Result, error) {
	runCtx := ctx
	cancel := func() {}
	if timeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, timeout)
	}
	defer cancel()

	cmd := exec.CommandContext(runCtx, name, args...)
	// Grandchildren holding the output pipes must not stall Wait past the deadline
	cmd.WaitDelay = waitDelay

	var stdoutBuf, stderrBuf bytes.Buffer
	if e.Discard {
		cmd.Stdout = io.Discard
		cmd.Stderr = io.Discard
	} else {
		cmd.Stdout = &stdoutBuf
		cmd.Stderr = &stderrBuf
	}

	start := time.Now()
	err := cmd.Run()

	result := &Result{
		Stdout:   stdoutBuf.String(),
		Stderr:   stderrBuf.String(),
		Duration: time.Since(start),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			// Command failed to start
			result.ExitCode = -1
		}
	}

	logging.LogCommand(e.logger, name, args, result.ExitCode, result.Duration, err)

	if timeout > 0 && errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return result, &TimeoutError{
			Command: name,
			Timeout: timeout.String(),
		}
	}

	if err != nil {
		return result, &CommandError{
			Command:  name,
			ExitCode: result.ExitCode,
			Stderr:   strings.TrimSpace(result.Stderr),
			Err:      err,
		}
	}

	return result, nil
}

// LookPath reports where a program lives, wrapping exec.LookPath errors.
func LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s not found in PATH: %w", name, err)
	}
	return path, nil
}
