package shell

import (
	"errors"
	"fmt"
)

// CommandError represents a failed external command (non-zero exit or failure to start).
type CommandError struct {
	// Command is the program that was run
	Command string
	// ExitCode is the process exit code (-1 if it never started)
	ExitCode int
	// Stderr is the captured error output
	Stderr string
	// Underlying error if any
	Err error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s failed (exit code %d)", e.Command, e.ExitCode)
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	if e.Stderr != "" {
		msg += "\nstderr: " + e.Stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// TimeoutError represents an external command killed at its deadline.
type TimeoutError struct {
	// Command is the program that timed out
	Command string
	// Timeout is the duration that was exceeded
	Timeout string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out after %s", e.Command, e.Timeout)
}

// IsTimeout reports whether err is (or wraps) a TimeoutError.
func IsTimeout(err error) bool {
	var te *TimeoutError
	return errors.As(err, &te)
}

// IsCommandError reports whether err is (or wraps) a CommandError.
func IsCommandError(err error) bool {
	var ce *CommandError
	return errors.As(err, &ce)
}
