package remote

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/textproto"
	"os"
	"strings"

	"github.com/muurk/ultinotes/internal/shell"
)

// ErrorType represents the category of a transfer failure
type ErrorType int

const (
	// ErrTypeConnection indicates the device could not be reached or dropped the session
	ErrTypeConnection ErrorType = iota
	// ErrTypeTimeout indicates the operation did not finish before its deadline
	ErrTypeTimeout
	// ErrTypeProtocol indicates the server answered but rejected the request
	ErrTypeProtocol
	// ErrTypeLocal indicates a problem with a local file
	ErrTypeLocal
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeConnection:
		return "Connection Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeProtocol:
		return "Server Error"
	case ErrTypeLocal:
		return "Local File Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error describes a failed remote operation
type Error struct {
	Type ErrorType
	Op   string // "list", "mkdir" or "put"
	Host string
	Path string
	Err  error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s %s on %s", e.Type, e.Op, e.Path, e.Host)
	if e.Err != nil {
		msg += fmt.Sprintf(" (caused by: %v)", e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

func errorType(err error) (ErrorType, bool) {
	var re *Error
	if errors.As(err, &re) {
		return re.Type, true
	}
	return 0, false
}

// IsConnectionError checks if an error means the device could not be reached
func IsConnectionError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeConnection
}

// IsTimeout checks if an error is a remote operation timeout
func IsTimeout(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeTimeout
}

// IsProtocolError checks if the server rejected the request
func IsProtocolError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeProtocol
}

// IsStale reports whether err suggests the cached device address is no longer valid.
func IsStale(err error) bool {
	t, ok := errorType(err)
	return ok && (t == ErrTypeConnection || t == ErrTypeTimeout)
}

// classify wraps err in an *Error with a type derived from its cause.
func classify(op, host, p string, err error) *Error {
	if err == nil {
		return nil
	}
	var re *Error
	if errors.As(err, &re) {
		return re
	}

	e := &Error{Type: ErrTypeConnection, Op: op, Host: host, Path: p, Err: err}

	var (
		netErr   net.Error
		protoErr *textproto.Error
		pathErr  *fs.PathError
		cmdErr   *shell.CommandError
	)
	switch {
	case errors.Is(err, context.DeadlineExceeded), os.IsTimeout(err), shell.IsTimeout(err):
		e.Type = ErrTypeTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		e.Type = ErrTypeTimeout
	case errors.As(err, &protoErr) && protoErr.Code >= 400:
		e.Type = ErrTypeProtocol
	case errors.As(err, &cmdErr) && lftpRejected(cmdErr.Stderr):
		e.Type = ErrTypeProtocol
	case errors.As(err, &pathErr):
		e.Type = ErrTypeLocal
	}
	return e
}

// lftpRejected reports whether lftp's stderr carries a server reply code,
// meaning the session was established and a command was refused.
func lftpRejected(stderr string) bool {
	return strings.Contains(stderr, "Access failed: 5") ||
		strings.Contains(stderr, "Access failed: 4")
}
