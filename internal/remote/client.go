package remote

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/ultinotes/internal/config"
	"github.com/muurk/ultinotes/internal/shell"
)

// Client performs the three file-transfer operations the device supports.
// Every call opens a fresh session to host and closes it before returning.
type Client interface {
	// List returns the names of the directories directly under dir.
	List(ctx context.Context, host, dir string) ([]string, error)
	// MakeDir creates dir.
	MakeDir(ctx context.Context, host, dir string) error
	// Put uploads localPath into remoteDir, keeping its base name.
	Put(ctx context.Context, host, localPath, remoteDir string) error
}

// Options configures a Client.
type Options struct {
	Port     int
	User     string
	Password string

	// ConnectTimeout bounds establishing the control connection.
	ConnectTimeout time.Duration
	// CommandTimeout bounds each whole operation.
	CommandTimeout time.Duration

	// LFTPPath is the lftp binary used by the lftp backend.
	LFTPPath string
}

// DefaultOptions returns anonymous FTP on port 21 with 5s/10s timeouts.
func DefaultOptions() Options {
	return Options{
		Port:           config.DefaultPort,
		User:           config.DefaultUser,
		ConnectTimeout: config.DefaultConnectTimeout,
		CommandTimeout: config.DefaultCommandTimeout,
		LFTPPath:       "lftp",
	}
}

// OptionsFromSettings maps the remote and tool settings to Options.
func OptionsFromSettings(s *config.Settings) Options {
	return Options{
		Port:           s.Remote.Port,
		User:           s.Remote.User,
		Password:       s.Remote.Password,
		ConnectTimeout: s.Remote.ConnectTimeout,
		CommandTimeout: s.Remote.CommandTimeout,
		LFTPPath:       s.Tools.LFTP,
	}
}

// NewClient returns the backend named by s.Remote.Backend.
func NewClient(s *config.Settings, logger *zap.Logger) (Client, error) {
	opts := OptionsFromSettings(s)
	switch s.Remote.Backend {
	case config.BackendFTP, "":
		return NewFTPClient(opts, logger), nil
	case config.BackendLFTP:
		return NewLFTPClient(opts, shell.NewExecutor(logger), logger), nil
	default:
		return nil, fmt.Errorf("unknown remote backend %q", s.Remote.Backend)
	}
}

// withDeadline bounds ctx by the command timeout.
func withDeadline(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
