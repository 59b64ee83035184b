package remote

import (
	"context"
	"io"
	"net"
	"os"
	"path"
	"path/filepath"
	"strconv"

	"github.com/jlaffaye/ftp"
	"go.uber.org/zap"

	"github.com/muurk/ultinotes/internal/logging"
)

// ftpConn is the subset of *ftp.ServerConn used by FTPClient.
type ftpConn interface {
	List(path string) ([]*ftp.Entry, error)
	MakeDir(path string) error
	Stor(path string, r io.Reader) error
	Quit() error
}

type dialFunc func(ctx context.Context, addr string, opts Options) (ftpConn, error)

// FTPClient speaks FTP natively.
type FTPClient struct {
	opts   Options
	logger *zap.Logger
	dial   dialFunc
}

// NewFTPClient creates a native FTP client.
func NewFTPClient(opts Options, logger *zap.Logger) *FTPClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FTPClient{opts: opts, logger: logger, dial: dialFTP}
}

// dialFTP connects and logs in. Control and data sockets both carry the
// context deadline.
func dialFTP(ctx context.Context, addr string, opts Options) (ftpConn, error) {
	dialer := &net.Dialer{Timeout: opts.ConnectTimeout}
	deadline, hasDeadline := ctx.Deadline()

	conn, err := ftp.Dial(addr,
		ftp.DialWithContext(ctx),
		ftp.DialWithTimeout(opts.ConnectTimeout),
		ftp.DialWithDialFunc(func(network, address string) (net.Conn, error) {
			c, err := dialer.DialContext(ctx, network, address)
			if err != nil {
				return nil, err
			}
			if hasDeadline {
				_ = c.SetDeadline(deadline)
			}
			return c, nil
		}),
	)
	if err != nil {
		return nil, err
	}

	user, pass := opts.User, opts.Password
	if user == "" {
		user = "anonymous"
	}
	if pass == "" && user == "anonymous" {
		pass = "anonymous"
	}
	if err := conn.Login(user, pass); err != nil {
		_ = conn.Quit()
		return nil, err
	}
	return conn, nil
}

func (c *FTPClient) session(ctx context.Context, op, host, p string, fn func(conn ftpConn) error) error {
	ctx, cancel := withDeadline(ctx, c.opts.CommandTimeout)
	defer cancel()

	addr := net.JoinHostPort(host, strconv.Itoa(c.opts.Port))
	conn, err := c.dial(ctx, addr, c.opts)
	if err != nil {
		rerr := classify(op, host, p, err)
		logging.LogTransfer(c.logger, op, host, p, rerr)
		return rerr
	}
	defer func() {
		if qerr := conn.Quit(); qerr != nil {
			c.logger.Debug("FTP quit failed", zap.Error(qerr))
		}
	}()

	if err := fn(conn); err != nil {
		rerr := classify(op, host, p, err)
		logging.LogTransfer(c.logger, op, host, p, rerr)
		return rerr
	}
	logging.LogTransfer(c.logger, op, host, p, nil)
	return nil
}

// List returns the directories under dir, in server order.
func (c *FTPClient) List(ctx context.Context, host, dir string) ([]string, error) {
	var names []string
	err := c.session(ctx, "list", host, dir, func(conn ftpConn) error {
		entries, err := conn.List(dir)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if e.Type != ftp.EntryTypeFolder || e.Name == "." || e.Name == ".." {
				continue
			}
			names = append(names, e.Name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// MakeDir creates dir.
func (c *FTPClient) MakeDir(ctx context.Context, host, dir string) error {
	return c.session(ctx, "mkdir", host, dir, func(conn ftpConn) error {
		return conn.MakeDir(dir)
	})
}

// Put uploads localPath to remoteDir/<base name>.
func (c *FTPClient) Put(ctx context.Context, host, localPath, remoteDir string) error {
	f, err := os.Open(localPath)
	if err != nil {
		return &Error{Type: ErrTypeLocal, Op: "put", Host: host, Path: localPath, Err: err}
	}
	defer f.Close()

	target := path.Join(remoteDir, filepath.Base(localPath))
	return c.session(ctx, "put", host, target, func(conn ftpConn) error {
		return conn.Stor(target, f)
	})
}
