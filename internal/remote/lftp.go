package remote

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/ultinotes/internal/logging"
	"github.com/muurk/ultinotes/internal/shell"
)

// LFTPClient drives the lftp command-line client, one process per operation.
type LFTPClient struct {
	opts   Options
	runner shell.Runner
	logger *zap.Logger
}

// NewLFTPClient creates an lftp-backed client.
func NewLFTPClient(opts Options, runner shell.Runner, logger *zap.Logger) *LFTPClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.LFTPPath == "" {
		opts.LFTPPath = "lftp"
	}
	return &LFTPClient{opts: opts, runner: runner, logger: logger}
}

// quote renders s as a double-quoted lftp argument.
func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}

// script builds the -c argument: timeout setting, open, then cmd.
func (c *LFTPClient) script(host, cmd string) string {
	secs := int(math.Ceil(c.opts.ConnectTimeout.Seconds()))
	if secs < 1 {
		secs = 1
	}

	url := "ftp://" + host
	if c.opts.Port != 0 && c.opts.Port != 21 {
		url += ":" + strconv.Itoa(c.opts.Port)
	}

	open := "open " + url
	if c.opts.User != "" && c.opts.User != "anonymous" {
		open = fmt.Sprintf("open -u %s %s", quote(c.opts.User+","+c.opts.Password), url)
	}

	return fmt.Sprintf("set net:timeout %d; %s; %s", secs, open, cmd)
}

func (c *LFTPClient) run(ctx context.Context, op, host, p, cmd string) (*shell.Result, error) {
	res, err := c.runner.Run(ctx, c.opts.CommandTimeout, c.opts.LFTPPath, "-c", c.script(host, cmd))
	if err != nil {
		rerr := classify(op, host, p, err)
		if res != nil && res.ExitCode == -1 && !shell.IsTimeout(err) {
			rerr.Type = ErrTypeLocal
		}
		logging.LogTransfer(c.logger, op, host, p, rerr)
		return res, rerr
	}
	logging.LogTransfer(c.logger, op, host, p, nil)
	return res, nil
}

// List runs "ls DIR" and parses the long listing.
func (c *LFTPClient) List(ctx context.Context, host, dir string) ([]string, error) {
	res, err := c.run(ctx, "list", host, dir, "ls "+quote(dir))
	if err != nil {
		return nil, err
	}
	return ParseListing(res.Stdout), nil
}

// MakeDir runs "mkdir DIR".
func (c *LFTPClient) MakeDir(ctx context.Context, host, dir string) error {
	_, err := c.run(ctx, "mkdir", host, dir, "mkdir "+quote(dir))
	return err
}

// Put runs "put -O REMOTE LOCAL".
func (c *LFTPClient) Put(ctx context.Context, host, localPath, remoteDir string) error {
	if _, err := os.Stat(localPath); err != nil {
		return &Error{Type: ErrTypeLocal, Op: "put", Host: host, Path: localPath, Err: err}
	}
	abs, err := filepath.Abs(localPath)
	if err != nil {
		return &Error{Type: ErrTypeLocal, Op: "put", Host: host, Path: localPath, Err: err}
	}
	_, err = c.run(ctx, "put", host, remoteDir, fmt.Sprintf("put -O %s %s", quote(remoteDir), quote(abs)))
	return err
}
