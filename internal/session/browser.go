package session

import (
	"context"
	"errors"
	"io"
	"path"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/ultinotes/internal/discovery"
	"github.com/muurk/ultinotes/internal/netprobe"
	"github.com/muurk/ultinotes/internal/remote"
	"github.com/muurk/ultinotes/internal/ui"
)

// Locator finds the device's IP address.
type Locator interface {
	Locate(ctx context.Context, forceScan bool) (string, error)
}

// Selection is the directory chosen by the user.
type Selection struct {
	Name       string
	RemotePath string
}

// Menu actions shown below the directory list.
var browserActions = []ui.MenuAction{
	{Key: "r", Label: "Re-scan IP / Refresh"},
	{Key: "c", Label: "Create directory"},
	{Key: "q", Label: "Quit Script"},
}

// Browser lets the user pick or create a directory under Root.
type Browser struct {
	Root       string
	MaxDirName int

	locator  Locator
	client   remote.Client
	addr     *Address
	prompter *ui.Prompter
	printer  *ui.Printer
	logger   *zap.Logger
}

// NewBrowser creates a Browser sharing addr with the rest of the session.
func NewBrowser(locator Locator, client remote.Client, addr *Address, pr *ui.Prompter, out *ui.Printer, root string, maxDirName int, logger *zap.Logger) *Browser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Browser{
		Root:       root,
		MaxDirName: maxDirName,
		locator:    locator,
		client:     client,
		addr:       addr,
		prompter:   pr,
		printer:    out,
		logger:     logger,
	}
}

// Discover locates the device and caches its address. Failures are reported
// to the user before being returned.
func (b *Browser) Discover(ctx context.Context, forceScan bool) error {
	ip, err := b.locator.Locate(ctx, forceScan)
	if err != nil {
		b.reportLocateError(err)
		return err
	}
	b.addr.Set(ip)
	return nil
}

func (b *Browser) reportLocateError(err error) {
	var (
		ifErr *netprobe.InterfaceError
		nfErr *discovery.NotFoundError
	)
	switch {
	case errors.As(err, &ifErr):
		b.printer.Failure("Error: Could not get IP for interface " + ifErr.Interface)
	case errors.As(err, &nfErr):
		b.printer.Failure("Error: Could not find C64U at " + nfErr.MAC)
	default:
		b.printer.Failure("Error: " + err.Error())
	}
}

// ensureAddress discovers the device if no address is cached.
func (b *Browser) ensureAddress(ctx context.Context) error {
	if b.addr.Known() {
		return nil
	}
	return b.Discover(ctx, false)
}

// fetch lists Root. A stale-address failure clears the address and triggers
// one rediscovery and one more attempt.
func (b *Browser) fetch(ctx context.Context) ([]string, error) {
	retried := false
	for {
		if err := b.ensureAddress(ctx); err != nil {
			return nil, err
		}

		b.printer.Println("Fetching directory list...")
		dirs, err := b.client.List(ctx, b.addr.Get(), b.Root)
		if err == nil {
			return dirs, nil
		}

		b.logger.Warn("directory listing failed", zap.Error(err))
		if !remote.IsStale(err) {
			b.printer.Failure("Error: " + err.Error())
			return nil, err
		}

		b.addr.Invalidate()
		if retried {
			b.printer.Failure("Connection lost.")
			return nil, err
		}
		retried = true
		b.printer.Warning("Connection lost. Re-scanning IP...")
	}
}

// Select shows the directory menu until the user picks a directory.
//
// "r" forces a full rescan and "c" creates a directory; both refresh the list.
// Invalid input redraws the current list. ErrQuit is returned for "q" or
// end of input.
func (b *Browser) Select(ctx context.Context) (*Selection, error) {
	var dirs []string
	stale := true

	for {
		if stale {
			var err error
			if dirs, err = b.fetch(ctx); err != nil {
				return nil, err
			}
			stale = false
		}

		b.printer.Print(ui.RenderMenu(dirs, browserActions))
		choice, err := b.prompter.Ask("Select Folder or Command: ")
		if errors.Is(err, io.EOF) {
			return nil, ErrQuit
		}
		if err != nil {
			return nil, err
		}

		switch strings.ToLower(choice) {
		case "q":
			return nil, ErrQuit

		case "c":
			if _, err := b.CreateDirectory(ctx); errors.Is(err, ErrQuit) {
				return nil, err
			}
			stale = true
			continue

		case "r":
			b.addr.Invalidate()
			if err := b.Discover(ctx, true); err != nil {
				return nil, err
			}
			stale = true
			continue
		}

		if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(dirs) {
			sel := &Selection{Name: dirs[n-1], RemotePath: path.Join(b.Root, dirs[n-1])}
			b.printer.Println(">>> Syncing to: " + sel.RemotePath)
			return sel, nil
		}

		b.printer.Warning("Invalid selection")
	}
}

// CreateDirectory prompts for a name and creates it under Root. It reports
// whether a directory was created; the user may type "cancel" to give up.
func (b *Browser) CreateDirectory(ctx context.Context) (bool, error) {
	var name string
	for {
		b.printer.Newline()
		answer, err := b.prompter.Ask("Enter name for new directory (or 'cancel' to exit): ")
		if errors.Is(err, io.EOF) {
			return false, ErrQuit
		}
		if err != nil {
			return false, err
		}

		if strings.EqualFold(answer, "cancel") {
			b.printer.Println("Operation cancelled.")
			return false, nil
		}

		if err := ValidateDirName(answer, b.MaxDirName); err != nil {
			var ve *ValidationError
			if errors.As(err, &ve) {
				b.printer.Failure("--> Error: " + ve.Message)
				if ve.Hint != "" {
					b.printer.Println("--> " + ve.Hint)
				}
			}
			continue
		}
		name = answer
		break
	}

	if err := b.ensureAddress(ctx); err != nil {
		return false, nil
	}

	full := path.Join(b.Root, name)
	err := b.client.MakeDir(ctx, b.addr.Get(), full)
	switch {
	case err == nil:
		b.printer.Success("Successfully created directory: " + name)
		return true, nil
	case remote.IsTimeout(err):
		b.addr.Invalidate()
		b.printer.Failure("Connection timed out. Check your network connection.")
	case remote.IsConnectionError(err):
		b.addr.Invalidate()
		b.printer.Failure("Failed to create directory. The device could not be reached.")
	case remote.IsProtocolError(err):
		b.printer.Failure("Failed to create directory. The folder might already exist.")
	default:
		b.printer.Failure("Failed to create directory: " + err.Error())
	}
	b.logger.Debug("mkdir failed", zap.String("path", full), zap.Error(err))
	return false, nil
}
