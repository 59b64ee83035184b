package session

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/ultinotes/internal/remote"
	"github.com/muurk/ultinotes/internal/textfmt"
	"github.com/muurk/ultinotes/internal/ui"
)

// Options holds the formatting and file settings for a Loop.
type Options struct {
	Width    int
	Sentinel string
	WorkDir  string
}

// Loop is the interactive session: pick a directory, write a document,
// upload it, repeat.
type Loop struct {
	browser  *Browser
	client   remote.Client
	addr     *Address
	prompter *ui.Prompter
	printer  *ui.Printer
	opts     Options
	logger   *zap.Logger
}

// NewLoop creates a Loop. The browser must share client and addr.
func NewLoop(browser *Browser, client remote.Client, addr *Address, pr *ui.Prompter, out *ui.Printer, opts Options, logger *zap.Logger) *Loop {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Width <= 0 {
		opts.Width = textfmt.DefaultWidth
	}
	return &Loop{
		browser:  browser,
		client:   client,
		addr:     addr,
		prompter: pr,
		printer:  out,
		opts:     opts,
		logger:   logger,
	}
}

// Run blocks until the user quits or input ends, which both return nil.
func (l *Loop) Run(ctx context.Context) error {
	if !l.addr.Known() {
		// Failure is reported and retried from the menu.
		_ = l.browser.Discover(ctx, false)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		sel, err := l.browser.Select(ctx)
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			l.logger.Debug("directory selection failed", zap.Error(err))
			answer, perr := l.prompter.Ask("Press Enter to retry, q to quit: ")
			if perr != nil || strings.EqualFold(answer, "q") {
				return nil
			}
			continue
		}

		if err := l.cycle(ctx, sel); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}

		l.printer.Newline()
		l.printer.Println("Returning to folder selection...")
	}
}

// cycle creates one document for sel and uploads it.
func (l *Loop) cycle(ctx context.Context, sel *Selection) error {
	kind, err := ChooseKind(l.prompter, l.printer)
	if err != nil {
		return err
	}

	body, err := Compose(kind, l.prompter, l.printer, l.opts.Sentinel, l.opts.Width)
	if errors.Is(err, textfmt.ErrNoContent) {
		l.printer.Newline()
		l.printer.Println("No content entered. Skipping upload.")
		return nil
	}
	if err != nil {
		return err
	}

	name := FileName(sel.Name, kind)
	doc := textfmt.Document(sel.Name, kind.Suffix, body, l.opts.Width)
	local, err := WriteDocument(l.opts.WorkDir, name, doc)
	if err != nil {
		l.printer.Newline()
		l.printer.Failure("FAILED: " + err.Error())
		return nil
	}
	l.logger.Debug("document written", zap.String("path", local), zap.Int("bytes", len(doc)))

	if err := l.browser.ensureAddress(ctx); err != nil {
		l.printer.Newline()
		l.printer.Failure("FAILED: Connection lost.")
		return nil
	}

	if err := l.client.Put(ctx, l.addr.Get(), local, sel.RemotePath); err != nil {
		l.addr.Invalidate()
		l.printer.Newline()
		if remote.IsStale(err) {
			l.printer.Failure("FAILED: Connection lost.")
		} else {
			l.printer.Failure("FAILED: " + err.Error())
		}
		return nil
	}

	l.printer.Newline()
	l.printer.Success("SUCCESS: Pushed " + name)
	return nil
}
