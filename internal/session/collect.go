package session

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muurk/ultinotes/internal/textfmt"
	"github.com/muurk/ultinotes/internal/ui"
)

// CollectControls reads key/description pairs until the sentinel is given as
// a key (case-insensitive) or input ends. Blank keys are skipped.
func CollectControls(pr *ui.Prompter, out *ui.Printer, sentinel string) ([]textfmt.Entry, error) {
	out.Newline()
	out.Println(fmt.Sprintf("Enter Control Reference notes (type '%s' when finished)", sentinel))
	out.Println(strings.Repeat("=", 59))

	var entries []textfmt.Entry
	for {
		key, err := pr.Ask(fmt.Sprintf("Key(s) [or %s]: ", sentinel))
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(key, sentinel) {
			return entries, nil
		}
		if key == "" {
			continue
		}

		desc, err := pr.Ask("Description: ")
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		entries = append(entries, textfmt.Entry{Key: key, Description: desc})
		if err != nil {
			return entries, nil
		}
	}
}

// CollectFreeform reads raw lines until one equals the sentinel (ignoring
// surrounding whitespace) or input ends.
func CollectFreeform(pr *ui.Prompter, out *ui.Printer, sentinel string) ([]string, error) {
	out.Newline()
	out.Println(fmt.Sprintf("Enter your notes (type '%s' on its own line when finished)", sentinel))
	out.Println(strings.Repeat("=", 50))

	var lines []string
	for {
		line, err := pr.ReadLine("")
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(line) == sentinel {
			return lines, nil
		}
		lines = append(lines, line)
	}
}

// Compose collects input for kind and formats it to width.
// It returns textfmt.ErrNoContent when nothing was entered.
func Compose(kind Kind, pr *ui.Prompter, out *ui.Printer, sentinel string, width int) (string, error) {
	if kind.Aligned {
		entries, err := CollectControls(pr, out, sentinel)
		if err != nil {
			return "", err
		}
		return textfmt.FormatAligned(entries, width)
	}

	lines, err := CollectFreeform(pr, out, sentinel)
	if err != nil {
		return "", err
	}
	return textfmt.FormatFreeform(lines, width)
}
