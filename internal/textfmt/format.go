package textfmt

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultWidth is the column count of the device's text viewer.
const DefaultWidth = 37

// ErrNoContent is returned when there is nothing to format.
var ErrNoContent = errors.New("no content entered")

// Entry is one key/description pair of a controls reference.
type Entry struct {
	Key         string
	Description string
}

// FormatAligned renders entries as "KEY : description" with every colon in
// the same column. Continuation lines start under the description.
func FormatAligned(entries []Entry, width int) (string, error) {
	if len(entries) == 0 {
		return "", ErrNoContent
	}

	maxKey := 0
	for _, e := range entries {
		if n := runeLen(e.Key); n > maxKey {
			maxKey = n
		}
	}
	indent := strings.Repeat(" ", maxKey+3)

	var out []string
	for _, e := range entries {
		pad := strings.Repeat(" ", maxKey-runeLen(e.Key))
		first := e.Key + pad + " : " + e.Description
		out = append(out, Wrap(first, width, indent)...)
	}
	return strings.Join(out, "\n"), nil
}

// FormatFreeform wraps each line as its own paragraph. Tabs become four
// spaces first, and blank lines pass through as empty lines.
func FormatFreeform(lines []string, width int) (string, error) {
	if len(lines) == 0 {
		return "", ErrNoContent
	}

	var out []string
	for _, line := range lines {
		line = strings.ReplaceAll(line, "\t", "    ")
		if strings.TrimSpace(line) == "" {
			out = append(out, "")
			continue
		}
		out = append(out, Wrap(line, width, "")...)
	}
	return strings.Join(out, "\n"), nil
}

// HumanizeKind turns a file suffix into a label: "full_manual" -> "Full Manual".
func HumanizeKind(kind string) string {
	return cases.Title(language.Und).String(strings.ReplaceAll(kind, "_", " "))
}

// Header is the banner at the top of every uploaded file.
func Header(directory, kind string, width int) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("=", width) + "\n")
	sb.WriteString(directory + "\n")
	sb.WriteString(HumanizeKind(kind) + "\n")
	sb.WriteString(strings.Repeat("-", width) + "\n")
	return sb.String()
}

// Document is the complete file: header, body and a trailing newline.
func Document(directory, kind, body string, width int) string {
	return Header(directory, kind, width) + body + "\n"
}
