package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter reads answers line by line.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter that writes prompts to w and reads from r.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(r), out: w}
}

// ReadLine prints prompt and returns the next line without its line ending.
// A final unterminated line is returned normally; after that, io.EOF.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		_, _ = fmt.Fprint(p.out, prompt)
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Ask is ReadLine with surrounding whitespace trimmed.
func (p *Prompter) Ask(prompt string) (string, error) {
	line, err := p.ReadLine(prompt)
	return strings.TrimSpace(line), err
}
