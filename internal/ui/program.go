package ui

import (
	"fmt"
	"io"
	"os"
)

// Printer writes styled output. All user-facing text goes through a Printer
// so tests can capture it.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// Writer returns the underlying writer
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Printf writes formatted content
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

// PrintLines writes multiple lines
func (p *Printer) PrintLines(lines ...string) {
	for _, line := range lines {
		_, _ = fmt.Fprintln(p.out, line)
	}
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// Status prints a muted progress line
func (p *Printer) Status(msg string) {
	p.Println(MutedStyle.Render(msg))
}

// Success prints a green line
func (p *Printer) Success(msg string) {
	p.Println(SuccessTitleStyle.Render(msg))
}

// Failure prints a red line
func (p *Printer) Failure(msg string) {
	p.Println(ErrorMessageStyle.Render(msg))
}

// Warning prints an orange line
func (p *Printer) Warning(msg string) {
	p.Println(WarningMessageStyle.Render(msg))
}

// PrintHeader prints a banner box
func (p *Printer) PrintHeader(h *Header) {
	p.Print(h.SetWidth(p.width).Render())
	p.Newline()
}

// PrintResult prints a result box
func (p *Printer) PrintResult(r *Result) {
	p.Print(r.SetWidth(p.width).Render())
	p.Newline()
}
