package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type spinnerDoneMsg struct{}

// spinnerModel shows a spinner next to a label until told to stop.
type spinnerModel struct {
	spinner spinner.Model
	label   string
	done    bool
}

func newSpinnerModel(label string) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(SpinnerStyle))
	return spinnerModel{spinner: s, label: label}
}

// Init implements tea.Model
func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model
func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerDoneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model
func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s\n", m.spinner.View(), m.label)
}

// RunWithSpinner calls fn on the current goroutine. While it runs, a spinner
// with label is animated on w if w is a terminal; otherwise label is printed
// once as a plain line.
func RunWithSpinner(w io.Writer, label string, fn func() error) error {
	if !IsTerminal(w) {
		_, _ = fmt.Fprintln(w, MutedStyle.Render(label))
		return fn()
	}

	p := tea.NewProgram(newSpinnerModel(label),
		tea.WithOutput(w),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		_, _ = p.Run()
	}()

	err := fn()
	p.Send(spinnerDoneMsg{})
	<-finished
	return err
}

// ShowCursor restores the terminal cursor, which the spinner hides while running.
func ShowCursor(w io.Writer) {
	if IsTerminal(w) {
		_, _ = fmt.Fprint(w, "\x1b[?25h")
	}
}
