package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Param is one labelled value shown in a Header.
type Param struct {
	Key   string
	Value string
}

// Header is the banner printed when a command starts.
type Header struct {
	Title    string  // e.g., "ULTINOTES"
	Subtitle string  // e.g., "C64 Ultimate notes uploader"
	Params   []Param // shown in order below a divider
	Width    int     // Terminal width for responsive rendering
}

// NewHeader creates a new header with the given values
func NewHeader(title, subtitle string, params ...Param) *Header {
	return &Header{
		Title:    title,
		Subtitle: subtitle,
		Params:   params,
		Width:    GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header as a string
func (h *Header) Render() string {
	width := h.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	titleLine := HeaderTitleStyle.Render(strings.ToUpper(h.Title))
	subtitleLine := HeaderCommandStyle.Render(h.Subtitle)
	topSection := lipgloss.JoinVertical(lipgloss.Left, titleLine, subtitleLine)

	dividerWidth := width - 6 // Account for border and padding
	if dividerWidth < 10 {
		dividerWidth = 10
	}
	divider := RenderHorizontalDivider(dividerWidth, "─")

	keyWidth := 0
	for _, p := range h.Params {
		if len(p.Key) > keyWidth {
			keyWidth = len(p.Key)
		}
	}

	var paramLines []string
	for _, p := range h.Params {
		keyStyled := HeaderParamKeyStyle.Render(p.Key + ":" + strings.Repeat(" ", keyWidth-len(p.Key)))
		valueStyled := HeaderParamValueStyle.Render(p.Value)
		paramLines = append(paramLines, keyStyled+" "+valueStyled)
	}

	content := topSection
	if len(paramLines) > 0 {
		content = lipgloss.JoinVertical(lipgloss.Left, topSection, divider, strings.Join(paramLines, "\n"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2). // Account for border characters
		Render(content)
}

// String implements fmt.Stringer
func (h *Header) String() string {
	return h.Render()
}
