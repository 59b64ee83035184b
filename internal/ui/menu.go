package ui

import (
	"fmt"
	"strings"
)

// MenuSeparatorWidth is the length of the rule drawn around menus
const MenuSeparatorWidth = 40

// MenuAction is a lettered command shown after the numbered items.
type MenuAction struct {
	Key   string
	Label string
}

// RenderMenu renders numbered items followed by the actions, framed by
// separator rules.
func RenderMenu(items []string, actions []MenuAction) string {
	rule := MenuSeparatorStyle.Render(strings.Repeat("-", MenuSeparatorWidth))

	var sb strings.Builder
	sb.WriteString(rule + "\n")
	for i, item := range items {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, item)
	}
	for _, a := range actions {
		sb.WriteString(MenuActionStyle.Render(a.Key+". "+a.Label) + "\n")
	}
	sb.WriteString(rule + "\n")
	return sb.String()
}

// RenderChoices renders "1) Label" rows for a short numbered choice.
func RenderChoices(labels []string) string {
	var sb strings.Builder
	for i, l := range labels {
		fmt.Fprintf(&sb, "%d) %s\n", i+1, l)
	}
	return sb.String()
}
