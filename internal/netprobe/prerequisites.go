package netprobe

import (
	"context"
	"fmt"
	"strings"

	"github.com/muurk/ultinotes/internal/shell"
)

// PrerequisiteCheck represents the result of checking a single prerequisite.
type PrerequisiteCheck struct {
	// Name is the human-readable name of the prerequisite
	Name string
	// Available indicates whether the prerequisite is available
	Available bool
	// Required is false for tools only some backends need
	Required bool
	// Path is the resolved path (for binary checks)
	Path string
	// Message provides additional context (error message or success info)
	Message string
	// Error contains the underlying error if check failed
	Error error
}

// PrerequisiteResult contains the results of all prerequisite checks.
type PrerequisiteResult struct {
	Checks []PrerequisiteCheck
	// AllAvailable is true if every required prerequisite is available
	AllAvailable bool
}

// Tool names an external program and where to get it.
type Tool struct {
	Name     string
	Path     string
	Required bool
	Hint     string
}

// lookPath is replaced in tests.
var lookPath = shell.LookPath

// CheckPrerequisites verifies each tool is on PATH and that iface has an IPv4 address.
func CheckPrerequisites(ctx context.Context, probe Probe, iface string, tools []Tool) *PrerequisiteResult {
	result := &PrerequisiteResult{AllAvailable: true}

	for _, tool := range tools {
		check := checkTool(tool)
		result.Checks = append(result.Checks, check)
		if tool.Required && !check.Available {
			result.AllAvailable = false
		}
	}

	ifaceCheck := PrerequisiteCheck{Name: "interface " + iface, Required: true}
	ip, err := probe.LocalIP(ctx, iface)
	if err != nil {
		ifaceCheck.Error = err
		ifaceCheck.Message = err.Error()
		result.AllAvailable = false
	} else {
		ifaceCheck.Available = true
		ifaceCheck.Message = "Local address " + ip
	}
	result.Checks = append(result.Checks, ifaceCheck)

	return result
}

func checkTool(tool Tool) PrerequisiteCheck {
	check := PrerequisiteCheck{Name: tool.Name, Required: tool.Required}

	path, err := lookPath(tool.Path)
	if err != nil {
		check.Error = err
		check.Message = fmt.Sprintf("%s not found in PATH", tool.Path)
		if tool.Hint != "" {
			check.Message += "\n" + tool.Hint
		}
		return check
	}

	check.Available = true
	check.Path = path
	check.Message = fmt.Sprintf("Found at %s", path)
	return check
}

// FormatPrerequisiteReport formats a PrerequisiteResult into a human-readable string.
func FormatPrerequisiteReport(result *PrerequisiteResult) string {
	var sb strings.Builder

	sb.WriteString("Prerequisites Check:\n")
	sb.WriteString(strings.Repeat("━", 42) + "\n\n")

	for _, check := range result.Checks {
		marker := "✓"
		if !check.Available {
			marker = "✗"
			if !check.Required {
				marker = "-"
			}
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", marker, check.Name))
		if check.Message != "" {
			for _, line := range strings.Split(check.Message, "\n") {
				sb.WriteString("  " + line + "\n")
			}
		}
		sb.WriteString("\n")
	}

	if result.AllAvailable {
		sb.WriteString("All required prerequisites are available.\n")
	} else {
		sb.WriteString("Some prerequisites are missing. Please install them before proceeding.\n")
	}

	return sb.String()
}
