// Package ui provides terminal output components for the ultinotes CLI.
//
// Styling uses Lipgloss, which drops colors automatically when stdout is not a
// terminal, so the same code produces clean text in pipes and tests.
//
// # Components
//
//   - Header: banner showing the configured device and remote root
//   - Menu: numbered list framed by orange rules, with blue lettered actions
//   - Prompter: line-oriented input over any io.Reader
//   - Result: success/failure boxes for one-shot subcommands
//   - RunWithSpinner: a Bubble Tea spinner shown during long blocking calls
//
// All output goes through a Printer bound to an io.Writer.
//
// # Logging Integration
//
// This package expects logging to be controlled via the ULTINOTES_LOG_LEVEL
// environment variable. When unset or empty, zap logging is silent, allowing
// the curated UI output to be displayed cleanly.
package ui
