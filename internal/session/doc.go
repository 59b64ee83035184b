// Package session implements the interactive workflow.
//
// A Loop repeatedly lets the user choose a directory on the device (Browser),
// pick a document kind, type its contents, and upload the formatted result.
// The device address is cached in an Address shared by every step and is
// invalidated whenever a remote operation suggests the device has moved.
//
// All logic runs on the caller's goroutine; input comes from a ui.Prompter
// and output goes to a ui.Printer.
package session
