// Ultinotes writes game notes onto a Commodore 64 Ultimate.
//
// It finds the device on the local network by its MAC address, lets you pick
// or create a title directory over FTP, collects controls, tips or manual
// text interactively, reflows it to the device's 37-column display, and
// uploads the result.
//
// Usage:
//
//	ultinotes [command] [flags]
//
// Running without arguments starts the interactive session.
// See 'ultinotes --help' for available commands.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/muurk/ultinotes/internal/logging"
	"github.com/muurk/ultinotes/internal/session"
	"github.com/muurk/ultinotes/internal/ui"
	"github.com/muurk/ultinotes/internal/version"
)

func main() {
	go exitOnInterrupt()

	err := rootCmd.Execute()
	logging.Sync()
	if err == nil || errors.Is(err, session.ErrQuit) {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// exitOnInterrupt ends the process cleanly on Ctrl-C, which usually arrives
// while a prompt is blocked reading stdin.
func exitOnInterrupt() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	ui.ShowCursor(os.Stdout)
	fmt.Fprintln(os.Stdout, "\n\nExiting...")
	logging.Sync()
	os.Exit(0)
}

var rootCmd = &cobra.Command{
	Use:   "ultinotes",
	Short: "C64 Ultimate notes uploader",
	Long: `Create text notes for games on a Commodore 64 Ultimate.

The device is found on the local network by MAC address (ARP cache first,
then a subnet sweep). Notes are reflowed to 37 columns and uploaded over
FTP into a per-title directory under the configured root.

If no command is specified, the interactive session starts automatically.`,
	Version:       version.Version,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Silent unless --log-level or ULTINOTES_LOG_LEVEL is set
		return logging.Initialize(flags.LogLevel)
	},
	RunE: runSession,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ultinotes %s\n", version.Full())
	},
}
