package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/ultinotes/internal/config"
	"github.com/muurk/ultinotes/internal/discovery"
	"github.com/muurk/ultinotes/internal/logging"
	"github.com/muurk/ultinotes/internal/netprobe"
	"github.com/muurk/ultinotes/internal/remote"
	"github.com/muurk/ultinotes/internal/session"
	"github.com/muurk/ultinotes/internal/ui"
)

// overrides are the persistent flags layered on top of the settings file.
type overrides struct {
	ConfigPath string
	DeviceIP   string
	Interface  string
	MAC        string
	Backend    string
	LogLevel   string
}

var flags overrides

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.ConfigPath, "config", "", "Settings file (default: OS config dir)")
	pf.StringVar(&flags.DeviceIP, "device", "", "Device IP address (skips discovery)")
	pf.StringVar(&flags.Interface, "interface", "", "Network interface to scan (e.g. en1, eth0)")
	pf.StringVar(&flags.MAC, "mac", "", "Device MAC address")
	pf.StringVar(&flags.Backend, "backend", "", "Transfer backend (ftp, lftp)")
	pf.StringVar(&flags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// apply overlays the non-empty flag values onto s.
func (o overrides) apply(s *config.Settings) {
	if o.Interface != "" {
		s.Device.Interface = o.Interface
	}
	if o.MAC != "" {
		s.Device.MAC = o.MAC
	}
	if o.Backend != "" {
		s.Remote.Backend = strings.ToLower(o.Backend)
	}
}

// loadSettings reads the settings file, applies flags and validates the result.
func loadSettings() (*config.Settings, error) {
	settings, err := config.Load(flags.ConfigPath)
	if err != nil {
		return nil, err
	}
	flags.apply(settings)

	if errs := settings.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return settings, nil
}

// probeConfig maps the tool settings onto the OS probe.
func probeConfig(s *config.Settings) netprobe.Config {
	cfg := netprobe.DefaultConfig()
	cfg.ARPPath = s.Tools.ARP
	cfg.FPingPath = s.Tools.FPing
	cfg.SweepTimeout = s.Tools.SweepTimeout
	return cfg
}

// app holds the components shared by the interactive session and the
// one-shot commands.
type app struct {
	settings *config.Settings
	logger   *zap.Logger
	out      *ui.Printer
	probe    *netprobe.ExecProbe
	locator  *discovery.Locator
	client   remote.Client
	addr     *session.Address
}

// newApp wires the locator and transfer client. Progress goes to out.
func newApp(out *ui.Printer) (*app, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}
	logger := logging.GetLogger()

	probe := netprobe.NewExecProbe(probeConfig(settings), logger)
	locator := discovery.NewLocator(probe, settings.Device.MAC, settings.Device.Interface, logger)
	locator.OnEvent = session.ReportLocatorEvents(out)
	locator.WrapSweep = session.SweepWithSpinner(out)

	client, err := remote.NewClient(settings, logger)
	if err != nil {
		return nil, err
	}

	addr := &session.Address{}
	if flags.DeviceIP != "" {
		addr.Set(flags.DeviceIP)
	}

	return &app{
		settings: settings,
		logger:   logger,
		out:      out,
		probe:    probe,
		locator:  locator,
		client:   client,
		addr:     addr,
	}, nil
}

// resolve returns the device address, locating it if needed.
func (a *app) resolve(ctx context.Context, forceScan bool) (string, error) {
	if a.addr.Known() && !forceScan {
		return a.addr.Get(), nil
	}
	ip, err := a.locator.Locate(ctx, forceScan)
	if err != nil {
		return "", err
	}
	a.addr.Set(ip)
	return ip, nil
}

// banner is the header printed when the interactive session starts.
func (a *app) banner() *ui.Header {
	s := a.settings
	return ui.NewHeader("C64 Ultimate Notes", "Create and upload game notes",
		ui.Param{Key: "Device", Value: a.locator.MAC()},
		ui.Param{Key: "Interface", Value: a.locator.Interface()},
		ui.Param{Key: "Root", Value: s.Remote.Root},
		ui.Param{Key: "Backend", Value: s.Remote.Backend},
	)
}

func runSession(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	out := ui.NewPrinter(os.Stdout)
	a, err := newApp(out)
	if err != nil {
		return err
	}
	s := a.settings

	out.PrintHeader(a.banner())

	pr := ui.NewPrompter(os.Stdin, os.Stdout)
	browser := session.NewBrowser(a.locator, a.client, a.addr, pr, out,
		s.Remote.Root, s.Format.MaxDirName, a.logger)
	loop := session.NewLoop(browser, a.client, a.addr, pr, out, session.Options{
		Width:    s.Format.MaxWidth,
		Sentinel: s.Format.Sentinel,
		WorkDir:  s.WorkDir,
	}, a.logger)

	a.logger.Info("session started",
		zap.String("mac", s.Device.MAC),
		zap.String("interface", s.Device.Interface),
		zap.String("backend", s.Remote.Backend),
	)
	return loop.Run(cmd.Context())
}
