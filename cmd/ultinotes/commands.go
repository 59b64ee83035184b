package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/muurk/ultinotes/internal/config"
	"github.com/muurk/ultinotes/internal/discovery"
	"github.com/muurk/ultinotes/internal/netprobe"
	"github.com/muurk/ultinotes/internal/session"
	"github.com/muurk/ultinotes/internal/textfmt"
	"github.com/muurk/ultinotes/internal/ui"
)

// Command flags
var (
	rescan      bool
	fmtControls bool
	fmtWidth    int
	mdnsTimeout time.Duration
	forceInit   bool
	pushAs      string
)

func init() {
	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(mkdirCmd)
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(mdnsCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(configCmd)
}

// locateCmd prints the device IP
var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Find the device IP address by MAC",
	Long: `Find the device on the local network by its MAC address.

The ARP cache is checked first. If the device is not there, every address
on the interface's /24 is pinged once with fping and the cache is read again.`,
	Example: `  # Use the cache when possible
  ultinotes locate

  # Always sweep the subnet first
  ultinotes locate --rescan

  # Different interface and device
  ultinotes locate --interface eth0 --mac 02:15:41:7e:44:32`,
	Args: cobra.NoArgs,
	RunE: runLocate,
}

func init() {
	locateCmd.Flags().BoolVar(&rescan, "rescan", false, "Skip the ARP cache and sweep the subnet")
}

func runLocate(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	a, err := newApp(ui.NewPrinter(os.Stderr))
	if err != nil {
		return err
	}

	ip, err := a.resolve(cmd.Context(), rescan)
	if err != nil {
		a.out.PrintResult(locateFailure(err, a.settings))
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), ip)
	return nil
}

// locateFailure builds the failure box with hints for the error kind.
func locateFailure(err error, s *config.Settings) *ui.Result {
	switch {
	case netprobe.IsInterfaceError(err):
		return ui.NewFailureResult("Interface unavailable", err,
			"Check the interface name with 'ifconfig' or 'ip addr'",
			"Pass --interface or set device.interface in the config file")
	case discovery.IsNotFound(err):
		return ui.NewFailureResult("Device not found", err,
			"Ensure the C64 Ultimate is powered on and on the same network",
			"Verify device.mac ("+s.Device.MAC+") matches the device",
			"Run 'ultinotes doctor' to check arp and fping")
	default:
		return ui.NewFailureResult("Discovery failed", err)
	}
}

// lsCmd lists the title directories
var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List directories under the remote root",
	Args:  cobra.NoArgs,
	RunE:  runLs,
}

func runLs(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	a, err := newApp(ui.NewPrinter(os.Stderr))
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	ip, err := a.resolve(ctx, false)
	if err != nil {
		return err
	}
	dirs, err := a.client.List(ctx, ip, a.settings.Remote.Root)
	if err != nil {
		return err
	}

	ui.NewPrinter(cmd.OutOrStdout()).PrintLines(dirs...)
	return nil
}

// mkdirCmd creates a title directory
var mkdirCmd = &cobra.Command{
	Use:   "mkdir <name>",
	Short: "Create a directory under the remote root",
	Long: `Create a title directory under the remote root.

Names longer than format.max_dir_name characters are rejected because the
device truncates them in its file browser.`,
	Example: `  ultinotes mkdir "Zelda 2"`,
	Args:    cobra.ExactArgs(1),
	RunE:    runMkdir,
}

func runMkdir(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	a, err := newApp(ui.NewPrinter(os.Stderr))
	if err != nil {
		return err
	}

	full, err := mkdirTarget(a.settings.Remote.Root, args[0], a.settings.Format.MaxDirName)
	if err != nil {
		if session.IsValidationError(err) {
			a.out.PrintResult(invalidNameResult(err))
		}
		return err
	}

	ctx := cmd.Context()
	ip, err := a.resolve(ctx, false)
	if err != nil {
		return err
	}

	if err := a.client.MakeDir(ctx, ip, full); err != nil {
		return fmt.Errorf("failed to create %s: %w", full, err)
	}

	a.out.PrintResult(ui.NewSuccessResult("Directory created",
		ui.Param{Key: "Device", Value: ip},
		ui.Param{Key: "Path", Value: full},
	))
	return nil
}

// mkdirTarget validates name and returns its path under root.
func mkdirTarget(root, name string, maxLen int) (string, error) {
	name = strings.TrimSpace(name)
	if err := session.ValidateDirName(name, maxLen); err != nil {
		return "", err
	}
	return path.Join(root, name), nil
}

// invalidNameResult explains a rejected directory name.
func invalidNameResult(err error) *ui.Result {
	r := ui.NewFailureResult("Invalid directory name", err)
	var ve *session.ValidationError
	if errors.As(err, &ve) && ve.Hint != "" {
		r.Troubleshooting = append(r.Troubleshooting, ve.Hint)
	}
	return r
}

// pushCmd uploads an existing file
var pushCmd = &cobra.Command{
	Use:   "push <local-file> <directory>",
	Short: "Upload a file into a title directory",
	Long: `Upload a local file into a directory under the remote root.

The file keeps its base name on the device. Use 'ultinotes fmt' to reflow a
text file to the display width before pushing it.`,
	Example: `  ultinotes push "Zelda 2_tips.txt" "Zelda 2"`,
	Args:    cobra.ExactArgs(2),
	RunE:    runPush,
}

func init() {
	pushCmd.Flags().StringVar(&pushAs, "as", "", "Upload under this name instead of the local base name")
}

func runPush(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	a, err := newApp(ui.NewPrinter(os.Stderr))
	if err != nil {
		return err
	}

	local := args[0]
	if pushAs != "" {
		data, err := os.ReadFile(local)
		if err != nil {
			return err
		}
		if local, err = session.WriteDocument(a.settings.WorkDir, pushAs, string(data)); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	ip, err := a.resolve(ctx, false)
	if err != nil {
		return err
	}

	remoteDir := path.Join(a.settings.Remote.Root, args[1])
	if err := a.client.Put(ctx, ip, local, remoteDir); err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	a.out.PrintResult(ui.NewSuccessResult("Upload complete",
		ui.Param{Key: "Device", Value: ip},
		ui.Param{Key: "File", Value: path.Join(remoteDir, baseName(local))},
	))
	return nil
}

// baseName is the remote file name for local.
func baseName(local string) string {
	local = strings.ReplaceAll(local, "\\", "/")
	return path.Base(local)
}

// fmtCmd reflows stdin
var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Reflow text from stdin to the display width",
	Long: `Reflow text from stdin and write it to stdout.

By default every input line is wrapped as its own paragraph. With --controls
each line is "KEY<TAB>description" and the output aligns the colons.`,
	Example: `  ultinotes fmt < tips.txt
  printf 'FIRE\tJump\nJOY UP\tClimb\n' | ultinotes fmt --controls`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		out, err := formatStream(cmd.InOrStdin(), fmtControls, fmtWidth)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	fmtCmd.Flags().BoolVar(&fmtControls, "controls", false, "Input is KEY<TAB>description lines")
	fmtCmd.Flags().IntVar(&fmtWidth, "width", textfmt.DefaultWidth, "Output width in columns")
}

// formatStream reads r and formats it in aligned or freeform mode.
func formatStream(r io.Reader, controls bool, width int) (string, error) {
	if width < 1 {
		return "", fmt.Errorf("width must be positive, got %d", width)
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	if !controls {
		return textfmt.FormatFreeform(lines, width)
	}

	var entries []textfmt.Entry
	for _, line := range lines {
		key, desc, _ := strings.Cut(line, "\t")
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		entries = append(entries, textfmt.Entry{Key: key, Description: strings.TrimSpace(desc)})
	}
	return textfmt.FormatAligned(entries, width)
}

// mdnsCmd browses for FTP servers
var mdnsCmd = &cobra.Command{
	Use:   "mdns",
	Short: "Browse for FTP servers announced over mDNS",
	Long: `Browse the local network for _ftp._tcp services using mDNS/DNS-SD.

Not every device announces itself; 'ultinotes locate' finds the device by
MAC address regardless.`,
	Args: cobra.NoArgs,
	RunE: runMDNS,
}

func init() {
	mdnsCmd.Flags().DurationVar(&mdnsTimeout, "timeout", discovery.DefaultBrowseTimeout, "How long to listen for announcements")
}

func runMDNS(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	browser := discovery.NewServiceBrowser(nil)
	browser.Timeout = mdnsTimeout

	w := ui.NewPrinter(cmd.OutOrStdout())
	w.Printf("Browsing for %s services (timeout: %s)...\n\n", discovery.ServiceType, mdnsTimeout)

	var services []*discovery.Service
	err := ui.RunWithSpinner(os.Stderr, "Listening...", func() error {
		var err error
		services, err = browser.Browse(cmd.Context())
		return err
	})
	if err != nil {
		return err
	}

	if len(services) == 0 {
		w.Println("No FTP services found.")
		return nil
	}

	w.Printf("Found %d service(s):\n\n", len(services))
	for i, svc := range services {
		w.Printf("%d. %s\n", i+1, svc)
		if p := svc.TextValue("path"); p != "" {
			w.Printf("   Path: %s\n", p)
		}
	}
	return nil
}

// doctorCmd checks external tools
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that discovery and transfer prerequisites are available",
	Args:  cobra.NoArgs,
	RunE:  runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	probe := netprobe.NewExecProbe(probeConfig(settings), nil)
	result := netprobe.CheckPrerequisites(cmd.Context(), probe, settings.Device.Interface, requiredTools(settings))

	out := ui.NewPrinter(cmd.OutOrStdout())
	out.Print(netprobe.FormatPrerequisiteReport(result))
	out.PrintResult(doctorResult(result))
	if !result.AllAvailable {
		return errors.New("prerequisites missing")
	}
	return nil
}

// doctorResult summarises the checks. Missing optional tools are a warning.
func doctorResult(result *netprobe.PrerequisiteResult) *ui.Result {
	if !result.AllAvailable {
		var tips []string
		for _, c := range result.Checks {
			if c.Required && !c.Available {
				tips = append(tips, c.Name+": "+strings.ReplaceAll(c.Message, "\n", " - "))
			}
		}
		return ui.NewFailureResult("Prerequisites missing", errors.New("required tools or interface unavailable"), tips...)
	}

	var warn *ui.Result
	for _, c := range result.Checks {
		if c.Available {
			continue
		}
		if warn == nil {
			warn = ui.NewWarningResult("Optional tools missing")
		}
		warn.AddDetail(c.Name, "not found")
	}
	if warn != nil {
		return warn
	}
	return ui.NewSuccessResult("Ready to locate and upload")
}

// requiredTools lists the programs the configured backend needs.
func requiredTools(s *config.Settings) []netprobe.Tool {
	return []netprobe.Tool{
		{Name: "arp", Path: s.Tools.ARP, Required: true, Hint: "install net-tools"},
		{Name: "fping", Path: s.Tools.FPing, Required: true, Hint: "brew install fping / apt install fping"},
		{Name: "lftp", Path: s.Tools.LFTP, Required: s.Remote.Backend == config.BackendLFTP, Hint: "brew install lftp / apt install lftp"},
	}
}

// configCmd manages the settings file
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the settings file",
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the settings file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := configFilePath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(flags.ConfigPath)
			if err != nil {
				return err
			}
			flags.apply(settings)
			fmt.Fprint(cmd.OutOrStdout(), settings.String())
			return nil
		},
	})

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a settings file with default values",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing settings file")
	configCmd.AddCommand(initCmd)
}

func configFilePath() (string, error) {
	if flags.ConfigPath != "" {
		return flags.ConfigPath, nil
	}
	return config.GetConfigPath()
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	p, err := configFilePath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(p); err == nil && !forceInit {
		return fmt.Errorf("%s already exists (use --force to overwrite)", p)
	}

	settings := config.NewSettings()
	flags.apply(settings)
	if err := settings.Save(p); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", p)
	return nil
}
