package netprobe

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/ultinotes/internal/shell"
)

// Probe is the OS networking capability the device locator needs.
type Probe interface {
	// LocalIP returns this machine's IPv4 address on iface.
	LocalIP(ctx context.Context, iface string) (string, error)
	// ReadARPCache returns the neighbour table entries for iface.
	ReadARPCache(ctx context.Context, iface string) ([]ARPEntry, error)
	// SweepSubnet probes every address in cidr so the OS populates its ARP cache.
	// It is best effort: output is discarded.
	SweepSubnet(ctx context.Context, iface, cidr string) error
}

// Config holds the external tools used by ExecProbe.
type Config struct {
	// ARPPath is the arp binary. Default: "arp"
	ARPPath string
	// FPingPath is the fping binary used for the sweep. Default: "fping"
	FPingPath string
	// QueryTimeout bounds a single arp invocation.
	QueryTimeout time.Duration
	// SweepTimeout bounds the subnet sweep.
	SweepTimeout time.Duration
	// ProcARPPath is read when the arp binary is unavailable. Default: "/proc/net/arp"
	ProcARPPath string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ARPPath:      "arp",
		FPingPath:    "fping",
		QueryTimeout: 5 * time.Second,
		SweepTimeout: 10 * time.Second,
		ProcARPPath:  "/proc/net/arp",
	}
}

// ExecProbe implements Probe with arp and fping.
type ExecProbe struct {
	config Config
	logger *zap.Logger

	// runner executes arp; sweeper executes fping with output discarded.
	runner  shell.Runner
	sweeper shell.Runner

	// interfaceAddrs resolves interface addresses; replaced in tests.
	interfaceAddrs func(name string) ([]net.Addr, error)
	// readFile reads the /proc ARP table; replaced in tests.
	readFile func(name string) ([]byte, error)
}

// NewExecProbe creates a probe backed by OS utilities.
func NewExecProbe(config Config, logger *zap.Logger) *ExecProbe {
	if logger == nil {
		logger = zap.NewNop()
	}
	sweeper := shell.NewExecutor(logger)
	sweeper.Discard = true

	return &ExecProbe{
		config:         config,
		logger:         logger,
		runner:         shell.NewExecutor(logger),
		sweeper:        sweeper,
		interfaceAddrs: interfaceAddrs,
		readFile:       os.ReadFile,
	}
}

func interfaceAddrs(name string) ([]net.Addr, error) {
	ifi, err := net.InterfaceByName(name)
	if err != nil {
		return nil, err
	}
	return ifi.Addrs()
}

// LocalIP returns the first IPv4 address assigned to iface.
func (p *ExecProbe) LocalIP(ctx context.Context, iface string) (string, error) {
	addrs, err := p.interfaceAddrs(iface)
	if err != nil {
		return "", &InterfaceError{Interface: iface, Err: err}
	}

	for _, addr := range addrs {
		var ip net.IP
		switch v := addr.(type) {
		case *net.IPNet:
			ip = v.IP
		case *net.IPAddr:
			ip = v.IP
		}
		if ip4 := ip.To4(); ip4 != nil && !ip4.IsLoopback() {
			return ip4.String(), nil
		}
	}

	return "", &InterfaceError{Interface: iface, Err: fmt.Errorf("no IPv4 address assigned")}
}

// ReadARPCache runs "arp -an -i iface". When the arp binary cannot be started
// and a /proc ARP table exists, that table is read instead.
func (p *ExecProbe) ReadARPCache(ctx context.Context, iface string) ([]ARPEntry, error) {
	res, err := p.runner.Run(ctx, p.config.QueryTimeout, p.config.ARPPath, "-an", "-i", iface)
	if err == nil {
		entries := ParseARPOutput(res.Stdout)
		p.logger.Debug("read ARP cache",
			zap.String("interface", iface),
			zap.Int("entries", len(entries)),
		)
		return entries, nil
	}

	if res != nil && res.ExitCode == -1 && p.config.ProcARPPath != "" {
		data, readErr := p.readFile(p.config.ProcARPPath)
		if readErr == nil {
			entries := filterInterface(ParseProcNetARP(string(data)), iface)
			p.logger.Debug("read ARP cache from proc table",
				zap.String("path", p.config.ProcARPPath),
				zap.Int("entries", len(entries)),
			)
			return entries, nil
		}
	}

	return nil, fmt.Errorf("failed to read ARP cache: %w", err)
}

// SweepSubnet runs "fping -I iface -aqg cidr". fping exits non-zero when some
// hosts are unreachable, which is the normal case for a sweep, so only a
// failure to start or a timeout is reported.
func (p *ExecProbe) SweepSubnet(ctx context.Context, iface, cidr string) error {
	res, err := p.sweeper.Run(ctx, p.config.SweepTimeout, p.config.FPingPath, "-I", iface, "-aqg", cidr)
	if err == nil {
		return nil
	}
	if shell.IsTimeout(err) || (res != nil && res.ExitCode == -1) {
		return fmt.Errorf("subnet sweep of %s failed: %w", cidr, err)
	}

	p.logger.Debug("sweep finished with unreachable hosts",
		zap.String("cidr", cidr),
		zap.Int("exit_code", res.ExitCode),
	)
	return nil
}

func filterInterface(entries []ARPEntry, iface string) []ARPEntry {
	if iface == "" {
		return entries
	}
	out := make([]ARPEntry, 0, len(entries))
	for _, e := range entries {
		if e.Interface == "" || e.Interface == iface {
			out = append(out, e)
		}
	}
	return out
}
