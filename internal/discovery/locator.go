package discovery

import (
	"context"

	"go.uber.org/zap"

	"github.com/muurk/ultinotes/internal/logging"
	"github.com/muurk/ultinotes/internal/netprobe"
)

// Stage identifies a step of Locate, for progress reporting.
type Stage int

const (
	// StageStart is emitted once per Locate call.
	StageStart Stage = iota
	// StageCacheCheck is emitted before the ARP cache is consulted.
	StageCacheCheck
	// StageCacheHit is emitted when the cache already knows the device.
	StageCacheHit
	// StageSweep is emitted before the subnet sweep.
	StageSweep
	// StageFound is emitted when the sweep made the device visible.
	StageFound
)

// Event describes Locate progress.
type Event struct {
	Stage  Stage
	IP     string
	Subnet string
	// Forced is true when the cache lookup was skipped.
	Forced bool
}

// Locator resolves a device's IPv4 address from its hardware address.
type Locator struct {
	probe netprobe.Probe
	mac   string
	iface string

	logger *zap.Logger

	// OnEvent, if set, receives progress events.
	OnEvent func(Event)

	// WrapSweep, if set, runs the sweep. The UI uses it to show a spinner.
	WrapSweep func(subnet string, sweep func() error) error
}

// NewLocator creates a locator for mac on iface.
func NewLocator(probe netprobe.Probe, mac, iface string, logger *zap.Logger) *Locator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Locator{
		probe:  probe,
		mac:    mac,
		iface:  iface,
		logger: logger,
	}
}

// MAC returns the hardware address being searched for.
func (l *Locator) MAC() string { return l.mac }

// Interface returns the network interface being searched.
func (l *Locator) Interface() string { return l.iface }

// Locate returns the device's IP address.
//
// Unless forceScan is set the ARP cache is consulted first. On a miss the /24
// around this machine's address is swept exactly once and the cache re-read.
// ARP and sweep command failures are logged and treated as a miss.
func (l *Locator) Locate(ctx context.Context, forceScan bool) (string, error) {
	localIP, err := l.probe.LocalIP(ctx, l.iface)
	if err != nil {
		return "", err
	}

	subnet, err := netprobe.SubnetCIDR(localIP)
	if err != nil {
		return "", &netprobe.InterfaceError{Interface: l.iface, Err: err}
	}

	l.emit(Event{Stage: StageStart, Subnet: subnet, Forced: forceScan})

	if !forceScan {
		l.emit(Event{Stage: StageCacheCheck, Subnet: subnet})
		if ip, ok := l.lookup(ctx); ok {
			logging.LogDiscovery(l.logger, "cache_hit", ip, l.mac)
			l.emit(Event{Stage: StageCacheHit, IP: ip, Subnet: subnet})
			return ip, nil
		}
	}

	l.emit(Event{Stage: StageSweep, Subnet: subnet, Forced: forceScan})
	sweep := func() error { return l.probe.SweepSubnet(ctx, l.iface, subnet) }
	if l.WrapSweep != nil {
		err = l.WrapSweep(subnet, sweep)
	} else {
		err = sweep()
	}
	if err != nil {
		l.logger.Warn("subnet sweep failed", zap.String("subnet", subnet), zap.Error(err))
	}

	if ip, ok := l.lookup(ctx); ok {
		logging.LogDiscovery(l.logger, "sweep_hit", ip, l.mac)
		l.emit(Event{Stage: StageFound, IP: ip, Subnet: subnet})
		return ip, nil
	}

	logging.LogDiscovery(l.logger, "not_found", "", l.mac)
	return "", &NotFoundError{MAC: l.mac, Subnet: subnet}
}

func (l *Locator) lookup(ctx context.Context) (string, bool) {
	entries, err := l.probe.ReadARPCache(ctx, l.iface)
	if err != nil {
		l.logger.Warn("ARP cache read failed", zap.String("interface", l.iface), zap.Error(err))
		return "", false
	}
	return netprobe.FindMAC(entries, l.mac)
}

func (l *Locator) emit(ev Event) {
	if l.OnEvent != nil {
		l.OnEvent(ev)
	}
}
