package session

import (
	"github.com/muurk/ultinotes/internal/discovery"
	"github.com/muurk/ultinotes/internal/ui"
)

// DeviceName is how the device is referred to in progress messages.
const DeviceName = "Commodore 64 Ultimate"

// ReportLocatorEvents returns a discovery.Locator OnEvent hook that prints
// progress lines to out.
func ReportLocatorEvents(out *ui.Printer) func(discovery.Event) {
	return func(ev discovery.Event) {
		switch ev.Stage {
		case discovery.StageStart:
			out.Println("Scanning network for C64 Ultimate...")
		case discovery.StageCacheCheck:
			out.Status("Checking ARP cache...")
		case discovery.StageCacheHit:
			out.Success("Found " + DeviceName + " at: " + ev.IP + " (cached)")
		case discovery.StageSweep:
			if ev.Forced {
				out.Status("Performing full network scan...")
			} else {
				out.Status("Not in ARP cache, scanning subnet...")
			}
		case discovery.StageFound:
			out.Success("Found " + DeviceName + " at: " + ev.IP)
		}
	}
}

// SweepWithSpinner returns a discovery.Locator WrapSweep hook that animates
// a spinner on out while the sweep runs.
func SweepWithSpinner(out *ui.Printer) func(subnet string, sweep func() error) error {
	return func(subnet string, sweep func() error) error {
		return ui.RunWithSpinner(out.Writer(), "Sweeping "+subnet+"...", sweep)
	}
}
