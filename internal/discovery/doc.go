// Package discovery finds the target device on the local network.
//
// Locator resolves a known hardware address to an IPv4 address. It consults
// the operating system's ARP cache first and, on a miss, sweeps the local /24
// once so that every live host gets an ARP entry, then looks again:
//
//	loc := discovery.NewLocator(probe, "2:15:41:7e:44:32", "en1", logger)
//	ip, err := loc.Locate(ctx, false)
//	if discovery.IsNotFound(err) {
//	    // device is off or on another segment
//	}
//
// ServiceBrowser is a secondary mechanism that lists FTP servers announcing
// "_ftp._tcp" over mDNS. It helps when the hardware address is unknown.
//
// # Network Requirements
//
// - The sweep relies on fping and the arp utility being on PATH
// - mDNS browsing requires multicast on the interface (UDP port 5353)
package discovery
