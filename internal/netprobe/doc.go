// Package netprobe wraps the operating system's view of the local network.
//
// The device locator needs three capabilities, expressed by the Probe
// interface:
//
//   - LocalIP: this machine's IPv4 address on a named interface
//   - ReadARPCache: the hardware-to-IP neighbour table for that interface
//   - SweepSubnet: a best-effort probe of a /24 block that forces the OS to
//     resolve (and cache) every live hardware address
//
// ExecProbe implements Probe with net.InterfaceByName, "arp -an -i IFACE" and
// "fping -I IFACE -aqg CIDR". On Linux hosts without net-tools the ARP table is
// read from /proc/net/arp instead.
//
// Hardware addresses are compared with SameMAC, which ignores case and leading
// zeros so that "02:15:41:7E:44:32" (Linux) matches "2:15:41:7e:44:32" (BSD).
package netprobe
