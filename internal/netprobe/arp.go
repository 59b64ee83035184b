package netprobe

import (
	"bufio"
	"fmt"
	"net"
	"regexp"
	"strings"
)

// ARPEntry is one hardware-to-IP mapping from the OS neighbour table.
type ARPEntry struct {
	IP        string
	MAC       string
	Interface string
}

// arpLinePattern matches BSD and net-tools "arp -an" output:
//
//	? (192.168.1.42) at 2:15:41:7e:44:32 on en1 ifscope [ethernet]
//	? (192.168.1.42) at 02:15:41:7e:44:32 [ether] on eth0
var arpLinePattern = regexp.MustCompile(`\(([0-9.]+)\) at ([0-9A-Fa-f:-]+)`)

// arpInterfacePattern extracts the interface name following "on".
var arpInterfacePattern = regexp.MustCompile(`\son\s+(\S+)`)

// ParseARPOutput parses "arp -an" output. Incomplete entries are skipped.
func ParseARPOutput(output string) []ARPEntry {
	var entries []ARPEntry

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		m := arpLinePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if net.ParseIP(m[1]) == nil {
			continue
		}
		if _, err := NormalizeMAC(m[2]); err != nil {
			continue
		}

		entry := ARPEntry{IP: m[1], MAC: m[2]}
		if im := arpInterfacePattern.FindStringSubmatch(line); im != nil {
			entry.Interface = im[1]
		}
		entries = append(entries, entry)
	}

	return entries
}

// ParseProcNetARP parses the Linux /proc/net/arp table:
//
//	IP address       HW type     Flags       HW address            Mask     Device
//	192.168.1.42     0x1         0x2         02:15:41:7e:44:32     *        eth0
//
// Rows with flags 0x0 (incomplete) are skipped.
func ParseProcNetARP(content string) []ARPEntry {
	var entries []ARPEntry

	scanner := bufio.NewScanner(strings.NewReader(content))
	first := true
	for scanner.Scan() {
		if first {
			first = false
			continue
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 6 {
			continue
		}
		if fields[2] == "0x0" {
			continue
		}
		if _, err := NormalizeMAC(fields[3]); err != nil {
			continue
		}
		entries = append(entries, ARPEntry{IP: fields[0], MAC: fields[3], Interface: fields[5]})
	}

	return entries
}

// FindMAC returns the IP of the first entry whose hardware address matches mac.
func FindMAC(entries []ARPEntry, mac string) (string, bool) {
	for _, e := range entries {
		if SameMAC(e.MAC, mac) {
			return e.IP, true
		}
	}
	return "", false
}

// SubnetPrefix returns the first three dotted octets of an IPv4 address.
func SubnetPrefix(ip string) (string, error) {
	parsed := net.ParseIP(strings.TrimSpace(ip)).To4()
	if parsed == nil {
		return "", fmt.Errorf("not an IPv4 address: %q", ip)
	}
	return fmt.Sprintf("%d.%d.%d", parsed[0], parsed[1], parsed[2]), nil
}

// SubnetCIDR returns the /24 block containing ip, e.g. "192.168.1.0/24".
func SubnetCIDR(ip string) (string, error) {
	prefix, err := SubnetPrefix(ip)
	if err != nil {
		return "", err
	}
	return prefix + ".0/24", nil
}
