package netprobe

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeMAC converts a hardware address into the canonical form used for
// comparisons: six lowercase hex octets separated by colons, without leading
// zeros ("02:0A:..." becomes "2:a:..."). This is the form BSD arp prints.
// Both ':' and '-' separators are accepted.
func NormalizeMAC(mac string) (string, error) {
	s := strings.TrimSpace(mac)
	if s == "" {
		return "", fmt.Errorf("empty MAC address")
	}

	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ':' || r == '-' })
	if len(parts) != 6 {
		return "", fmt.Errorf("invalid MAC address %q: want 6 octets, got %d", mac, len(parts))
	}

	octets := make([]string, len(parts))
	for i, p := range parts {
		if len(p) == 0 || len(p) > 2 {
			return "", fmt.Errorf("invalid MAC address %q: bad octet %q", mac, p)
		}
		v, err := strconv.ParseUint(p, 16, 8)
		if err != nil {
			return "", fmt.Errorf("invalid MAC address %q: bad octet %q", mac, p)
		}
		octets[i] = strconv.FormatUint(v, 16)
	}

	return strings.Join(octets, ":"), nil
}

// SameMAC reports whether two hardware addresses refer to the same device,
// ignoring case and leading zeros. Unparseable input never matches.
func SameMAC(a, b string) bool {
	na, err := NormalizeMAC(a)
	if err != nil {
		return false
	}
	nb, err := NormalizeMAC(b)
	if err != nil {
		return false
	}
	return na == nb
}
