package discovery

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Service is an FTP server advertised over mDNS.
type Service struct {
	// Instance is the advertised service instance name (e.g., "Ultimate-64 FTP")
	Instance string

	// Host is the mDNS hostname (e.g., "c64u.local.")
	Host string

	// IP is the IPv4 address, or IPv6 when the service has no IPv4 record
	IP string

	// Port is the FTP control port (typically 21)
	Port int

	// Text contains the TXT record data as key/value pairs
	Text map[string]string

	// DiscoveredAt is when the advertisement was received
	DiscoveredAt time.Time
}

// String returns a human-readable string representation of the service
func (s *Service) String() string {
	return fmt.Sprintf("%s (%s) at %s", s.Instance, s.Host, s.Address())
}

// Address returns host:port suitable for dialing
func (s *Service) Address() string {
	return net.JoinHostPort(s.IP, strconv.Itoa(s.Port))
}

// TextValue retrieves a TXT record value by key, or returns empty string if not found
func (s *Service) TextValue(key string) string {
	if s.Text == nil {
		return ""
	}
	return s.Text[key]
}
