package discovery

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"
)

const (
	// ServiceType is the mDNS service type browsed for FTP servers
	ServiceType = "_ftp._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."

	// DefaultBrowseTimeout is the default time spent collecting advertisements
	DefaultBrowseTimeout = 5 * time.Second

	// DefaultFTPPort is used when an advertisement carries no port
	DefaultFTPPort = 21
)

// ServiceBrowser lists FTP servers that announce themselves over mDNS.
// Devices that do not advertise are still found by Locator.
type ServiceBrowser struct {
	// Timeout is the maximum time to wait for advertisements
	Timeout time.Duration

	logger *zap.Logger
}

// NewServiceBrowser creates a browser with default settings
func NewServiceBrowser(logger *zap.Logger) *ServiceBrowser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ServiceBrowser{
		Timeout: DefaultBrowseTimeout,
		logger:  logger,
	}
}

// Browse collects every FTP service advertised before the timeout elapses.
func (b *ServiceBrowser) Browse(ctx context.Context) ([]*Service, error) {
	ctx, cancel := context.WithTimeout(ctx, b.Timeout)
	defer cancel()

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	entries := make(chan *zeroconf.ServiceEntry)
	var (
		mu       sync.Mutex
		services []*Service
		seen     = make(map[string]bool)
	)

	go func() {
		for entry := range entries {
			svc := parseServiceEntry(entry)
			if svc == nil {
				continue
			}
			mu.Lock()
			if !seen[svc.Instance] {
				seen[svc.Instance] = true
				services = append(services, svc)
				b.logger.Debug("mDNS service found",
					zap.String("instance", svc.Instance),
					zap.String("ip", svc.IP),
					zap.Int("port", svc.Port),
				)
			}
			mu.Unlock()
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	<-ctx.Done()

	mu.Lock()
	defer mu.Unlock()
	out := make([]*Service, len(services))
	copy(out, services)
	return out, nil
}

// parseServiceEntry converts a zeroconf service entry to a Service.
// Returns nil when the entry carries no usable address.
func parseServiceEntry(entry *zeroconf.ServiceEntry) *Service {
	if entry == nil {
		return nil
	}

	var ip string
	if len(entry.AddrIPv4) > 0 {
		ip = entry.AddrIPv4[0].String()
	} else if len(entry.AddrIPv6) > 0 {
		ip = entry.AddrIPv6[0].String()
	}
	if ip == "" {
		return nil
	}

	port := entry.Port
	if port == 0 {
		port = DefaultFTPPort
	}

	instance := entry.Instance
	if instance == "" {
		instance = strings.TrimSuffix(entry.HostName, ".")
	}

	// TXT records are "key=value"; bare keys map to ""
	text := make(map[string]string)
	for _, txt := range entry.Text {
		parts := strings.SplitN(txt, "=", 2)
		if len(parts) == 2 {
			text[parts[0]] = parts[1]
		} else {
			text[parts[0]] = ""
		}
	}

	return &Service{
		Instance:     instance,
		Host:         entry.HostName,
		IP:           ip,
		Port:         port,
		Text:         text,
		DiscoveredAt: time.Now(),
	}
}
