package discovery

import (
	"net"
	"testing"
	"time"

	"github.com/grandcat/zeroconf"
)

func newEntry(instance, host string, port int, v4, v6 []net.IP, text []string) *zeroconf.ServiceEntry {
	entry := zeroconf.NewServiceEntry(instance, ServiceType, ServiceDomain)
	entry.HostName = host
	entry.Port = port
	entry.AddrIPv4 = v4
	entry.AddrIPv6 = v6
	entry.Text = text
	return entry
}

func TestParseServiceEntry(t *testing.T) {
	tests := []struct {
		name         string
		entry        *zeroconf.ServiceEntry
		wantNil      bool
		wantInstance string
		wantIP       string
		wantPort     int
	}{
		{
			name:         "ultimate with IPv4",
			entry:        newEntry("Ultimate-64", "c64u.local.", 21, []net.IP{net.ParseIP("192.168.1.42")}, nil, []string{"path=/"}),
			wantInstance: "Ultimate-64",
			wantIP:       "192.168.1.42",
			wantPort:     21,
		},
		{
			name:         "custom port",
			entry:        newEntry("nas", "nas.local.", 2121, []net.IP{net.ParseIP("10.0.0.5")}, nil, nil),
			wantInstance: "nas",
			wantIP:       "10.0.0.5",
			wantPort:     2121,
		},
		{
			name:         "no port defaults to 21",
			entry:        newEntry("printer", "printer.local.", 0, []net.IP{net.ParseIP("172.16.0.1")}, nil, nil),
			wantInstance: "printer",
			wantIP:       "172.16.0.1",
			wantPort:     21,
		},
		{
			name:         "instance falls back to hostname",
			entry:        newEntry("", "c64u.local.", 21, []net.IP{net.ParseIP("192.168.1.42")}, nil, nil),
			wantInstance: "c64u.local",
			wantIP:       "192.168.1.42",
			wantPort:     21,
		},
		{
			name:    "no address",
			entry:   newEntry("ghost", "ghost.local.", 21, nil, nil, nil),
			wantNil: true,
		},
		{
			name:         "IPv6 only",
			entry:        newEntry("v6", "v6.local.", 21, nil, []net.IP{net.ParseIP("fe80::1")}, nil),
			wantInstance: "v6",
			wantIP:       "fe80::1",
			wantPort:     21,
		},
		{
			name: "prefers IPv4",
			entry: newEntry("dual", "dual.local.", 21,
				[]net.IP{net.ParseIP("192.168.1.50")}, []net.IP{net.ParseIP("fe80::2")}, nil),
			wantInstance: "dual",
			wantIP:       "192.168.1.50",
			wantPort:     21,
		},
		{
			name:    "nil entry",
			entry:   nil,
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := parseServiceEntry(tt.entry)

			if tt.wantNil {
				if svc != nil {
					t.Errorf("parseServiceEntry() = %v, want nil", svc)
				}
				return
			}

			if svc == nil {
				t.Fatal("parseServiceEntry() = nil, want non-nil service")
			}
			if svc.Instance != tt.wantInstance {
				t.Errorf("svc.Instance = %v, want %v", svc.Instance, tt.wantInstance)
			}
			if svc.IP != tt.wantIP {
				t.Errorf("svc.IP = %v, want %v", svc.IP, tt.wantIP)
			}
			if svc.Port != tt.wantPort {
				t.Errorf("svc.Port = %v, want %v", svc.Port, tt.wantPort)
			}
			if time.Since(svc.DiscoveredAt) > time.Second {
				t.Errorf("svc.DiscoveredAt is not recent: %v", svc.DiscoveredAt)
			}
		})
	}
}

func TestParseServiceEntry_Text(t *testing.T) {
	entry := newEntry("Ultimate-64", "c64u.local.", 21,
		[]net.IP{net.ParseIP("192.168.1.42")}, nil,
		[]string{"path=/USB1", "vendor=Gideon", "anon", "fw=3.11=beta"})

	svc := parseServiceEntry(entry)
	if svc == nil {
		t.Fatal("parseServiceEntry() = nil, want service")
	}

	expected := map[string]string{
		"path":   "/USB1",
		"vendor": "Gideon",
		"anon":   "",
		"fw":     "3.11=beta",
	}

	if len(svc.Text) != len(expected) {
		t.Errorf("svc.Text has %d entries, want %d", len(svc.Text), len(expected))
	}
	for key, want := range expected {
		if got, ok := svc.Text[key]; !ok {
			t.Errorf("svc.Text missing key %q", key)
		} else if got != want {
			t.Errorf("svc.Text[%q] = %q, want %q", key, got, want)
		}
	}
}

func TestNewServiceBrowser(t *testing.T) {
	b := NewServiceBrowser(nil)
	if b.Timeout != DefaultBrowseTimeout {
		t.Errorf("Timeout = %v, want %v", b.Timeout, DefaultBrowseTimeout)
	}
	if b.logger == nil {
		t.Error("logger is nil, want no-op logger")
	}
}
