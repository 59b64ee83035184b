package netprobe

import (
	"context"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/muurk/ultinotes/internal/shell"
)

type call struct {
	name string
	args []string
}

// fakeRunner records invocations and returns canned results.
type fakeRunner struct {
	calls  []call
	result *shell.Result
	err    error
}

func (f *fakeRunner) Run(ctx context.Context, timeout time.Duration, name string, args ...string) (*shell.Result, error) {
	f.calls = append(f.calls, call{name: name, args: args})
	res := f.result
	if res == nil {
		res = &shell.Result{}
	}
	return res, f.err
}

func newTestProbe(runner, sweeper *fakeRunner) *ExecProbe {
	p := NewExecProbe(DefaultConfig(), nil)
	p.runner = runner
	p.sweeper = sweeper
	return p
}

func TestExecProbe_LocalIP(t *testing.T) {
	tests := []struct {
		name    string
		addrs   []net.Addr
		err     error
		want    string
		wantErr bool
	}{
		{
			name: "ipv4 after ipv6",
			addrs: []net.Addr{
				&net.IPNet{IP: net.ParseIP("fe80::1"), Mask: net.CIDRMask(64, 128)},
				&net.IPNet{IP: net.ParseIP("192.168.1.100"), Mask: net.CIDRMask(24, 32)},
			},
			want: "192.168.1.100",
		},
		{
			name:    "no ipv4",
			addrs:   []net.Addr{&net.IPNet{IP: net.ParseIP("fe80::1"), Mask: net.CIDRMask(64, 128)}},
			wantErr: true,
		},
		{
			name:    "unknown interface",
			err:     errors.New("no such network interface"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProbe(&fakeRunner{}, &fakeRunner{})
			p.interfaceAddrs = func(name string) ([]net.Addr, error) { return tt.addrs, tt.err }

			got, err := p.LocalIP(context.Background(), "en1")
			if (err != nil) != tt.wantErr {
				t.Fatalf("LocalIP() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !IsInterfaceError(err) {
				t.Errorf("LocalIP() error type = %T, want *InterfaceError", err)
			}
			if got != tt.want {
				t.Errorf("LocalIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExecProbe_ReadARPCache(t *testing.T) {
	runner := &fakeRunner{result: &shell.Result{Stdout: bsdARPOutput}}
	p := newTestProbe(runner, &fakeRunner{})

	entries, err := p.ReadARPCache(context.Background(), "en1")
	if err != nil {
		t.Fatalf("ReadARPCache() error = %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("ReadARPCache() returned %d entries, want 3", len(entries))
	}

	if len(runner.calls) != 1 {
		t.Fatalf("runner called %d times, want 1", len(runner.calls))
	}
	got := runner.calls[0].name + " " + strings.Join(runner.calls[0].args, " ")
	if got != "arp -an -i en1" {
		t.Errorf("command = %q, want %q", got, "arp -an -i en1")
	}
}

func TestExecProbe_ReadARPCache_ProcFallback(t *testing.T) {
	runner := &fakeRunner{
		result: &shell.Result{ExitCode: -1},
		err:    &shell.CommandError{Command: "arp", ExitCode: -1},
	}
	p := newTestProbe(runner, &fakeRunner{})
	p.readFile = func(name string) ([]byte, error) {
		if name != "/proc/net/arp" {
			t.Errorf("readFile(%q), want /proc/net/arp", name)
		}
		return []byte(procNetARP), nil
	}

	entries, err := p.ReadARPCache(context.Background(), "eth0")
	if err != nil {
		t.Fatalf("ReadARPCache() error = %v", err)
	}
	if ip, ok := FindMAC(entries, "2:15:41:7e:44:32"); !ok || ip != "10.0.0.42" {
		t.Errorf("FindMAC() = (%q, %v), want 10.0.0.42", ip, ok)
	}
}

func TestExecProbe_ReadARPCache_Failure(t *testing.T) {
	runner := &fakeRunner{
		result: &shell.Result{ExitCode: 1},
		err:    &shell.CommandError{Command: "arp", ExitCode: 1},
	}
	p := newTestProbe(runner, &fakeRunner{})

	if _, err := p.ReadARPCache(context.Background(), "en1"); err == nil {
		t.Error("ReadARPCache() error = nil, want failure")
	}
}

func TestExecProbe_SweepSubnet(t *testing.T) {
	tests := []struct {
		name    string
		result  *shell.Result
		err     error
		wantErr bool
	}{
		{"all hosts alive", &shell.Result{}, nil, false},
		{"some unreachable", &shell.Result{ExitCode: 1}, &shell.CommandError{Command: "fping", ExitCode: 1}, false},
		{"fping missing", &shell.Result{ExitCode: -1}, &shell.CommandError{Command: "fping", ExitCode: -1}, true},
		{"timeout", &shell.Result{ExitCode: -1}, &shell.TimeoutError{Command: "fping", Timeout: "10s"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sweeper := &fakeRunner{result: tt.result, err: tt.err}
			p := newTestProbe(&fakeRunner{}, sweeper)

			err := p.SweepSubnet(context.Background(), "en1", "192.168.1.0/24")
			if (err != nil) != tt.wantErr {
				t.Errorf("SweepSubnet() error = %v, wantErr %v", err, tt.wantErr)
			}

			got := sweeper.calls[0].name + " " + strings.Join(sweeper.calls[0].args, " ")
			if got != "fping -I en1 -aqg 192.168.1.0/24" {
				t.Errorf("command = %q", got)
			}
		})
	}
}

type staticProbe struct {
	ip  string
	err error
}

func (s staticProbe) LocalIP(ctx context.Context, iface string) (string, error) { return s.ip, s.err }
func (s staticProbe) ReadARPCache(ctx context.Context, iface string) ([]ARPEntry, error) {
	return nil, nil
}
func (s staticProbe) SweepSubnet(ctx context.Context, iface, cidr string) error { return nil }

func TestCheckPrerequisites(t *testing.T) {
	orig := lookPath
	defer func() { lookPath = orig }()
	lookPath = func(name string) (string, error) {
		if name == "fping" {
			return "", errors.New("not found")
		}
		return "/usr/bin/" + name, nil
	}

	tools := []Tool{
		{Name: "arp", Path: "arp", Required: true},
		{Name: "fping", Path: "fping", Required: true, Hint: "brew install fping"},
		{Name: "lftp", Path: "lftp"},
	}

	result := CheckPrerequisites(context.Background(), staticProbe{ip: "192.168.1.100"}, "en1", tools)
	if result.AllAvailable {
		t.Error("AllAvailable = true with fping missing")
	}
	if len(result.Checks) != 4 {
		t.Fatalf("got %d checks, want 4", len(result.Checks))
	}
	if !strings.Contains(result.Checks[1].Message, "brew install fping") {
		t.Errorf("fping check message = %q, want install hint", result.Checks[1].Message)
	}

	report := FormatPrerequisiteReport(result)
	for _, want := range []string{"✓ arp", "✗ fping", "✓ interface en1", "Some prerequisites are missing"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestCheckPrerequisites_InterfaceDown(t *testing.T) {
	orig := lookPath
	defer func() { lookPath = orig }()
	lookPath = func(name string) (string, error) { return "/usr/bin/" + name, nil }

	probe := staticProbe{err: &InterfaceError{Interface: "en1", Err: errors.New("down")}}
	result := CheckPrerequisites(context.Background(), probe, "en1", nil)

	if result.AllAvailable {
		t.Error("AllAvailable = true with interface down")
	}
}
