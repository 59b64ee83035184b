package netprobe

import "testing"

const bsdARPOutput = `? (192.168.1.1) at 0:11:22:33:44:55 on en1 ifscope [ethernet]
? (192.168.1.17) at (incomplete) on en1 ifscope [ethernet]
c64u.lan (192.168.1.42) at 2:15:41:7e:44:32 on en1 ifscope [ethernet]
? (224.0.0.251) at 1:0:5e:0:0:fb on en1 ifscope permanent [ethernet]
`

const linuxARPOutput = `? (10.0.0.1) at 00:11:22:33:44:55 [ether] on eth0
? (10.0.0.42) at 02:15:41:7e:44:32 [ether] on eth0
`

const procNetARP = `IP address       HW type     Flags       HW address            Mask     Device
10.0.0.1         0x1         0x2         00:11:22:33:44:55     *        eth0
10.0.0.9         0x1         0x0         00:00:00:00:00:00     *        eth0
10.0.0.42        0x1         0x2         02:15:41:7e:44:32     *        eth0
172.17.0.2       0x1         0x2         02:42:ac:11:00:02     *        docker0
`

func TestParseARPOutput_BSD(t *testing.T) {
	entries := ParseARPOutput(bsdARPOutput)

	if len(entries) != 3 {
		t.Fatalf("ParseARPOutput() returned %d entries, want 3: %+v", len(entries), entries)
	}
	if entries[1].IP != "192.168.1.42" || entries[1].MAC != "2:15:41:7e:44:32" {
		t.Errorf("entries[1] = %+v", entries[1])
	}
	if entries[1].Interface != "en1" {
		t.Errorf("entries[1].Interface = %q, want en1", entries[1].Interface)
	}
}

func TestParseARPOutput_Linux(t *testing.T) {
	entries := ParseARPOutput(linuxARPOutput)

	if len(entries) != 2 {
		t.Fatalf("ParseARPOutput() returned %d entries, want 2", len(entries))
	}
	if entries[1].Interface != "eth0" {
		t.Errorf("entries[1].Interface = %q, want eth0", entries[1].Interface)
	}
}

func TestParseARPOutput_Empty(t *testing.T) {
	if entries := ParseARPOutput(""); len(entries) != 0 {
		t.Errorf("ParseARPOutput(\"\") = %v, want none", entries)
	}
}

func TestParseProcNetARP(t *testing.T) {
	entries := ParseProcNetARP(procNetARP)

	if len(entries) != 3 {
		t.Fatalf("ParseProcNetARP() returned %d entries, want 3", len(entries))
	}
	if entries[1].IP != "10.0.0.42" || entries[1].Interface != "eth0" {
		t.Errorf("entries[1] = %+v", entries[1])
	}
	if got := filterInterface(entries, "eth0"); len(got) != 2 {
		t.Errorf("filterInterface(eth0) returned %d entries, want 2", len(got))
	}
}

func TestFindMAC(t *testing.T) {
	tests := []struct {
		name   string
		output string
		mac    string
		wantIP string
		wantOK bool
	}{
		{"bsd hit", bsdARPOutput, "2:15:41:7e:44:32", "192.168.1.42", true},
		{"linux hit with leading zeros", linuxARPOutput, "2:15:41:7e:44:32", "10.0.0.42", true},
		{"uppercase target", linuxARPOutput, "02:15:41:7E:44:32", "10.0.0.42", true},
		{"miss", bsdARPOutput, "2:15:41:7e:44:99", "", false},
		{"empty table", "", "2:15:41:7e:44:32", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ip, ok := FindMAC(ParseARPOutput(tt.output), tt.mac)
			if ip != tt.wantIP || ok != tt.wantOK {
				t.Errorf("FindMAC() = (%q, %v), want (%q, %v)", ip, ok, tt.wantIP, tt.wantOK)
			}
		})
	}
}

func TestSubnetCIDR(t *testing.T) {
	tests := []struct {
		ip      string
		want    string
		wantErr bool
	}{
		{"192.168.1.100", "192.168.1.0/24", false},
		{"10.0.0.5", "10.0.0.0/24", false},
		{"fe80::1", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			got, err := SubnetCIDR(tt.ip)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SubnetCIDR(%q) error = %v, wantErr %v", tt.ip, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("SubnetCIDR(%q) = %q, want %q", tt.ip, got, tt.want)
			}
		})
	}
}
