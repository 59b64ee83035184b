package netprobe

import "testing"

func TestNormalizeMAC(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"bsd form", "2:15:41:7e:44:32", "2:15:41:7e:44:32", false},
		{"leading zeros", "02:15:41:07:44:32", "2:15:41:7:44:32", false},
		{"uppercase", "02:15:41:7E:44:32", "2:15:41:7e:44:32", false},
		{"dash separators", "02-15-41-7e-44-32", "2:15:41:7e:44:32", false},
		{"all zero octet", "00:00:00:00:00:01", "0:0:0:0:0:1", false},
		{"surrounding space", "  2:15:41:7e:44:32 ", "2:15:41:7e:44:32", false},
		{"empty", "", "", true},
		{"too few octets", "2:15:41:7e:44", "", true},
		{"non-hex", "2:15:41:7e:44:zz", "", true},
		{"octet too long", "2:15:41:7e:44:321", "", true},
		{"incomplete marker", "(incomplete)", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeMAC(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizeMAC(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NormalizeMAC(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSameMAC(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"2:15:41:7e:44:32", "02:15:41:7E:44:32", true},
		{"2:15:41:7e:44:32", "2:15:41:7e:44:33", false},
		{"2:15:41:7e:44:32", "12:15:41:7e:44:32", false},
		{"garbage", "garbage", false},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			if got := SameMAC(tt.a, tt.b); got != tt.want {
				t.Errorf("SameMAC(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
