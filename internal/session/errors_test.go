package session

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateDirName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  bool
		wantText string
	}{
		{"27 characters accepted", strings.Repeat("x", 27), false, ""},
		{"28 characters rejected", strings.Repeat("x", 28), true, "is 28 characters"},
		{"empty rejected", "", true, "cannot be empty"},
		{"short name", "Zelda 2", false, ""},
		{"slash rejected", "a/b", true, "cannot contain"},
		{"dot rejected", ".", true, "not a valid directory name"},
		{"dot-dot rejected", "..", true, "not a valid directory name"},
		{"dots inside a name", "..Zelda..", false, ""},
		{"multibyte counted as characters", strings.Repeat("é", 27), false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDirName(tt.input, 27)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateDirName() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("ValidateDirName() error type = %T, want *ValidationError", err)
			}
			if !strings.Contains(ve.Message, tt.wantText) {
				t.Errorf("Message = %q, want it to contain %q", ve.Message, tt.wantText)
			}
		})
	}
}

func TestValidateDirName_Hint(t *testing.T) {
	err := ValidateDirName(strings.Repeat("x", 30), 27)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("ValidateDirName() error = %v", err)
	}
	if ve.Hint != "Please use 27 or fewer characters for proper directory listing." {
		t.Errorf("Hint = %q", ve.Hint)
	}
}

func TestAddress(t *testing.T) {
	var a Address
	if a.Known() {
		t.Error("zero Address is Known()")
	}

	a.Set("192.168.1.42")
	if !a.Known() || a.Get() != "192.168.1.42" {
		t.Errorf("after Set: Known() = %v, Get() = %q", a.Known(), a.Get())
	}

	a.Invalidate()
	if a.Known() || a.Get() != "" {
		t.Errorf("after Invalidate: Known() = %v, Get() = %q", a.Known(), a.Get())
	}
}

func TestKindForChoice(t *testing.T) {
	tests := []struct {
		choice      string
		wantSuffix  string
		wantAligned bool
	}{
		{"1", "controls", true},
		{"2", "usage", false},
		{"3", "tips", false},
		{"4", "cheats", false},
		{"5", "full_manual", false},
		{"6", "notes", false},
		{"", "notes", false},
		{"controls", "notes", false},
	}

	for _, tt := range tests {
		t.Run(tt.choice, func(t *testing.T) {
			k := KindForChoice(tt.choice)
			if k.Suffix != tt.wantSuffix || k.Aligned != tt.wantAligned {
				t.Errorf("KindForChoice(%q) = %+v, want suffix %q aligned %v", tt.choice, k, tt.wantSuffix, tt.wantAligned)
			}
		})
	}
}
