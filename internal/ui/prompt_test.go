package ui

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestPrompter_ReadLine(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("first\r\n  second  \nlast"), &out)

	want := []string{"first", "  second  ", "last"}
	for i, w := range want {
		got, err := p.ReadLine("> ")
		if err != nil {
			t.Fatalf("ReadLine() #%d error = %v", i, err)
		}
		if got != w {
			t.Errorf("ReadLine() #%d = %q, want %q", i, got, w)
		}
	}

	if _, err := p.ReadLine("> "); !errors.Is(err, io.EOF) {
		t.Errorf("ReadLine() after input = %v, want io.EOF", err)
	}
	if out.String() != "> > > > " {
		t.Errorf("prompts written = %q", out.String())
	}
}

func TestPrompter_Ask(t *testing.T) {
	p := NewPrompter(strings.NewReader("  Zelda 2 \n"), io.Discard)

	got, err := p.Ask("Name: ")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if got != "Zelda 2" {
		t.Errorf("Ask() = %q, want %q", got, "Zelda 2")
	}
}
