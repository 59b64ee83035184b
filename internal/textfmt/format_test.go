package textfmt

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestFormatAligned(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		width   int
		want    string
	}{
		{
			name: "colons aligned",
			entries: []Entry{
				{Key: "JOY UP", Description: "Move"},
				{Key: "FIRE", Description: "Jump"},
			},
			width: 37,
			want:  "JOY UP : Move\nFIRE   : Jump",
		},
		{
			name: "long description hangs under itself",
			entries: []Entry{
				{Key: "FIRE", Description: "Jump over the barrels and climb every ladder to the top"},
			},
			width: 37,
			want:  "FIRE : Jump over the barrels and\n       climb every ladder to the top",
		},
		{
			name: "empty description",
			entries: []Entry{
				{Key: "F1", Description: ""},
			},
			width: 37,
			want:  "F1 :",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatAligned(tt.entries, tt.width)
			if err != nil {
				t.Fatalf("FormatAligned() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("FormatAligned() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatAligned_Empty(t *testing.T) {
	if _, err := FormatAligned(nil, 37); !errors.Is(err, ErrNoContent) {
		t.Errorf("FormatAligned(nil) error = %v, want ErrNoContent", err)
	}
}

// randomEntries builds entries with short keys and single-spaced
// descriptions, occasionally including a word wider than the display.
func randomEntries(r *rand.Rand) []Entry {
	const letters = "abcdefghijklmnopqrstuvwxyz-"
	word := func(n int) string {
		b := make([]byte, n)
		for i := range b {
			b[i] = letters[r.Intn(len(letters))]
		}
		return string(b)
	}

	entries := make([]Entry, 1+r.Intn(6))
	for i := range entries {
		words := make([]string, r.Intn(15))
		for j := range words {
			n := 1 + r.Intn(12)
			if r.Intn(20) == 0 {
				n = 40
			}
			words[j] = word(n)
		}
		entries[i] = Entry{
			Key:         strings.ToUpper(word(1 + r.Intn(10))),
			Description: strings.Join(words, " "),
		}
	}
	return entries
}

func TestFormatAligned_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(64))

	for i := 0; i < 200; i++ {
		entries := randomEntries(r)
		width := 20 + r.Intn(40)

		maxKey := 0
		for _, e := range entries {
			if len(e.Key) > maxKey {
				maxKey = len(e.Key)
			}
		}
		indent := strings.Repeat(" ", maxKey+3)

		out, err := FormatAligned(entries, width)
		if err != nil {
			t.Fatalf("FormatAligned() error = %v", err)
		}

		for _, line := range strings.Split(out, "\n") {
			if len(line) > width && len(strings.Fields(line)) != 1 {
				t.Errorf("width %d: line %q is %d wide and not a single word", width, line, len(line))
			}

			if strings.HasPrefix(line, " ") {
				if !strings.HasPrefix(line, indent) || line[len(indent)] == ' ' {
					t.Errorf("continuation %q not indented by exactly %d", line, len(indent))
				}
				continue
			}
			if len(line) <= maxKey+1 || line[maxKey+1] != ':' {
				t.Errorf("first line %q: colon not at column %d", line, maxKey+1)
			}
		}
	}
}

func TestFormatFreeform(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		width int
		want  string
	}{
		{
			name:  "blank line between paragraphs preserved",
			lines: []string{"Hello world", "", "Second paragraph here"},
			width: 37,
			want:  "Hello world\n\nSecond paragraph here",
		},
		{
			name:  "short line unchanged",
			lines: []string{"Press SPACE to start"},
			width: 37,
			want:  "Press SPACE to start",
		},
		{
			name:  "tab becomes four spaces",
			lines: []string{"\tIndented"},
			width: 37,
			want:  "    Indented",
		},
		{
			name:  "whitespace-only line is blank",
			lines: []string{"one", "   ", "two"},
			width: 37,
			want:  "one\n\ntwo",
		},
		{
			name:  "each line wraps independently",
			lines: []string{"The quick brown fox jumps over the lazy dog", "End"},
			width: 20,
			want:  "The quick brown fox\njumps over the lazy\ndog\nEnd",
		},
		{
			name:  "only blank lines",
			lines: []string{""},
			width: 37,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatFreeform(tt.lines, tt.width)
			if err != nil {
				t.Fatalf("FormatFreeform() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("FormatFreeform() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatFreeform_Empty(t *testing.T) {
	if _, err := FormatFreeform(nil, 37); !errors.Is(err, ErrNoContent) {
		t.Errorf("FormatFreeform(nil) error = %v, want ErrNoContent", err)
	}
}

func TestHumanizeKind(t *testing.T) {
	tests := []struct {
		kind string
		want string
	}{
		{"controls", "Controls"},
		{"full_manual", "Full Manual"},
		{"cheats", "Cheats"},
		{"NOTES", "Notes"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			if got := HumanizeKind(tt.kind); got != tt.want {
				t.Errorf("HumanizeKind(%q) = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestDocument(t *testing.T) {
	got := Document("Zelda 2", "full_manual", "JOY UP : Move", 37)
	want := strings.Repeat("=", 37) + "\n" +
		"Zelda 2\n" +
		"Full Manual\n" +
		strings.Repeat("-", 37) + "\n" +
		"JOY UP : Move\n"

	if got != want {
		t.Errorf("Document() = %q, want %q", got, want)
	}
}
