package textfmt

import (
	"strings"
	"unicode/utf8"
)

const tabSize = 8

// Wrap fills text into lines of at most width characters.
//
// Words are never split and hyphens are never break points, so a single word
// longer than the available width gets a line of its own. Whitespace at a
// line break is dropped, but runs of whitespace inside a line are kept as-is.
// Leading whitespace on the first line survives. Every line after the first
// is prefixed with subsequentIndent, which counts toward width.
//
// Whitespace-only text yields no lines.
func Wrap(text string, width int, subsequentIndent string) []string {
	chunks := splitChunks(normalizeWhitespace(text))

	var lines []string
	for len(chunks) > 0 {
		indent := ""
		if len(lines) > 0 {
			indent = subsequentIndent
		}
		avail := width - runeLen(indent)

		if len(lines) > 0 && isSpace(chunks[0]) {
			chunks = chunks[1:]
		}

		var cur []string
		curLen := 0
		for len(chunks) > 0 {
			n := runeLen(chunks[0])
			if curLen+n > avail {
				break
			}
			cur = append(cur, chunks[0])
			curLen += n
			chunks = chunks[1:]
		}

		// An overlong word goes on an otherwise empty line by itself.
		if len(chunks) > 0 && len(cur) == 0 && runeLen(chunks[0]) > avail {
			cur = append(cur, chunks[0])
			chunks = chunks[1:]
		}

		if len(cur) > 0 && isSpace(cur[len(cur)-1]) {
			cur = cur[:len(cur)-1]
		}
		if len(cur) > 0 {
			lines = append(lines, indent+strings.Join(cur, ""))
		}
	}
	return lines
}

// normalizeWhitespace expands tabs to 8-column stops and turns every other
// ASCII whitespace character into a single space.
func normalizeWhitespace(s string) string {
	var sb strings.Builder
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			n := tabSize - col%tabSize
			sb.WriteString(strings.Repeat(" ", n))
			col += n
		case '\n', '\r':
			sb.WriteByte(' ')
			col = 0
		case '\v', '\f':
			sb.WriteByte(' ')
			col++
		default:
			sb.WriteRune(r)
			col++
		}
	}
	return sb.String()
}

// splitChunks splits s into alternating runs of spaces and non-spaces.
func splitChunks(s string) []string {
	if s == "" {
		return nil
	}
	var chunks []string
	start := 0
	for i := 1; i <= len(s); i++ {
		if i == len(s) || (s[i] == ' ') != (s[start] == ' ') {
			chunks = append(chunks, s[start:i])
			start = i
		}
	}
	return chunks
}

func isSpace(chunk string) bool {
	return strings.Trim(chunk, " ") == ""
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
