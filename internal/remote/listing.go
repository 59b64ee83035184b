package remote

import "strings"

// ParseListing extracts directory names from a Unix-style long listing.
//
// Only lines starting with 'd' and carrying at least nine whitespace-separated
// fields are kept. The name is everything from the ninth field on, rejoined
// with single spaces.
func ParseListing(raw string) []string {
	var dirs []string
	for _, line := range strings.Split(raw, "\n") {
		if !strings.HasPrefix(line, "d") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 9 {
			continue
		}
		name := strings.Join(fields[8:], " ")
		if name == "." || name == ".." {
			continue
		}
		dirs = append(dirs, name)
	}
	return dirs
}
