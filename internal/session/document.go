package session

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the uploaded name for a document: "{directory}_{suffix}.txt".
func FileName(directory string, kind Kind) string {
	return fmt.Sprintf("%s_%s.txt", directory, kind.Suffix)
}

// WriteDocument writes content to dir/name and returns the path. The file
// appears under its final name only once fully written.
func WriteDocument(dir, name, content string) (string, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	final := filepath.Join(dir, name)

	tmp, err := os.CreateTemp(dir, ".ultinotes-*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to set permissions on %s: %w", name, err)
	}
	if err := os.Rename(tmpPath, final); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to move %s into place: %w", name, err)
	}
	return final, nil
}
