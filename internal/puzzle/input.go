package puzzle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Lines splits text into lines. A single trailing newline does not produce
// an extra empty line, but blank lines inside the text are kept, as is any
// whitespace within a line.
func Lines(s string) []string {
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// LinesFile reads the file at path and splits it with Lines.
func LinesFile(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return Lines(string(b)), nil
}

// InputPath returns the conventional location of a day's input under dir.
func InputPath(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("day%d.txt", day))
}
