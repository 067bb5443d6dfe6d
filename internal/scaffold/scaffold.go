// Package scaffold creates the source files for a new day.
package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"text/template"

	"github.com/sirupsen/logrus"
)

var dayFile = regexp.MustCompile(`^day(\d+)\.go$`)

var solutionTemplate = template.Must(template.New("solution").Parse(`package {{.Package}}

import "{{.Module}}/internal/puzzle"

func init() {
	puzzle.Register({{.Day}}, day{{.Day}}Part1, day{{.Day}}Part2)
}

func day{{.Day}}Part1(lines []string) (int, error) {
	return 0, nil
}

func day{{.Day}}Part2(lines []string) (int, error) {
	return 0, nil
}
`))

var testTemplate = template.Must(template.New("test").Parse(`package {{.Package}}

import (
	"testing"

	"{{.Module}}/internal/puzzle"
)

const sample{{.Day}} = ` + "``" + `

func TestDay{{.Day}}(t *testing.T) {
	tests := []struct {
		part  int
		input string
		want  int
	}{
		{1, sample{{.Day}}, 0},
		{2, sample{{.Day}}, 0},
	}

	for _, tt := range tests {
		solve, err := puzzle.Lookup({{.Day}}, tt.part)
		if err != nil {
			t.Fatalf("Lookup() error = %v", err)
		}
		got, err := solve(puzzle.Lines(tt.input))
		if err != nil {
			t.Fatalf("part %d: solve() error = %v", tt.part, err)
		}
		if got != tt.want {
			t.Errorf("part %d: solve() = %d, want %d", tt.part, got, tt.want)
		}
	}
}
`))

// Scaffolder writes new day files into Dir.
type Scaffolder struct {
	Dir string
	// Package is the Go package name of the files in Dir.
	Package string
	// Module is the import path of the module, used to import the registry.
	Module string
	Log    logrus.FieldLogger
}

// NextDay returns one more than the highest day with a source file in Dir,
// or 1 when there is none.
func (s *Scaffolder) NextDay() (int, error) {
	s.Log.WithField("dir", s.Dir).Debug("Scanning for existing day files")
	entries, err := os.ReadDir(s.Dir)
	if errors.Is(err, os.ErrNotExist) {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", s.Dir, err)
	}

	latest := 0
	for _, e := range entries {
		m := dayFile.FindStringSubmatch(e.Name())
		if m == nil || e.IsDir() {
			continue
		}
		day, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		latest = max(latest, day)
	}
	s.Log.WithField("latest", latest).Debug("Found existing days")
	return latest + 1, nil
}

// CreateDay writes day<N>.go and day<N>_test.go. Existing files are never
// overwritten.
func (s *Scaffolder) CreateDay(day int) error {
	if day < 1 {
		return fmt.Errorf("invalid day %d", day)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", s.Dir, err)
	}

	data := struct {
		Package, Module string
		Day             int
	}{s.Package, s.Module, day}

	files := []struct {
		name string
		tmpl *template.Template
	}{
		{fmt.Sprintf("day%d.go", day), solutionTemplate},
		{fmt.Sprintf("day%d_test.go", day), testTemplate},
	}
	rendered := make([][]byte, len(files))
	for i, f := range files {
		var buf bytes.Buffer
		if err := f.tmpl.Execute(&buf, data); err != nil {
			return fmt.Errorf("rendering %s: %w", f.name, err)
		}
		src, err := format.Source(buf.Bytes())
		if err != nil {
			return fmt.Errorf("formatting %s: %w", f.name, err)
		}
		rendered[i] = src
	}

	// A day is created whole or not at all.
	for _, f := range files {
		path := filepath.Join(s.Dir, f.name)
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("creating %s: %w", path, os.ErrExist)
		}
	}
	var written []string
	for i, f := range files {
		path := filepath.Join(s.Dir, f.name)
		if err := writeNew(path, rendered[i]); err != nil {
			for _, w := range written {
				os.Remove(w)
			}
			return err
		}
		written = append(written, path)
		s.Log.WithField("file", f.name).Info("Wrote template")
	}
	return nil
}

func writeNew(path string, b []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := f.Write(b); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
