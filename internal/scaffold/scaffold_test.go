package scaffold

import (
	"go/parser"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScaffolder(dir string) *Scaffolder {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &Scaffolder{Dir: dir, Package: "days", Module: "crosswarped.com/aoc", Log: log}
}

func TestNextDay(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  int
	}{
		{"empty", nil, 1},
		{"single", []string{"day1.go"}, 2},
		{"ignores tests and other files", []string{"day1.go", "day7.go", "day9_test.go", "notes.txt", "day10.go.bak", "days_test.go"}, 8},
		{"numeric order", []string{"day2.go", "day10.go", "day9.go"}, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, f := range tt.files {
				require.NoError(t, os.WriteFile(filepath.Join(dir, f), nil, 0o644))
			}
			got, err := newScaffolder(dir).NextDay()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("missing dir", func(t *testing.T) {
		got, err := newScaffolder(filepath.Join(t.TempDir(), "nope")).NextDay()
		require.NoError(t, err)
		assert.Equal(t, 1, got)
	})
}

func TestCreateDay(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "days")
	s := newScaffolder(dir)

	require.NoError(t, s.CreateDay(8))

	fset := token.NewFileSet()
	for _, name := range []string{"day8.go", "day8_test.go"} {
		src, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		f, err := parser.ParseFile(fset, name, src, parser.ImportsOnly)
		require.NoError(t, err, "generated %s does not parse", name)
		assert.Equal(t, "days", f.Name.Name)
		require.NotEmpty(t, f.Imports)
		assert.True(t, strings.Contains(string(src), "crosswarped.com/aoc/internal/puzzle"))
	}

	src, err := os.ReadFile(filepath.Join(dir, "day8.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "puzzle.Register(8, day8Part1, day8Part2)")

	next, err := s.NextDay()
	require.NoError(t, err)
	assert.Equal(t, 9, next)

	err = s.CreateDay(8)
	assert.ErrorIs(t, err, os.ErrExist)

	assert.Error(t, s.CreateDay(0))
}

func TestCreateDay_PartialExisting(t *testing.T) {
	dir := t.TempDir()
	s := newScaffolder(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day3_test.go"), []byte("package days\n"), 0o644))

	err := s.CreateDay(3)
	assert.ErrorIs(t, err, os.ErrExist)

	_, err = os.Stat(filepath.Join(dir, "day3.go"))
	assert.ErrorIs(t, err, os.ErrNotExist, "day3.go written despite the existing test file")

	next, err := s.NextDay()
	require.NoError(t, err)
	assert.Equal(t, 1, next)
}
