package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crosswarped.com/aoc/internal/answers"
	"crosswarped.com/aoc/internal/puzzle"
)

type memRecorder []answers.Answer

func (m *memRecorder) Record(_ context.Context, a ...answers.Answer) error {
	*m = append(*m, a...)
	return nil
}

func quiet() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(puzzle.InputPath(dir, 5), []byte("3-5\n10-14\n16-20\n12-18\n\n1\n5\n8\n11\n17\n32\n"), 0o644))

	var out bytes.Buffer
	rec := &memRecorder{}
	err := run(t.Context(), config{year: 2025, day: 5, inputDir: dir}, rec, quiet(), &out)
	require.NoError(t, err)

	assert.Equal(t, "day 5 part 1: 3\nday 5 part 2: 14\n", out.String())
	require.Len(t, *rec, 2)
	assert.Equal(t, int64(14), (*rec)[1].Value)
	assert.Equal(t, 2025, (*rec)[1].Year)
}

func TestRun_SinglePartExplicitInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rolls.txt")
	require.NoError(t, os.WriteFile(path, []byte("@@@\n@@@\n@@@\n"), 0o644))

	var out bytes.Buffer
	err := run(t.Context(), config{day: 4, part: 1, input: path}, nil, quiet(), &out)
	require.NoError(t, err)
	assert.Equal(t, "day 4 part 1: 4\n", out.String())
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()

	err := run(t.Context(), config{day: 3, inputDir: dir}, nil, quiet(), io.Discard)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(dir, "x.txt")
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0o644))

	err = run(t.Context(), config{day: 24, input: path}, nil, quiet(), io.Discard)
	assert.ErrorIs(t, err, puzzle.ErrUnknownDay)

	err = run(t.Context(), config{day: 4, part: 9, input: path}, nil, quiet(), io.Discard)
	assert.ErrorIs(t, err, puzzle.ErrUnknownPart)
}

func TestExecute_HistoryNeedsLedger(t *testing.T) {
	var out bytes.Buffer
	err := execute(t.Context(), config{day: 5}, ledger{}, true, quiet(), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-history")
	assert.Empty(t, out.String())
}

func TestExecute_WithoutLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rolls.txt")
	require.NoError(t, os.WriteFile(path, []byte("@@@\n@@@\n@@@\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, execute(t.Context(), config{day: 4, part: 1, input: path}, ledger{}, false, quiet(), &out))
	assert.Equal(t, "day 4 part 1: 4\n", out.String())
}
