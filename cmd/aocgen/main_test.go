package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crosswarped.com/aoc/internal/fetch"
)

func quiet() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestRun_NoDownload(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "days")
	require.NoError(t, os.MkdirAll(src, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "day1.go"), []byte("package days\n"), 0o644))

	require.NoError(t, run(t.Context(), options{srcDir: src, skipDownload: true}, quiet()))

	assert.FileExists(t, filepath.Join(src, "day2.go"))
	assert.FileExists(t, filepath.Join(src, "day2_test.go"))
}

func TestRun_Download(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2025/day/1/input", r.URL.Path)
		io.WriteString(w, "L68\n")
	}))
	defer ts.Close()
	t.Setenv("AOC_SESSION", "secret")

	dir := t.TempDir()
	opts := options{
		year:     2025,
		srcDir:   filepath.Join(dir, "days"),
		inputDir: filepath.Join(dir, "input"),
		baseURL:  ts.URL,
	}
	require.NoError(t, run(t.Context(), opts, quiet()))

	got, err := os.ReadFile(filepath.Join(dir, "input", "day1.txt"))
	require.NoError(t, err)
	assert.Equal(t, "L68\n", string(got))
	assert.FileExists(t, filepath.Join(dir, "days", "day1.go"))
}

func TestRun_MissingSession(t *testing.T) {
	t.Setenv("AOC_SESSION", "")
	dir := t.TempDir()
	cookie := filepath.Join(dir, ".cookie")
	require.NoError(t, os.WriteFile(cookie, []byte("\n"), 0o600))

	err := run(t.Context(), options{srcDir: filepath.Join(dir, "days"), cookieFile: cookie}, quiet())
	assert.ErrorIs(t, err, fetch.ErrNoSession)
	assert.NoFileExists(t, filepath.Join(dir, "days", "day1.go"))
}
