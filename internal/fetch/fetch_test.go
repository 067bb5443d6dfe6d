package fetch

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestClient_Download(t *testing.T) {
	var gotPath, gotSession string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if c, err := r.Cookie("session"); err == nil {
			gotSession = c.Value
		}
		io.WriteString(w, "..@\n@..\n")
	}))
	defer srv.Close()

	c := NewClient("abc123", quietLogger())
	c.BaseURL = srv.URL + "/"
	c.HTTP = srv.Client()

	dest := filepath.Join(t.TempDir(), "input", "day4.txt")
	require.NoError(t, c.Download(t.Context(), 2025, 4, dest))

	assert.Equal(t, "/2025/day/4/input", gotPath)
	assert.Equal(t, "abc123", gotSession)

	b, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "..@\n@..\n", string(b))
}

func TestClient_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Puzzle inputs differ by user.", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient("expired", quietLogger())
	c.BaseURL = srv.URL
	c.HTTP = srv.Client()

	dest := filepath.Join(t.TempDir(), "day1.txt")
	err := c.Download(t.Context(), 2025, 1, dest)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadRequest, se.StatusCode)

	_, statErr := os.Stat(dest)
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "input file should not be written on failure")
}

func TestClient_NoSession(t *testing.T) {
	c := NewClient("", quietLogger())
	_, err := c.Input(t.Context(), 2025, 1)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestReadSession(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, ".cookie")
	require.NoError(t, os.WriteFile(path, []byte("  deadbeef \nignored\n"), 0o600))
	got, err := ReadSession(path)
	require.NoError(t, err)
	assert.Equal(t, "deadbeef", got)

	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	_, err = ReadSession(empty)
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = ReadSession(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
