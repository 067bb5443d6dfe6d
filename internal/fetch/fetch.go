// Package fetch downloads puzzle inputs from the Advent of Code site.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

const DefaultBaseURL = "https://adventofcode.com"

// ErrNoSession is returned when no session token is available.
var ErrNoSession = errors.New("no session token")

// StatusError reports a non-200 response.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: %s", e.URL, e.Status)
}

// Client downloads inputs on behalf of a logged-in user.
type Client struct {
	BaseURL string
	// Session is the value of the site's "session" cookie.
	Session string
	HTTP    *http.Client
	Log     logrus.FieldLogger
}

func NewClient(session string, log logrus.FieldLogger) *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		Session: session,
		HTTP:    http.DefaultClient,
		Log:     log,
	}
}

func (c *Client) url(year, day int) string {
	return fmt.Sprintf("%s/%d/day/%d/input", strings.TrimSuffix(c.BaseURL, "/"), year, day)
}

// Input returns the puzzle input for the given year and day.
func (c *Client) Input(ctx context.Context, year, day int) ([]byte, error) {
	if c.Session == "" {
		return nil, ErrNoSession
	}
	url := c.url(year, day)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequest: %w", err)
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: c.Session})

	c.Log.WithField("url", url).Info("Sending request")
	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: url, StatusCode: res.StatusCode, Status: res.Status}
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body of %s: %w", url, err)
	}
	return body, nil
}

// Download saves the puzzle input to dest, creating its directory if needed.
func (c *Client) Download(ctx context.Context, year, day int, dest string) error {
	body, err := c.Input(ctx, year, day)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("creating input directory: %w", err)
	}
	if err := os.WriteFile(dest, body, 0o644); err != nil {
		return fmt.Errorf("writing input: %w", err)
	}
	c.Log.WithFields(logrus.Fields{
		"path":  dest,
		"bytes": len(body),
	}).Info("Saved input")
	return nil
}

// ReadSession returns the first line of the cookie file at path.
func ReadSession(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading session cookie: %w", err)
	}
	first, _, _ := strings.Cut(string(b), "\n")
	session := strings.TrimSpace(first)
	if session == "" {
		return "", fmt.Errorf("%s: %w", path, ErrNoSession)
	}
	return session, nil
}
