// Package download fetches puzzle inputs from adventofcode.com and
// caches them on disk, keyed by session so two accounts never share
// an input file.
package download

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/advent/internal/puzzle"
)

var Log = logrus.New()

// MinRequestInterval is the shortest allowed gap between two HTTP
// requests to the puzzle site.
const MinRequestInterval = 5 * time.Second

// Client downloads puzzle pages and inputs. The zero value is not
// usable; construct one with NewClient.
type Client struct {
	session  string
	cacheDir string
	baseURL  string
	http     *http.Client

	mu       sync.Mutex
	memory   map[string][]string
	lastReq  time.Time
	interval time.Duration
}

// Option adjusts a Client at construction time.
type Option func(*Client)

// WithBaseURL points the client at a different server. Tests use this
// to talk to a local httptest server.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(url, "/") }
}

// WithRequestInterval overrides the rate limit.
func WithRequestInterval(d time.Duration) Option {
	return func(c *Client) { c.interval = d }
}

// NewClient builds a downloader that authenticates with the given
// session cookie and persists responses under cacheDir.
func NewClient(session, cacheDir string, opts ...Option) *Client {
	c := &Client{
		session:  session,
		cacheDir: cacheDir,
		baseURL:  "https://adventofcode.com",
		http:     &http.Client{Timeout: 30 * time.Second},
		memory:   make(map[string][]string),
		interval: MinRequestInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PuzzleInput implements puzzle.Fetcher.
func (c *Client) PuzzleInput(ctx context.Context, req puzzle.Request) ([]string, error) {
	switch req.Source {
	case puzzle.UserInput:
		return c.userInput(ctx, req.Year, req.Day)
	case puzzle.ExampleInput:
		return c.exampleInput(ctx, req.Year, req.Day, req.ExampleIndex)
	default:
		return nil, fmt.Errorf("unknown input source %v", req.Source)
	}
}

func (c *Client) userInput(ctx context.Context, year, day int) ([]string, error) {
	body, err := c.get(ctx, fmt.Sprintf("/%d/day/%d/input", year, day))
	if err != nil {
		return nil, err
	}
	return splitLines(body), nil
}

func (c *Client) exampleInput(ctx context.Context, year, day, index int) ([]string, error) {
	page, err := c.get(ctx, fmt.Sprintf("/%d/day/%d", year, day))
	if err != nil {
		return nil, err
	}
	example, err := nthPreBlock(page, index)
	if err != nil {
		return nil, puzzle.ExampleNotFoundError{Year: year, Day: day, Index: index}
	}
	return splitLines(example), nil
}

// get resolves a path through the in-memory map, then the file cache,
// then an authenticated HTTP request. Lines are cached at every level
// on the way back out.
func (c *Client) get(ctx context.Context, path string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if lines, ok := c.memory[path]; ok {
		return strings.Join(lines, "\n"), nil
	}

	file := c.cacheFile(path)
	if data, err := os.ReadFile(file); err == nil {
		body := string(data)
		c.memory[path] = splitLines(body)
		return body, nil
	}

	body, err := c.fetch(ctx, path)
	if err != nil {
		return "", err
	}
	if err := c.persist(file, body); err != nil {
		return "", err
	}
	c.memory[path] = splitLines(body)
	return body, nil
}

func (c *Client) fetch(ctx context.Context, path string) (string, error) {
	if c.session == "" {
		return "", puzzle.ErrNoSessionID
	}

	if wait := c.interval - time.Since(c.lastReq); wait > 0 {
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	url := c.baseURL + path
	Log.WithField("url", url).Info("cache miss, fetching")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: c.session})

	resp, err := c.http.Do(req)
	c.lastReq = time.Now()
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", url, err)
	}
	return string(data), nil
}

// persist writes body to file, removing the partial file if the write
// fails so a truncated input is never served from cache later.
func (c *Client) persist(file, body string) error {
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(file, []byte(body), 0o644); err != nil {
		os.Remove(file)
		return err
	}
	return nil
}

// cacheFile maps a request path to a file under a per-session
// directory. The session value is hashed so the secret never appears
// on disk.
func (c *Client) cacheFile(path string) string {
	sum := sha256.Sum256([]byte(c.session))
	slug := strings.ReplaceAll(strings.TrimPrefix(path, "/"), "/", "_")
	return filepath.Join(c.cacheDir, hex.EncodeToString(sum[:8]), slug)
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	return strings.Split(s, "\n")
}
