// Package updater checks the GitHub Releases API for a newer version.
package updater

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const defaultEndpoint = "https://api.github.com/repos/GoblinRules/SlickClick/releases/latest"

// Result is the outcome of one update check. Exactly one of the three cases
// holds: Err is set, UpToDate is true, or Latest and URL describe the newer
// release.
type Result struct {
	UpToDate bool
	Latest   string
	URL      string
	Err      error
}

// Logger is the subset of log/slog used by this package.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

// Checker performs update checks against a releases endpoint.
type Checker struct {
	endpoint string
	client   *http.Client
	logger   Logger
}

func NewChecker(logger Logger) *Checker {
	return &Checker{
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: 8 * time.Second},
		logger:   logger,
	}
}

// NewCheckerFor targets a custom endpoint. Used by tests.
func NewCheckerFor(endpoint string, client *http.Client, logger Logger) *Checker {
	if client == nil {
		client = &http.Client{Timeout: 8 * time.Second}
	}
	return &Checker{endpoint: endpoint, client: client, logger: logger}
}

// Check queries the endpoint in the background and delivers one Result to
// the callback. The callback runs on the checker's goroutine.
func (c *Checker) Check(currentVersion string, callback func(Result)) {
	go func() {
		callback(c.check(currentVersion))
	}()
}

type release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

func (c *Checker) check(currentVersion string) Result {
	req, err := http.NewRequest(http.MethodGet, c.endpoint, nil)
	if err != nil {
		return c.failed(err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "SlickClick-UpdateChecker")

	resp, err := c.client.Do(req)
	if err != nil {
		return c.failed(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.failed(fmt.Errorf("unexpected status %s", resp.Status))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return c.failed(err)
	}

	var rel release
	if err := json.Unmarshal(body, &rel); err != nil {
		return c.failed(fmt.Errorf("failed to parse release: %w", err))
	}

	latest := parseVersion(rel.TagName)
	current := parseVersion(currentVersion)

	if compareVersions(latest, current) > 0 {
		display := strings.TrimLeft(rel.TagName, "vV")
		if c.logger != nil {
			c.logger.Info("Update available", "current", currentVersion, "latest", display)
		}
		return Result{Latest: display, URL: rel.HTMLURL}
	}

	if c.logger != nil {
		c.logger.Info("Up to date", "current", currentVersion, "remote", rel.TagName)
	}
	return Result{UpToDate: true}
}

func (c *Checker) failed(err error) Result {
	if c.logger != nil {
		c.logger.Error("Update check failed", "err", err)
	}
	return Result{Err: err}
}

// parseVersion converts a tag like "V1.2.0" or "v1.2.0" to numeric parts.
// Unparseable tags collapse to [0] and never win a comparison.
func parseVersion(tag string) []int {
	cleaned := strings.TrimSpace(strings.TrimLeft(tag, "vV"))
	parts := strings.Split(cleaned, ".")
	version := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return []int{0}
		}
		version = append(version, n)
	}
	if len(version) == 0 {
		return []int{0}
	}
	return version
}

func compareVersions(a, b []int) int {
	for i := 0; i < len(a) || i < len(b); i++ {
		var av, bv int
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		if av != bv {
			if av > bv {
				return 1
			}
			return -1
		}
	}
	return 0
}
