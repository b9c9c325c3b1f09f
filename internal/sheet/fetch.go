package sheet

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"
)

// editURLPattern extracts the document key from a Google Sheets edit
// URL (https://docs.google.com/spreadsheets/d/<key>/edit...).
var editURLPattern = regexp.MustCompile(`/d/([a-zA-Z0-9-_]+)`)

// ExportURL rewrites a pasted Google Sheets edit URL to its
// export-as-CSV address. Other URLs pass through unchanged, so a
// published-CSV link keeps working.
func ExportURL(raw string) string {
	if m := editURLPattern.FindStringSubmatch(raw); m != nil {
		return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv", m[1])
	}
	return raw
}

// Fetcher retrieves published CSV text over HTTP.
type Fetcher struct {
	client *http.Client
}

// NewFetcher returns a Fetcher with a bounded request timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// Fetch GETs the given address (after edit-URL rewriting) and returns
// the response body as text. Non-2xx responses are errors.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ExportURL(rawURL), nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch sheet: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read sheet body: %w", err)
	}
	return string(body), nil
}
