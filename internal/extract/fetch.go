package extract

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Many job boards 403 default Go user agents, so identify as a desktop browser.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

const DefaultFetchTimeout = 15 * time.Second

// Fetcher retrieves raw page content for a single URL. Failures come back as
// categorized errors ("request failed", "HTTP status N", "read failed"); the
// orchestrator folds them into the record's notes rather than aborting.
type Fetcher struct {
	hc      *http.Client
	ua      string
	limiter *HostLimiter
}

func NewFetcher(timeout time.Duration, ua string, limiter *HostLimiter) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	if ua == "" {
		ua = DefaultUserAgent
	}
	return &Fetcher{
		hc:      &http.Client{Timeout: timeout},
		ua:      ua,
		limiter: limiter,
	}
}

// Fetch GETs the URL and returns the body plus the address after redirects.
// On failure the body is empty and finalURL falls back to the input URL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (body string, finalURL string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", rawURL, fmt.Errorf("request failed: %w", err)
	}
	req.Header.Set("User-Agent", f.ua)

	if f.limiter != nil {
		if err := f.limiter.WaitURL(ctx, rawURL); err != nil {
			return "", rawURL, fmt.Errorf("request failed: %w", err)
		}
	}

	res, err := f.hc.Do(req)
	if err != nil {
		return "", rawURL, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", rawURL, fmt.Errorf("HTTP status %d", res.StatusCode)
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return "", rawURL, fmt.Errorf("read failed: %w", err)
	}

	final := rawURL
	if res.Request != nil && res.Request.URL != nil {
		final = res.Request.URL.String()
	}
	return string(b), final, nil
}
