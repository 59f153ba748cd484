package vcs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the public GitHub REST endpoint.
const DefaultBaseURL = "https://api.github.com"

const acceptHeader = "application/vnd.github.v3+json"

// FetchError reports a failed attempt to read a release list and carries
// the URL that was requested.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch releases from %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ReleasesClient reads release lists from the GitHub REST API. Each call
// is a single request: no retries, no pagination, no authentication.
type ReleasesClient struct {
	base string
	http *resty.Client
}

// NewReleasesClient returns a client against the given API base URL. An
// empty base means DefaultBaseURL.
func NewReleasesClient(base string, timeout time.Duration) *ReleasesClient {
	if base == "" {
		base = DefaultBaseURL
	}
	return &ReleasesClient{
		base: strings.TrimSuffix(base, "/"),
		http: resty.New().SetTimeout(timeout),
	}
}

// FetchReleases returns the first page of releases for slug as raw JSON.
func (c *ReleasesClient) FetchReleases(ctx context.Context, slug string) ([]byte, error) {
	url := c.base + "/repos/" + NormalizeSlug(slug) + "/releases"
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", acceptHeader).
		Get(url)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("unexpected status %s", resp.Status())}
	}
	return resp.Body(), nil
}
