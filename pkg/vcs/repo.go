package vcs

import (
	"context"
	"fmt"
	"strings"
)

// ReleaseSource fetches the raw release list for a repository.
type ReleaseSource interface {
	// FetchReleases returns the first page of the repository's releases
	// as raw JSON bytes.
	FetchReleases(ctx context.Context, slug string) ([]byte, error)
}

// NormalizeSlug trims surrounding slashes from an owner/repo identifier.
func NormalizeSlug(slug string) string {
	return strings.Trim(slug, "/")
}

// SplitSlug splits a repository identifier into owner and repo. Full URL
// forms such as "https://github.com/owner/repo.git" are tolerated.
func SplitSlug(slug string) (owner, repo string, err error) {
	slug = strings.TrimPrefix(slug, "https://")
	slug = strings.TrimPrefix(slug, "http://")
	slug = strings.TrimPrefix(slug, "github.com/")
	slug = strings.TrimSuffix(slug, ".git")
	slug = NormalizeSlug(slug)

	parts := strings.SplitN(slug, "/", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("cannot parse repository slug from %q", slug)
	}
	return parts[0], parts[1], nil
}
