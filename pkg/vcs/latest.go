package vcs

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v60/github"
)

// LatestClient looks up the newest published release of a repository.
type LatestClient struct {
	client *github.Client
}

func NewLatestClient(client *github.Client) *LatestClient {
	return &LatestClient{client: client}
}

// LatestRelease returns the tag name of the latest published release, or
// an empty string when the repository has none.
func (c *LatestClient) LatestRelease(ctx context.Context, slug string) (string, error) {
	owner, repo, err := SplitSlug(slug)
	if err != nil {
		return "", err
	}

	release, _, err := c.client.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		if strings.Contains(err.Error(), "404") {
			return "", nil
		}
		return "", fmt.Errorf("get latest release for %s/%s: %w", owner, repo, err)
	}
	return release.GetTagName(), nil
}
