package main

import (
	"fmt"

	"github.com/google/go-github/v60/github"
	"github.com/spf13/cobra"

	"github.com/release-baseline-finder/pkg/vcs"
)

func newLatestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "latest",
		Short: "Print the tag of the latest published release",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg := setup(cmd)
			if cfg.Slug == "" {
				return fmt.Errorf("no repository slug; set --slug, GITHUB_REPOSITORY or the config file")
			}

			gh := github.NewClient(nil)
			if cfg.APIBaseURL != "" {
				var err error
				if gh, err = gh.WithEnterpriseURLs(cfg.APIBaseURL, cfg.APIBaseURL); err != nil {
					return fmt.Errorf("configure API base URL: %w", err)
				}
			}

			tag, err := vcs.NewLatestClient(gh).LatestRelease(cmd.Context(), cfg.Slug)
			if err != nil {
				return err
			}
			if tag == "" {
				return fmt.Errorf("%s has no published releases", cfg.Slug)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tag)
			return nil
		},
	}
}
