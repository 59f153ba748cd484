package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/release-baseline-finder/pkg/baseline"
	"github.com/release-baseline-finder/pkg/reporter"
	"github.com/release-baseline-finder/pkg/vcs"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the first page of releases with their evaluation status",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, cfg := setup(cmd)
			if cfg.Slug == "" {
				return fmt.Errorf("no repository slug; set --slug, GITHUB_REPOSITORY or the config file")
			}

			timeout, _ := cmd.Flags().GetDuration("timeout")
			client := vcs.NewReleasesClient(cfg.APIBaseURL, timeout)

			body, err := client.FetchReleases(cmd.Context(), cfg.Slug)
			if err != nil {
				return err
			}

			candidates, err := baseline.NewResolver(log, cfg).Evaluate(body)
			if err != nil {
				return err
			}
			return reporter.New(cfg.Format).Report(cmd.OutOrStdout(), candidates)
		},
	}
	cmd.Flags().String("format", "", "Output format: table | json | markdown")
	return cmd
}
