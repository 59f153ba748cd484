package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/release-baseline-finder/pkg/baseline"
)

func newCacheKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cache-key",
		Short: "Print the slug@epoch key for an external incremental-build cache",
		Long:  `Prints the repository slug combined with the current timestamp bucketed to one-hour windows. Keying a build cache on this value makes repeated invocations within the same hour count as identical inputs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg := setup(cmd)
			if cfg.Slug == "" {
				return fmt.Errorf("no repository slug; set --slug, GITHUB_REPOSITORY or the config file")
			}

			fmt.Fprintln(cmd.OutOrStdout(), baseline.CacheKey(cfg.Slug, time.Now().Unix()))
			return nil
		},
	}
}
