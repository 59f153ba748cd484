package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/release-baseline-finder/pkg/baseline"
	"github.com/release-baseline-finder/pkg/config"
	"github.com/release-baseline-finder/pkg/vcs"
	"github.com/release-baseline-finder/pkg/versionfile"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "release-baseline-finder",
		Short:   "Resolve the previous released version of a GitHub repository",
		Long:    `Queries a GitHub repository's release list, discards drafts, prereleases and qualified tags, and writes the most recent released version strictly below the current one to a file for compatibility-check pipelines.`,
		Version: fmt.Sprintf("%s (%s)", version, commit),
		RunE:    run,
	}

	rootCmd.PersistentFlags().String("slug", os.Getenv("GITHUB_REPOSITORY"), "GitHub repo (owner/repo)")
	rootCmd.PersistentFlags().String("api-url", "", "GitHub API base URL (for GitHub Enterprise)")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second, "HTTP request timeout")
	rootCmd.PersistentFlags().String("config", ".release-baseline.yml", "Path to config file")
	rootCmd.PersistentFlags().StringSlice("ignore-tag", nil, "Release tag(s) to exclude from evaluation")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.Flags().String("current-version", "", "Version currently being built (upper bound, exclusive)")
	rootCmd.Flags().String("version-file", "", "File to read the current version from if --current-version is omitted")
	rootCmd.Flags().String("output", "", "File to write the resolved previous version to")

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newLatestCmd())
	rootCmd.AddCommand(newCacheKeyCmd())
	return rootCmd
}

// setup prepares the logger and merged configuration shared by all
// commands.
func setup(cmd *cobra.Command) (*slog.Logger, *config.Config) {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))

	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Warn("could not load config file, using defaults", "path", cfgPath, "err", err)
		cfg = config.Default()
	}
	cfg = config.MergeFlags(cfg, cmd.Flags())
	return log, cfg
}

func run(cmd *cobra.Command, args []string) error {
	log, cfg := setup(cmd)
	if cfg.Slug == "" {
		return fmt.Errorf("no repository slug; set --slug, GITHUB_REPOSITORY or the config file")
	}

	current, _ := cmd.Flags().GetString("current-version")
	if current == "" {
		path, _ := cmd.Flags().GetString("version-file")
		if path == "" {
			return fmt.Errorf("no current version; set --current-version or --version-file")
		}
		var err error
		if current, err = versionfile.Read(path); err != nil {
			return fmt.Errorf("read current version: %w", err)
		}
		log.Debug("read current version from file", "path", path, "version", current)
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	client := vcs.NewReleasesClient(cfg.APIBaseURL, timeout)

	body, err := client.FetchReleases(cmd.Context(), cfg.Slug)
	if err != nil {
		return err
	}

	previous, err := baseline.NewResolver(log, cfg).Previous(body, current)
	if err != nil {
		return err
	}

	if err := os.WriteFile(cfg.Output, []byte(previous.String()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", cfg.Output, err)
	}
	log.Debug("wrote previous version", "path", cfg.Output)

	fmt.Fprintln(cmd.OutOrStdout(), previous.String())
	return nil
}
