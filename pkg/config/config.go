package config

import (
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Slug       string   `yaml:"slug"`
	Output     string   `yaml:"output"`
	Format     string   `yaml:"format"`
	APIBaseURL string   `yaml:"api_url"`
	IgnoreTags []string `yaml:"ignore_tags"`
}

func Default() *Config {
	return &Config{
		Output: "previous-version.txt",
		Format: "table",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MergeFlags overlays set flag values onto cfg. Flags missing from the
// given set are skipped, so subcommands with partial flag sets can share it.
func MergeFlags(cfg *Config, flags *pflag.FlagSet) *Config {
	if v, err := flags.GetString("slug"); err == nil && v != "" {
		cfg.Slug = v
	}
	if v, err := flags.GetString("output"); err == nil && v != "" {
		cfg.Output = v
	}
	if v, err := flags.GetString("format"); err == nil && v != "" {
		cfg.Format = v
	}
	if v, err := flags.GetString("api-url"); err == nil && v != "" {
		cfg.APIBaseURL = v
	}
	if v, err := flags.GetStringSlice("ignore-tag"); err == nil && len(v) > 0 {
		cfg.IgnoreTags = append(cfg.IgnoreTags, v...)
	}
	return cfg
}
