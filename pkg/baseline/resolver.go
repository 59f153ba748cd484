package baseline

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/release-baseline-finder/pkg/config"
	"github.com/release-baseline-finder/pkg/version"
)

// Release is the subset of a GitHub release record consumed here. All
// other fields of the API payload are ignored; absent booleans are false.
type Release struct {
	TagName    string `json:"tag_name"`
	Draft      bool   `json:"draft"`
	Prerelease bool   `json:"prerelease"`
}

// Exclusion reasons reported in Candidate.Excluded.
const (
	ExcludedDraft      = "draft"
	ExcludedPrerelease = "prerelease"
	ExcludedQualified  = "qualified tag"
	ExcludedIgnored    = "ignored"
)

// Candidate is the evaluation outcome for a single release entry. A kept
// entry carries its parsed version; an excluded one carries the reason.
type Candidate struct {
	Tag      string          `json:"tag"`
	Version  *semver.Version `json:"version,omitempty"`
	Excluded string          `json:"excluded,omitempty"`
}

// ParseError reports input that could not be interpreted: the release-list
// body or the current version supplied by the caller.
type ParseError struct {
	Subject string
	Err     error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parse %s: %v", e.Subject, e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

// NotFoundError indicates that no published release orders strictly below
// the current version.
type NotFoundError struct {
	Current string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find a previous version for %s", e.Current)
}

// Resolver evaluates release lists and selects compatibility baselines.
type Resolver struct {
	log    *slog.Logger
	ignore map[string]bool
}

// NewResolver returns a resolver honoring cfg's ignore list. Both
// arguments may be nil.
func NewResolver(log *slog.Logger, cfg *config.Config) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	r := &Resolver{log: log, ignore: make(map[string]bool)}
	if cfg != nil {
		for _, tag := range cfg.IgnoreTags {
			r.ignore[tag] = true
		}
	}
	return r
}

// Evaluate parses a release-list payload and classifies every entry,
// keeping the API order.
func (r *Resolver) Evaluate(releasesJSON []byte) ([]Candidate, error) {
	var releases []Release
	if err := json.Unmarshal(releasesJSON, &releases); err != nil {
		return nil, &ParseError{Subject: "release list", Err: err}
	}

	candidates := make([]Candidate, 0, len(releases))
	for _, rel := range releases {
		candidates = append(candidates, r.evaluate(rel))
	}
	return candidates, nil
}

func (r *Resolver) evaluate(rel Release) Candidate {
	c := Candidate{Tag: rel.TagName}
	switch {
	case rel.Draft:
		c.Excluded = ExcludedDraft
		return c
	case rel.Prerelease:
		c.Excluded = ExcludedPrerelease
		return c
	case r.ignore[rel.TagName]:
		c.Excluded = ExcludedIgnored
		return c
	}

	stripped := version.StripTagPrefix(rel.TagName)
	if strings.Contains(stripped, "-") {
		c.Excluded = ExcludedQualified
		return c
	}

	v, err := version.Parse(stripped)
	if err != nil {
		// Pre-filtering leaves almost nothing unparseable; a stray tag
		// like "latest" must not fail the whole build.
		r.log.Warn("skipping unparseable release tag", "tag", rel.TagName, "err", err)
		c.Excluded = fmt.Sprintf("unparseable tag: %v", err)
		return c
	}
	c.Version = v
	return c
}

// Previous returns the greatest released version strictly less than the
// current version. The current version is trimmed at its first "-" before
// comparison, so "3.0.0-SNAPSHOT" resolves against "3.0.0". Output depends
// only on the two inputs.
func (r *Resolver) Previous(releasesJSON []byte, currentVersion string) (*semver.Version, error) {
	candidates, err := r.Evaluate(releasesJSON)
	if err != nil {
		return nil, err
	}

	released := make([]*semver.Version, 0, len(candidates))
	for _, c := range candidates {
		if c.Excluded == "" {
			released = append(released, c.Version)
		}
	}
	version.Sort(released)

	current, err := version.Parse(version.TrimQualifier(currentVersion))
	if err != nil {
		return nil, &ParseError{Subject: fmt.Sprintf("current version %q", currentVersion), Err: err}
	}

	var previous *semver.Version
	for _, v := range released {
		if v.LessThan(current) {
			previous = v
		}
	}
	if previous == nil {
		return nil, &NotFoundError{Current: current.String()}
	}
	return previous, nil
}
