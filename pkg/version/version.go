package version

import (
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Parse interprets s as a semantic version. Missing components are padded
// ("2" parses as "2.0.0", "1.2" as "1.2.0") so release tags that omit
// trailing zeros still take part in the same total order.
func Parse(s string) (*semver.Version, error) {
	return semver.NewVersion(normalize(s))
}

func normalize(s string) string {
	if strings.ContainsAny(s, "-+") {
		return s
	}
	switch strings.Count(s, ".") {
	case 0:
		return s + ".0.0"
	case 1:
		return s + ".0"
	}
	return s
}

// StripTagPrefix removes exactly one leading "v" from a release tag.
func StripTagPrefix(tag string) string {
	if strings.HasPrefix(tag, "v") {
		return tag[1:]
	}
	return tag
}

// TrimQualifier cuts s at the first "-", dropping qualifier suffixes such
// as "-SNAPSHOT" or "-rc1".
func TrimQualifier(s string) string {
	if i := strings.Index(s, "-"); i >= 0 {
		return s[:i]
	}
	return s
}

// Sort orders versions ascending, oldest first.
func Sort(vs []*semver.Version) {
	sort.Sort(semver.Collection(vs))
}
