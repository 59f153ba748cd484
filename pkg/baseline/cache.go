package baseline

import (
	"fmt"

	"github.com/release-baseline-finder/pkg/vcs"
)

// CacheWindowSeconds is the width of the timestamp bucket used to key
// external incremental-build caches: invocations within the same window
// count as identical inputs.
const CacheWindowSeconds = 3600

// CacheEpoch buckets a Unix timestamp to the start of its cache window.
func CacheEpoch(nowSeconds int64) int64 {
	return nowSeconds / CacheWindowSeconds * CacheWindowSeconds
}

// CacheKey combines the normalized repository slug with the bucketed
// timestamp into a key the surrounding build system can cache on.
func CacheKey(slug string, nowSeconds int64) string {
	return fmt.Sprintf("%s@%d", vcs.NormalizeSlug(slug), CacheEpoch(nowSeconds))
}
