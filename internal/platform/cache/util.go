package cache

import (
	"os"
	"strconv"
	"time"
)

// QuoteTTL returns the cache lifetime for quotes, read from the
// QUOTE_CACHE_TTL environment variable in seconds. Quotes go stale fast,
// so the default is short.
func QuoteTTL() time.Duration {
	if v := os.Getenv("QUOTE_CACHE_TTL"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return time.Minute
}
