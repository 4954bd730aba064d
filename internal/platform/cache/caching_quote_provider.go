// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/amyzliao/finance/internal/feature/quote/domain/entity"
	"github.com/amyzliao/finance/internal/feature/quote/usecase"
)

// CachingQuoteProvider decorates a QuoteProvider with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying provider. Only successful lookups are cached;
// unknown symbols and provider failures always go back to the source.
type CachingQuoteProvider struct {
	inner     usecase.QuoteProvider
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that CachingQuoteProvider implements QuoteProvider.
var _ usecase.QuoteProvider = (*CachingQuoteProvider)(nil)

// NewCachingQuoteProvider decorates a QuoteProvider with Redis caching.
// If ttl is 0, it defaults to 1 minute. If namespace is empty, it uses
// "quotes".
func NewCachingQuoteProvider(rdb *redis.Client, ttl time.Duration, inner usecase.QuoteProvider, namespace string) *CachingQuoteProvider {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if namespace == "" {
		namespace = "quotes"
	}
	return &CachingQuoteProvider{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Lookup retrieves a quote, checking the cache first then falling back to
// the underlying provider.
func (c *CachingQuoteProvider) Lookup(ctx context.Context, symbol string) (*entity.Quote, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Lookup(ctx, symbol)
	}

	key := c.cacheKey(symbol)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Quote
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the provider
	out, err := c.inner.Lookup(ctx, symbol)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates the cache key for a symbol.
func (c *CachingQuoteProvider) cacheKey(symbol string) string {
	return fmt.Sprintf("%s:%s", c.namespace, safe(symbol))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
