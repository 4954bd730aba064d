// Package di provides dependency injection factories for creating
// application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/amyzliao/finance/internal/feature/quote/adapters/twelvedata"
	quoteusecase "github.com/amyzliao/finance/internal/feature/quote/usecase"
	"github.com/amyzliao/finance/internal/platform/cache"
	infrahttp "github.com/amyzliao/finance/internal/platform/http"
	"github.com/amyzliao/finance/internal/shared/ratelimiter"
)

// NewQuoteProvider creates the fully configured quote source: the Twelve
// Data client behind the outbound rate limiter, wrapped in the Redis cache.
// With a nil Redis client the cache layer passes straight through.
func NewQuoteProvider(rdb *redis.Client) quoteusecase.QuoteProvider {
	cfg := twelvedata.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	// Twelve Data's free tier allows 8 calls per minute.
	limiter := ratelimiter.NewRateLimiter(8, time.Minute)
	provider := twelvedata.NewProvider(cfg, httpClient, limiter)
	return cache.NewCachingQuoteProvider(rdb, cache.QuoteTTL(), provider, "quotes")
}
