package twelvedata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/amyzliao/finance/internal/feature/quote/adapters/twelvedata/dto"
	"github.com/amyzliao/finance/internal/feature/quote/domain"
	"github.com/amyzliao/finance/internal/feature/quote/domain/entity"
	"github.com/amyzliao/finance/internal/feature/quote/usecase"
	"github.com/amyzliao/finance/internal/shared/ratelimiter"
)

// Provider is a QuoteProvider implementation that fetches live quotes from
// the Twelve Data /quote endpoint.
type Provider struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// Compile-time check that Provider implements QuoteProvider.
var _ usecase.QuoteProvider = (*Provider)(nil)

// NewProvider creates a new instance of Provider with the given config,
// HTTP client and outbound rate limiter. The limiter may be nil.
func NewProvider(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *Provider {
	return &Provider{cfg: cfg, client: client, limiter: limiter}
}

// Lookup fetches the current quote for a symbol from Twelve Data.
// An in-band "error" status from the API is reported as
// domain.ErrUnknownSymbol; transport and decoding failures are returned
// as-is so callers can tell a bad symbol from a provider outage.
func (p *Provider) Lookup(ctx context.Context, symbol string) (*entity.Quote, error) {
	if p.limiter != nil {
		p.limiter.WaitIfNeeded()
	}

	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("apikey", p.cfg.APIKey)
	u := fmt.Sprintf("%s/quote?%s", p.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("twelvedata http %d", res.StatusCode)
	}

	var body dto.QuoteResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Status == "error" {
		// Twelve Data reports unresolvable symbols with code 400/404.
		slog.Warn("twelvedata rejected symbol", "symbol", symbol, "code", body.Code, "message", body.Message)
		return nil, domain.ErrUnknownSymbol
	}
	if body.Symbol == "" || body.Close == "" {
		return nil, fmt.Errorf("twelvedata: incomplete quote for %q", symbol)
	}

	price, err := decimal.NewFromString(body.Close)
	if err != nil {
		return nil, fmt.Errorf("parse price %q: %w", body.Close, err)
	}

	return &entity.Quote{
		Symbol: body.Symbol,
		Name:   body.Name,
		Price:  price,
	}, nil
}
