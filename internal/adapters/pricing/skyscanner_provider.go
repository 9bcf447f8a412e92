package pricing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"flight-route-service/internal/domain"
	"flight-route-service/internal/platform/obs"
	"flight-route-service/internal/ports"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	defaultBaseURL        = "https://partners.api.skyscanner.net"
	indicativePricesPath  = "/apiservices/v3/flights/indicative/search"
	defaultRequestTimeout = 10 * time.Second
	rateLimitBackoff      = 250 * time.Millisecond
)

// SkyScannerProvider implements PriceProvider against the SkyScanner
// indicative prices API.
//
// It coordinates:
//   - An in-memory memo of every flight already priced (identical flights
//     never trigger two external queries)
//   - An optional persistent price cache consulted behind the memo
//   - Fixed-delay retry on rate-limit responses
//
// The provider is safe for concurrent use; concurrent requests for the same
// flight collapse into a single upstream call.
type SkyScannerProvider struct {
	session  *http.Client
	apiKey   string
	baseURL  string
	market   string
	locale   string
	currency string
	backoff  time.Duration

	mu   sync.Mutex
	memo map[domain.Flight]domain.Quote

	inflight singleflight.Group

	cache ports.PriceCache
	log   *zap.Logger
}

func NewSkyScannerProvider(
	apiKey string,
	baseURL string,
	cache ports.PriceCache,
	log *zap.Logger,
) (*SkyScannerProvider, error) {
	if apiKey == "" {
		return nil, errors.New("skyscanner api key is empty")
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if log == nil {
		log = zap.NewNop()
	}

	provider := &SkyScannerProvider{
		session:  &http.Client{Timeout: defaultRequestTimeout},
		apiKey:   apiKey,
		baseURL:  baseURL,
		market:   "US",
		locale:   "en-US",
		currency: "USD",
		backoff:  rateLimitBackoff,
		memo:     make(map[domain.Flight]domain.Quote),
		cache:    cache,
		log:      log,
	}

	return provider, nil
}

// GetPrice returns the cheapest quote for one flight. Repeated calls with
// an identical flight are served from the memo.
func (p *SkyScannerProvider) GetPrice(ctx context.Context, flight domain.Flight) (domain.Quote, error) {
	if flight.Origin == "" || flight.Destination == "" {
		return domain.Quote{}, errors.New("get price: origin and destination must be non-empty")
	}
	if flight.Date.IsZero() {
		return domain.Quote{}, errors.New("get price: flight date must be set")
	}

	p.mu.Lock()
	if quote, ok := p.memo[flight]; ok {
		p.mu.Unlock()
		return quote, nil
	}
	p.mu.Unlock()

	// singleflight guarantees at most one in-flight upstream request per
	// flight key even when legs are priced in parallel.
	v, err, _ := p.inflight.Do(flight.String(), func() (any, error) {
		return p.priceUncached(ctx, flight)
	})
	if err != nil {
		return domain.Quote{}, fmt.Errorf("get price %s: %w", flight, err)
	}

	return v.(domain.Quote), nil
}

// GetPrices prices several flights through the same memo and cache path.
// Quotes are returned in input order; the first failure aborts the batch.
func (p *SkyScannerProvider) GetPrices(ctx context.Context, flights []domain.Flight) ([]domain.Quote, error) {
	quotes := make([]domain.Quote, 0, len(flights))
	for _, f := range flights {
		q, err := p.GetPrice(ctx, f)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

func (p *SkyScannerProvider) priceUncached(ctx context.Context, flight domain.Flight) (domain.Quote, error) {
	if p.cache != nil {
		quote, ok, err := p.cache.Get(ctx, flight)
		if err != nil {
			return domain.Quote{}, fmt.Errorf("price cache get: %w", err)
		}
		if ok {
			p.remember(flight, quote)
			return quote, nil
		}
	}

	quote, err := p.fetchQuote(ctx, flight)
	if err != nil {
		return domain.Quote{}, err
	}

	p.remember(flight, quote)

	if p.cache != nil {
		if err := p.cache.Put(ctx, flight, quote); err != nil {
			p.log.Warn("price cache write failed",
				zap.String("flight", flight.String()),
				zap.Error(err),
			)
		}
	}

	return quote, nil
}

func (p *SkyScannerProvider) remember(flight domain.Flight, quote domain.Quote) {
	p.mu.Lock()
	p.memo[flight] = quote
	p.mu.Unlock()
}

func (p *SkyScannerProvider) fetchQuote(ctx context.Context, flight domain.Flight) (_ domain.Quote, err error) {
	defer obs.Time(ctx, "skyscanner.fetchQuote")(&err)

	endpoint := p.baseURL + indicativePricesPath

	payload, err := json.Marshal(newIndicativeRequest(p.market, p.locale, p.currency, []domain.Flight{flight}))
	if err != nil {
		return domain.Quote{}, fmt.Errorf("marshal indicative request: %w", err)
	}

	resp, err := p.doWithRateLimitRetry(ctx, func() (*http.Request, error) {
		return p.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return domain.Quote{}, fmt.Errorf("indicative prices request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("read indicative prices response: %w", err)
	}

	quote, err := parseQuotes(body)
	if err != nil {
		return domain.Quote{}, err
	}

	return quote, nil
}
