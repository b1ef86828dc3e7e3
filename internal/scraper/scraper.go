package scraper

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/ahmethakanbesel/crypto-price-api/internal/apperror"
	"github.com/ahmethakanbesel/crypto-price-api/internal/metric"
)

// Provider names a price listing website and its scraping rules.
type Provider string

const (
	CoinMarketCap Provider = "CoinMarketCap"

	DefaultProvider = CoinMarketCap
)

var providers = []Provider{CoinMarketCap}

// Providers returns the closed set of supported providers.
func Providers() []Provider {
	out := make([]Provider, len(providers))
	copy(out, providers)
	return out
}

// ParseProvider resolves a provider name. An empty name is the default provider.
func ParseProvider(name string) (Provider, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultProvider, nil
	}
	for _, p := range providers {
		if strings.EqualFold(string(p), name) {
			return p, nil
		}
	}
	return "", apperror.New(apperror.UnknownProvider, "unknown provider: "+name)
}

// Scraper turns a coin identifier into a metric record for one provider.
type Scraper interface {
	Provider() Provider
	// URL returns the page address for coin, normalized the provider's way.
	URL(coin string) string
	Scrape(ctx context.Context, coin string) (metric.Record, error)
}

type Registry struct {
	mu       sync.RWMutex
	scrapers map[Provider]Scraper
}

func NewRegistry() *Registry {
	return &Registry{
		scrapers: make(map[Provider]Scraper),
	}
}

func (r *Registry) Register(s Scraper) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scrapers[s.Provider()] = s
}

func (r *Registry) Get(p Provider) (Scraper, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.scrapers[p]
	if !ok {
		return nil, apperror.New(apperror.UnknownProvider, "no scraper registered for provider: "+string(p))
	}
	return s, nil
}

func (r *Registry) Providers() []Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Provider, 0, len(r.scrapers))
	for p := range r.scrapers {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
