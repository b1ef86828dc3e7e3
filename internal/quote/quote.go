package quote

import (
	"strings"

	"github.com/ahmethakanbesel/crypto-price-api/internal/metric"
	"github.com/ahmethakanbesel/crypto-price-api/internal/scraper"
)

const DefaultCoin = "bitcoin"

// Description summarizes what the library does.
func Description() string {
	return "A library for easy access to the current price of digital currencies."
}

// Query names a coin on a provider. It is a value: changing either part
// produces a new Query.
type Query struct {
	coin     string
	provider scraper.Provider
}

// NewQuery applies the defaults for an empty coin or provider.
func NewQuery(coin string, provider scraper.Provider) Query {
	if strings.TrimSpace(coin) == "" {
		coin = DefaultCoin
	}
	if provider == "" {
		provider = scraper.DefaultProvider
	}
	return Query{coin: coin, provider: provider}
}

func (q Query) Coin() string                { return q.coin }
func (q Query) Provider() scraper.Provider { return q.provider }

func (q Query) WithCoin(coin string) Query { return NewQuery(coin, q.provider) }

func (q Query) WithProvider(p scraper.Provider) Query { return NewQuery(q.coin, p) }

// Item is the outcome of one query in a batch.
type Item struct {
	Coin     string           `json:"coin"`
	Provider scraper.Provider `json:"provider"`
	Result   metric.Result    `json:"result,omitempty"`
	Error    string           `json:"error,omitempty"`
	err      error
}

func (i Item) Err() error { return i.err }
