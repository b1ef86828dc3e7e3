// Package metric defines the numeric data points scraped for a coin, the
// record that holds them and the selection that projects a record into a
// result.
package metric

import (
	"strings"

	"github.com/ahmethakanbesel/crypto-price-api/internal/apperror"
)

type Metric string

const (
	Price         Metric = "price"
	PriceChange   Metric = "priceChange"
	Low24h        Metric = "low24h"
	High24h       Metric = "high24h"
	TradingVolume Metric = "tradingVolume"
	MarketCap     Metric = "marketCap"
	Dominance     Metric = "dominance"
	Rank          Metric = "rank"
)

var all = []Metric{Price, PriceChange, Low24h, High24h, TradingVolume, MarketCap, Dominance, Rank}

// All returns every metric in canonical order.
func All() []Metric {
	out := make([]Metric, len(all))
	copy(out, all)
	return out
}

func (m Metric) String() string { return string(m) }

// Valid reports whether m is one of the known metrics.
func (m Metric) Valid() bool {
	return m.index() >= 0
}

func (m Metric) index() int {
	for i, known := range all {
		if known == m {
			return i
		}
	}
	return -1
}

// ParseMetric resolves a metric name, falling back to a case-insensitive match.
func ParseMetric(name string) (Metric, error) {
	name = strings.TrimSpace(name)
	if m := Metric(name); m.Valid() {
		return m, nil
	}
	for _, m := range all {
		if strings.EqualFold(string(m), name) {
			return m, nil
		}
	}
	return "", apperror.New(apperror.BadRequest, "unknown metric: "+name)
}
