// Package coinmarketcap scrapes coin metrics from CoinMarketCap currency
// pages. The rules target one specific price statistics table and break
// whenever the site changes its markup.
package coinmarketcap

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/ahmethakanbesel/crypto-price-api/internal/apperror"
	"github.com/ahmethakanbesel/crypto-price-api/internal/fetch"
	"github.com/ahmethakanbesel/crypto-price-api/internal/metric"
	"github.com/ahmethakanbesel/crypto-price-api/internal/scraper"
)

const defaultBaseURL = "https://www.coinmarketcap.com/currencies/"

// Layout is the price statistics table of a currency page. Rows in order:
// price, price change, 24h low and high, trading volume, market cap,
// dominance, rank.
var Layout = scraper.Layout{
	Table:  regexp.MustCompile(`(?is)<tbody>(.*)</tbody>`),
	Row:    regexp.MustCompile(`(?i)<tr.*?/tr>`),
	RowEnd: "</tr>",
	Rows: []scraper.RowRule{
		{Pattern: regexp.MustCompile(`(?i)<td>\$(.*)</td>`), Metrics: []metric.Metric{metric.Price}},
		{Pattern: regexp.MustCompile(`(?i)<span>\$(.*)</span><div>`), Metrics: []metric.Metric{metric.PriceChange}},
		{Pattern: regexp.MustCompile(`(?i)<div>\$(.*)<!.*\$(.*)</div`), Metrics: []metric.Metric{metric.Low24h, metric.High24h}},
		{Pattern: regexp.MustCompile(`(?i)span>\$(.*)</span><div`), Metrics: []metric.Metric{metric.TradingVolume}},
		{Pattern: regexp.MustCompile(`(?i)td>(.*)</td`), Metrics: []metric.Metric{metric.MarketCap}},
		{Pattern: regexp.MustCompile(`(?i)span .*>(.*)<!`), Metrics: []metric.Metric{metric.Dominance}},
		{Pattern: regexp.MustCompile(`(?i)td>(#.*)</td`), Metrics: []metric.Metric{metric.Rank}, Prefix: "#"},
	},
}

type Scraper struct {
	fetcher fetch.Fetcher
	baseURL string
}

func New(opts ...Option) *Scraper {
	s := &Scraper{
		baseURL: defaultBaseURL,
	}
	for _, o := range opts {
		o(s)
	}
	if s.fetcher == nil {
		s.fetcher = fetch.New()
	}
	return s
}

type Option func(*Scraper)

func WithFetcher(f fetch.Fetcher) Option {
	return func(s *Scraper) { s.fetcher = f }
}

// WithBaseURL overrides the page prefix the coin identifier is appended to.
func WithBaseURL(u string) Option {
	return func(s *Scraper) {
		if u != "" {
			s.baseURL = u
		}
	}
}

func (s *Scraper) Provider() scraper.Provider { return scraper.CoinMarketCap }

// URL replaces every space in coin with a dash and appends it to the base
// URL. No other escaping is applied.
func (s *Scraper) URL(coin string) string {
	return s.baseURL + strings.ReplaceAll(coin, " ", "-")
}

func (s *Scraper) Scrape(ctx context.Context, coin string) (metric.Record, error) {
	if coin == "" {
		return metric.Record{}, apperror.New(apperror.BadRequest, "coin cannot be empty")
	}

	url := s.URL(coin)
	page, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return metric.Record{}, err
	}

	body, err := scraper.ExtractTableBody(page, Layout)
	if err != nil {
		return metric.Record{}, fmt.Errorf("%s: %w", url, err)
	}

	rec := scraper.ParseRows(body, Layout)
	slog.Info("retrieved coinmarketcap data", "coin", coin, "url", url,
		"rows", len(scraper.SplitRows(body, Layout)))
	return rec, nil
}
