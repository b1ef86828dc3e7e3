// Package quote runs the scrape pipeline for a coin: build the URL, fetch the
// page, extract the metrics and project them onto the requested fields.
package quote

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/ahmethakanbesel/crypto-price-api/internal/apperror"
	"github.com/ahmethakanbesel/crypto-price-api/internal/metric"
	"github.com/ahmethakanbesel/crypto-price-api/internal/scraper"
)

var tracer = otel.Tracer("github.com/ahmethakanbesel/crypto-price-api/internal/quote")

type Service struct {
	registry *scraper.Registry
	workers  int
}

func NewService(registry *scraper.Registry, opts ...Option) *Service {
	s := &Service{
		registry: registry,
		workers:  5,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

type Option func(*Service)

// WithWorkers bounds how many batch queries run at once.
func WithWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.workers = n
		}
	}
}

func (s *Service) Providers() []scraper.Provider {
	return s.registry.Providers()
}

// URL builds the page address for q.
func (s *Service) URL(q Query) (string, error) {
	sc, err := s.registry.Get(q.Provider())
	if err != nil {
		return "", err
	}
	return sc.URL(q.Coin()), nil
}

// Record scrapes every metric for q.
func (s *Service) Record(ctx context.Context, q Query) (metric.Record, error) {
	ctx, span := tracer.Start(ctx, "quote.record")
	defer span.End()
	span.SetAttributes(
		attribute.String("coin", q.Coin()),
		attribute.String("provider", string(q.Provider())),
	)

	sc, err := s.registry.Get(q.Provider())
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return metric.Record{}, err
	}

	rec, err := sc.Scrape(ctx, q.Coin())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "scrape failed")
		return metric.Record{}, err
	}
	return rec, nil
}

// GetData returns the selected metrics for q. A failed fetch or a page whose
// table cannot be located yields an error and no partial result.
func (s *Service) GetData(ctx context.Context, q Query, sel metric.Selection) (metric.Result, error) {
	rec, err := s.Record(ctx, q)
	if err != nil {
		slog.Error("error retrieving quote", "coin", q.Coin(), "provider", q.Provider(),
			"code", apperror.CodeOf(err), "error", err)
		return nil, fmt.Errorf("get data for %s: %w", q.Coin(), err)
	}

	res := metric.Select(rec, sel)
	slog.Info("retrieved quote", "coin", q.Coin(), "provider", q.Provider(), "fields", sel.String())
	return res, nil
}

// GetMany runs the queries concurrently and returns one item per query in
// the same order. A failed query is reported in its item and does not stop
// the others.
func (s *Service) GetMany(ctx context.Context, queries []Query, sel metric.Selection) ([]Item, error) {
	items := make([]Item, len(queries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, q := range queries {
		g.Go(func() error {
			item := Item{Coin: q.Coin(), Provider: q.Provider()}
			res, err := s.GetData(ctx, q, sel)
			if err != nil {
				item.err = err
				item.Error = err.Error()
			} else {
				item.Result = res
			}
			items[i] = item
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}
