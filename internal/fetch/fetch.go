// Package fetch retrieves raw page bodies over HTTP. A fetch is a single GET
// with no retries; any failure is reported as apperror.FetchFailure.
package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ahmethakanbesel/crypto-price-api/internal/apperror"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

var tracer = otel.Tracer("github.com/ahmethakanbesel/crypto-price-api/internal/fetch")

// Fetcher returns the body of the page at url.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Client is a Fetcher backed by resty.
type Client struct {
	client    *resty.Client
	userAgent string
	timeout   time.Duration
}

func New(opts ...Option) *Client {
	c := &Client{
		client:    resty.New(),
		userAgent: defaultUserAgent,
	}
	for _, o := range opts {
		o(c)
	}

	c.client.
		SetRetryCount(0).
		SetHeader("User-Agent", c.userAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	if c.timeout > 0 {
		c.client.SetTimeout(c.timeout)
	}
	instrument(c.client)
	return c
}

type Option func(*Client)

// WithHTTPClient makes the fetcher send requests through hc.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = resty.NewWithClient(hc) }
}

func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithTimeout bounds each fetch. Zero leaves the request unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	res, err := c.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return "", apperror.Wrap(apperror.FetchFailure, "fetch page", err)
	}
	if res.IsError() {
		return "", apperror.New(apperror.FetchFailure, fmt.Sprintf("fetch page: HTTP %d from %s", res.StatusCode(), url))
	}

	body := res.String()
	if body == "" {
		return "", apperror.New(apperror.FetchFailure, "fetch page: empty body from "+url)
	}
	return body, nil
}

func instrument(client *resty.Client) {
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		ctx, _ := tracer.Start(req.Context(), "fetch "+req.Method,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(attribute.String("http.url", req.URL)),
		)
		slog.DebugContext(ctx, "start request", "method", req.Method, "url", req.URL)
		req.SetContext(ctx)
		return nil
	})

	client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		ctx := res.Request.Context()
		span := trace.SpanFromContext(ctx)
		defer span.End()

		span.SetAttributes(
			attribute.Int("http.status_code", res.StatusCode()),
			attribute.Int("http.response_size", len(res.Body())),
		)
		if res.IsError() {
			span.SetStatus(codes.Error, res.Status())
		}
		slog.DebugContext(ctx, "request finished",
			"method", res.Request.Method,
			"url", res.Request.URL,
			"status", res.StatusCode(),
			"duration", res.Time().String(),
		)
		return nil
	})

	client.OnError(func(req *resty.Request, err error) {
		ctx := req.Context()
		span := trace.SpanFromContext(ctx)
		defer span.End()

		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		slog.ErrorContext(ctx, "request failed", "method", req.Method, "url", req.URL, "error", err)
	})
}
