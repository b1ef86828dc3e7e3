package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ahmethakanbesel/crypto-price-api/internal/apperror"
)

func TestFetch(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if ua := r.Header.Get("User-Agent"); ua != "test-agent" {
			t.Errorf("expected User-Agent test-agent, got %q", ua)
		}
		_, _ = w.Write([]byte("<html>ok</html>"))
	}))
	defer ts.Close()

	c := New(WithHTTPClient(ts.Client()), WithUserAgent("test-agent"))

	body, err := c.Fetch(context.Background(), ts.URL+"/currencies/bitcoin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body != "<html>ok</html>" {
		t.Errorf("unexpected body %q", body)
	}
	if calls.Load() != 1 {
		t.Errorf("expected exactly 1 request, got %d", calls.Load())
	}
}

func TestFetch_HTTPErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c := New(WithHTTPClient(ts.Client()))

	_, err := c.Fetch(context.Background(), ts.URL)
	if !apperror.Is(err, apperror.FetchFailure) {
		t.Fatalf("expected FetchFailure, got %v", err)
	}
	if calls.Load() != 1 {
		t.Errorf("expected exactly 1 request, got %d", calls.Load())
	}
}

func TestFetch_EmptyBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := New(WithHTTPClient(ts.Client()))

	_, err := c.Fetch(context.Background(), ts.URL)
	if !apperror.Is(err, apperror.FetchFailure) {
		t.Fatalf("expected FetchFailure, got %v", err)
	}
}

func TestFetch_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	c := New(WithTimeout(2 * time.Second))

	_, err := c.Fetch(context.Background(), url)
	if !apperror.Is(err, apperror.FetchFailure) {
		t.Fatalf("expected FetchFailure, got %v", err)
	}
}

func TestFetch_CancelledContext(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("late"))
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(WithHTTPClient(ts.Client()))
	if _, err := c.Fetch(ctx, ts.URL); !apperror.Is(err, apperror.FetchFailure) {
		t.Fatalf("expected FetchFailure, got %v", err)
	}
}
