package server

import (
	"net/http"

	"github.com/ahmethakanbesel/crypto-price-api/internal/quote"
)

// NewHandler creates the full HTTP handler with routes and middleware.
// Exported for use in tests (e.g., httptest.NewServer).
func NewHandler(quoteSvc *quote.Service) http.Handler {
	return newMux(quoteSvc)
}

func newMux(quoteSvc *quote.Service) http.Handler {
	h := &handler{
		quoteSvc: quoteSvc,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.health)
	mux.HandleFunc("GET /api/v1/providers", h.listProviders)
	mux.HandleFunc("GET /api/v1/quotes", h.listQuotes)
	mux.HandleFunc("GET /api/v1/quotes/{coin}", h.getQuote)
	mux.HandleFunc("GET /api/v1/urls/{coin}", h.getURL)

	// Apply middleware stack: recovery -> requestID -> tracing -> logging
	var handler http.Handler = mux
	handler = logging(handler)
	handler = tracing(handler)
	handler = requestID(handler)
	handler = recovery(handler)

	return handler
}
