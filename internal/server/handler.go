package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ahmethakanbesel/crypto-price-api/internal/apperror"
	"github.com/ahmethakanbesel/crypto-price-api/internal/metric"
	"github.com/ahmethakanbesel/crypto-price-api/internal/quote"
	"github.com/ahmethakanbesel/crypto-price-api/internal/scraper"
)

const maxBatchCoins = 50

type handler struct {
	quoteSvc *quote.Service
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) listProviders(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.quoteSvc.Providers())
}

func (h *handler) getQuote(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != "" && format != "json" && format != "csv" {
		writeError(w, http.StatusBadRequest, "format must be json or csv")
		return
	}

	q, sel, ok := parseQuery(w, r, r.PathValue("coin"))
	if !ok {
		return
	}

	res, err := h.quoteSvc.GetData(r.Context(), q, sel)
	if err != nil {
		writeAppError(w, err)
		return
	}

	if format == "csv" {
		writeCSV(w, q.Coin(), res)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (h *handler) listQuotes(w http.ResponseWriter, r *http.Request) {
	coins := splitList(r.URL.Query().Get("coins"))
	if len(coins) == 0 {
		writeError(w, http.StatusBadRequest, "coins query parameter is required")
		return
	}
	if len(coins) > maxBatchCoins {
		writeError(w, http.StatusBadRequest, "too many coins")
		return
	}

	first, sel, ok := parseQuery(w, r, coins[0])
	if !ok {
		return
	}
	queries := make([]quote.Query, len(coins))
	for i, c := range coins {
		queries[i] = first.WithCoin(c)
	}

	items, err := h.quoteSvc.GetMany(r.Context(), queries, sel)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *handler) getURL(w http.ResponseWriter, r *http.Request) {
	q, _, ok := parseQuery(w, r, r.PathValue("coin"))
	if !ok {
		return
	}

	u, err := h.quoteSvc.URL(q)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": u})
}

// parseQuery reads the provider and fields parameters. It writes the error
// response itself and reports false when the request is invalid.
func parseQuery(w http.ResponseWriter, r *http.Request, coin string) (quote.Query, metric.Selection, bool) {
	provider, err := scraper.ParseProvider(r.URL.Query().Get("provider"))
	if err != nil {
		writeAppError(w, err)
		return quote.Query{}, metric.Selection{}, false
	}

	var sel metric.Selection
	if r.URL.Query().Get("all") == "true" {
		sel = metric.AllMetrics()
	} else {
		sel, err = metric.ParseSelection(r.URL.Query().Get("fields"))
		if err != nil {
			writeAppError(w, err)
			return quote.Query{}, metric.Selection{}, false
		}
	}

	return quote.NewQuery(strings.TrimSpace(coin), provider), sel, true
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func writeAppError(w http.ResponseWriter, err error) {
	var ae *apperror.AppError
	if errors.As(err, &ae) {
		writeError(w, ae.HTTPStatus(), err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}
