package server

import (
	"encoding/csv"
	"encoding/json"
	"net/http"

	"github.com/ahmethakanbesel/crypto-price-api/internal/metric"
)

type APIResponse[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func writeJSON[T any](w http.ResponseWriter, status int, data T) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(APIResponse[T]{
		Message: "ok",
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(APIResponse[string]{
		Message: message,
		Data:    "",
	})
}

// writeCSV renders a result as metric,value lines in canonical order.
// Unavailable metrics have an empty value.
func writeCSV(w http.ResponseWriter, coin string, res metric.Result) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=quote.csv")
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"Coin", "Metric", "Value"})
	for _, m := range res.Metrics() {
		v := ""
		if res[m].Available() {
			v = res[m].String()
		}
		_ = cw.Write([]string{coin, m.String(), v})
	}
	cw.Flush()
}
