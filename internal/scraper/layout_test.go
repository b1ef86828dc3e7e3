package scraper

import (
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ahmethakanbesel/crypto-price-api/internal/apperror"
	"github.com/ahmethakanbesel/crypto-price-api/internal/metric"
)

var testLayout = Layout{
	Table:  regexp.MustCompile(`(?is)<tbody>(.*)</tbody>`),
	Row:    regexp.MustCompile(`(?i)<tr.*?/tr>`),
	RowEnd: "</tr>",
	Rows: []RowRule{
		{Pattern: regexp.MustCompile(`(?i)<td>\$(.*)</td>`), Metrics: []metric.Metric{metric.Price}},
		{Pattern: regexp.MustCompile(`(?i)<td>(.*)</td>`), Metrics: []metric.Metric{metric.PriceChange}},
		{Pattern: regexp.MustCompile(`(?i)<td>\$(.*) - \$(.*)</td>`), Metrics: []metric.Metric{metric.Low24h, metric.High24h}},
		{Pattern: regexp.MustCompile(`(?i)<td>(.*)</td>`), Metrics: []metric.Metric{metric.TradingVolume}},
		{Pattern: regexp.MustCompile(`(?i)<td>(.*)</td>`), Metrics: []metric.Metric{metric.MarketCap}},
		{Pattern: regexp.MustCompile(`(?i)<td>(.*)</td>`), Metrics: []metric.Metric{metric.Dominance}},
		{Pattern: regexp.MustCompile(`(?i)<td>(#.*)</td>`), Metrics: []metric.Metric{metric.Rank}, Prefix: "#"},
	},
}

func row(cell string) string { return "<tr><th>x</th><td>" + cell + "</td></tr>" }

func TestExtractTableBody(t *testing.T) {
	page := "<html><TBODY>\n<tr>a</tr>\n</TBODY></html>"
	got, err := ExtractTableBody(page, testLayout)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "\n<tr>a</tr>\n" {
		t.Errorf("got %q", got)
	}
}

func TestExtractTableBody_GreedyToLastClosingTag(t *testing.T) {
	// Known fragility: a second table body is swallowed into the capture.
	page := "<tbody><tr>first</tr></tbody><p>between</p><tbody><tr>second</tr></tbody>"
	got, err := ExtractTableBody(page, testLayout)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<tr>first</tr></tbody><p>between</p><tbody><tr>second</tr>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExtractTableBody_Failures(t *testing.T) {
	for _, page := range []string{"", "<table><tr></tr></table>", "<tbody></tbody>"} {
		_, err := ExtractTableBody(page, testLayout)
		if !apperror.Is(err, apperror.ExtractionFailure) {
			t.Errorf("page %q: expected ExtractionFailure, got %v", page, err)
		}
	}
}

func TestSplitRows_KeepsFirstSeven(t *testing.T) {
	var b strings.Builder
	for range 9 {
		b.WriteString(row("1"))
	}
	rows := SplitRows(b.String(), testLayout)
	if len(rows) != MaxRows {
		t.Fatalf("expected %d rows, got %d", MaxRows, len(rows))
	}
	if rows[0] != row("1") {
		t.Errorf("first row = %q", rows[0])
	}
}

func TestParseRows(t *testing.T) {
	body := row("$1,234.56") +
		row("-12.5") +
		row("$1,000.10 - $1,300") +
		row("25,000,000") +
		row("1,000,000,000") +
		row("45.2") +
		row("#1") +
		row("$999") // ignored: beyond the seventh row

	got := ParseRows(body, testLayout)
	want := metric.Record{
		Price:         metric.Of(1234.56),
		PriceChange:   metric.Of(-12.5),
		Low24h:        metric.Of(1000.10),
		High24h:       metric.Of(1300),
		TradingVolume: metric.Of(25000000),
		MarketCap:     metric.Of(1000000000),
		Dominance:     metric.Of(45.2),
		Rank:          metric.Of(1),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRows_Deterministic(t *testing.T) {
	body := row("$5") + row("1")
	first := ParseRows(body, testLayout)
	for range 3 {
		if diff := cmp.Diff(first, ParseRows(body, testLayout)); diff != "" {
			t.Fatalf("non-deterministic parse (-first +again):\n%s", diff)
		}
	}
}

func TestParseRows_ShortTableKeepsZeroDefaults(t *testing.T) {
	got := ParseRows(row("$10")+row("2"), testLayout)

	want := metric.NewRecord()
	want.Price = metric.Of(10)
	want.PriceChange = metric.Of(2)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRows_UnmatchedRowIsUnavailable(t *testing.T) {
	// Row 0 lacks the "$" the price pattern requires; row 2 lacks the separator.
	got := ParseRows(row("10")+row("2")+row("$1"), testLayout)

	if got.Price.Available() {
		t.Errorf("price = %v, want unavailable", got.Price)
	}
	if got.Low24h.Available() || got.High24h.Available() {
		t.Errorf("low/high = %v/%v, want unavailable", got.Low24h, got.High24h)
	}
	if !got.PriceChange.Equal(metric.Of(2)) {
		t.Errorf("priceChange = %v, want 2", got.PriceChange)
	}
}

func TestParseRows_RowsSpanningLinesAreSkipped(t *testing.T) {
	// Rows are matched without crossing newlines, so a multi-line row is not a row.
	body := "<tr><td>$1\n</td></tr>" + row("$2")
	got := ParseRows(body, testLayout)
	if !got.Price.Equal(metric.Of(2)) {
		t.Errorf("price = %v, want 2", got.Price)
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want metric.Value
	}{
		{"1,234.56", metric.Of(1234.56)},
		{"42", metric.Of(42)},
		{"0", metric.Of(0)},
		{" 3.5 ", metric.Of(3.5)},
		{"45.20%", metric.Of(45.2)},
		{"-0.75", metric.Of(-0.75)},
		{"", metric.Unavailable},
		{"n/a", metric.Unavailable},
	}

	for _, tt := range tests {
		if got := ParseNumber(tt.in); !got.Equal(tt.want) {
			t.Errorf("ParseNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
