package scraper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ahmethakanbesel/crypto-price-api/internal/apperror"
	"github.com/ahmethakanbesel/crypto-price-api/internal/metric"
)

// Layout describes where the metrics live in a provider's page.
//
// Both the table capture and the row mapping are tied to one page layout.
// Table is expected to be greedy, so a page with several table bodies is
// captured up to the last closing tag. Rows are mapped by position only; if
// the page reorders them, metrics are silently mis-assigned.
type Layout struct {
	Table  *regexp.Regexp
	Row    *regexp.Regexp
	RowEnd string
	Rows   []RowRule
}

// RowRule extracts metrics from one row. Capture group i+1 of Pattern feeds
// Metrics[i]; Prefix is stripped from each capture before parsing.
type RowRule struct {
	Pattern *regexp.Regexp
	Metrics []metric.Metric
	Prefix  string
}

// MaxRows is the number of leading rows that carry metrics.
const MaxRows = 7

// ExtractTableBody returns the first capture group of the layout's table
// pattern.
func ExtractTableBody(page string, l Layout) (string, error) {
	m := l.Table.FindStringSubmatch(page)
	if len(m) < 2 {
		return "", apperror.New(apperror.ExtractionFailure, "table body not found")
	}
	if m[1] == "" {
		return "", apperror.New(apperror.ExtractionFailure, "table body is empty")
	}
	return m[1], nil
}

// SplitRows breaks the table body into row fragments, keeping at most MaxRows.
func SplitRows(body string, l Layout) []string {
	if l.RowEnd != "" {
		body = strings.ReplaceAll(body, l.RowEnd, l.RowEnd+"\n")
	}
	rows := l.Row.FindAllString(body, -1)
	if len(rows) > MaxRows {
		rows = rows[:MaxRows]
	}
	return rows
}

// ParseRows maps row fragments to metrics by position. Metrics whose row is
// missing keep the zero default; metrics whose row does not match their
// pattern are unavailable.
func ParseRows(body string, l Layout) metric.Record {
	rec := metric.NewRecord()
	for i, row := range SplitRows(body, l) {
		if i >= len(l.Rows) {
			break
		}
		rule := l.Rows[i]
		m := rule.Pattern.FindStringSubmatch(row)
		for j, name := range rule.Metrics {
			capture := ""
			if j+1 < len(m) {
				capture = m[j+1]
			}
			rec.Set(name, ParseNumber(strings.TrimPrefix(capture, rule.Prefix)))
		}
	}
	return rec
}

var numericPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// ParseNumber strips thousands separators and parses the leading number of s.
// An empty string or one without a leading number is unavailable.
func ParseNumber(s string) metric.Value {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return metric.Unavailable
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return metric.Of(n)
	}
	lead := numericPrefix.FindString(s)
	if lead == "" {
		return metric.Unavailable
	}
	n, err := strconv.ParseFloat(lead, 64)
	if err != nil {
		return metric.Unavailable
	}
	return metric.Of(n)
}
