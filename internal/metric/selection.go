package metric

import (
	"encoding/json"
	"strings"
)

// Selection is an immutable set of enabled metrics.
type Selection struct {
	enabled map[Metric]bool
}

// NewSelection enables exactly the given metrics. Unknown metrics are dropped.
func NewSelection(ms ...Metric) Selection {
	s := Selection{enabled: make(map[Metric]bool, len(ms))}
	for _, m := range ms {
		if m.Valid() {
			s.enabled[m] = true
		}
	}
	return s
}

// DefaultSelection enables only the price.
func DefaultSelection() Selection { return NewSelection(Price) }

// AllMetrics enables every metric.
func AllMetrics() Selection { return NewSelection(all...) }

// ParseSelection reads a comma separated list of metric names. An empty list
// yields the default selection.
func ParseSelection(list string) (Selection, error) {
	if strings.TrimSpace(list) == "" {
		return DefaultSelection(), nil
	}
	var ms []Metric
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		m, err := ParseMetric(name)
		if err != nil {
			return Selection{}, err
		}
		ms = append(ms, m)
	}
	return NewSelection(ms...), nil
}

func (s Selection) Enabled(m Metric) bool { return s.enabled[m] }

// With returns a copy of s with ms enabled.
func (s Selection) With(ms ...Metric) Selection {
	return NewSelection(append(s.Metrics(), ms...)...)
}

// Without returns a copy of s with ms disabled.
func (s Selection) Without(ms ...Metric) Selection {
	drop := NewSelection(ms...)
	var keep []Metric
	for _, m := range s.Metrics() {
		if !drop.Enabled(m) {
			keep = append(keep, m)
		}
	}
	return NewSelection(keep...)
}

// Metrics returns the enabled metrics in canonical order.
func (s Selection) Metrics() []Metric {
	var out []Metric
	for _, m := range all {
		if s.enabled[m] {
			out = append(out, m)
		}
	}
	return out
}

func (s Selection) Len() int { return len(s.enabled) }

func (s Selection) String() string {
	names := make([]string, 0, len(s.enabled))
	for _, m := range s.Metrics() {
		names = append(names, string(m))
	}
	return strings.Join(names, ",")
}

// Result is a record projected onto a selection. It contains exactly the
// enabled metrics.
type Result map[Metric]Value

// Select projects r onto s.
func Select(r Record, s Selection) Result {
	out := make(Result, s.Len())
	for _, m := range s.Metrics() {
		out[m] = r.Get(m)
	}
	return out
}

// Metrics returns the result keys in canonical order.
func (r Result) Metrics() []Metric {
	var out []Metric
	for _, m := range all {
		if _, ok := r[m]; ok {
			out = append(out, m)
		}
	}
	return out
}

// Plain converts the result into native values: float64 for available
// metrics, nil for unavailable ones.
func (r Result) Plain() map[string]any {
	out := make(map[string]any, len(r))
	for m, v := range r {
		out[string(m)] = v.Plain()
	}
	return out
}

// JSON serializes the result as an object keyed by metric name.
func (r Result) JSON() ([]byte, error) {
	return json.Marshal(r)
}
