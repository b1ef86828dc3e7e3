package metric

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Value is either a number or unavailable. The zero Value is unavailable, so a
// metric that was never extracted cannot be mistaken for a measured zero.
type Value struct {
	n  float64
	ok bool
}

// Of returns an available value holding n.
func Of(n float64) Value { return Value{n: n, ok: true} }

// Unavailable marks a metric whose extraction failed.
var Unavailable = Value{}

func (v Value) Available() bool { return v.ok }

func (v Value) Float64() (float64, bool) { return v.n, v.ok }

// Int64 truncates the value towards zero.
func (v Value) Int64() (int64, bool) { return int64(v.n), v.ok }

func (v Value) Equal(o Value) bool {
	if v.ok != o.ok {
		return false
	}
	return !v.ok || v.n == o.n
}

// Plain returns the value as float64, or nil when unavailable.
func (v Value) Plain() any {
	if !v.ok {
		return nil
	}
	return v.n
}

func (v Value) String() string {
	if !v.ok {
		return "unavailable"
	}
	return strconv.FormatFloat(v.n, 'f', -1, 64)
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.ok || math.IsNaN(v.n) || math.IsInf(v.n, 0) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(v.n, 'f', -1, 64)), nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte("false")) {
		*v = Unavailable
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = Of(n)
	return nil
}
