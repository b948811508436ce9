// Package payload wraps loosely-typed JSON values from the Innertube API.
//
// Upstream responses are schema-unstable: fields move, get renamed, or change
// type between client versions. Value makes every field access tolerant —
// a missing or mistyped field yields the zero value, never a panic or error —
// and FirstOf makes the fallback order across alternate field paths an
// explicit list rather than scattered type assertions.
package payload

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Value is a single node of a decoded JSON document. The zero Value is
// absent: all accessors return zero values from it.
type Value struct {
	v any
}

// New wraps an already-decoded JSON value (maps, slices, primitives).
func New(v any) Value {
	return Value{v: v}
}

// FromJSON decodes raw JSON into a Value.
func FromJSON(data []byte) (Value, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return Value{}, err
	}
	return Value{v: v}, nil
}

// Path builds a field path for FirstOf. Elements are string map keys or int
// list indices.
func Path(keys ...any) []any {
	return keys
}

// IsNil reports whether the value is absent.
func (p Value) IsNil() bool {
	return p.v == nil
}

// Raw returns the underlying decoded value.
func (p Value) Raw() any {
	return p.v
}

// Get digs into the value by map keys (string) and list indices (int).
// Any miss along the path yields an absent Value.
func (p Value) Get(keys ...any) Value {
	cur := p.v
	for _, k := range keys {
		switch key := k.(type) {
		case string:
			m, ok := cur.(map[string]any)
			if !ok {
				return Value{}
			}
			cur = m[key]
		case int:
			a, ok := cur.([]any)
			if !ok || key < 0 || key >= len(a) {
				return Value{}
			}
			cur = a[key]
		default:
			return Value{}
		}
	}
	return Value{v: cur}
}

// FirstOf tries each path in order and returns the first present value.
// Absent everywhere yields an absent Value.
func (p Value) FirstOf(paths ...[]any) Value {
	for _, path := range paths {
		if got := p.Get(path...); !got.IsNil() {
			return got
		}
	}
	return Value{}
}

// Str coerces to string. Numbers are formatted, booleans stringified,
// everything else (incl. absent) is "".
func (p Value) Str() string {
	switch s := p.v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case json.Number:
		return s.String()
	case bool:
		return strconv.FormatBool(s)
	}
	return ""
}

// Int coerces to int64. JSON numbers are truncated, numeric strings parsed
// (a leading integer prefix is enough, so "212s" and "1,400" both yield a
// value). Anything else is 0.
func (p Value) Int() int64 {
	switch n := p.v.(type) {
	case float64:
		return int64(n)
	case int:
		return int64(n)
	case int64:
		return n
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
		if f, err := n.Float64(); err == nil {
			return int64(f)
		}
	case string:
		return parseLeadingInt(n)
	}
	return 0
}

// Bool coerces to bool. The strings "true"/"True" count; anything else
// non-boolean is false.
func (p Value) Bool() bool {
	switch b := p.v.(type) {
	case bool:
		return b
	case string:
		return strings.EqualFold(b, "true")
	}
	return false
}

// List returns the value as a slice of Values, or nil when it is not a list.
func (p Value) List() []Value {
	a, ok := p.v.([]any)
	if !ok {
		return nil
	}
	out := make([]Value, len(a))
	for i, v := range a {
		out[i] = Value{v: v}
	}
	return out
}

// IsList reports whether the value is a JSON array.
func (p Value) IsList() bool {
	_, ok := p.v.([]any)
	return ok
}

// Strings returns the value as a slice of strings, dropping non-string
// elements. Non-list values yield nil.
func (p Value) Strings() []string {
	a, ok := p.v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(a))
	for _, v := range a {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func parseLeadingInt(s string) int64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	end := 0
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' {
			end++
			continue
		}
		if end == 0 && (c == '-' || c == '+') {
			end++
			continue
		}
		break
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return n
}
