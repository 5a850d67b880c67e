package store

import "encoding/json"

// NormalizeValue converts decoded JSON numbers to int64 or float64 so drivers
// that do not understand json.Number can encode them. Other values pass through.
func NormalizeValue(v any) any {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}
