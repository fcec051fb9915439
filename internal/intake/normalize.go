package intake

import (
	"encoding/json"
	"math"
	"strconv"
)

// fieldAliases lists, in resolution order, the canonical payload field
// and the historical names still accepted for it. The canonical name
// wins when both are present.
var fieldAliases = []struct {
	canonical string
	aliases   []string
}{
	{canonical: "orderItems", aliases: []string{"items"}},
	{canonical: "totalPrice", aliases: []string{"total"}},
	{canonical: "shippingInfo", aliases: []string{"shipping"}},
	{canonical: "paymentMethod", aliases: []string{"payment"}},
}

// normalizeFields resolves every aliased field to its canonical name.
// Unknown fields are dropped.
func normalizeFields(raw map[string]any) map[string]any {
	out := make(map[string]any, len(fieldAliases))

	for _, f := range fieldAliases {
		if v, ok := raw[f.canonical]; ok && v != nil {
			out[f.canonical] = v
			continue
		}
		for _, alias := range f.aliases {
			if v, ok := raw[alias]; ok && v != nil {
				out[f.canonical] = v
				break
			}
		}
	}

	return out
}

// toNumber coerces a decoded JSON value to a float64 the way the wire
// contract demands: numbers pass through, numeric strings parse, and
// anything else comes back NaN so the finiteness check rejects it.
func toNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// toString renders a scalar as a string; non-scalar values come back
// empty so defaulting kicks in.
func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

// present reports whether a decoded value carries usable content.
// Empty strings and zero numbers count as absent, matching how the
// historical clients filled these fields.
func present(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	case json.Number:
		return t.String() != "" && t.String() != "0"
	default:
		return true
	}
}

// textual reports whether a value yields a usable string. Non-scalar
// values render empty and must not pass a required-field check.
func textual(v any) bool {
	return present(v) && toString(v) != ""
}

// firstPresent walks the keys in precedence order and returns the
// first usable value.
func firstPresent(m map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok && present(v) {
			return v, true
		}
	}
	return nil, false
}
