package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// decodeArgs parses raw into a []any argument list, in the given encoding
// ("json" or "yaml"). JSON numbers are decoded via json.Number and
// normalised to int64 or float64 depending on whether they carry a
// fractional or exponent part (or overflow int64), so that directives requiring an integer
// argument (widths, precisions, pad chars, ~W/~P depths) see a Go int64
// rather than the float64 encoding/json would otherwise hand them.
func decodeArgs(raw []byte, format string) ([]any, error) {
	switch strings.ToLower(format) {
	case "", "json":
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		var args []any
		if err := dec.Decode(&args); err != nil {
			return nil, fmt.Errorf("decode json args: %w", err)
		}
		return normalizeJSON(args).([]any), nil
	case "yaml":
		var args []any
		if err := yaml.Unmarshal(raw, &args); err != nil {
			return nil, fmt.Errorf("decode yaml args: %w", err)
		}
		return args, nil
	default:
		return nil, fmt.Errorf("unknown args format %q (want json or yaml)", format)
	}
}

func normalizeJSON(v any) any {
	switch x := v.(type) {
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n
		}
		f, _ := x.Float64()
		return f
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = normalizeJSON(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = normalizeJSON(e)
		}
		return out
	default:
		return x
	}
}
