package fmtcore

import (
	"fmt"
	"sort"
	"strings"
)

// Writer is the external collaborator consumed by ~w/~W: a generic
// term-to-text writer. This package only contracts with the interface;
// pretty-printing and exhaustive, type-directed rendering are explicitly
// out of scope (see the package doc).
type Writer interface {
	Write(term any, depth int, enc Encoding, order MapsOrder, charsLimit int) (string, error)
	WriteBytes(term any, depth int, enc Encoding, order MapsOrder, charsLimit int) ([]byte, int, error)
}

// PrettyOptions configures a PrettyPrinter call.
type PrettyOptions struct {
	CharsLimit int
	Column     int
	LineLength int
	Depth      int
	Encoding   Encoding
	Strings    bool
	MapsOrder  MapsOrder
}

// PrettyPrinter is the external collaborator consumed by ~p/~P.
type PrettyPrinter interface {
	PrettyPrint(term any, opts PrettyOptions) (string, error)
	PrettyPrintBytes(term any, opts PrettyOptions) ([]byte, int, int, error)
}

// DefaultWriter is a minimal Writer good enough to exercise RenderChars
// and RenderBytes standalone. Depth limits the number of nested
// []any/map[string]any levels rendered before falling back to "..."; any
// other value, structs included, is written with %v.
var DefaultWriter Writer = defaultWriter{}

type defaultWriter struct{}

func (defaultWriter) Write(term any, depth int, enc Encoding, order MapsOrder, charsLimit int) (string, error) {
	s := writeTerm(term, depth, order)
	if charsLimit >= 0 {
		s = ellipsise(s, charsLimit)
	}
	return s, nil
}

func (defaultWriter) WriteBytes(term any, depth int, enc Encoding, order MapsOrder, charsLimit int) ([]byte, int, error) {
	s, err := defaultWriter{}.Write(term, depth, enc, order, charsLimit)
	if err != nil {
		return nil, 0, err
	}
	return []byte(s), charCount(s, enc), nil
}

func writeTerm(term any, depth int, order MapsOrder) string {
	if depth == 0 {
		return "..."
	}
	next := depth - 1
	if depth < 0 {
		next = depth
	}
	switch v := term.(type) {
	case nil:
		return "nil"
	case string:
		return fmt.Sprintf("%q", v)
	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = writeTerm(e, next, order)
		}
		return "[" + strings.Join(parts, ",") + "]"
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		if order == MapsOrderReversed {
			sort.Sort(sort.Reverse(sort.StringSlice(keys)))
		}
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%q=>%s", k, writeTerm(v[k], next, order))
		}
		return "#{" + strings.Join(parts, ",") + "}"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// DefaultPrettyPrinter renders the same single-line text as DefaultWriter,
// honouring Depth and MapsOrder and cutting the result to CharsLimit with
// an ellipsis. It does not wrap or indent lines: LineLength is ignored, and
// Column is used only to compute the end column PrettyPrintBytes returns.
// It is intentionally simple; real pretty-printing of complex terms is
// explicitly an external concern (see the package doc).
var DefaultPrettyPrinter PrettyPrinter = defaultPrettyPrinter{}

type defaultPrettyPrinter struct{}

func (defaultPrettyPrinter) PrettyPrint(term any, opts PrettyOptions) (string, error) {
	s := writeTerm(term, opts.Depth, opts.MapsOrder)
	if opts.CharsLimit >= 0 {
		s = ellipsise(s, opts.CharsLimit)
	}
	return s, nil
}

func (defaultPrettyPrinter) PrettyPrintBytes(term any, opts PrettyOptions) ([]byte, int, int, error) {
	s, err := defaultPrettyPrinter{}.PrettyPrint(term, opts)
	if err != nil {
		return nil, 0, 0, err
	}
	n := charCount(s, opts.Encoding)
	col := IndentColumn(s, opts.Column)
	return []byte(s), n, col, nil
}
