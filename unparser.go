package fmtcore

import (
	"strconv"
	"strings"
)

// Unparse reconstructs a format string and its flattened argument list
// from a token sequence produced by Parse. The round trip is structural,
// not byte-identical: Parse(Unparse(Parse(f, a))) equals Parse(f, a), but
// the reconstructed format string may normalise syntax (for example a pad
// char written via "*" is unparsed as a literal pad char).
func Unparse(tokens []Token) (string, []any) {
	var sb strings.Builder
	var args []any
	for _, t := range tokens {
		if t.IsLiteral {
			sb.WriteRune(t.Literal)
			continue
		}
		d := t.Dir
		sb.WriteByte('~')
		if d.Adjust == AdjustLeft {
			sb.WriteByte('-')
		}
		if d.Width.Present {
			sb.WriteString(strconv.Itoa(d.Width.Value))
		}
		if d.Precision.Present {
			sb.WriteByte('.')
			sb.WriteString(strconv.Itoa(d.Precision.Value))
		}
		if d.PadChar != ' ' {
			if !d.Precision.Present {
				// An empty precision keeps the pad char from being
				// re-parsed as the precision.
				sb.WriteByte('.')
			}
			sb.WriteByte('.')
			sb.WriteRune(d.PadChar)
		}
		if d.Encoding == Unicode {
			sb.WriteByte('t')
		}
		if !d.Strings {
			sb.WriteByte('l')
		}
		switch d.MapsOrder {
		case MapsOrderOrdered, MapsOrderReversed:
			sb.WriteByte('k')
		case MapsOrderComparator:
			sb.WriteByte('K')
			args = append(args, d.Comparator)
		}
		sb.WriteRune(d.Control)
		args = append(args, d.Args...)
	}
	return sb.String(), args
}
