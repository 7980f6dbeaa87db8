package fmtcore

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// buildLimited is the second rendering pass. It walks the items the first
// pass produced, rendering each big directive with a per-directive share
// of whatever budget the chars limit leaves after subtracting the first
// pass's fixed-cost output (counters.Other), recomputing that share after
// every directive so unused budget flows to the ones that follow.
func buildLimited(items []renderItem, c counters, charsLimit int, writer Writer, pp PrettyPrinter) (string, error) {
	var out strings.Builder

	remaining := -1
	if charsLimit >= 0 {
		remaining = charsLimit - c.Other
		if remaining < 0 {
			remaining = 0
		}
	}
	count := c.P + c.W
	col := 0

	for _, it := range items {
		switch it.kind {
		case itemLiteral:
			out.WriteRune(it.r)
			col = IndentColumn(string(it.r), col)
		case itemText:
			out.WriteString(it.text)
			col = IndentColumn(it.text, col)
		case itemBig:
			budget := -1
			if remaining >= 0 {
				if count > 0 {
					budget = remaining / count
				} else {
					budget = remaining
				}
			}
			s, err := renderBig(it.dir, budget, col, writer, pp)
			if err != nil {
				return "", err
			}
			out.WriteString(s)
			if remaining >= 0 {
				n := charCount(s, Unicode)
				remaining -= n
				if remaining < 0 {
					remaining = 0
				}
			}
			count--
			if it.dir.Control == 'p' || it.dir.Control == 'P' {
				col = IndentColumn(s, col)
			}
		}
	}
	return out.String(), nil
}

func renderBig(d Directive, budget, col int, writer Writer, pp PrettyPrinter) (string, error) {
	switch d.Control {
	case 's':
		raw, err := stringifyArg(d.Args[0])
		if err != nil {
			return "", err
		}
		content := adjustField(raw, d.Width, d.Precision, d.PadChar, d.Adjust, starOverflow(d.Control), d.Encoding)
		if budget >= 0 {
			if charCount(content, Unicode) > budget {
				content = ellipsise(content, budget)
			}
		}
		return content, nil

	case 'w', 'W':
		term := d.Args[0]
		depth := -1
		if d.Control == 'W' {
			depth, _ = asInt(d.Args[1])
		}
		s, err := writer.Write(term, depth, d.Encoding, d.MapsOrder, budget)
		if err != nil {
			return "", err
		}
		return adjustField(s, d.Width, d.Precision, d.PadChar, d.Adjust, starOverflow(d.Control), d.Encoding), nil

	case 'p', 'P':
		term := d.Args[0]
		depth := -1
		if d.Control == 'P' {
			depth, _ = asInt(d.Args[1])
		}
		s, err := pp.PrettyPrint(term, PrettyOptions{
			CharsLimit: budget,
			Column:     col,
			LineLength: 80,
			Depth:      depth,
			Encoding:   d.Encoding,
			Strings:    d.Strings,
			MapsOrder:  d.MapsOrder,
		})
		if err != nil {
			return "", err
		}
		return adjustField(s, d.Width, d.Precision, d.PadChar, d.Adjust, starOverflow(d.Control), d.Encoding), nil

	default:
		return "", fail(ErrBadFormat, d.Pos, fmt.Sprintf("~%c is not a big directive", d.Control))
	}
}

// stringifyArg converts a ~s argument to text. A []byte that is not valid
// UTF-8 degrades to a Latin-1 interpretation (one rune per byte) rather
// than failing — the one documented silent recovery in this package.
func stringifyArg(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case []byte:
		if utf8.Valid(x) {
			return string(x), nil
		}
		runes := make([]rune, len(x))
		for i, b := range x {
			runes[i] = rune(b)
		}
		return string(runes), nil
	case []rune:
		return string(x), nil
	case fmt.Stringer:
		return x.String(), nil
	default:
		return fmt.Sprintf("%v", x), nil
	}
}
