package fmtcore

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// graphemeClusters splits s into user-perceived characters. It is the
// grapheme-aware counterpart to iterating []rune(s): one entry per cluster,
// not per code point, so that combining marks and multi-rune emoji count
// as a single character the way a terminal displays them.
func graphemeClusters(s string) []string {
	seg := graphemes.FromString(s)
	var out []string
	for seg.Next() {
		out = append(out, seg.Value())
	}
	return out
}

// charCount returns the number of user-visible characters in s under the
// given encoding: code points for Latin1, grapheme clusters for Unicode.
func charCount(s string, enc Encoding) int {
	if enc == Latin1 {
		return len([]rune(s))
	}
	return len(graphemeClusters(s))
}

// IndentColumn advances a terminal column counter through text, starting
// at start. '\n' resets the column to 0, '\t' advances to the next
// multiple of 8, and any other grapheme cluster advances the column by its
// display width (1 for most clusters, 2 for wide CJK clusters).
func IndentColumn(text string, start int) int {
	col := start
	for _, g := range graphemeClusters(text) {
		switch g {
		case "\n":
			col = 0
		case "\t":
			col = ((col / 8) + 1) * 8
		default:
			w := runewidth.StringWidth(g)
			if w == 0 {
				w = 1
			}
			col += w
		}
	}
	return col
}

// truncateTo slices text down to exactly n characters under the given
// encoding: byte-indexed code points for Latin1, grapheme clusters for
// Unicode. If text already has n or fewer characters it is returned
// unchanged.
func truncateTo(text string, n int, enc Encoding) string {
	if n <= 0 {
		return ""
	}
	if enc == Latin1 {
		r := []rune(text)
		if len(r) <= n {
			return text
		}
		return string(r[:n])
	}
	clusters := graphemeClusters(text)
	if len(clusters) <= n {
		return text
	}
	return strings.Join(clusters[:n], "")
}

// ellipsise truncates text to limit characters, replacing the tail with
// "..." when truncation actually removes content. If keeping exactly limit
// characters would leave 3 or fewer characters unshown, the text is
// returned verbatim instead — a near-fit is not worth an ellipsis. A limit
// of 3 or less leaves no room for "...", so the text is cut to limit
// characters with no ellipsis.
func ellipsise(text string, limit int) string {
	if limit < 0 {
		return text
	}
	n := charCount(text, Unicode)
	if n <= limit {
		return text
	}
	if n-limit <= 3 {
		return text
	}
	if limit <= 3 {
		return truncateTo(text, limit, Unicode)
	}
	return truncateTo(text, limit-3, Unicode) + "..."
}

// adjust concatenates payload and padding in the order required by side:
// [payload, padding] when left-adjusted, [padding, payload] otherwise.
func adjust(payload, padding string, side Adjust) string {
	if side == AdjustLeft {
		return payload + padding
	}
	return padding + payload
}

// padding builds a run of n copies of pad as a string.
func padding(pad rune, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(string(pad), n)
}

// caseFold upper- or lower-cases ASCII hex/base digits, used by the
// integer control chars (b vs B, x vs X, + vs #) to pick a digit alphabet.
func caseFold(s string, upper bool) string {
	if upper {
		return strings.ToUpper(s)
	}
	return strings.ToLower(s)
}

// adjustField applies a directive's width/precision/pad-char box to raw
// rendered content, per the field-adjustment algorithm: precision (when
// generic for this control char) first truncates-or-pads to an exact size,
// then width pads the result, always in the direction given by adjustSide.
func adjustField(raw string, width, precision Field, pad rune, adjustSide Adjust, overflow bool, enc Encoding) string {
	content := raw
	if precision.Present {
		p := precision.Value
		cur := charCount(content, enc)
		switch {
		case cur > p:
			if overflow {
				content = strings.Repeat("*", p)
			} else {
				content = truncateTo(content, p, enc)
			}
		case cur < p:
			content = adjust(content, padding(pad, p-cur), AdjustLeft)
		}
	}
	if width.Present {
		cur := charCount(content, enc)
		if cur < width.Value {
			content = adjust(content, padding(pad, width.Value-cur), adjustSide)
		}
	}
	return content
}
