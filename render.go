package fmtcore

import "strings"

// options holds the resolved configuration for a render call. The zero
// value is not valid; use defaultOptions().
type options struct {
	charsLimit int
	writer     Writer
	pp         PrettyPrinter
}

func defaultOptions() options {
	return options{charsLimit: -1, writer: DefaultWriter, pp: DefaultPrettyPrinter}
}

// Option configures a RenderChars or RenderBytes call.
type Option func(*options)

// WithCharsLimit bounds the total number of user-visible characters in
// the output. N must be >= 0; the default (unset) is unlimited.
func WithCharsLimit(n int) Option {
	return func(o *options) { o.charsLimit = n }
}

// WithWriter overrides the collaborator used to render ~w/~W directives.
func WithWriter(w Writer) Option {
	return func(o *options) { o.writer = w }
}

// WithPrettyPrinter overrides the collaborator used to render ~p/~P
// directives.
func WithPrettyPrinter(p PrettyPrinter) Option {
	return func(o *options) { o.pp = p }
}

func resolveOptions(opts []Option) options {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// RenderChars renders format against args, returning the result as a rune
// sequence. It is a thin composition of Parse followed by the two-pass
// builder described in the package doc.
func RenderChars(format string, args []any, opts ...Option) ([]rune, error) {
	s, err := render(format, args, opts)
	if err != nil {
		return nil, err
	}
	return []rune(s), nil
}

// RenderBytes renders format against args, returning the result as a
// single contiguous UTF-8 byte sequence. It contains the same user-visible
// text as the equivalent RenderChars call.
func RenderBytes(format string, args []any, opts ...Option) ([]byte, error) {
	s, err := render(format, args, opts)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func render(format string, args []any, opts []Option) (string, error) {
	o := resolveOptions(opts)
	tokens, err := Parse(format, args)
	if err != nil {
		return "", err
	}
	items, c, err := buildSmall(tokens)
	if err != nil {
		return "", err
	}
	if c.P+c.W == 0 {
		return flattenSmall(items), nil
	}
	return buildLimited(items, c, o.charsLimit, o.writer, o.pp)
}

func flattenSmall(items []renderItem) string {
	var sb strings.Builder
	for _, it := range items {
		switch it.kind {
		case itemLiteral:
			sb.WriteRune(it.r)
		case itemText:
			sb.WriteString(it.text)
		}
	}
	return sb.String()
}
