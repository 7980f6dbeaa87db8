package fmtcore

// Iolist is a deferred character sequence: a chunked accumulation of
// already-rendered text that defers flattening into a single []rune until
// a caller actually asks for its length or contents. It is the Go analogue
// of the nested, possibly-improper character lists ("iolists") the source
// system accepts and produces.
type Iolist interface {
	// Flatten returns the full code-point sequence.
	Flatten() []rune
	// Len returns the code-point count without necessarily allocating a
	// flattened copy.
	Len() int
}

// chunkedIolist stores its content as a sequence of string chunks,
// matching how the two-pass renderer naturally produces output: a run of
// small-directive/literal text, then a big-directive's rendered text, and
// so on. Flatten is the only operation that forces a single contiguous
// allocation.
type chunkedIolist struct {
	chunks []string
	length int // cumulative code-point count, maintained incrementally
}

func newChunkedIolist() *chunkedIolist {
	return &chunkedIolist{}
}

func (l *chunkedIolist) append(s string) {
	if s == "" {
		return
	}
	l.chunks = append(l.chunks, s)
	l.length += len([]rune(s))
}

func (l *chunkedIolist) Len() int { return l.length }

func (l *chunkedIolist) Flatten() []rune {
	out := make([]rune, 0, l.length)
	for _, c := range l.chunks {
		out = append(out, []rune(c)...)
	}
	return out
}

// RenderCharsIolist renders format against args the same way RenderChars
// does, but returns the result as an Iolist instead of a flat []rune, so
// that a caller only interested in the length (for example to decide
// whether to render at all) never pays for the flattening allocation.
func RenderCharsIolist(format string, args []any, opts ...Option) (Iolist, error) {
	o := resolveOptions(opts)
	tokens, err := Parse(format, args)
	if err != nil {
		return nil, err
	}
	items, c, err := buildSmall(tokens)
	if err != nil {
		return nil, err
	}
	list := newChunkedIolist()
	if c.P+c.W == 0 {
		for _, it := range items {
			switch it.kind {
			case itemLiteral:
				list.append(string(it.r))
			case itemText:
				list.append(it.text)
			}
		}
		return list, nil
	}
	s, err := buildLimited(items, c, o.charsLimit, o.writer, o.pp)
	if err != nil {
		return nil, err
	}
	list.append(s)
	return list, nil
}
