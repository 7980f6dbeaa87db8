package fmtcore

import "fmt"

const controlAlphabet = "c~nibBxX+#efgswWpP"

// Parse scans format and consumes args in order, producing the literal and
// directive sequence that RenderChars/RenderBytes walk in their two
// rendering passes. Parse fails fatally (no partial directive list is
// returned) on a malformed directive, an exhausted argument list, or an
// argument of the wrong type where one is required inline (width,
// precision, pad char, or a W/P depth).
func Parse(format string, args []any) ([]Token, error) {
	p := &parserState{src: []rune(format), args: args}
	var out []Token
	for p.pos < len(p.src) {
		r := p.src[p.pos]
		if r != '~' {
			out = append(out, literalToken(r))
			p.pos++
			continue
		}
		start := p.pos
		dir, err := p.parseDirective(start)
		if err != nil {
			return nil, err
		}
		out = append(out, directiveToken(dir))
	}
	return out, nil
}

type parserState struct {
	src  []rune
	pos  int
	args []any
}

func (p *parserState) nextArg(pos int) (any, error) {
	if len(p.args) == 0 {
		return nil, fail(ErrMissingArg, pos, "argument list exhausted")
	}
	a := p.args[0]
	p.args = p.args[1:]
	return a, nil
}

func (p *parserState) nextIntArg(pos int) (int, error) {
	a, err := p.nextArg(pos)
	if err != nil {
		return 0, err
	}
	switch v := a.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	default:
		return 0, fail(ErrBadArgType, pos, fmt.Sprintf("expected int, got %T", a))
	}
}

func (p *parserState) nextRuneArg(pos int) (rune, error) {
	a, err := p.nextArg(pos)
	if err != nil {
		return 0, err
	}
	switch v := a.(type) {
	case rune:
		return v, nil
	case int:
		return rune(v), nil
	case int64:
		return rune(v), nil
	case string:
		r := []rune(v)
		if len(r) != 1 {
			return 0, fail(ErrBadArgType, pos, "expected a single code point")
		}
		return r[0], nil
	default:
		return 0, fail(ErrBadArgType, pos, fmt.Sprintf("expected a code point, got %T", a))
	}
}

// parseDirective parses one "~..." sequence starting at src[start] == '~'.
func (p *parserState) parseDirective(start int) (Directive, error) {
	p.pos++ // consume '~'
	d := Directive{Pos: start, PadChar: ' ', Adjust: AdjustRight}

	if p.pos < len(p.src) && p.src[p.pos] == '-' {
		d.Adjust = AdjustLeft
		p.pos++
	}

	width, err := p.parseField(start)
	if err != nil {
		return Directive{}, err
	}
	if width.Present && width.Value < 0 {
		d.Adjust = AdjustLeft
		width.Value = -width.Value
	}
	d.Width = width

	if p.pos < len(p.src) && p.src[p.pos] == '.' {
		p.pos++
		prec, err := p.parseField(start)
		if err != nil {
			return Directive{}, err
		}
		d.Precision = prec
	}

	if p.pos < len(p.src) && p.src[p.pos] == '.' {
		p.pos++
		if p.pos < len(p.src) && p.src[p.pos] == '*' {
			p.pos++
			r, err := p.nextRuneArg(start)
			if err != nil {
				return Directive{}, err
			}
			d.PadChar = r
		} else if p.pos < len(p.src) {
			d.PadChar = p.src[p.pos]
			p.pos++
		} else {
			return Directive{}, fail(ErrBadFormat, start, "pad char missing after '.'")
		}
	}

	d.Strings = true
modifiers:
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case 't':
			d.Encoding = Unicode
			p.pos++
		case 'l':
			d.Strings = false
			p.pos++
		case 'k':
			d.MapsOrder = MapsOrderOrdered
			p.pos++
		case 'K':
			cmp, err := p.nextArg(start)
			if err != nil {
				return Directive{}, err
			}
			d.MapsOrder = MapsOrderComparator
			d.Comparator = cmp
			p.pos++
		default:
			break modifiers
		}
	}

	if p.pos >= len(p.src) {
		return Directive{}, fail(ErrBadFormat, start, "directive truncated before control char")
	}
	control := p.src[p.pos]
	if !isControlChar(control) {
		return Directive{}, fail(ErrBadFormat, start, fmt.Sprintf("unknown control char %q", control))
	}
	p.pos++
	d.Control = control

	args, err := p.consumeArgs(control, start)
	if err != nil {
		return Directive{}, err
	}
	d.Args = args
	return d, nil
}

// parseField parses a Width/Precision sub-field: a digit run, a single
// "*" that consumes one integer argument, or nothing.
func (p *parserState) parseField(start int) (Field, error) {
	if p.pos < len(p.src) && p.src[p.pos] == '*' {
		p.pos++
		v, err := p.nextIntArg(start)
		if err != nil {
			return Field{}, err
		}
		return Field{Present: true, Value: v}, nil
	}
	if p.pos < len(p.src) && isDigit(p.src[p.pos]) {
		v := 0
		for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
			v = v*10 + int(p.src[p.pos]-'0')
			p.pos++
		}
		return Field{Present: true, Value: v}, nil
	}
	return Field{}, nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isControlChar(r rune) bool {
	for _, c := range controlAlphabet {
		if c == r {
			return true
		}
	}
	return false
}

// consumeArgs pulls however many arguments control requires and returns
// them in a fixed, control-char-specific order (documented per case).
func (p *parserState) consumeArgs(control rune, start int) ([]any, error) {
	switch control {
	case '~', 'n':
		return nil, nil
	case 'i', 'c', 'b', 'B', '+', '#', 'e', 'f', 'g', 's', 'w', 'p':
		a, err := p.nextArg(start)
		if err != nil {
			return nil, err
		}
		return []any{a}, nil
	case 'x', 'X':
		v, err := p.nextArg(start)
		if err != nil {
			return nil, err
		}
		prefix, err := p.nextArg(start)
		if err != nil {
			return nil, err
		}
		return []any{v, prefix}, nil
	case 'W', 'P':
		term, err := p.nextArg(start)
		if err != nil {
			return nil, err
		}
		depth, err := p.nextArg(start)
		if err != nil {
			return nil, err
		}
		if _, ok := asInt(depth); !ok {
			return nil, fail(ErrBadArgType, start, fmt.Sprintf("%c depth must be an integer, got %T", control, depth))
		}
		return []any{term, depth}, nil
	default:
		return nil, fail(ErrBadFormat, start, fmt.Sprintf("unknown control char %q", control))
	}
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	default:
		return 0, false
	}
}
