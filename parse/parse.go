// Package parse builds pooled documents from JSON text. The parser is
// a recursive descent over bytes that allocates slots and interned
// strings directly through the variant.Resources boundary, so a parse
// never materializes an intermediate Go value tree.
package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/memjson/debug"
	"github.com/signadot/memjson/variant"
)

const defaultMaxDepth = 64

// Parse reads one JSON value from d into dst, which must be Null or
// is released first. On error dst is left Null and any partially
// built structure is released back to the pool.
func Parse(res variant.Resources, dst *variant.Value, d []byte, opts ...ParseOption) error {
	pOpts := &parseOpts{maxDepth: defaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{res: res, data: d, maxDepth: pOpts.maxDepth}
	dst.SetNull(res)
	p.skipSpace()
	if err := p.value(dst, 0); err != nil {
		if debug.Parse() {
			debug.Logf("parse: %v\n", err)
		}
		dst.SetNull(res)
		return err
	}
	p.skipSpace()
	if p.off != len(p.data) {
		dst.SetNull(res)
		return p.errf("trailing data")
	}
	return nil
}

type parser struct {
	res      variant.Resources
	data     []byte
	off      int
	maxDepth int
}

func (p *parser) errf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w at offset %d: %s", ErrSyntax, p.off, msg)
}

func (p *parser) skipSpace() {
	for p.off < len(p.data) {
		switch p.data[p.off] {
		case ' ', '\t', '\n', '\r':
			p.off++
		default:
			return
		}
	}
}

func (p *parser) value(v *variant.Value, depth int) error {
	if depth >= p.maxDepth {
		return fmt.Errorf("%w (%d)", ErrTooDeep, p.maxDepth)
	}
	if p.off >= len(p.data) {
		return p.errf("unexpected end of input")
	}
	switch c := p.data[p.off]; c {
	case '{':
		return p.object(v, depth)
	case '[':
		return p.array(v, depth)
	case '"':
		s, err := p.string()
		if err != nil {
			return err
		}
		return v.SetString(p.res, s)
	case 't':
		if err := p.literal("true"); err != nil {
			return err
		}
		v.SetBool(p.res, true)
		return nil
	case 'f':
		if err := p.literal("false"); err != nil {
			return err
		}
		v.SetBool(p.res, false)
		return nil
	case 'n':
		if err := p.literal("null"); err != nil {
			return err
		}
		v.SetNull(p.res)
		return nil
	default:
		if c == '-' || (c >= '0' && c <= '9') {
			return p.number(v)
		}
		return p.errf("unexpected character %q", c)
	}
}

func (p *parser) object(v *variant.Value, depth int) error {
	p.off++ // '{'
	obj := v.ToObject(p.res)
	p.skipSpace()
	if p.off < len(p.data) && p.data[p.off] == '}' {
		p.off++
		return nil
	}
	for {
		p.skipSpace()
		if p.off >= len(p.data) || p.data[p.off] != '"' {
			return p.errf("expected object key")
		}
		key, err := p.string()
		if err != nil {
			return err
		}
		p.skipSpace()
		if p.off >= len(p.data) || p.data[p.off] != ':' {
			return p.errf("expected ':' after key %q", key)
		}
		p.off++
		mv, err := obj.AddMember(p.res, key)
		if err != nil {
			return err
		}
		p.skipSpace()
		if err := p.value(mv, depth+1); err != nil {
			return err
		}
		p.skipSpace()
		if p.off >= len(p.data) {
			return p.errf("unterminated object")
		}
		switch p.data[p.off] {
		case ',':
			p.off++
		case '}':
			p.off++
			return nil
		default:
			return p.errf("expected ',' or '}'")
		}
	}
}

func (p *parser) array(v *variant.Value, depth int) error {
	p.off++ // '['
	arr := v.ToArray(p.res)
	p.skipSpace()
	if p.off < len(p.data) && p.data[p.off] == ']' {
		p.off++
		return nil
	}
	for {
		ev, err := arr.AddElement(p.res)
		if err != nil {
			return err
		}
		p.skipSpace()
		if err := p.value(ev, depth+1); err != nil {
			return err
		}
		p.skipSpace()
		if p.off >= len(p.data) {
			return p.errf("unterminated array")
		}
		switch p.data[p.off] {
		case ',':
			p.off++
		case ']':
			p.off++
			return nil
		default:
			return p.errf("expected ',' or ']'")
		}
	}
}

func (p *parser) literal(lit string) error {
	if len(p.data)-p.off < len(lit) || string(p.data[p.off:p.off+len(lit)]) != lit {
		return p.errf("invalid literal")
	}
	p.off += len(lit)
	return nil
}

// string decodes a JSON string token. The fast path slices the input
// directly; escapes fall back to an unescaping copy.
func (p *parser) string() (string, error) {
	p.off++ // opening quote
	start := p.off
	for p.off < len(p.data) {
		switch c := p.data[p.off]; {
		case c == '"':
			s := string(p.data[start:p.off])
			p.off++
			return s, nil
		case c == '\\':
			return p.stringSlow(start)
		case c < 0x20:
			return "", p.errf("control character in string")
		default:
			p.off++
		}
	}
	return "", p.errf("unterminated string")
}

func (p *parser) stringSlow(start int) (string, error) {
	var b strings.Builder
	b.Write(p.data[start:p.off])
	for p.off < len(p.data) {
		c := p.data[p.off]
		switch {
		case c == '"':
			p.off++
			return b.String(), nil
		case c == '\\':
			p.off++
			if p.off >= len(p.data) {
				return "", p.errf("unterminated escape")
			}
			switch e := p.data[p.off]; e {
			case '"', '\\', '/':
				b.WriteByte(e)
				p.off++
			case 'b':
				b.WriteByte('\b')
				p.off++
			case 'f':
				b.WriteByte('\f')
				p.off++
			case 'n':
				b.WriteByte('\n')
				p.off++
			case 'r':
				b.WriteByte('\r')
				p.off++
			case 't':
				b.WriteByte('\t')
				p.off++
			case 'u':
				r, err := p.unicodeEscape()
				if err != nil {
					return "", err
				}
				b.WriteRune(r)
			default:
				return "", p.errf("invalid escape '\\%c'", e)
			}
		case c < 0x20:
			return "", p.errf("control character in string")
		default:
			b.WriteByte(c)
			p.off++
		}
	}
	return "", p.errf("unterminated string")
}

func (p *parser) unicodeEscape() (rune, error) {
	p.off++ // 'u'
	r, err := p.hex4()
	if err != nil {
		return 0, err
	}
	if r >= 0xD800 && r < 0xDC00 {
		// high surrogate; require the low half
		if p.off+1 < len(p.data) && p.data[p.off] == '\\' && p.data[p.off+1] == 'u' {
			p.off += 2
			lo, err := p.hex4()
			if err != nil {
				return 0, err
			}
			if lo >= 0xDC00 && lo < 0xE000 {
				return 0x10000 + (r-0xD800)<<10 + (lo - 0xDC00), nil
			}
		}
		return 0xFFFD, nil
	}
	if r >= 0xDC00 && r < 0xE000 {
		return 0xFFFD, nil
	}
	return r, nil
}

func (p *parser) hex4() (rune, error) {
	if len(p.data)-p.off < 4 {
		return 0, p.errf("truncated unicode escape")
	}
	u, err := strconv.ParseUint(string(p.data[p.off:p.off+4]), 16, 32)
	if err != nil {
		return 0, p.errf("invalid unicode escape")
	}
	p.off += 4
	return rune(u), nil
}

func (p *parser) number(v *variant.Value) error {
	start := p.off
	if p.data[p.off] == '-' {
		p.off++
	}
	for p.off < len(p.data) {
		switch c := p.data[p.off]; {
		case c >= '0' && c <= '9', c == '.', c == 'e', c == 'E', c == '+', c == '-':
			p.off++
		default:
			goto done
		}
	}
done:
	tok := string(p.data[start:p.off])
	if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
		v.SetInt(p.res, i)
		return nil
	}
	if u, err := strconv.ParseUint(tok, 10, 64); err == nil {
		v.SetUint(p.res, u)
		return nil
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return p.errf("invalid number %q", tok)
	}
	v.SetFloat(p.res, f)
	return nil
}
