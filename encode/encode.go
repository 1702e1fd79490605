// Package encode serializes pooled documents to JSON text.
package encode

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/memjson/variant"
)

type encState struct {
	indent int
	depth  int
	wire   bool
	colors *Colors
}

// Encode writes v as JSON to w. Raw string payloads are written
// verbatim. Without EncodeWire the output is indented and ends with a
// newline.
func Encode(v *variant.Value, res variant.Resources, w io.Writer, opts ...EncodeOption) error {
	es := &encState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	e := &encoder{w: w, es: es}
	e.value(v, res)
	if !es.wire {
		e.write("\n")
	}
	return e.err
}

type encoder struct {
	w   io.Writer
	es  *encState
	err error
}

func (e *encoder) write(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

func (e *encoder) colored(attr ColorAttr, t variant.Type, s string) {
	if e.es.colors != nil {
		s = e.es.colors.Color(t, attr, s)
	}
	e.write(s)
}

func (e *encoder) newline() {
	if e.es.wire {
		return
	}
	e.write("\n")
	e.write(strings.Repeat(" ", e.es.indent*e.es.depth))
}

func (e *encoder) value(v *variant.Value, res variant.Resources) {
	if v == nil {
		e.colored(ValueColor, variant.TypeNull, "null")
		return
	}
	switch v.Type() {
	case variant.TypeNull:
		e.colored(ValueColor, variant.TypeNull, "null")
	case variant.TypeBool:
		e.colored(ValueColor, variant.TypeBool, strconv.FormatBool(v.AsBool()))
	case variant.TypeInt:
		e.colored(ValueColor, variant.TypeInt, strconv.FormatInt(v.AsInt(), 10))
	case variant.TypeUint:
		e.colored(ValueColor, variant.TypeUint, strconv.FormatUint(v.AsUint(), 10))
	case variant.TypeFloat:
		e.colored(ValueColor, variant.TypeFloat, formatFloat(v.AsFloat()))
	case variant.TypeLinkedString, variant.TypeOwnedString:
		s, _ := v.AsString()
		e.colored(ValueColor, variant.TypeOwnedString, quoteString(s))
	case variant.TypeRawString:
		s, _ := v.AsRawString()
		e.write(s)
	case variant.TypeArray:
		e.array(v.AsArray(), res)
	case variant.TypeObject:
		e.object(v.AsObject(), res)
	}
}

func (e *encoder) array(c *variant.Collection, res variant.Resources) {
	if c.Head() == variant.NilSlot {
		e.write("[]")
		return
	}
	e.colored(SepColor, variant.TypeArray, "[")
	e.es.depth++
	first := true
	for id := c.Head(); id != variant.NilSlot; {
		s := res.Slot(id)
		if !first {
			e.colored(SepColor, variant.TypeArray, ",")
		}
		first = false
		e.newline()
		e.value(s.Value(), res)
		id = s.Next()
	}
	e.es.depth--
	e.newline()
	e.colored(SepColor, variant.TypeArray, "]")
}

func (e *encoder) object(c *variant.Collection, res variant.Resources) {
	if c.Head() == variant.NilSlot {
		e.write("{}")
		return
	}
	e.colored(SepColor, variant.TypeObject, "{")
	e.es.depth++
	first := true
	for id := c.Head(); id != variant.NilSlot; {
		s := res.Slot(id)
		if !first {
			e.colored(SepColor, variant.TypeObject, ",")
		}
		first = false
		e.newline()
		e.colored(FieldColor, variant.TypeObject, quoteString(s.Key()))
		e.colored(SepColor, variant.TypeObject, ":")
		if !e.es.wire {
			e.write(" ")
		}
		e.value(s.Value(), res)
		id = s.Next()
	}
	e.es.depth--
	e.newline()
	e.colored(SepColor, variant.TypeObject, "}")
}

func formatFloat(f float64) string {
	// JSON has no NaN/Inf; follow the common degrade-to-null rule.
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

const hexDigits = "0123456789abcdef"

func quoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 {
				b.WriteString(`\u00`)
				b.WriteByte(hexDigits[r>>4])
				b.WriteByte(hexDigits[r&0xf])
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
