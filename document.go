package memjson

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/memjson/encode"
	"github.com/signadot/memjson/gomap"
	"github.com/signadot/memjson/parse"
	"github.com/signadot/memjson/pool"
	"github.com/signadot/memjson/variant"
)

// Document is one value tree and the pool that backs it.
type Document struct {
	pool *pool.Pool
	root variant.Value
}

func New(opts ...pool.Option) *Document {
	return &Document{pool: pool.New(opts...)}
}

// Parse builds a document from JSON text.
func Parse(d []byte, opts ...pool.Option) (*Document, error) {
	doc := New(opts...)
	if err := parse.Parse(doc.pool, &doc.root, d); err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseYAML builds a document from one YAML document.
func ParseYAML(d []byte, opts ...pool.Option) (*Document, error) {
	doc := New(opts...)
	if err := gomap.FromYAML(doc.pool, &doc.root, d); err != nil {
		return nil, err
	}
	return doc, nil
}

// Root returns the document's root value for direct mutation against
// Resources().
func (doc *Document) Root() *variant.Value {
	return &doc.root
}

// Resources returns the pool boundary the variant API operates
// against.
func (doc *Document) Resources() variant.Resources {
	return doc.pool
}

func (doc *Document) Pool() *pool.Pool {
	return doc.pool
}

// Encode writes the document as JSON to w.
func (doc *Document) Encode(w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(&doc.root, doc.pool, w, opts...)
}

// MarshalJSON returns the compact encoding.
func (doc *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := doc.Encode(&buf, encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (doc *Document) String() string {
	d, err := doc.MarshalJSON()
	if err != nil {
		return "<error: " + err.Error() + ">"
	}
	return string(d)
}

// Lookup resolves a dotted path ("a.b.0") from the root: object
// segments select members by key (first match), numeric segments
// select array elements. It returns nil on any miss. An empty path
// returns the root.
func (doc *Document) Lookup(path string) *variant.Value {
	v := &doc.root
	if path == "" {
		return v
	}
	for seg := range strings.SplitSeq(path, ".") {
		if v == nil {
			return nil
		}
		if v.IsArray() {
			i, err := strconv.Atoi(seg)
			if err != nil {
				return nil
			}
			v = v.GetElement(doc.pool, i)
			continue
		}
		v = v.GetMember(doc.pool, seg)
	}
	return v
}

// Equal reports structural equality with another document. Object
// member order does not matter; array order does.
func (doc *Document) Equal(o *Document) bool {
	if doc == nil || o == nil {
		return doc == o
	}
	return variant.Equal(&doc.root, doc.pool, &o.root, o.pool)
}

// CopyFrom deep-copies src's tree into this document. The copy shares
// nothing with src.
func (doc *Document) CopyFrom(src *Document) error {
	return doc.root.CopyFrom(doc.pool, &src.root, src.pool)
}

// Adopt transplants src's tree into this document's pool, replacing
// the current tree. src is reset on success; on failure both
// documents are left as they were.
func (doc *Document) Adopt(src *Document) error {
	root := src.root
	if err := doc.pool.Adopt(&root, src.pool); err != nil {
		return err
	}
	doc.root.SetNull(doc.pool)
	doc.root = root
	src.root = variant.Value{}
	src.pool.Reset()
	return nil
}

// Clear releases the whole tree, leaving a Null root.
func (doc *Document) Clear() {
	doc.root.SetNull(doc.pool)
}

// MemoryUsage returns the tree's accounted pool bytes.
func (doc *Document) MemoryUsage() int {
	return doc.root.MemoryUsage(doc.pool)
}

// Nesting returns the tree's maximum nesting depth.
func (doc *Document) Nesting() int {
	return doc.root.Nesting(doc.pool)
}
