package memjson_test

import (
	"errors"
	"strings"
	"testing"

	memjson "github.com/signadot/memjson"
	"github.com/signadot/memjson/pool"
	"github.com/signadot/memjson/variant"
)

func mustParse(t *testing.T, text string, opts ...pool.Option) *memjson.Document {
	t.Helper()
	doc, err := memjson.Parse([]byte(text), opts...)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestDocumentRoundTrip(t *testing.T) {
	in := `{"a":1,"b":[true,null,"x"]}`
	doc := mustParse(t, in)
	if got := doc.String(); got != in {
		t.Errorf("round trip: got %s, want %s", got, in)
	}
	d, err := doc.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != in {
		t.Errorf("MarshalJSON: got %s", d)
	}
}

func TestDocumentLookup(t *testing.T) {
	doc := mustParse(t, `{"a":1,"b":[true,null,{"c":"deep"}]}`)
	tests := []struct {
		path string
		want any // int64, bool, string, or nil for a miss
	}{
		{"a", int64(1)},
		{"b.0", true},
		{"b.2.c", "deep"},
		{"b.9", nil},
		{"missing", nil},
		{"a.b", nil},
		{"b.x", nil},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			v := doc.Lookup(tt.path)
			if tt.want == nil {
				if v != nil {
					t.Errorf("want a miss, got %v", v.Type())
				}
				return
			}
			if v == nil {
				t.Fatal("unexpected miss")
			}
			switch want := tt.want.(type) {
			case int64:
				if got := v.AsInt(); got != want {
					t.Errorf("got %d, want %d", got, want)
				}
			case bool:
				if got := v.AsBool(); got != want {
					t.Errorf("got %v, want %v", got, want)
				}
			case string:
				if got, ok := v.AsString(); !ok || got != want {
					t.Errorf("got %q, %v, want %q", got, ok, want)
				}
			}
		})
	}
	if v := doc.Lookup(""); v != doc.Root() {
		t.Error("empty path must return the root")
	}
}

func TestDocumentEmptyKey(t *testing.T) {
	doc := mustParse(t, `{"":1}`)
	if !doc.Equal(doc) {
		t.Error("a document with an empty key must equal itself")
	}
	v := doc.Root().GetMember(doc.Resources(), "")
	if v == nil || v.AsInt() != 1 {
		t.Error("the empty-keyed member must be reachable")
	}
	if got := doc.String(); got != `{"":1}` {
		t.Errorf("round trip: got %s", got)
	}
}

func TestDocumentEqual(t *testing.T) {
	a := mustParse(t, `{"x":1,"y":[2,3]}`)
	b := mustParse(t, `{"y":[2,3],"x":1}`)
	c := mustParse(t, `{"x":1,"y":[3,2]}`)
	if !a.Equal(b) {
		t.Error("member order must not matter")
	}
	if a.Equal(c) {
		t.Error("element order must matter")
	}
	if !a.Equal(a) {
		t.Error("reflexivity")
	}
}

func TestDocumentCopyFrom(t *testing.T) {
	src := mustParse(t, `{"a":[1,2,3]}`)
	dst := memjson.New()
	if err := dst.CopyFrom(src); err != nil {
		t.Fatal(err)
	}
	if !dst.Equal(src) {
		t.Fatal("copy must equal source")
	}
	src.Clear()
	if got := dst.Lookup("a.2").AsInt(); got != 3 {
		t.Errorf("copy after source clear: got %d, want 3", got)
	}
}

func TestDocumentAdopt(t *testing.T) {
	src := mustParse(t, `{"a":1,"b":["x","y"]}`)
	want := mustParse(t, `{"a":1,"b":["x","y"]}`)
	dst := mustParse(t, `{"old":true}`)

	if err := dst.Adopt(src); err != nil {
		t.Fatal(err)
	}
	if !dst.Equal(want) {
		t.Errorf("adopted: got %s", dst)
	}
	if got := src.Pool().NumSlots(); got != 0 {
		t.Errorf("source slots after adopt: got %d, want 0", got)
	}
	if s, ok := dst.Lookup("b.1").AsString(); !ok || s != "y" {
		t.Errorf("adopted string: got %q, %v", s, ok)
	}
}

func TestDocumentAdoptFailureKeepsBoth(t *testing.T) {
	src := mustParse(t, `{"a":[1,2,3]}`)
	dst, err := memjson.Parse([]byte(`{"old":true}`), pool.WithSlotLimit(2))
	if err != nil {
		t.Fatal(err)
	}
	if err := dst.Adopt(src); !errors.Is(err, variant.ErrNoMemory) {
		t.Fatalf("over-budget adopt: got %v, want ErrNoMemory", err)
	}
	if got := dst.String(); got != `{"old":true}` {
		t.Errorf("destination changed by failed adopt: %s", got)
	}
	if got := src.String(); got != `{"a":[1,2,3]}` {
		t.Errorf("source changed by failed adopt: %s", got)
	}
}

func TestDocumentBudgets(t *testing.T) {
	_, err := memjson.Parse([]byte(`[1,2,3,4]`), pool.WithSlotLimit(2))
	if !errors.Is(err, variant.ErrNoMemory) {
		t.Errorf("slot budget: got %v, want ErrNoMemory", err)
	}
	_, err = memjson.Parse([]byte(`["long enough string"]`), pool.WithStringLimit(4))
	if !errors.Is(err, variant.ErrNoMemory) {
		t.Errorf("string budget: got %v, want ErrNoMemory", err)
	}
}

func TestDocumentUsageAndNesting(t *testing.T) {
	doc := mustParse(t, `{"a":1,"b":[true,null,"x"]}`)
	// 5 slots; keys "a", "b" and payload "x" are interned
	want := 5*variant.SlotSize() + 3*variant.StringSize(1)
	if got := doc.MemoryUsage(); got != want {
		t.Errorf("MemoryUsage: got %d, want %d", got, want)
	}
	if got := doc.Nesting(); got != 2 {
		t.Errorf("Nesting: got %d, want 2", got)
	}
	doc.Clear()
	if got := doc.MemoryUsage(); got != 0 {
		t.Errorf("usage after clear: got %d, want 0", got)
	}
	if got := doc.Pool().NumSlots(); got != 0 {
		t.Errorf("slots after clear: got %d, want 0", got)
	}
}

func TestParseYAML(t *testing.T) {
	doc, err := memjson.ParseYAML([]byte("a: 1\nb:\n  - x\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{"a":1,"b":["x"]}`)
	if !doc.Equal(want) {
		t.Errorf("got %s, want %s", doc, want)
	}
}

func TestPatch(t *testing.T) {
	doc := mustParse(t, `{"a":1,"b":[1,2]}`)
	patch := `[
		{"op":"replace","path":"/a","value":9},
		{"op":"add","path":"/b/-","value":3},
		{"op":"add","path":"/c","value":"new"}
	]`
	if err := memjson.Patch(doc, []byte(patch)); err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{"a":9,"b":[1,2,3],"c":"new"}`)
	if !doc.Equal(want) {
		t.Errorf("patched: got %s, want %s", doc, want)
	}
}

func TestPatchErrorsLeaveDocument(t *testing.T) {
	doc := mustParse(t, `{"a":1}`)
	tests := []struct {
		name  string
		patch string
	}{
		{"malformed", `{`},
		{"failing test op", `[{"op":"test","path":"/a","value":2}]`},
		{"remove missing path", `[{"op":"remove","path":"/nope"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := memjson.Patch(doc, []byte(tt.patch)); err == nil {
				t.Fatal("patch must fail")
			}
			if got := doc.String(); got != `{"a":1}` {
				t.Errorf("document changed by failed patch: %s", got)
			}
		})
	}
}

func TestDiff(t *testing.T) {
	a := mustParse(t, `{"a":1,"b":2}`)
	b := mustParse(t, `{"a":1,"b":3}`)

	same, err := memjson.Diff(a, a)
	if err != nil {
		t.Fatal(err)
	}
	if same != "" {
		t.Errorf("identical documents must diff empty, got %q", same)
	}

	out, err := memjson.Diff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if out == "" {
		t.Fatal("differing documents must produce output")
	}
	if !strings.Contains(out, "2") || !strings.Contains(out, "3") {
		t.Errorf("diff must mention both values: %q", out)
	}
}
