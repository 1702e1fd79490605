package gomap_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/memjson/gomap"
	"github.com/signadot/memjson/parse"
	"github.com/signadot/memjson/pool"
	"github.com/signadot/memjson/variant"
)

func TestExport(t *testing.T) {
	p := pool.New()
	var v variant.Value
	if err := parse.Parse(p, &v, []byte(`{"a":1,"b":[true,null,"x"],"c":1.5}`)); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"a": int64(1),
		"b": []any{true, nil, "x"},
		"c": 1.5,
	}
	got := gomap.Export(&v, p)
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Export (-want +got):\n%s", d)
	}
}

func TestExportNil(t *testing.T) {
	p := pool.New()
	if got := gomap.Export(nil, p); got != nil {
		t.Errorf("nil value: got %v", got)
	}
	var v variant.Value
	if got := gomap.Export(&v, p); got != nil {
		t.Errorf("null value: got %v", got)
	}
}

func TestImportRoundTrip(t *testing.T) {
	p := pool.New()
	src := map[string]any{
		"n":   nil,
		"b":   false,
		"i":   int64(-3),
		"u":   uint64(9),
		"f":   2.5,
		"s":   "str",
		"arr": []any{int64(1), "two", []any{}},
		"obj": map[string]any{"k": int64(0)},
	}
	var v variant.Value
	if err := gomap.Import(p, &v, src); err != nil {
		t.Fatal(err)
	}
	got := gomap.Export(&v, p)
	if d := cmp.Diff(src, got); d != "" {
		t.Errorf("round trip (-want +got):\n%s", d)
	}
}

func TestImportIntWidths(t *testing.T) {
	p := pool.New()
	var v variant.Value
	if err := gomap.Import(p, &v, []any{int(1), int32(2), uint(3), float32(0.5)}); err != nil {
		t.Fatal(err)
	}
	want := []any{int64(1), int64(2), uint64(3), 0.5}
	got := gomap.Export(&v, p)
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("widths (-want +got):\n%s", d)
	}
}

func TestImportAnyKeyedMap(t *testing.T) {
	p := pool.New()
	var v variant.Value
	if err := gomap.Import(p, &v, map[any]any{1: "one", "two": int64(2)}); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"1": "one", "two": int64(2)}
	got := gomap.Export(&v, p)
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("any-keyed map (-want +got):\n%s", d)
	}
}

func TestImportUnsupported(t *testing.T) {
	p := pool.New()
	var v variant.Value
	err := gomap.Import(p, &v, struct{}{})
	if err == nil {
		t.Fatal("struct import must fail")
	}
	if !strings.Contains(err.Error(), "unsupported type") {
		t.Errorf("error: %v", err)
	}
}

func TestImportReplaces(t *testing.T) {
	p := pool.New()
	var v variant.Value
	if err := gomap.Import(p, &v, []any{int64(1), int64(2)}); err != nil {
		t.Fatal(err)
	}
	if err := gomap.Import(p, &v, "s"); err != nil {
		t.Fatal(err)
	}
	if got := p.NumSlots(); got != 0 {
		t.Errorf("previous import leaked %d slots", got)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	p := pool.New()
	var v variant.Value
	in := []byte("a: 1\nb:\n  - true\n  - x\n")
	if err := gomap.FromYAML(p, &v, in); err != nil {
		t.Fatal(err)
	}
	if got := v.GetMember(p, "a").AsInt(); got != 1 {
		t.Errorf("a: got %d, want 1", got)
	}
	b := v.GetMember(p, "b")
	if got := b.Size(p); got != 2 {
		t.Fatalf("b size: got %d, want 2", got)
	}
	if s, ok := b.GetElement(p, 1).AsString(); !ok || s != "x" {
		t.Errorf("b[1]: got %q, %v", s, ok)
	}

	out, err := gomap.ToYAML(&v, p)
	if err != nil {
		t.Fatal(err)
	}
	var v2 variant.Value
	if err := gomap.FromYAML(p, &v2, out); err != nil {
		t.Fatal(err)
	}
	if !variant.Equal(&v, p, &v2, p) {
		t.Error("YAML round trip must preserve the document")
	}
}

func TestFromYAMLInvalid(t *testing.T) {
	p := pool.New()
	var v variant.Value
	if err := gomap.FromYAML(p, &v, []byte("a: [1,")); err == nil {
		t.Error("invalid YAML must fail")
	}
}
