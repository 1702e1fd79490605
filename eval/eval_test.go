package eval_test

import (
	"testing"

	"github.com/signadot/memjson/eval"
	"github.com/signadot/memjson/parse"
	"github.com/signadot/memjson/pool"
	"github.com/signadot/memjson/variant"
)

func parseDoc(t *testing.T, p *pool.Pool, text string) *variant.Value {
	t.Helper()
	var v variant.Value
	if err := parse.Parse(p, &v, []byte(text)); err != nil {
		t.Fatal(err)
	}
	return &v
}

func TestEval(t *testing.T) {
	p := pool.New()
	v := parseDoc(t, p, `{"a":1,"b":[10,20,30],"name":"svc"}`)

	tests := []struct {
		expr string
		want any
	}{
		// arithmetic comes back as plain int, member access keeps int64
		{`a + 1`, 2},
		{`b[1]`, int64(20)},
		{`len(b)`, 3},
		{`name == "svc"`, true},
		{`doc.a`, int64(1)},
		{`a > 0 && b[0] == 10`, true},
		{`missing == nil`, true},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := eval.Eval(tt.expr, v, p)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestEvalNonObjectRoot(t *testing.T) {
	p := pool.New()
	v := parseDoc(t, p, `[1,2,3]`)
	got, err := eval.Eval(`doc[2]`, v, p)
	if err != nil {
		t.Fatal(err)
	}
	if got != int64(3) {
		t.Errorf("got %v, want 3", got)
	}
}

func TestEvalCompileError(t *testing.T) {
	p := pool.New()
	v := parseDoc(t, p, `{}`)
	if _, err := eval.Eval(`1 +`, v, p); err == nil {
		t.Error("invalid expression must fail to compile")
	}
}
