// Package eval runs expressions against pooled documents. An object
// root exposes its members as variables; the whole document is also
// bound as "doc".
package eval

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/signadot/memjson/gomap"
	"github.com/signadot/memjson/variant"
)

// Eval compiles and runs expression with v's exported Go value as the
// environment.
func Eval(expression string, v *variant.Value, res variant.Resources) (any, error) {
	env := map[string]any{}
	exported := gomap.Export(v, res)
	if m, ok := exported.(map[string]any); ok {
		env = m
	}
	env["doc"] = exported

	program, err := expr.Compile(expression, expr.Env(env), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("eval: compile %q: %w", expression, err)
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("eval: run %q: %w", expression, err)
	}
	return out, nil
}
