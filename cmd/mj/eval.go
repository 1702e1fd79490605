package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/memjson/eval"
)

func evalCmd(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	expression := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		doc, err := cfg.load(file, cc.In)
		if err != nil {
			return err
		}
		out, err := eval.Eval(expression, doc.Root(), doc.Resources())
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%v\n", out)
	}
	return nil
}
