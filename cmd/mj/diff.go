package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/memjson"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two files", cli.ErrUsage)
	}
	a, err := cfg.load(args[0], cc.In)
	if err != nil {
		return err
	}
	b, err := cfg.load(args[1], cc.In)
	if err != nil {
		return err
	}
	d, err := memjson.Diff(a, b)
	if err != nil {
		return err
	}
	if d == "" {
		return nil
	}
	io.WriteString(cc.Out, d)
	return cli.ExitCodeErr(1)
}
