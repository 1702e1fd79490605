package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/memjson"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	var p []byte
	switch {
	case cfg.String:
		p = []byte(args[0])
	default:
		p, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("could not read patch %q: %w", args[0], err)
		}
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		doc, err := cfg.load(file, cc.In)
		if err != nil {
			return err
		}
		if err := memjson.Patch(doc, p); err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if err := doc.Encode(cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
