package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func stats(cfg *StatsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stats.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		doc, err := cfg.load(file, cc.In)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s:\n", file)
		fmt.Fprintf(cc.Out, "  tree bytes: %d\n", doc.MemoryUsage())
		fmt.Fprintf(cc.Out, "  pool bytes: %d\n", doc.Pool().MemoryUsage())
		fmt.Fprintf(cc.Out, "  slots:      %d\n", doc.Pool().NumSlots())
		fmt.Fprintf(cc.Out, "  nesting:    %d\n", doc.Nesting())
		fmt.Fprintf(cc.Out, "  size:       %d\n", doc.Root().Size(doc.Resources()))
	}
	return nil
}
