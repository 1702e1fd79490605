package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/memjson"
	"github.com/signadot/memjson/encode"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`
	Wire  bool `cli:"name=wire desc='output in compact format'"`
	Y     bool `cli:"name=y aliases=yaml desc='read input as yaml'"`

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeWire(cfg.Wire),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) load(file string, in io.Reader) (*memjson.Document, error) {
	var (
		r   io.Reader
		err error
	)
	if file == "-" {
		r = in
	} else {
		f, ferr := os.Open(file)
		if ferr != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, ferr)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	if cfg.Y {
		return memjson.ParseYAML(d)
	}
	return memjson.Parse(d)
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type StatsConfig struct {
	*MainConfig

	Stats *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg is the patch text, not a file'"`

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Eval *cli.Command
}
