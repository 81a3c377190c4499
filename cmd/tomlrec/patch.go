package main

import (
	"fmt"
	"os"

	"github.com/recform/tomlrec"
	"github.com/recform/tomlrec/encode"

	"github.com/scott-cotton/cli"
)

func patchRun(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires two arguments, a document and a patch file", cli.ErrUsage)
	}
	rec, err := readArg(args[0])
	if err != nil {
		return err
	}
	pd, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}
	var res = rec
	if cfg.Merge {
		res, err = tomlrec.Merge(rec, pd)
	} else {
		res, err = tomlrec.Patch(rec, pd)
	}
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[0], err)
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}
