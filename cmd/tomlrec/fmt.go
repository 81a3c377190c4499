package main

import (
	"fmt"

	"github.com/recform/tomlrec"
	"github.com/recform/tomlrec/encode"

	"github.com/scott-cotton/cli"
)

func fmtRun(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
	}
	for _, arg := range inputArgs(args) {
		rec, err := readArg(arg)
		if err != nil {
			return err
		}
		if cfg.Write {
			if err := tomlrec.WriteFile(arg, rec, encode.EncodeMultiline(cfg.Multiline)); err != nil {
				return err
			}
			continue
		}
		opts := []encode.EncodeOption{encode.EncodeMultiline(cfg.Multiline)}
		if err := encode.Encode(rec, cc.Out, opts...); err != nil {
			return err
		}
	}
	return nil
}
