package main

import (
	"fmt"
	"io"

	"github.com/recform/tomlrec"

	"github.com/scott-cotton/cli"
)

func diffRun(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	from, err := readArg(args[0])
	if err != nil {
		return err
	}
	to, err := readArg(args[1])
	if err != nil {
		return err
	}
	d, err := tomlrec.Diff(from, to)
	if err != nil {
		return err
	}
	if d == "" {
		return nil
	}
	if _, err := io.WriteString(cc.Out, d); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
