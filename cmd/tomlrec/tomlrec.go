package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/recform/tomlrec"
	"github.com/recform/tomlrec/host"

	"github.com/scott-cotton/cli"
)

func tomlrecMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// readArg parses the document named by arg, with "-" meaning stdin.
func readArg(arg string) (*host.Record, error) {
	if arg == "-" {
		d, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		rec, err := tomlrec.Parse(d)
		if err != nil {
			return nil, fmt.Errorf("error decoding stdin: %w", err)
		}
		return rec, nil
	}
	rec, err := tomlrec.ParseFile(arg)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return rec, nil
}

// inputArgs defaults to stdin when no files are named.
func inputArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
