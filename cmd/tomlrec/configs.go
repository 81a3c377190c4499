package main

import (
	"io"
	"os"

	"github.com/recform/tomlrec/encode"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color     bool `cli:"name=color desc='encode with color'"`
	Multiline bool `cli:"name=ml desc='encode strings containing newlines with triple quotes'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeMultiline(cfg.Multiline),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
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

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type FmtConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='rewrite files in place instead of printing'"`

	Fmt *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	OutFormat string

	Convert *cli.Command
}

type GetConfig struct {
	*MainConfig

	Where string `cli:"name=w desc='filter array-of-table elements with an expression'"`

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Merge bool `cli:"name=m aliases=merge desc='apply the patch as an RFC 7386 merge patch'"`

	Patch *cli.Command
}
