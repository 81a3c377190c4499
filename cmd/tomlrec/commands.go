package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts,
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		})

	return cli.NewCommandAt(&cfg.Main, "tomlrec").
		WithSynopsis("tomlrec [opts] command [opts]").
		WithDescription("tomlrec is a tool for working with TOML documents as ordered records.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tomlrecMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			FmtCommand(cfg),
			ConvertCommand(cfg),
			GetCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view documents with values in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("fmt").
		WithAliases("f").
		WithSynopsis("fmt [-w] [files]").
		WithDescription("reformat documents canonically, preserving field order").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtRun(cfg, cc, args)
		})
	cfg.Fmt = cmd
	return cmd
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("convert").
		WithAliases("c", "conv").
		WithSynopsis("convert [-O json|yaml|toml] [files]").
		WithDescription("convert documents to another format, preserving field order").
		WithOpts(
			&cli.Opt{
				Name:        "O",
				Aliases:     []string{"ofmt"},
				Description: "output format: json, yaml, toml (default json)",
				Type:        cli.NamedFuncOpt(cfg.fmtOpt, "(format)"),
			}).
		WithRun(func(cc *cli.Context, args []string) error {
			return convertRun(cfg, cc, args)
		})
	cfg.Convert = cmd
	return cmd
}

func (cfg *ConvertConfig) fmtOpt(_ *cli.Context, a string) (any, error) {
	switch a {
	case "json", "j", "yaml", "y", "toml", "t":
		cfg.OutFormat = a[:1]
		return a, nil
	}
	return nil, fmt.Errorf("%w: unknown format %q", cli.ErrUsage, a)
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get [-w expr] <fieldpath> [files]").
		WithDescription("get field values from documents by dotted path").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <from> <to>").
		WithDescription("diff the canonical encodings of two documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diffRun(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithSynopsis("patch [-m] <doc> <patch.json>").
		WithDescription("apply a JSON patch to a document, preserving field order").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchRun(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}
