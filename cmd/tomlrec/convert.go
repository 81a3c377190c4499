package main

import (
	"bytes"
	"encoding/json"

	"github.com/recform/tomlrec/convert"
	"github.com/recform/tomlrec/encode"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func convertRun(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range inputArgs(args) {
		rec, err := readArg(arg)
		if err != nil {
			return err
		}
		switch cfg.OutFormat {
		case "y":
			d, err := yaml.Marshal(convert.ToYAML(rec))
			if err != nil {
				return err
			}
			if _, err := cc.Out.Write(d); err != nil {
				return err
			}
		case "t":
			if err := encode.Encode(rec, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
				return err
			}
		default:
			d, err := convert.MarshalJSON(rec)
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := json.Indent(&buf, d, "", "  "); err != nil {
				return err
			}
			buf.WriteByte('\n')
			if _, err := cc.Out.Write(buf.Bytes()); err != nil {
				return err
			}
		}
	}
	return nil
}
