package main

import (
	"fmt"
	"strings"

	"github.com/recform/tomlrec/convert"
	"github.com/recform/tomlrec/encode"
	"github.com/recform/tomlrec/host"
	"github.com/recform/tomlrec/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted field path", cli.ErrUsage)
	}
	path := strings.Split(args[0], ".")
	var prog *vm.Program
	if cfg.Where != "" {
		prog, err = expr.Compile(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: compiling -w expression: %s", cli.ErrUsage, err)
		}
	}
	for _, arg := range inputArgs(args[1:]) {
		rec, err := readArg(arg)
		if err != nil {
			return err
		}
		v, err := lookup(rec, path)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", arg, err)
		}
		if v == nil {
			continue
		}
		if prog != nil {
			v, err = where(v, prog)
			if err != nil {
				return fmt.Errorf("error filtering %s: %w", arg, err)
			}
		}
		if err := printValue(cfg.MainConfig, cc, v); err != nil {
			return err
		}
	}
	return nil
}

func lookup(rec *host.Record, path []string) (host.Value, error) {
	var v host.Value = rec
	for i, name := range path {
		r, ok := v.(*host.Record)
		if !ok {
			return nil, fmt.Errorf("%s is not a record", strings.Join(path[:i], "."))
		}
		v, ok = r.Get(name)
		if !ok {
			// absent fields query to nothing, not an error
			return nil, nil
		}
	}
	return v, nil
}

// where keeps the list elements for which prog evaluates to true.  The
// expression sees each record element's fields as its environment.
func where(v host.Value, prog *vm.Program) (host.Value, error) {
	list, ok := v.(host.List)
	if !ok {
		return nil, fmt.Errorf("-w requires a list of records")
	}
	res := host.List{}
	for _, el := range list {
		rec, ok := el.(*host.Record)
		if !ok {
			return nil, fmt.Errorf("-w requires a list of records")
		}
		env, ok := convert.ToAny(rec).(map[string]any)
		if !ok {
			return nil, fmt.Errorf("-w requires a list of records")
		}
		out, err := expr.Run(prog, env)
		if err != nil {
			return nil, err
		}
		keep, ok := out.(bool)
		if !ok {
			return nil, fmt.Errorf("-w expression must evaluate to a bool, got %T", out)
		}
		if keep {
			res = append(res, rec)
		}
	}
	return res, nil
}

func printValue(cfg *MainConfig, cc *cli.Context, v host.Value) error {
	if rec, ok := v.(*host.Record); ok && !host.IsSentinel(rec) {
		return encode.Encode(rec, cc.Out, cfg.encOpts(cc.Out)...)
	}
	if list, ok := v.(host.List); ok {
		allRecords := len(list) > 0
		for _, el := range list {
			if _, ok := el.(*host.Record); !ok {
				allRecords = false
				break
			}
		}
		if allRecords {
			for _, el := range list {
				if err := printValue(cfg, cc, el); err != nil {
					return err
				}
			}
			return nil
		}
	}
	s, err := valueText(v)
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, s)
	return nil
}

// valueText renders a non-record value in document notation.
func valueText(v host.Value) (string, error) {
	n, err := convert.ToNode(v)
	if err != nil {
		return "", err
	}
	if n.Type != ir.ArrayType {
		return encode.ScalarString(n, false)
	}
	parts := make([]string, 0, len(n.Values))
	for _, el := range n.Values {
		s, err := encode.ScalarString(el, false)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return "[" + strings.Join(parts, ", ") + "]", nil
}
